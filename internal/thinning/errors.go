package thinning

import "errors"

var (
	// ErrUnknownAlgorithm is returned when a name is absent from the registry.
	ErrUnknownAlgorithm = errors.New("unknown thinning algorithm")

	// ErrInvalidImage is returned for nil, empty or non-binary input.
	ErrInvalidImage = errors.New("invalid image")

	// ErrNonConvergence is returned when the iteration budget is exhausted
	// before the skeleton stopped changing.
	ErrNonConvergence = errors.New("thinning did not converge")

	// ErrNotInitialized is returned by Engine methods called before Init.
	ErrNotInitialized = errors.New("engine not initialized")
)
