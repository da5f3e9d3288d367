package thinning

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/skeletonize/internal/raster"
)

// IterateAll as Options.Iterations runs until convergence.
const IterateAll = 0

// Options control Thin.
type Options struct {
	// Crop restricts thinning to the bounding box of the foreground.
	Crop bool

	// Iterations is the exact number of steps to run, or IterateAll.
	Iterations int

	// MaxIterations bounds the steps taken in IterateAll mode; <= 0 means
	// no limit.
	MaxIterations int

	// Registry resolves the algorithm name; nil means Default().
	Registry *Registry
}

// Result is the outcome of a thinning run.
type Result struct {
	Algorithm  string         `json:"algorithm"`
	Skeleton   *raster.Binary `json:"-"`
	Iterations int            `json:"iterations"`
	Converged  bool           `json:"converged"`
	Cropped    bool           `json:"cropped"`
	Box        raster.Box     `json:"box"`
}

// Thin skeletonizes img with the named algorithm.
//
// With Iterations == IterateAll it runs to convergence. If MaxIterations is
// exhausted first, the best-effort result is returned together with an error
// wrapping ErrNonConvergence. With an explicit Iterations count exactly that
// many steps are taken and an unconverged result is not an error.
//
// Invalid input fails with ErrUnknownAlgorithm or ErrInvalidImage and a nil
// Result.
func Thin(img *raster.Binary, name string, opts Options) (*Result, error) {
	return ThinContext(context.Background(), img, name, opts)
}

// ThinContext is Thin with cancellation checked between iterations. On
// cancellation it returns the context's error and no result.
func ThinContext(ctx context.Context, img *raster.Binary, name string, opts Options) (*Result, error) {
	e := NewEngine(opts.Registry)
	if err := e.Init(img, name, opts.Crop); err != nil {
		return nil, err
	}

	limit := opts.MaxIterations
	if opts.Iterations > 0 {
		limit = opts.Iterations
	}
	for calls := 0; limit <= 0 || calls < limit; calls++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		changed, err := e.Step()
		if err != nil {
			return nil, err
		}
		if !changed && opts.Iterations <= 0 {
			break
		}
	}

	res, err := e.result()
	if err != nil {
		return nil, err
	}
	if opts.Iterations <= 0 && !res.Converged {
		return res, fmt.Errorf("%w: %s still changing after %d iterations",
			ErrNonConvergence, name, res.Iterations)
	}
	return res, nil
}

func (e *Engine) result() (*Result, error) {
	skel, err := e.Skeleton()
	if err != nil {
		return nil, err
	}
	box, cropped := e.Box()
	return &Result{
		Algorithm:  e.Algorithm(),
		Skeleton:   skel,
		Iterations: e.Iterations(),
		Converged:  e.HasConverged(),
		Cropped:    cropped,
		Box:        box,
	}, nil
}

// Compare thins img with each named algorithm concurrently, one engine per
// algorithm, and returns the results in the order of names. Options.Iterations
// and MaxIterations apply to every run. Non-convergence of one run is
// reported in its Result rather than as an error.
func Compare(ctx context.Context, img *raster.Binary, names []string, opts Options) ([]*Result, error) {
	reg := opts.Registry
	if reg == nil {
		reg = Default()
	}
	for _, name := range names {
		if !reg.IsValid(name) {
			_, err := reg.Get(name)
			return nil, err
		}
	}
	if err := raster.Validate(img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	results := make([]*Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			res, err := ThinContext(ctx, img, name, opts)
			if err != nil && res == nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
