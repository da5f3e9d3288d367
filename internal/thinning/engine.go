package thinning

import (
	"fmt"

	"github.com/ironsheep/skeletonize/internal/raster"
)

// State is the lifecycle state of an Engine.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateConverged
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateConverged:
		return "converged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine drives one thinning session at a time. The zero value is not
// usable; create engines with NewEngine.
type Engine struct {
	registry *Registry

	desc    Descriptor
	thinner Thinner

	// original is the image the session started from, cropped when box is set.
	original *raster.Binary
	working  *raster.Binary

	width, height int
	box           raster.Box
	cropped       bool

	iterations int
	state      State
}

// NewEngine returns an engine resolving names through reg, or through the
// default registry when reg is nil.
func NewEngine(reg *Registry) *Engine {
	if reg == nil {
		reg = Default()
	}
	return &Engine{registry: reg}
}

// Init starts a new session thinning img with the named algorithm. When
// cropBefore is set the work is restricted to the bounding box of the
// foreground. img is copied; the caller keeps ownership of its buffer.
// On error the engine is left unchanged.
func (e *Engine) Init(img *raster.Binary, name string, cropBefore bool) error {
	desc, err := e.registry.Get(name)
	if err != nil {
		return err
	}
	if err := raster.Validate(img); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	var (
		original *raster.Binary
		box      raster.Box
	)
	if cropBefore {
		box = raster.ComputeBox(img)
		original = raster.Crop(img, box)
	} else {
		original = img.Clone()
	}

	e.desc = desc
	e.thinner = desc.New()
	e.original = original
	e.working = original.Clone()
	e.width, e.height = img.Width, img.Height
	e.box = box
	e.cropped = cropBefore
	e.iterations = 0
	e.state = StateRunning
	return nil
}

// Step runs exactly one iteration and reports whether it changed the image.
// The first unchanged iteration moves the engine to StateConverged; from then on
// Step returns false without doing any work.
func (e *Engine) Step() (bool, error) {
	switch e.state {
	case StateUninitialized:
		return false, ErrNotInitialized
	case StateConverged:
		return false, nil
	}

	src := e.working
	if !e.desc.IncrementalReuse {
		src = e.original
	}
	next := e.thinner.SingleIteration(src, e.iterations+1)

	if Converged(e.working, next) {
		e.state = StateConverged
		return false, nil
	}
	e.working = next
	e.iterations++
	return true, nil
}

// RunToConvergence calls Step until it reports no change or maxIterations
// calls have been made; maxIterations <= 0 means no limit. It returns the
// current skeleton and whether the session converged.
func (e *Engine) RunToConvergence(maxIterations int) (*raster.Binary, bool, error) {
	if e.state == StateUninitialized {
		return nil, false, ErrNotInitialized
	}
	for calls := 0; maxIterations <= 0 || calls < maxIterations; calls++ {
		changed, err := e.Step()
		if err != nil {
			return nil, false, err
		}
		if !changed {
			break
		}
	}
	skel, err := e.Skeleton()
	if err != nil {
		return nil, false, err
	}
	return skel, e.HasConverged(), nil
}

// Skeleton returns a copy of the current working image in the coordinates of
// the image given to Init, background outside the bounding box.
func (e *Engine) Skeleton() (*raster.Binary, error) {
	if e.state == StateUninitialized {
		return nil, ErrNotInitialized
	}
	if e.cropped {
		return raster.Restore(e.width, e.height, e.working, e.box), nil
	}
	return e.working.Clone(), nil
}

// Working returns a copy of the current working image, cropped when the
// session crops.
func (e *Engine) Working() (*raster.Binary, error) {
	if e.state == StateUninitialized {
		return nil, ErrNotInitialized
	}
	return e.working.Clone(), nil
}

// HasConverged reports whether the session reached its fixed point.
func (e *Engine) HasConverged() bool {
	return e.state == StateConverged
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Iterations returns the number of iterations that changed the image.
func (e *Engine) Iterations() int {
	return e.iterations
}

// Algorithm returns the name of the session's algorithm, or "" before Init.
func (e *Engine) Algorithm() string {
	return e.desc.Name
}

// Box returns the crop box and whether the session crops.
func (e *Engine) Box() (raster.Box, bool) {
	return e.box, e.cropped
}
