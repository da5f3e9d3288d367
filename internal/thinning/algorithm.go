package thinning

import "github.com/ironsheep/skeletonize/internal/raster"

// Registered algorithm names.
const (
	Morph         = "morph"
	ZhangSuen     = "zhang_suen"
	ZhangSuenFast = "zhang_suen_fast"
	GuoHall       = "guo_hall"
	GuoHallFast   = "guo_hall_fast"
)

// Thinner performs single thinning iterations for one session.
//
// For incremental thinners src is the working image produced by the previous
// iteration. For the others src is always the session's original image and
// iteration is the cumulative number of iterations to apply to it.
// Implementations must not modify src and must return a new raster of the
// same size.
type Thinner interface {
	SingleIteration(src *raster.Binary, iteration int) *raster.Binary
}

// Descriptor describes a registered algorithm. It is immutable; per-session
// state lives in the Thinner returned by New.
type Descriptor struct {
	// Name is the registry key.
	Name string

	// IncrementalReuse reports whether the output of iteration N can be fed
	// back as the input of iteration N+1.
	IncrementalReuse bool

	// New returns a fresh Thinner for one session.
	New func() Thinner
}
