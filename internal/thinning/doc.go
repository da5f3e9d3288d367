// Package thinning reduces binary rasters to 1-pixel-wide skeletons.
//
// Several iterative thinning algorithms are available by name through a
// Registry. Each one is described by a Descriptor whose Thinner performs a
// single iteration; the Engine drives that iteration until the image stops
// changing, optionally restricting the work to the bounding box of the
// shape.
//
// # Algorithms
//
//   - "zhang_suen", "zhang_suen_fast": Zhang-Suen two sub-pass thinning.
//   - "guo_hall", "guo_hall_fast": Guo-Hall parity-dependent two sub-pass
//     thinning, thinner and more symmetric on diagonal strokes.
//   - "morph": hit-or-miss thinning with eight rotating structuring elements,
//     approximating the medial axis.
//
// The fast variants only re-examine pixels whose neighborhood changed since
// the previous sub-pass of the same kind and produce exactly the same output
// as the standard ones.
//
// All algorithms are erosion-only: a foreground pixel may turn to background,
// never the reverse. Convergence is the first iteration whose output is
// pixel-identical to its input.
//
// # Stepping
//
// Engine.Step runs exactly one iteration, so callers can render every
// intermediate image. Running to convergence in one call and stepping one
// iteration at a time give identical skeletons. Algorithms that cannot resume
// from an intermediate image (IncrementalReuse false) are restarted from the
// original image with the cumulative iteration count.
//
// # Errors
//
// Init fails with ErrUnknownAlgorithm or ErrInvalidImage and leaves the engine
// untouched. Thin reports an exhausted iteration budget with ErrNonConvergence
// while still returning the best-effort skeleton.
//
// # Thread Safety
//
// An Engine belongs to one goroutine. Independent engines share nothing
// mutable; the Registry is read-only after construction and safe for
// concurrent lookups. Compare runs several algorithms side by side, one
// engine per goroutine.
package thinning
