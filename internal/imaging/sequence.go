package imaging

import (
	"context"
	"fmt"
	"image"

	"github.com/ironsheep/skeletonize/internal/raster"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

// FrameOptions control WriteFrames.
type FrameOptions struct {
	// Dir receives the frames; created if missing.
	Dir string
	// Prefix of every frame file name. Defaults to "frame".
	Prefix string
	// Scale is the integer up-scaling factor.
	Scale int
	// Bright renders frames with ContourBrighter instead of plain black and white.
	Bright bool
	// Crop enables the bounding-box optimization.
	Crop bool
	// MaxIterations bounds the number of steps; <= 0 means no limit.
	MaxIterations int
	// Registry resolves the algorithm; nil means thinning.Default().
	Registry *thinning.Registry
}

func (o FrameOptions) prefix() string {
	if o.Prefix == "" {
		return "frame"
	}
	return o.Prefix
}

func (o FrameOptions) render(b *raster.Binary) image.Image {
	var img image.Image = b.ToGray()
	if o.Bright {
		img = ContourBrighter(b)
	}
	return ScaleFrame(img, o.Scale)
}

// FramesResult lists what WriteFrames produced.
type FramesResult struct {
	Algorithm  string   `json:"algorithm"`
	Frames     []string `json:"frames"`
	Iterations int      `json:"iterations"`
	Converged  bool     `json:"converged"`
}

// WriteFrames thins src one iteration at a time and writes the input plus one
// frame per changing iteration, so a converged run yields Iterations+1 files.
// On cancellation the frames written so far are returned with ctx's error.
func WriteFrames(ctx context.Context, src *raster.Binary, algorithm string, opts FrameOptions) (*FramesResult, error) {
	eng := thinning.NewEngine(opts.Registry)
	if err := eng.Init(src, algorithm, opts.Crop); err != nil {
		return nil, err
	}

	res := &FramesResult{Algorithm: algorithm}
	emit := func(b *raster.Binary) error {
		path, err := WriteFrame(opts.Dir, opts.prefix(), len(res.Frames), opts.render(b))
		if err != nil {
			return err
		}
		res.Frames = append(res.Frames, path)
		return nil
	}

	if err := emit(src); err != nil {
		return nil, err
	}
	for steps := 0; opts.MaxIterations <= 0 || steps < opts.MaxIterations; steps++ {
		if err := ctx.Err(); err != nil {
			res.Iterations = eng.Iterations()
			return res, err
		}
		changed, err := eng.Step()
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
		skel, err := eng.Skeleton()
		if err != nil {
			return nil, err
		}
		if err := emit(skel); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", eng.Iterations(), err)
		}
	}

	res.Iterations = eng.Iterations()
	res.Converged = eng.HasConverged()
	return res, nil
}
