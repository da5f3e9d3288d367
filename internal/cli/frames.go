package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/imaging"
)

type framesOpts struct {
	inputOpts
	output string
	prefix string
	scale  int // 0 uses frame_scale from config
	bright bool
}

// newFramesCmd creates the frames command: the input plus one PNG per
// iteration, ready to be stitched into a video by an external encoder.
func newFramesCmd() *cobra.Command {
	var opts framesOpts

	cmd := &cobra.Command{
		Use:   "frames <image>",
		Short: "Write one frame per thinning iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrames(cmd, args[0], opts)
		},
	}

	opts.register(cmd, true)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "frames", "output directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "frame", "frame file name prefix")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "integer up-scaling of every frame (default from config)")
	cmd.Flags().BoolVar(&opts.bright, "bright", false, "highlight contours and dim interiors")

	return cmd
}

func runFrames(cmd *cobra.Command, path string, opts framesOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	s, err := opts.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	bin, err := s.load(imaging.NewImageCache(), path)
	if err != nil {
		return err
	}

	scale := opts.scale
	if scale <= 0 {
		scale = cfg.FrameScale
	}

	prog := newProgress(logger)
	res, err := imaging.WriteFrames(ctx, bin, s.algorithm, imaging.FrameOptions{
		Dir:           opts.output,
		Prefix:        opts.prefix,
		Scale:         scale,
		Bright:        opts.bright,
		Crop:          s.crop,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return err
	}
	if !res.Converged {
		logger.Warn("iteration limit reached before convergence", "max_iterations", cfg.MaxIterations)
	}
	prog.done("Wrote frames", "algorithm", res.Algorithm, "iterations", res.Iterations, "frames", len(res.Frames))

	printSuccess(cmd.OutOrStdout(), "%d frames in %s", len(res.Frames), opts.output)
	return nil
}
