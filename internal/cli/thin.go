package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/imaging"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

// thinOpts holds the flags of the thin command.
type thinOpts struct {
	inputOpts
	output     string // directory receiving out_<i>.png
	iterations int    // exact iteration count, 0 runs to convergence
	scale      int    // nearest-neighbor up-scaling of the written skeleton
}

// newThinCmd creates the thin command, writing the skeleton of the i-th
// input to <output>/out_<i>.png.
func newThinCmd() *cobra.Command {
	var opts thinOpts

	cmd := &cobra.Command{
		Use:   "thin <image>...",
		Short: "Write the skeleton of each image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThin(cmd, args, opts)
		},
	}

	opts.register(cmd, true)
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "run exactly this many iterations (0: until convergence)")
	cmd.Flags().IntVar(&opts.scale, "scale", 1, "integer up-scaling of the written skeleton")

	return cmd
}

func runThin(cmd *cobra.Command, paths []string, opts thinOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	s, err := opts.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	if opts.iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", opts.iterations)
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cache := imaging.NewImageCache()
	for i, path := range paths {
		bin, err := s.load(cache, path)
		if err != nil {
			return err
		}

		prog := newProgress(logger)
		res, err := thinning.ThinContext(ctx, bin, s.algorithm, thinning.Options{
			Crop:          s.crop,
			Iterations:    opts.iterations,
			MaxIterations: cfg.MaxIterations,
		})
		if err != nil {
			if res == nil || !errors.Is(err, thinning.ErrNonConvergence) {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Warn("skeleton is incomplete", "input", path, "err", err)
		}
		prog.done("Thinned "+filepath.Base(path),
			"algorithm", res.Algorithm,
			"iterations", res.Iterations,
			"pixels", fmt.Sprintf("%d→%d", bin.Count(), res.Skeleton.Count()))

		out := filepath.Join(opts.output, fmt.Sprintf("out_%d.png", i))
		if err := imaging.SavePNG(out, imaging.ScaleFrame(res.Skeleton.ToGray(), opts.scale)); err != nil {
			return err
		}
		printFile(cmd.OutOrStdout(), out)
	}
	return nil
}
