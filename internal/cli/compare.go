package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/imaging"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

// defaultCompared are the algorithms compared when --algorithms is not given.
var defaultCompared = []string{thinning.Morph, thinning.ZhangSuenFast, thinning.GuoHallFast}

type compareOpts struct {
	inputOpts
	algorithms []string
	output     string  // gallery frame directory; empty prints the summary only
	columns    int     // 0 uses gallery_columns from config
	scale      int     // 0 uses frame_scale from config
	fps        int     // frame rate of the hold at the end
	hold       int     // seconds the last frame is held, negative for none
	dilate     float64 // stroke dilation radius in panels
}

// newCompareCmd creates the compare command. Without --output it runs the
// algorithms concurrently and prints a summary; with --output it steps them
// in lock-step and writes one labeled gallery per round.
func newCompareCmd() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare <image>",
		Short: "Compare thinning algorithms on one image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], opts)
		},
	}

	opts.register(cmd, false)
	cmd.Flags().StringSliceVar(&opts.algorithms, "algorithms", defaultCompared, "algorithms to compare")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write gallery frames to this directory")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "gallery columns (default from config)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "integer up-scaling of every frame (default from config)")
	cmd.Flags().IntVar(&opts.fps, "fps", 5, "frame rate used to size the final hold")
	cmd.Flags().IntVar(&opts.hold, "hold", 2, "seconds to hold the last frame (negative: no hold)")
	cmd.Flags().Float64Var(&opts.dilate, "dilate", 1, "dilation radius of skeleton strokes")

	return cmd
}

func runCompare(cmd *cobra.Command, path string, opts compareOpts) error {
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

	headers := []string{"Algorithm", "Iterations", "Converged", "Pixels"}
	var rows [][]string
	prog := newProgress(logger)

	if opts.output == "" {
		results, err := thinning.Compare(ctx, bin, opts.algorithms, thinning.Options{
			Crop:          s.crop,
			MaxIterations: cfg.MaxIterations,
		})
		if err != nil {
			return err
		}
		for _, r := range results {
			rows = append(rows, []string{r.Algorithm, strconv.Itoa(r.Iterations), yesNo(r.Converged), strconv.Itoa(r.Skeleton.Count())})
		}
		prog.done("Compared", "algorithms", len(results))
	} else {
		columns := opts.columns
		if columns <= 0 {
			columns = cfg.GalleryColumns
		}
		scale := opts.scale
		if scale <= 0 {
			scale = cfg.FrameScale
		}
		res, err := imaging.CompareFrames(ctx, bin, opts.algorithms, imaging.CompareOptions{
			Dir:           opts.output,
			Columns:       columns,
			Scale:         scale,
			FPS:           opts.fps,
			HoldSeconds:   opts.hold,
			DilateRadius:  opts.dilate,
			Crop:          s.crop,
			MaxIterations: cfg.MaxIterations,
		})
		if err != nil {
			return err
		}
		headers = headers[:3]
		for _, r := range res.Algorithms {
			rows = append(rows, []string{r.Name, strconv.Itoa(r.Iterations), yesNo(r.Converged)})
		}
		prog.done("Wrote gallery frames", "rounds", res.Rounds, "frames", len(res.Frames))
		printSuccess(cmd.OutOrStdout(), "%d frames in %s", len(res.Frames), opts.output)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 1, 3))
	return nil
}
