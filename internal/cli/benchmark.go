package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/imaging"
	"github.com/ironsheep/skeletonize/internal/raster"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

type benchmarkOpts struct {
	inputOpts
	algorithms []string
	runs       int // 0 uses benchmark_runs from config
}

// benchRow is one algorithm/crop combination.
type benchRow struct {
	algorithm  string
	crop       bool
	iterations int
	pixels     int
	mean       time.Duration
	// match reports whether cropping left the skeleton unchanged.
	match bool
}

// newBenchmarkCmd creates the benchmark command, timing every algorithm with
// and without the bounding-box crop.
func newBenchmarkCmd() *cobra.Command {
	var opts benchmarkOpts

	cmd := &cobra.Command{
		Use:   "benchmark <image>",
		Short: "Time every algorithm with and without cropping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.threshold, "threshold", "t", -1, "foreground luminance threshold 0-255 (default from config)")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "treat dark pixels as foreground")
	cmd.Flags().StringSliceVar(&opts.algorithms, "algorithms", nil, "algorithms to time (default: all)")
	cmd.Flags().IntVarP(&opts.runs, "runs", "r", 0, "runs per combination (default from config)")

	return cmd
}

func runBenchmark(cmd *cobra.Command, path string, opts benchmarkOpts) error {
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

	names := opts.algorithms
	if len(names) == 0 {
		names = thinning.ListAlgorithms()
	}
	runs := opts.runs
	if runs <= 0 {
		runs = cfg.BenchmarkRuns
	}

	logger.Info("Benchmarking", "input", path, "size", fmt.Sprintf("%dx%d", bin.Width, bin.Height), "runs", runs)
	rows, err := benchmark(ctx, bin, names, runs, cfg.MaxIterations)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if !r.match {
			logger.Warn("crop changes the skeleton", "algorithm", r.algorithm)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderBenchmark(rows))
	return nil
}

// benchmark thins bin runs times for every name, first without and then with
// cropping, and reports the mean wall time of each combination.
func benchmark(ctx context.Context, bin *raster.Binary, names []string, runs, maxIterations int) ([]benchRow, error) {
	runs = max(runs, 1)
	var rows []benchRow
	for _, name := range names {
		var pair [2]*thinning.Result
		for i, crop := range []bool{false, true} {
			var total time.Duration
			for range runs {
				start := time.Now()
				res, err := thinning.ThinContext(ctx, bin, name, thinning.Options{Crop: crop, MaxIterations: maxIterations})
				if err != nil && (res == nil || !errors.Is(err, thinning.ErrNonConvergence)) {
					return nil, err
				}
				total += time.Since(start)
				pair[i] = res
			}
			rows = append(rows, benchRow{
				algorithm:  name,
				crop:       crop,
				iterations: pair[i].Iterations,
				pixels:     pair[i].Skeleton.Count(),
				mean:       total / time.Duration(runs),
			})
		}
		match := raster.Equal(pair[0].Skeleton, pair[1].Skeleton)
		rows[len(rows)-2].match = match
		rows[len(rows)-1].match = match
	}
	return rows, nil
}

func renderBenchmark(rows []benchRow) string {
	table := make([][]string, len(rows))
	for i, r := range rows {
		crop := "off"
		if r.crop {
			crop = "on"
		}
		table[i] = []string{
			r.algorithm,
			crop,
			strconv.Itoa(r.iterations),
			strconv.Itoa(r.pixels),
			r.mean.Round(time.Microsecond).String(),
			yesNo(r.match),
		}
	}
	return renderTable([]string{"Algorithm", "Crop", "Iterations", "Pixels", "Mean", "Match"}, table, 2, 3, 4)
}
