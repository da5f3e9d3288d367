package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/config"
	"github.com/ironsheep/skeletonize/internal/imaging"
	"github.com/ironsheep/skeletonize/internal/raster"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

// inputOpts are the flags shared by every command that reads images.
// Unset flags fall back to the configuration.
type inputOpts struct {
	algorithm string
	threshold int
	invert    bool
	crop      bool
}

func (o *inputOpts) register(cmd *cobra.Command, withAlgorithm bool) {
	if withAlgorithm {
		cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "", "thinning algorithm (default from config)")
	}
	cmd.Flags().IntVarP(&o.threshold, "threshold", "t", -1, "foreground luminance threshold 0-255 (default from config)")
	cmd.Flags().BoolVar(&o.invert, "invert", false, "treat dark pixels as foreground")
	cmd.Flags().BoolVar(&o.crop, "crop", true, "thin inside the foreground bounding box only (default from config)")
}

// settings is inputOpts merged with the configuration.
type settings struct {
	algorithm string
	threshold uint8
	invert    bool
	crop      bool
}

func (o *inputOpts) resolve(cmd *cobra.Command, cfg *config.Config) (settings, error) {
	s := settings{
		algorithm: cfg.Algorithm,
		threshold: cfg.GrayThreshold(),
		invert:    o.invert,
		crop:      cfg.Crop,
	}
	if o.algorithm != "" {
		if !thinning.IsValid(o.algorithm) {
			return s, fmt.Errorf("%w: %q", thinning.ErrUnknownAlgorithm, o.algorithm)
		}
		s.algorithm = o.algorithm
	}
	if o.threshold >= 0 {
		if o.threshold > 255 {
			return s, fmt.Errorf("threshold must be within 0..255, got %d", o.threshold)
		}
		s.threshold = uint8(o.threshold)
	}
	if cmd.Flags().Changed("crop") {
		s.crop = o.crop
	}
	return s, nil
}

func (s settings) load(cache *imaging.ImageCache, path string) (*raster.Binary, error) {
	bin, err := imaging.LoadBinary(cache, path, s.threshold, s.invert)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bin, nil
}
