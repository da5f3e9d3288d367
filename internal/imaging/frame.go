package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ScaleFrame enlarges img by an integer factor with nearest-neighbor
// sampling, so single-pixel skeleton strokes stay crisp. A scale of 1 or less
// returns an unscaled copy.
func ScaleFrame(img image.Image, scale int) *image.NRGBA {
	if scale <= 1 {
		return imaging.Clone(img)
	}
	bounds := img.Bounds()
	return imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.NearestNeighbor)
}

// FramePath returns the file name of frame index inside dir,
// e.g. frames/thin_007.png.
func FramePath(dir, prefix string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%03d.png", prefix, index))
}

// WriteFrame saves img as frame index under dir, creating dir if needed,
// and returns the path written.
func WriteFrame(dir, prefix string, index int, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create frame directory: %w", err)
	}
	path := FramePath(dir, prefix, index)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to write frame %d: %w", index, err)
	}
	return path, nil
}

// SavePNG writes img to path, picking the encoder from the file extension.
func SavePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
