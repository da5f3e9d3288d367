package thinning

import "github.com/ironsheep/skeletonize/internal/raster"

// Converged reports whether next is pixel-identical to prev.
func Converged(prev, next *raster.Binary) bool {
	return raster.Equal(prev, next)
}

// ChangedPixels returns the number of pixels that differ between prev and
// next, or -1 when their sizes differ.
func ChangedPixels(prev, next *raster.Binary) int {
	if prev.Width != next.Width || prev.Height != next.Height {
		return -1
	}
	n := 0
	for i := range prev.Pix {
		if prev.Pix[i] != next.Pix[i] {
			n++
		}
	}
	return n
}
