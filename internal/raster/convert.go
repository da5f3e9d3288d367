package raster

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// DefaultThreshold is the luminance level at or above which a pixel becomes
// foreground in FromImage.
const DefaultThreshold uint8 = 128

// FromImage binarizes img: pixels whose luminance is at least level become
// Foreground, all others Background. The result's origin is img.Bounds().Min.
func FromImage(img image.Image, level uint8) *Binary {
	gray := segment.Threshold(img, level)
	return fromGrayUnchecked(gray)
}

// FromGray copies a grayscale image pixel for pixel, without thresholding.
// Callers that need a strictly binary raster should run Validate on the result.
func FromGray(g *image.Gray) *Binary {
	return fromGrayUnchecked(g)
}

func fromGrayUnchecked(g *image.Gray) *Binary {
	bounds := g.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.Height; y++ {
		off := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(b.Pix[y*b.Width:(y+1)*b.Width], g.Pix[off:off+b.Width])
	}
	return b
}

// Invert swaps foreground and background in place and returns b.
// Useful for dark shapes drawn on a light background.
func (b *Binary) Invert() *Binary {
	for i, v := range b.Pix {
		if v == Background {
			b.Pix[i] = Foreground
		} else {
			b.Pix[i] = Background
		}
	}
	return b
}

// ToGray converts b to a grayscale image with bounds (0,0)-(Width,Height).
func (b *Binary) ToGray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		copy(g.Pix[y*g.Stride:y*g.Stride+b.Width], b.Pix[y*b.Width:(y+1)*b.Width])
	}
	return g
}
