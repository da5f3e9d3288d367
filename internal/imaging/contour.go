package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/skeletonize/internal/raster"
)

// InteriorLevel is the gray level given to foreground pixels that are not on
// the contour in the contour illustrations.
const InteriorLevel uint8 = 80

// ContourBrighter renders b with its 4-connected contour at full intensity and
// the remaining foreground dimmed to InteriorLevel. Skeletons, being all
// contour, come out unchanged.
func ContourBrighter(b *raster.Binary) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.IsForeground(x, y) {
				continue
			}
			v := InteriorLevel
			if raster.IsContour(b, x, y) {
				v = raster.Foreground
			}
			g.Pix[y*g.Stride+x] = v
		}
	}
	return g
}

// ContourColor renders b with contour pixels colored along a hue ramp by
// their angle around the foreground centroid, interior pixels gray and the
// background black. An empty raster yields an all-black image.
func ContourColor(b *raster.Binary) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	black := color.NRGBA{A: 255}
	gray := color.NRGBA{InteriorLevel, InteriorLevel, InteriorLevel, 255}

	cx, cy := centroid(b)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			switch {
			case !b.IsForeground(x, y):
				img.SetNRGBA(x, y, black)
			case raster.IsContour(b, x, y):
				img.SetNRGBA(x, y, hueAt(float64(x)-cx, float64(y)-cy))
			default:
				img.SetNRGBA(x, y, gray)
			}
		}
	}
	return img
}

func centroid(b *raster.Binary) (float64, float64) {
	var sx, sy, n float64
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.IsForeground(x, y) {
				sx += float64(x)
				sy += float64(y)
				n++
			}
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sx / n, sy / n
}

// hueAt maps a direction to a fully saturated color, 0 degrees (east) red.
func hueAt(dx, dy float64) color.NRGBA {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	r, g, bl := colorful.Hsv(deg, 1, 1).Clamped().RGB255()
	return color.NRGBA{r, g, bl, 255}
}

// Palette returns n well separated, fully saturated colors, used to tell
// algorithms apart in the comparer gallery.
func Palette(n int) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for i := range out {
		r, g, b := colorful.Hsv(float64(i)*360/float64(max(n, 1)), 0.85, 1).Clamped().RGB255()
		out[i] = color.NRGBA{r, g, b, 255}
	}
	return out
}
