package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel is one cell of a gallery.
type Panel struct {
	Label string
	Image image.Image
	// LabelColor overrides GalleryOptions.LabelColor when set.
	LabelColor color.Color
}

// GalleryOptions controls the gallery layout.
type GalleryOptions struct {
	// Columns per row; values below 1 mean 2.
	Columns int
	// Padding in pixels around each cell.
	Padding int
	// Background fills the canvas. Defaults to black.
	Background color.Color
	// LabelColor is used for panel labels. Defaults to green.
	LabelColor color.Color
}

const labelMargin = 4

// Gallery lays panels out on a grid, row-major, each cell as large as the
// largest panel, and writes each label in the bottom-left corner of its cell.
func Gallery(panels []Panel, opts GalleryOptions) (*image.NRGBA, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("gallery needs at least one panel")
	}
	cols := opts.Columns
	if cols < 1 {
		cols = 2
	}
	cols = min(cols, len(panels))
	rows := (len(panels) + cols - 1) / cols

	var cellW, cellH int
	for i, p := range panels {
		if p.Image == nil {
			return nil, fmt.Errorf("panel %d (%q) has no image", i, p.Label)
		}
		b := p.Image.Bounds()
		cellW = max(cellW, b.Dx())
		cellH = max(cellH, b.Dy())
	}
	cellW += 2 * opts.Padding
	cellH += 2 * opts.Padding

	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	labelColor := opts.LabelColor
	if labelColor == nil {
		labelColor = color.RGBA{0, 255, 0, 255}
	}

	canvas := imaging.New(cols*cellW, rows*cellH, bg)
	for i, p := range panels {
		x := (i%cols)*cellW + opts.Padding
		y := (i/cols)*cellH + opts.Padding
		canvas = imaging.Paste(canvas, p.Image, image.Pt(x, y))

		if p.Label == "" {
			continue
		}
		c := labelColor
		if p.LabelColor != nil {
			c = p.LabelColor
		}
		drawLabel(canvas, x+labelMargin, y+p.Image.Bounds().Dy()-labelMargin, p.Label, c)
	}
	return canvas, nil
}

// drawLabel writes text with its baseline at (x, y).
func drawLabel(dst *image.NRGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// LabelWidth reports the rendered width of text in pixels.
func LabelWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// Thicken dilates img by radius pixels so thin strokes survive downscaling
// and stay visible in a gallery.
func Thicken(img image.Image, radius float64) *image.RGBA {
	return effect.Dilate(img, radius)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
