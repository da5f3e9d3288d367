package raster

import (
	"fmt"
)

// Pixel values of a binary raster.
const (
	Background uint8 = 0
	Foreground uint8 = 255
)

// Binary is a row-major binary raster.
type Binary struct {
	Width  int
	Height int
	Pix    []uint8
}

// New returns an all-background raster of the given size.
// Negative dimensions are treated as zero.
func New(width, height int) *Binary {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Binary{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// FromRows builds a raster from rows of text where '#' (or any byte other
// than '.', ' ' and '0') marks a foreground pixel. All rows must have the
// same length.
func FromRows(rows ...string) (*Binary, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	b := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '.', ' ', '0':
			default:
				b.Pix[y*width+x] = Foreground
			}
		}
	}
	return b, nil
}

// Rows renders the raster as text, '#' for foreground and '.' for background.
func (b *Binary) Rows() []string {
	rows := make([]string, b.Height)
	line := make([]byte, b.Width)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Pix[y*b.Width+x] != Background {
				line[x] = '#'
			} else {
				line[x] = '.'
			}
		}
		rows[y] = string(line)
	}
	return rows
}

// Clone returns a deep copy of b.
func (b *Binary) Clone() *Binary {
	c := &Binary{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]uint8, len(b.Pix)),
	}
	copy(c.Pix, b.Pix)
	return c
}

// Empty reports whether the raster has no pixels at all.
func (b *Binary) Empty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0
}

// In reports whether (x, y) lies inside the raster.
func (b *Binary) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// At returns the pixel at (x, y), or Background outside the raster.
func (b *Binary) At(x, y int) uint8 {
	if !b.In(x, y) {
		return Background
	}
	return b.Pix[y*b.Width+x]
}

// IsForeground reports whether (x, y) is a foreground pixel.
func (b *Binary) IsForeground(x, y int) bool {
	return b.At(x, y) != Background
}

// Set writes v at (x, y). Writes outside the raster are ignored.
func (b *Binary) Set(x, y int, v uint8) {
	if b.In(x, y) {
		b.Pix[y*b.Width+x] = v
	}
}

// Count returns the number of foreground pixels.
func (b *Binary) Count() int {
	n := 0
	for _, v := range b.Pix {
		if v != Background {
			n++
		}
	}
	return n
}

// Equal reports whether a and b have the same size and identical pixels.
func Equal(a, b *Binary) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Width != b.Width || a.Height != b.Height || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

// Validate checks that b is non-empty, that its buffer matches its
// dimensions and that every pixel is Background or Foreground.
func Validate(b *Binary) error {
	if b == nil {
		return fmt.Errorf("image is nil")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("image is empty (%dx%d)", b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("buffer holds %d pixels, want %d for %dx%d",
			len(b.Pix), b.Width*b.Height, b.Width, b.Height)
	}
	for i, v := range b.Pix {
		if v != Background && v != Foreground {
			return fmt.Errorf("pixel (%d,%d) has value %d, want 0 or 255",
				i%b.Width, i/b.Width, v)
		}
	}
	return nil
}
