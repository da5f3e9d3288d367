package raster

import "image"

// Box is an axis-aligned rectangle given by its top-left corner and size.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the box covers no pixels.
func (r Box) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Rect returns the box as an image.Rectangle.
func (r Box) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// ComputeBox returns the smallest rectangle containing every foreground pixel
// of b, grown by one pixel on each side and clamped to the raster.
// An all-background raster yields the empty Box.
func ComputeBox(b *Binary) Box {
	minX, minY := b.Width, b.Height
	maxX, maxY := -1, -1
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Width : (y+1)*b.Width]
		for x, v := range row {
			if v == Background {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return Box{}
	}

	x1 := max(minX-1, 0)
	y1 := max(minY-1, 0)
	x2 := min(maxX+2, b.Width)
	y2 := min(maxY+2, b.Height)
	return Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// clip intersects box with the bounds of a width x height raster.
func clip(box Box, width, height int) Box {
	r := box.Rect().Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		return Box{}
	}
	return Box{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Crop copies the part of b covered by box. The box is clipped to the raster
// first; an empty intersection yields a 0x0 raster.
func Crop(b *Binary, box Box) *Binary {
	box = clip(box, b.Width, b.Height)
	out := New(box.Width, box.Height)
	for y := 0; y < box.Height; y++ {
		src := b.Pix[(box.Y+y)*b.Width+box.X:]
		copy(out.Pix[y*box.Width:(y+1)*box.Width], src[:box.Width])
	}
	return out
}

// Restore pastes cropped at the offset of box on an all-background canvas of
// width x height. Pixels of cropped falling outside the canvas are dropped.
func Restore(width, height int, cropped *Binary, box Box) *Binary {
	out := New(width, height)
	for y := 0; y < cropped.Height; y++ {
		for x := 0; x < cropped.Width; x++ {
			out.Set(box.X+x, box.Y+y, cropped.Pix[y*cropped.Width+x])
		}
	}
	return out
}
