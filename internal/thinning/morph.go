package thinning

import "github.com/ironsheep/skeletonize/internal/raster"

// element is a 3x3 hit-or-miss structuring element in row-major order.
// 1 must be foreground, 0 must be background, -1 matches anything.
type element [9]int8

const dontCare = -1

var (
	// edge element: background row above, foreground row below.
	edgeElement = element{
		0, 0, 0,
		dontCare, 1, dontCare,
		1, 1, 1,
	}

	// corner element: background north-east corner, foreground west and south.
	cornerElement = element{
		dontCare, 0, 0,
		1, 1, 0,
		dontCare, 1, dontCare,
	}

	thinningElements = buildElements()
)

// rotate turns e by a quarter turn, sending offset (dx, dy) to (-dy, dx).
func (e element) rotate() element {
	var r element
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			r[(dx+1)*3+(-dy+1)] = e[(dy+1)*3+(dx+1)]
		}
	}
	return r
}

// buildElements returns the eight elements in application order: edge and
// corner element alternating, each pair a quarter turn after the previous.
func buildElements() [8]element {
	var out [8]element
	edge, corner := edgeElement, cornerElement
	for i := 0; i < 4; i++ {
		out[2*i] = edge
		out[2*i+1] = corner
		edge, corner = edge.rotate(), corner.rotate()
	}
	return out
}

func (e *element) hits(b *raster.Binary, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			want := e[(dy+1)*3+(dx+1)]
			if want == dontCare {
				continue
			}
			if bit(b, x+dx, y+dy) != uint8(want) {
				return false
			}
		}
	}
	return true
}

// morphThinner is not incremental: every call restarts from the original
// image and applies the requested number of full element cycles.
type morphThinner struct{}

func (morphThinner) SingleIteration(src *raster.Binary, iteration int) *raster.Binary {
	img := src.Clone()
	for i := 0; i < iteration; i++ {
		if !morphCycle(img) {
			break
		}
	}
	return img
}

// morphCycle applies the eight elements in order, each as a simultaneous
// pass, and reports whether any pixel was removed.
func morphCycle(img *raster.Binary) bool {
	changed := false
	var hits []int
	for k := range thinningElements {
		e := &thinningElements[k]
		hits = hits[:0]
		for i, v := range img.Pix {
			if v == raster.Background {
				continue
			}
			if e.hits(img, i%img.Width, i/img.Width) {
				hits = append(hits, i)
			}
		}
		for _, i := range hits {
			img.Pix[i] = raster.Background
		}
		if len(hits) > 0 {
			changed = true
		}
	}
	return changed
}

func morphDescriptor() Descriptor {
	return Descriptor{
		Name:             Morph,
		IncrementalReuse: false,
		New: func() Thinner {
			return morphThinner{}
		},
	}
}
