package thinning

import "github.com/ironsheep/skeletonize/internal/raster"

// passRule decides whether the foreground pixel described by p is deleted in
// the given sub-pass (0 or 1).
type passRule func(p *neighborhood, pass int) bool

// twoPass runs iterations made of two sub-passes with simultaneous deletion.
// When fast is set it keeps, for each sub-pass, the pixels whose neighborhood
// changed since that sub-pass last ran and only re-evaluates those. A pixel
// whose 3x3 window is unchanged gets the same verdict as last time, so the
// output matches a full scan.
type twoPass struct {
	rule passRule
	fast bool

	last    *raster.Binary
	pending [2]frontier
}

func (t *twoPass) SingleIteration(src *raster.Binary, _ int) *raster.Binary {
	dst := src.Clone()
	if t.fast && src != t.last {
		t.pending[0].resetFull(len(dst.Pix))
		t.pending[1].resetFull(len(dst.Pix))
	}

	for pass := 0; pass < 2; pass++ {
		deleted := t.scan(dst, pass)
		for _, i := range deleted {
			dst.Pix[i] = raster.Background
		}
		if t.fast {
			t.pending[pass].clear()
			for _, i := range deleted {
				t.touch(dst, i)
			}
		}
	}

	if t.fast {
		t.last = dst
	}
	return dst
}

// scan returns the indices of the pixels deleted by sub-pass pass.
func (t *twoPass) scan(b *raster.Binary, pass int) []int {
	var deleted []int
	visit := func(i int) {
		if b.Pix[i] == raster.Background {
			return
		}
		p := loadNeighborhood(b, i%b.Width, i/b.Width)
		if t.rule(&p, pass) {
			deleted = append(deleted, i)
		}
	}

	if !t.fast || t.pending[pass].full {
		for i := range b.Pix {
			visit(i)
		}
		return deleted
	}
	for _, i := range t.pending[pass].list {
		visit(i)
	}
	return deleted
}

// touch queues every pixel of the 3x3 window around index i for both
// sub-passes.
func (t *twoPass) touch(b *raster.Binary, i int) {
	x, y := i%b.Width, i/b.Width
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !b.In(x+dx, y+dy) {
				continue
			}
			j := (y+dy)*b.Width + x + dx
			t.pending[0].add(j)
			t.pending[1].add(j)
		}
	}
}

// frontier is a deduplicated set of pixel indices. While full is set it
// stands for every pixel of the image.
type frontier struct {
	full bool
	mark []bool
	list []int
}

func (f *frontier) resetFull(size int) {
	if cap(f.mark) < size {
		f.mark = make([]bool, size)
	} else {
		f.mark = f.mark[:size]
		clear(f.mark)
	}
	f.list = f.list[:0]
	f.full = true
}

func (f *frontier) clear() {
	for _, i := range f.list {
		f.mark[i] = false
	}
	f.list = f.list[:0]
	f.full = false
}

func (f *frontier) add(i int) {
	if f.full || f.mark[i] {
		return
	}
	f.mark[i] = true
	f.list = append(f.list, i)
}
