package thinning

import (
	"math/rand"
	"testing"

	"github.com/ironsheep/skeletonize/internal/raster"
)

// filledRect returns a w x h raster with the rectangle [x0,x1) x [y0,y1) set.
func filledRect(w, h, x0, y0, x1, y1 int) *raster.Binary {
	b := raster.New(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, raster.Foreground)
		}
	}
	return b
}

// filledDisk returns a w x h raster with every pixel within r of (cx, cy) set.
func filledDisk(w, h, cx, cy, r int) *raster.Binary {
	b := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				b.Set(x, y, raster.Foreground)
			}
		}
	}
	return b
}

func union(a, b *raster.Binary) *raster.Binary {
	out := a.Clone()
	for i, v := range b.Pix {
		if v != raster.Background {
			out.Pix[i] = raster.Foreground
		}
	}
	return out
}

func mustRows(t testing.TB, rows ...string) *raster.Binary {
	t.Helper()
	b, err := raster.FromRows(rows...)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return b
}

// randomShape overlays a few random rectangles and disks.
func randomShape(rng *rand.Rand) *raster.Binary {
	w, h := 5+rng.Intn(30), 5+rng.Intn(30)
	b := raster.New(w, h)
	for n := 1 + rng.Intn(4); n > 0; n-- {
		if rng.Intn(2) == 0 {
			x0, y0 := rng.Intn(w), rng.Intn(h)
			x1, y1 := x0+rng.Intn(w-x0+1), y0+rng.Intn(h-y0+1)
			b = union(b, filledRect(w, h, x0, y0, x1, y1))
		} else {
			b = union(b, filledDisk(w, h, rng.Intn(w), rng.Intn(h), 1+rng.Intn(6)))
		}
	}
	return b
}

type namedShape struct {
	name string
	img  *raster.Binary
}

func testShapes() []namedShape {
	return []namedShape{
		{"square5", filledRect(9, 9, 2, 2, 7, 7)},
		{"rectangle", filledRect(24, 16, 3, 4, 21, 12)},
		{"disk", filledDisk(25, 25, 12, 12, 8)},
		{"touching border", filledRect(12, 10, 0, 0, 8, 6)},
		{"L shape", union(filledRect(20, 20, 3, 3, 8, 17), filledRect(20, 20, 3, 12, 17, 17))},
		{"two blobs", union(filledRect(32, 20, 2, 3, 12, 16), filledDisk(32, 20, 23, 10, 6))},
	}
}

// runAll thins img to convergence and fails the test on error.
func runAll(t testing.TB, img *raster.Binary, name string, crop bool) *Result {
	t.Helper()
	res, err := Thin(img, name, Options{Crop: crop})
	if err != nil {
		t.Fatalf("Thin(%s, crop=%v) failed: %v", name, crop, err)
	}
	return res
}
