package thinning

import (
	"testing"

	"github.com/ironsheep/skeletonize/internal/raster"
)

func TestProperty_MonotonicErosion(t *testing.T) {
	for _, name := range ListAlgorithms() {
		for _, s := range testShapes() {
			e := NewEngine(nil)
			if err := e.Init(s.img, name, false); err != nil {
				t.Fatal(err)
			}
			prev, _ := e.Working()
			for !e.HasConverged() {
				if _, err := e.Step(); err != nil {
					t.Fatal(err)
				}
				cur, _ := e.Working()
				for i := range cur.Pix {
					if cur.Pix[i] == raster.Foreground && prev.Pix[i] == raster.Background {
						t.Fatalf("%s on %s: pixel (%d,%d) grew at iteration %d",
							name, s.name, i%cur.Width, i/cur.Width, e.Iterations())
					}
				}
				prev = cur
			}
		}
	}
}

func TestProperty_ConnectivityPreserved(t *testing.T) {
	for _, name := range ListAlgorithms() {
		for _, s := range testShapes() {
			t.Run(name+"/"+s.name, func(t *testing.T) {
				want := raster.CountComponents(s.img)
				res := runAll(t, s.img, name, true)
				if got := raster.CountComponents(res.Skeleton); got != want {
					t.Errorf("components: got %d, want %d\n%v", got, want, res.Skeleton.Rows())
				}
			})
		}
	}
}

func TestProperty_TwoBlobsStayTwo(t *testing.T) {
	img := union(filledRect(32, 20, 2, 3, 12, 16), filledDisk(32, 20, 23, 10, 6))
	if raster.CountComponents(img) != 2 {
		t.Fatal("fixture should have two components")
	}
	for _, name := range ListAlgorithms() {
		if got := raster.CountComponents(runAll(t, img, name, false).Skeleton); got != 2 {
			t.Errorf("%s: components got %d, want 2", name, got)
		}
	}
}

func TestProperty_CropEquivalence(t *testing.T) {
	shapes := []namedShape{
		{"rectangle", filledRect(24, 16, 3, 4, 21, 12)},
		{"disk", filledDisk(25, 25, 12, 12, 8)},
		{"rectangle at border", filledRect(12, 10, 0, 0, 8, 6)},
	}
	for _, name := range ListAlgorithms() {
		for _, s := range shapes {
			t.Run(name+"/"+s.name, func(t *testing.T) {
				plain := runAll(t, s.img, name, false)
				cropped := runAll(t, s.img, name, true)
				if !raster.Equal(plain.Skeleton, cropped.Skeleton) {
					t.Errorf("cropped result differs\nplain:\n%v\ncropped:\n%v",
						plain.Skeleton.Rows(), cropped.Skeleton.Rows())
				}
				if plain.Iterations != cropped.Iterations {
					t.Errorf("iterations: plain %d, cropped %d", plain.Iterations, cropped.Iterations)
				}
			})
		}
	}
}

func TestProperty_IsolatedPixel(t *testing.T) {
	img := filledRect(5, 5, 2, 2, 3, 3)
	for _, name := range ListAlgorithms() {
		for _, crop := range []bool{false, true} {
			e := NewEngine(nil)
			if err := e.Init(img, name, crop); err != nil {
				t.Fatal(err)
			}
			before, _ := e.Skeleton()
			changed, err := e.Step()
			if err != nil {
				t.Fatal(err)
			}
			after, _ := e.Skeleton()
			if changed || !e.HasConverged() || e.Iterations() != 0 {
				t.Errorf("%s crop=%v: changed=%v converged=%v iterations=%d",
					name, crop, changed, e.HasConverged(), e.Iterations())
			}
			if n := ChangedPixels(before, after); n != 0 {
				t.Errorf("%s crop=%v: %d pixels changed", name, crop, n)
			}
		}
	}
}
