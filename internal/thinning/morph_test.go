package thinning

import (
	"testing"

	"github.com/ironsheep/skeletonize/internal/raster"
)

func TestElementRotate(t *testing.T) {
	e := edgeElement
	r := e.rotate()
	// The background row above becomes a background column on the right.
	want := element{
		1, dontCare, 0,
		1, 1, 0,
		1, dontCare, 0,
	}
	if r != want {
		t.Errorf("rotate: got %v, want %v", r, want)
	}
	if got := e.rotate().rotate().rotate().rotate(); got != e {
		t.Errorf("four quarter turns should be the identity, got %v", got)
	}
}

func TestThinningElements_Distinct(t *testing.T) {
	seen := make(map[element]bool)
	for _, e := range thinningElements {
		if seen[e] {
			t.Errorf("duplicate element %v", e)
		}
		seen[e] = true
		if e[4] != 1 {
			t.Errorf("element center must be foreground: %v", e)
		}
	}
}

func TestMorph_Square5(t *testing.T) {
	res := runAll(t, filledRect(9, 9, 2, 2, 7, 7), Morph, false)
	want := mustRows(t,
		".........",
		".........",
		"..#...#..",
		"..#..#...",
		"...###...",
		"...#.#...",
		"..#...#..",
		".........",
		".........",
	)
	if res.Iterations != 2 {
		t.Errorf("iterations: got %d, want 2", res.Iterations)
	}
	if !raster.Equal(res.Skeleton, want) {
		t.Errorf("skeleton:\n%v\nwant:\n%v", res.Skeleton.Rows(), want.Rows())
	}
}

func TestMorph_RestartMatchesIncremental(t *testing.T) {
	img := filledDisk(25, 25, 12, 12, 8)
	m := morphThinner{}

	incremental := img.Clone()
	for n := 1; n <= 10; n++ {
		incremental = m.SingleIteration(incremental, 1)
		restarted := m.SingleIteration(img, n)
		if !raster.Equal(incremental, restarted) {
			t.Fatalf("cycle %d: restart from original differs from incremental application", n)
		}
	}
}

func TestMorph_ZeroIterationsIsCopy(t *testing.T) {
	img := filledRect(6, 6, 1, 1, 5, 5)
	out := morphThinner{}.SingleIteration(img, 0)
	if !raster.Equal(out, img) || out == img {
		t.Error("zero iterations should return an equal copy")
	}
}

func TestMorph_NotIncremental(t *testing.T) {
	d, err := Default().Get(Morph)
	if err != nil {
		t.Fatal(err)
	}
	if d.IncrementalReuse {
		t.Error("morph must restart from the original image")
	}
}
