package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ironsheep/skeletonize/internal/raster"
	"github.com/ironsheep/skeletonize/internal/thinning"
)

func TestBenchmark(t *testing.T) {
	bin, err := raster.FromRows(
		".......",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".......",
	)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := benchmark(context.Background(), bin, []string{thinning.GuoHall, thinning.Morph}, 2, 0)
	if err != nil {
		t.Fatalf("benchmark failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	want := []struct {
		algorithm string
		crop      bool
		pixels    int
	}{
		{thinning.GuoHall, false, 1},
		{thinning.GuoHall, true, 1},
		{thinning.Morph, false, 11},
		{thinning.Morph, true, 11},
	}
	for i, w := range want {
		r := rows[i]
		if r.algorithm != w.algorithm || r.crop != w.crop || r.pixels != w.pixels {
			t.Errorf("row %d: got %+v, want %+v", i, r, w)
		}
		if r.iterations != 2 || !r.match {
			t.Errorf("row %d: iterations=%d match=%v", i, r.iterations, r.match)
		}
	}

	if _, err := benchmark(context.Background(), bin, []string{"nope"}, 1, 0); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestRenderBenchmark(t *testing.T) {
	out := renderBenchmark([]benchRow{
		{algorithm: "zhang_suen", crop: true, iterations: 3, pixels: 9, mean: 1500 * time.Microsecond, match: true},
	})
	for _, want := range []string{"Algorithm", "zhang_suen", "on", "1.5ms", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}
