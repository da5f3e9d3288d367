package imaging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/skeletonize/internal/raster"
)

func TestScaleFrame(t *testing.T) {
	bin := mustRows(t,
		"#.",
		".#",
	)

	tests := []struct {
		name  string
		scale int
		want  int
	}{
		{"identity", 1, 2},
		{"zero keeps size", 0, 2},
		{"triple", 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ScaleFrame(bin.ToGray(), tt.scale)
			b := out.Bounds()
			if b.Dx() != tt.want || b.Dy() != tt.want {
				t.Fatalf("size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.want, tt.want)
			}
			back := raster.FromImage(out, raster.DefaultThreshold)
			k := max(tt.scale, 1)
			for y := 0; y < tt.want; y++ {
				for x := 0; x < tt.want; x++ {
					if back.At(x, y) != bin.At(x/k, y/k) {
						t.Fatalf("pixel (%d,%d) not a nearest-neighbor copy", x, y)
					}
				}
			}
		})
	}
}

func TestFramePath(t *testing.T) {
	got := FramePath("frames", "thin", 7)
	want := filepath.Join("frames", "thin_007.png")
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWriteFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "frames")
	bin := mustRows(t,
		"...",
		".#.",
		"...",
	)

	path, err := WriteFrame(dir, "f", 0, bin.ToGray())
	if err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if path != FramePath(dir, "f", 0) {
		t.Errorf("path: got %s", path)
	}

	cache := NewImageCache()
	back, err := LoadBinary(cache, path, raster.DefaultThreshold, false)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !raster.Equal(back, bin) {
		t.Error("written frame does not match")
	}
}

func TestSavePNG_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	bin := mustRows(t, "#")
	if err := SavePNG(filepath.Join(blocker, "out.png"), bin.ToGray()); err == nil {
		t.Error("SavePNG should fail when the parent is a file")
	}
}
