package raster

import "testing"

func TestCountComponents(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"empty", []string{"...", "..."}, 0},
		{"single pixel", []string{"...", ".#.", "..."}, 1},
		{"diagonal touch is connected", []string{"#..", ".#.", "..#"}, 1},
		{"two blobs", []string{"##...", "##..#", "....#"}, 2},
		{"ring", []string{"###", "#.#", "###"}, 1},
		{"three separate", []string{"#.#.#"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountComponents(mustRows(t, tt.rows...)); got != tt.want {
				t.Errorf("CountComponents: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsContour(t *testing.T) {
	b := mustRows(t,
		"###",
		"###",
		"###",
	)
	if IsContour(b, 1, 1) {
		t.Error("center of a filled 3x3 block is not contour")
	}
	if !IsContour(b, 0, 1) {
		t.Error("edge pixel should be contour")
	}
	if !IsContour(b, 2, 2) {
		t.Error("corner pixel should be contour")
	}
	b.Set(1, 0, Background)
	if !IsContour(b, 1, 1) {
		t.Error("center with a background 4-neighbor should be contour")
	}
	if IsContour(b, 1, 0) {
		t.Error("background pixel is never contour")
	}
}
