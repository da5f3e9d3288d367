package thinning

import "testing"

func TestConverged(t *testing.T) {
	a := mustRows(t, "##", "#.")
	if !Converged(a, a.Clone()) {
		t.Error("identical images should be converged")
	}
	if Converged(a, mustRows(t, "##", "..")) {
		t.Error("different images should not be converged")
	}
}

func TestChangedPixels(t *testing.T) {
	a := mustRows(t, "###", "###")
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"same", []string{"###", "###"}, 0},
		{"one", []string{"#.#", "###"}, 1},
		{"all", []string{"...", "..."}, 6},
		{"size mismatch", []string{"##", "##"}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangedPixels(a, mustRows(t, tt.rows...)); got != tt.want {
				t.Errorf("ChangedPixels: got %d, want %d", got, tt.want)
			}
		})
	}
}
