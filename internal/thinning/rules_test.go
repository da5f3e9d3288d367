package thinning

import "testing"

func TestPassRules(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		zs, gh [2]bool
	}{
		{"block center", []string{"###", "###", "###"}, [2]bool{false, false}, [2]bool{false, false}},
		{"north-west corner", []string{"...", ".##", ".##"}, [2]bool{true, true}, [2]bool{true, true}},
		{"south-east corner", []string{"##.", "##.", "..."}, [2]bool{true, true}, [2]bool{true, true}},
		{"north edge", []string{"...", "###", "###"}, [2]bool{false, true}, [2]bool{false, true}},
		{"south edge", []string{"###", "###", "..."}, [2]bool{true, false}, [2]bool{true, false}},
		{"line endpoint", []string{"...", ".#.", ".#."}, [2]bool{false, false}, [2]bool{false, false}},
		{"bridge", []string{".#.", ".#.", ".#."}, [2]bool{false, false}, [2]bool{false, false}},
		{"isolated", []string{"...", ".#.", "..."}, [2]bool{false, false}, [2]bool{false, false}},
		{"diagonal stroke", []string{"#..", ".#.", "..#"}, [2]bool{false, false}, [2]bool{false, false}},
		// The two rule sets disagree on these.
		{"north and north-east", []string{".##", ".#.", "..."}, [2]bool{true, true}, [2]bool{false, false}},
		{"north and east", []string{".#.", ".##", "..."}, [2]bool{false, false}, [2]bool{true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := loadNeighborhood(mustRows(t, tt.rows...), 1, 1)
			for pass := 0; pass < 2; pass++ {
				if got := zhangSuenRule(&p, pass); got != tt.zs[pass] {
					t.Errorf("zhangSuenRule pass %d: got %v, want %v", pass, got, tt.zs[pass])
				}
				if got := guoHallRule(&p, pass); got != tt.gh[pass] {
					t.Errorf("guoHallRule pass %d: got %v, want %v", pass, got, tt.gh[pass])
				}
			}
		})
	}
}
