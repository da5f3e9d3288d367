package thinning

// guoHallRule implements the Guo-Hall deletion test.
//
// C counts the 8-connected foreground runs around P1, N = min(N1, N2) measures
// the thickness of the neighborhood along both diagonal pairings, and the
// parity term m differs between the odd and even sub-passes so diagonal
// strokes are eroded from both sides evenly. A pixel is deleted when C == 1,
// 2 <= N <= 3 and m == 0.
func guoHallRule(p *neighborhood, pass int) bool {
	not := func(v uint8) uint8 { return v ^ 1 }

	c := int(not(p[2])&(p[3]|p[4])) + int(not(p[4])&(p[5]|p[6])) +
		int(not(p[6])&(p[7]|p[8])) + int(not(p[8])&(p[9]|p[2]))
	if c != 1 {
		return false
	}

	n1 := int(p[9]|p[2]) + int(p[3]|p[4]) + int(p[5]|p[6]) + int(p[7]|p[8])
	n2 := int(p[2]|p[3]) + int(p[4]|p[5]) + int(p[6]|p[7]) + int(p[8]|p[9])
	n := min(n1, n2)
	if n < 2 || n > 3 {
		return false
	}

	var m uint8
	if pass == 0 {
		m = (p[6] | p[7] | not(p[9])) & p[8]
	} else {
		m = (p[2] | p[3] | not(p[5])) & p[4]
	}
	return m == 0
}

func guoHallDescriptor(name string, fast bool) Descriptor {
	return Descriptor{
		Name:             name,
		IncrementalReuse: true,
		New: func() Thinner {
			return &twoPass{rule: guoHallRule, fast: fast}
		},
	}
}
