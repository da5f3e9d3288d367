package thinning

// zhangSuenRule implements the Zhang-Suen deletion test.
//
// Both sub-passes require 2 <= B <= 6 and A == 1. The first also requires
// P2*P4*P6 == 0 and P4*P6*P8 == 0 (south-east boundary and north-west
// corner), the second P2*P4*P8 == 0 and P2*P6*P8 == 0.
func zhangSuenRule(p *neighborhood, pass int) bool {
	b := p.count()
	if b < 2 || b > 6 || p.transitions() != 1 {
		return false
	}
	if pass == 0 {
		return p[2]*p[4]*p[6] == 0 && p[4]*p[6]*p[8] == 0
	}
	return p[2]*p[4]*p[8] == 0 && p[2]*p[6]*p[8] == 0
}

func zhangSuenDescriptor(name string, fast bool) Descriptor {
	return Descriptor{
		Name:             name,
		IncrementalReuse: true,
		New: func() Thinner {
			return &twoPass{rule: zhangSuenRule, fast: fast}
		},
	}
}
