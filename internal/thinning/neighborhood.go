package thinning

import "github.com/ironsheep/skeletonize/internal/raster"

// neighborhood holds the 3x3 window around a pixel as 0/1 values using the
// usual thinning notation: p[1] is the pixel itself, p[2] its north neighbor,
// then p[3]..p[9] clockwise (NE, E, SE, S, SW, W, NW). p[0] is unused.
type neighborhood [10]uint8

func bit(b *raster.Binary, x, y int) uint8 {
	if b.IsForeground(x, y) {
		return 1
	}
	return 0
}

func loadNeighborhood(b *raster.Binary, x, y int) neighborhood {
	return neighborhood{
		1: bit(b, x, y),
		2: bit(b, x, y-1),
		3: bit(b, x+1, y-1),
		4: bit(b, x+1, y),
		5: bit(b, x+1, y+1),
		6: bit(b, x, y+1),
		7: bit(b, x-1, y+1),
		8: bit(b, x-1, y),
		9: bit(b, x-1, y-1),
	}
}

// count returns B(P1), the number of foreground neighbors.
func (p *neighborhood) count() int {
	n := 0
	for i := 2; i <= 9; i++ {
		n += int(p[i])
	}
	return n
}

// transitions returns A(P1), the number of 0->1 transitions in the cyclic
// sequence P2, P3, ..., P9, P2.
func (p *neighborhood) transitions() int {
	n := 0
	for i := 2; i <= 9; i++ {
		next := i + 1
		if next > 9 {
			next = 2
		}
		if p[i] == 0 && p[next] == 1 {
			n++
		}
	}
	return n
}
