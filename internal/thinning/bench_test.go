package thinning

import "testing"

func BenchmarkThin(b *testing.B) {
	img := union(filledRect(96, 64, 8, 8, 48, 56), filledDisk(96, 64, 72, 32, 14))
	for _, name := range ListAlgorithms() {
		for _, crop := range []bool{false, true} {
			label := name
			if crop {
				label += "/crop"
			}
			b.Run(label, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := Thin(img, name, Options{Crop: crop}); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
