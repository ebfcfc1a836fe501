package spectrum

import (
	"strconv"
	"testing"
)

func BenchmarkPower(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		signal := makeSine(n, 8)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, _, err := Power(signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPowerNonPow2(b *testing.B) {
	signal := makeSine(1000, 10)

	b.ReportAllocs()
	b.SetBytes(int64(1000 * 8))

	for range b.N {
		if _, _, err := Power(signal); err != nil {
			b.Fatal(err)
		}
	}
}
