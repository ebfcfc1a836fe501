package spectrum_test

import (
	"fmt"
	"math"

	"github.com/laserjobs/ZetaNoise/spectrum"
)

func ExamplePower() {
	n := 64
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	freqs, powers, err := spectrum.Power(signal)
	if err != nil {
		panic(err)
	}

	peak := 0
	for i, p := range powers {
		if p > powers[peak] {
			peak = i
		}
	}

	fmt.Printf("bins=%d peak_freq=%.4f peak_power=%.0f\n", len(powers), freqs[peak], powers[peak])

	// Output:
	// bins=32 peak_freq=0.1250 peak_power=1024
}
