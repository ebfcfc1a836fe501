package zeros_test

import (
	"context"
	"fmt"

	"github.com/laserjobs/ZetaNoise/zeros"
)

func ExampleProvider_Get() {
	p := zeros.NewProvider(zeros.WithCache(zeros.NewCache()))

	ordinates, err := p.Get(context.Background(), 5, 50)
	if err != nil {
		panic(err)
	}

	fmt.Printf("count=%d first=%.4f\n", len(ordinates), ordinates[0])

	// Output:
	// count=5 first=14.1347
}
