// SPDX-License-Identifier: MIT
package reservoir_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reservoir/reservoir"
)

// ExampleEngine trains a one-step-ahead sine predictor and queries it.
func ExampleEngine() {
	e, err := reservoir.New(reservoir.Config{
		ReservoirSize:  30,
		InputDim:       1,
		OutputDim:      1,
		SpectralRadius: 0.9,
		LeakingRate:    0.3,
	}, reservoir.WithSeed(7), reservoir.WithWashout(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inputs := make([][]float64, 200)
	targets := make([][]float64, 200)
	for i := range inputs {
		inputs[i] = []float64{math.Sin(0.1 * float64(i))}
		targets[i] = []float64{math.Sin(0.1*float64(i) + 0.1)}
	}
	if err = e.Train(inputs, targets); err != nil {
		fmt.Println("error:", err)
		return
	}

	y, err := e.Update([]float64{math.Sin(20.0)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("trained=%v steps=%d outputs=%d\n", e.Trained(), e.Steps(), len(y))

	_, err = e.Update([]float64{1, 2})
	fmt.Println(err != nil)
	// Output:
	// trained=true steps=201 outputs=1
	// true
}
