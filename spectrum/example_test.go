package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-ebl/spectrum"
)

func ExampleNew() {
	cov := [][]float64{
		{1e-24, 0},
		{0, 0.01},
	}
	s, err := spectrum.New(spectrum.PowerLaw, []float64{1e-11, -2.5}, 1, cov, 1, 10, "Crab", spectrum.WithPoints(2))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(s)
	fmt.Printf("dN/dE(1 TeV) = %.2e\n", s.DNDE().Value[0])
	fmt.Printf("SED(1 TeV) = %.3e\n", s.SED().Value[0])

	// Output:
	// 1.00e-11 +/- 1.00e-12
	// -2.50e+00 +/- 1.00e-01
	// dN/dE(1 TeV) = 1.00e-11
	// SED(1 TeV) = 1.602e-11
}
