package ebl_test

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-ebl/ebl"
)

func ExampleNew() {
	m, err := ebl.New(0.05, ebl.Franceschini2008, ebl.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("tau(1 TeV) = %.4f\n", m.Tau(1))
	fmt.Printf("transmission = %.4f\n", m.Absorb(1, 1))

	horizon, err := m.HorizonEnergy(ebl.DefaultHorizonTolerance)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("horizon = %.2f TeV\n", horizon)

	// Output:
	// tau(1 TeV) = 0.4907
	// transmission = 0.6122
	// horizon = 4.91 TeV
}

func ExampleLookup() {
	meta, err := ebl.Lookup(ebl.Inoue2013)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(meta.Name, meta.File, meta.MaxRedshift())

	// Output:
	// Inoue2013 INOUEetal_2013.dat 9
}
