// Command tracker prints summary statistics for a fixed batch of sample
// sensor packages, one rendered message per line.
package main

import (
	"fmt"
	"io"
	"os"

	"trainingkit/internal/workout"
)

type sensorPackage struct {
	code string
	data []float64
}

var packages = []sensorPackage{
	{workout.CodeSwimming, []float64{720, 1, 80, 25, 40}},
	{workout.CodeRunning, []float64{15000, 1, 75}},
	{workout.CodeWalking, []float64{9000, 1, 75, 180}},
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tracker:", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	for _, pkg := range packages {
		rec, err := workout.ParsePackage(pkg.code, pkg.data)
		if err != nil {
			return fmt.Errorf("read package %s: %w", pkg.code, err)
		}

		fmt.Fprintln(out, workout.BuildSummary(rec).Message())
	}

	return nil
}
