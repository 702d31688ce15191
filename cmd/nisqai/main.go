// Package main provides the nisqai-dev command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dumkar/nisqai-dev/cdata"
	"github.com/dumkar/nisqai-dev/dataset"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("nisqai-dev %s\n", version)
			return
		case "iris":
			if len(os.Args) < 3 {
				log.Fatal("usage: nisqai iris <csv-file>")
			}
			summarizeIris(os.Args[2])
			return
		}
	}

	fmt.Println("nisqai-dev - classical data handling for quantum ML")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version          Show version")
	fmt.Println("  iris <csv-file>  Summarize an iris CSV corpus")
}

// summarizeIris loads an iris CSV, standardizes it, and prints a summary.
func summarizeIris(path string) {
	iris, err := dataset.LoadIrisCSV(path)
	if err != nil {
		log.Fatal("failed to load iris corpus", "err", err)
	}

	scaled := iris.Clone()
	if err := scaled.ScaleFeatures(cdata.Standardize); err != nil {
		log.Fatal("failed to scale features", "err", err)
	}
	test, train := iris.TrainTestSplitLabeled(0.2)

	fmt.Printf("samples:      %d\n", iris.NumSamples())
	fmt.Printf("features:     %d\n", iris.NumFeatures())
	fmt.Printf("split:        %d test / %d train\n", test.NumSamples(), train.NumSamples())
	if scaled.NumSamples() > 0 {
		fmt.Printf("standardized: first sample %v\n", scaled.Sample(0))
	}
}
