// Copyright 2026 the nisqai-dev authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dumkar/nisqai-dev/cdata"
)

const irisFeatures = 4

// LoadIrisCSV loads the iris corpus from a CSV file and labels each sample
// 1 for the setosa species and 0 otherwise, making it a binary
// classification set.
//
// CSV format (UCI-style, header row optional):
//
//	sepal_length,sepal_width,petal_length,petal_width,species
//	5.1,3.5,1.4,0.2,Iris-setosa
//	7.0,3.2,4.7,1.4,Iris-versicolor
func LoadIrisCSV(filename string) (*cdata.LabeledCData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	// Skip a header row if the first field is not numeric.
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		records = records[1:]
	}

	data := make([]float64, 0, len(records)*irisFeatures)
	labels := make([]float64, 0, len(records))

	for i, record := range records {
		if len(record) != irisFeatures+1 {
			return nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+1, len(record), irisFeatures+1)
		}
		for j := 0; j < irisFeatures; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid feature at row %d, column %d: %w", i+1, j+1, err)
			}
			data = append(data, v)
		}
		if strings.Contains(strings.ToLower(record[irisFeatures]), "setosa") {
			labels = append(labels, 1)
		} else {
			labels = append(labels, 0)
		}
	}

	log.Debug("loaded iris corpus", "path", filename, "samples", len(labels))
	return cdata.NewLabeled(data, cdata.Shape{len(labels), irisFeatures}, labels)
}
