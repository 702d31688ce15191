// Copyright 2026 the nisqai-dev authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dumkar/nisqai-dev/cdata"
)

// IDX magic numbers for the official MNIST distribution.
const (
	idxImagesMagic = 2051
	idxLabelsMagic = 2049
)

// LoadMNIST loads the MNIST handwritten-digit corpus from official IDX
// binary files, with pixels normalized to [0, 1] and digit labels 0-9.
//
// Expected files in dataDir:
//   - train-images-idx3-ubyte and train-labels-idx1-ubyte (train = true)
//   - t10k-images-idx3-ubyte and t10k-labels-idx1-ubyte (train = false)
//
// Download MNIST from: http://yann.lecun.com/exdb/mnist/
func LoadMNIST(dataDir string, train bool) (*cdata.LabeledCData, error) {
	imageFile, labelFile := "t10k-images-idx3-ubyte", "t10k-labels-idx1-ubyte"
	if train {
		imageFile, labelFile = "train-images-idx3-ubyte", "train-labels-idx1-ubyte"
	}

	images, rows, cols, err := readIDXImages(filepath.Join(dataDir, imageFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read images: %w", err)
	}
	rawLabels, err := readIDXLabels(filepath.Join(dataDir, labelFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	if len(rawLabels) != len(images) {
		return nil, fmt.Errorf("image/label count mismatch: %d images, %d labels", len(images), len(rawLabels))
	}

	pixels := rows * cols
	data := make([]float64, len(images)*pixels)
	for i, img := range images {
		for j, p := range img {
			// Normalize: 0-255 -> 0.0-1.0
			data[i*pixels+j] = float64(p) / 255.0
		}
	}
	labels := make([]float64, len(rawLabels))
	for i, l := range rawLabels {
		labels[i] = float64(l)
	}

	log.Debug("loaded MNIST corpus", "dir", dataDir, "train", train, "samples", len(labels))
	return cdata.NewLabeled(data, cdata.Shape{len(labels), rows, cols}, labels)
}

// readIDXImages reads an MNIST image file in IDX format.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
func readIDXImages(filename string) (images [][]byte, rows, cols int, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0, 0, err
	}
	defer file.Close()

	var magic uint32
	if err := binary.Read(file, binary.BigEndian, &magic); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxImagesMagic {
		return nil, 0, 0, fmt.Errorf("invalid magic number: got %d, want %d", magic, idxImagesMagic)
	}

	var numImages, numRows, numCols uint32
	if err := binary.Read(file, binary.BigEndian, &numImages); err != nil {
		return nil, 0, 0, err
	}
	if err := binary.Read(file, binary.BigEndian, &numRows); err != nil {
		return nil, 0, 0, err
	}
	if err := binary.Read(file, binary.BigEndian, &numCols); err != nil {
		return nil, 0, 0, err
	}

	imageSize := int(numRows * numCols)
	images = make([][]byte, numImages)
	for i := range images {
		images[i] = make([]byte, imageSize)
		if _, err := io.ReadFull(file, images[i]); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read image %d: %w", i, err)
		}
	}
	return images, int(numRows), int(numCols), nil
}

// readIDXLabels reads an MNIST label file in IDX format.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func readIDXLabels(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var magic uint32
	if err := binary.Read(file, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxLabelsMagic {
		return nil, fmt.Errorf("invalid magic number: got %d, want %d", magic, idxLabelsMagic)
	}

	var numLabels uint32
	if err := binary.Read(file, binary.BigEndian, &numLabels); err != nil {
		return nil, err
	}

	labels := make([]byte, numLabels)
	if _, err := io.ReadFull(file, labels); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}
