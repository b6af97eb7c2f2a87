// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"fmt"

	"github.com/z5labs/assettree/value"
	"gopkg.in/yaml.v3"
)

// OpenCVMatrixTag is the tag OpenCV's FileStorage writes matrices with.
const OpenCVMatrixTag = "!!opencv-matrix"

type opencvMatrix struct {
	Rows int       `yaml:"rows"`
	Cols int       `yaml:"cols"`
	DT   string    `yaml:"dt"`
	Data []float64 `yaml:"data"`
}

// OpenCVMatrix decodes a mapping with rows, cols, dt and data keys into a
// rows x cols value.Array. The dt code selects the element type: "u" for
// uint8, "i" for int32, "f" for float32 and "d" for float64. Any other or
// missing code yields float64.
func OpenCVMatrix(n *yaml.Node) (value.Value, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s: %w", n.Line, OpenCVMatrixTag, errNotMapping)
	}

	// Decode the plain mapping, not the tagged node.
	plain := *n
	plain.Tag = ""

	var m opencvMatrix
	err := plain.Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", n.Line, OpenCVMatrixTag, err)
	}

	shape := []int{m.Rows, m.Cols}
	var arr value.Array
	switch m.DT {
	case "u":
		arr, err = value.NewArray(shape, convert[uint8](m.Data))
	case "i":
		arr, err = value.NewArray(shape, convert[int32](m.Data))
	case "f":
		arr, err = value.NewArray(shape, convert[float32](m.Data))
	default:
		arr, err = value.NewArray(shape, m.Data)
	}
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func convert[T uint8 | int32 | float32](xs []float64) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = T(x)
	}
	return out
}
