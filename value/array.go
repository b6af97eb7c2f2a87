// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"fmt"
	"strings"
)

// DType is the element type of an Array.
type DType uint8

const (
	Uint8 DType = iota + 1
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64
	BoolType
)

var dtypeNames = map[DType]string{
	Uint8:    "uint8",
	Int8:     "int8",
	Uint16:   "uint16",
	Int16:    "int16",
	Uint32:   "uint32",
	Int32:    "int32",
	Uint64:   "uint64",
	Int64:    "int64",
	Float32:  "float32",
	Float64:  "float64",
	BoolType: "bool",
}

// String implements the fmt.Stringer interface.
func (d DType) String() string {
	if s, ok := dtypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("DType(%d)", uint8(d))
}

// Element is the set of Go types an Array can hold.
type Element interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64 | bool
}

// Array is a dense, row-major, N-dimensional array. Data holds a slice
// whose element type matches DType, e.g. []float32 for Float32.
type Array struct {
	DType DType
	Shape []int
	Data  any
}

// ShapeError occurs when the number of elements does not fit the requested shape.
type ShapeError struct {
	Shape []int
	Len   int
}

// Error implements the error interface.
func (e ShapeError) Error() string {
	return fmt.Sprintf("cannot reshape array of size %d into shape %v", e.Len, e.Shape)
}

// NewArray returns an Array of the given shape backed by data.
func NewArray[T Element](shape []int, data []T) (Array, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return Array{}, ShapeError{Shape: shape, Len: len(data)}
		}
		n *= d
	}
	if n != len(data) {
		return Array{}, ShapeError{Shape: shape, Len: len(data)}
	}
	return Array{
		DType: dtypeOf[T](),
		Shape: append([]int(nil), shape...),
		Data:  data,
	}, nil
}

func dtypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case uint32:
		return Uint32
	case int32:
		return Int32
	case uint64:
		return Uint64
	case int64:
		return Int64
	case float32:
		return Float32
	case bool:
		return BoolType
	default:
		return Float64
	}
}

// Len returns the number of elements.
func (a Array) Len() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// At returns the element at the given index converted to float64.
// Booleans are reported as 0 or 1.
func (a Array) At(idx ...int) float64 {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("value: %d indices for %d-d array", len(idx), len(a.Shape)))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= a.Shape[i] {
			panic(fmt.Sprintf("value: index %d out of range for axis %d of size %d", x, i, a.Shape[i]))
		}
		off = off*a.Shape[i] + x
	}
	return a.index(off)
}

func (a Array) index(i int) float64 {
	switch d := a.Data.(type) {
	case []uint8:
		return float64(d[i])
	case []int8:
		return float64(d[i])
	case []uint16:
		return float64(d[i])
	case []int16:
		return float64(d[i])
	case []uint32:
		return float64(d[i])
	case []int32:
		return float64(d[i])
	case []uint64:
		return float64(d[i])
	case []int64:
		return float64(d[i])
	case []float32:
		return float64(d[i])
	case []float64:
		return d[i]
	case []bool:
		if d[i] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("value: unsupported array data %T", a.Data))
	}
}

// Float64s returns a row-major copy of the elements as float64.
func (a Array) Float64s() []float64 {
	out := make([]float64, a.Len())
	for i := range out {
		out[i] = a.index(i)
	}
	return out
}

// String renders the array with nested brackets, one innermost row per line.
func (a Array) String() string {
	var sb strings.Builder
	a.format(&sb, 0, 0)
	return sb.String()
}

func (a Array) format(sb *strings.Builder, axis, off int) int {
	if len(a.Shape) == 0 {
		fmt.Fprint(sb, a.index(0))
		return 1
	}
	sb.WriteByte('[')
	if axis == len(a.Shape)-1 {
		for i := 0; i < a.Shape[axis]; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, a.index(off+i))
		}
		sb.WriteByte(']')
		return a.Shape[axis]
	}
	n := 0
	for i := 0; i < a.Shape[axis]; i++ {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", axis+1))
		}
		n += a.format(sb, axis+1, off+n)
	}
	sb.WriteByte(']')
	return n
}
