// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sbinet/npyio/npy"
	"github.com/z5labs/assettree/value"
)

// UnsupportedDTypeError occurs when an NPY file holds elements which have
// no value.Array representation, e.g. pickled Python objects.
type UnsupportedDTypeError struct {
	DType string
}

// Error implements the error interface.
func (e UnsupportedDTypeError) Error() string {
	return fmt.Sprintf("unsupported npy dtype: %q", e.DType)
}

// NPY reads a NumPy .npy array. Fortran ordered arrays are returned in
// row-major order like every other value.Array.
func NPY(b []byte) (value.Value, error) {
	r, err := npy.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	descr := r.Header.Descr
	code := strings.TrimLeft(descr.Type, "<>|=")
	switch code {
	case "b1":
		return readNPY[bool](r, descr.Shape, descr.Fortran)
	case "u1":
		return readNPY[uint8](r, descr.Shape, descr.Fortran)
	case "i1":
		return readNPY[int8](r, descr.Shape, descr.Fortran)
	case "u2":
		return readNPY[uint16](r, descr.Shape, descr.Fortran)
	case "i2":
		return readNPY[int16](r, descr.Shape, descr.Fortran)
	case "u4":
		return readNPY[uint32](r, descr.Shape, descr.Fortran)
	case "i4":
		return readNPY[int32](r, descr.Shape, descr.Fortran)
	case "u8":
		return readNPY[uint64](r, descr.Shape, descr.Fortran)
	case "i8":
		return readNPY[int64](r, descr.Shape, descr.Fortran)
	case "f4":
		return readNPY[float32](r, descr.Shape, descr.Fortran)
	case "f8":
		return readNPY[float64](r, descr.Shape, descr.Fortran)
	default:
		return nil, UnsupportedDTypeError{DType: descr.Type}
	}
}

func readNPY[T value.Element](r *npy.Reader, shape []int, fortran bool) (value.Value, error) {
	var data []T
	err := r.Read(&data)
	if err != nil {
		return nil, err
	}
	if fortran && len(shape) > 1 {
		data = fortranToC(data, shape)
	}

	arr, err := value.NewArray(shape, data)
	if err != nil {
		return nil, err
	}
	return arr, nil
}

// fortranToC reorders column-major data into row-major order.
func fortranToC[T any](data []T, shape []int) []T {
	strides := make([]int, len(shape))
	stride := 1
	for i := range shape {
		strides[i] = stride
		stride *= shape[i]
	}

	out := make([]T, len(data))
	idx := make([]int, len(shape))
	for c := range out {
		off := 0
		for i, x := range idx {
			off += x * strides[i]
		}
		out[c] = data[off]

		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < shape[i] {
				break
			}
			idx[i] = 0
		}
	}
	return out
}
