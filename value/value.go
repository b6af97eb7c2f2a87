// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package value defines the tree produced by loading and resolving a file.
//
// A Value is one of a closed set of variants:
//
//   - Mapping and Sequence for structured config collections
//   - String, Int, Float, Bool and Null for scalars
//   - Array for dense numeric arrays (a matrix is a 2-D Array)
//   - Image for decoded raster images
//   - Blob for opaque bytes
//
// Code that inspects a tree is expected to type switch over these variants.
package value

// Value is implemented by every node kind of a resolved tree.
type Value interface {
	isValue()
}

// Mapping maps string keys to values.
type Mapping map[string]Value

// Sequence is an ordered list of values.
type Sequence []Value

// String is a string scalar.
type String string

// Int is an integer scalar.
type Int int64

// Float is a floating point scalar.
type Float float64

// Bool is a boolean scalar.
type Bool bool

// Null is the absence of a value.
type Null struct{}

// Blob is opaque binary content.
type Blob []byte

func (Mapping) isValue()  {}
func (Sequence) isValue() {}
func (String) isValue()   {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (Bool) isValue()     {}
func (Null) isValue()     {}
func (Blob) isValue()     {}
func (Array) isValue()    {}
func (Image) isValue()    {}

// Interface converts v into plain Go values: map[string]any, []any, string,
// int64, float64, bool and nil. Arrays and images are returned as themselves
// and blobs as []byte.
func Interface(v Value) any {
	switch x := v.(type) {
	case Mapping:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = Interface(e)
		}
		return m
	case Sequence:
		s := make([]any, len(x))
		for i, e := range x {
			s[i] = Interface(e)
		}
		return s
	case String:
		return string(x)
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case Bool:
		return bool(x)
	case Blob:
		return []byte(x)
	case Array:
		return x
	case Image:
		return x
	default:
		return nil
	}
}
