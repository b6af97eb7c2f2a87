// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import "fmt"

// Image is a decoded raster image stored as an interleaved
// Height x Width x Channels array of 8-bit samples. Color images use
// BGR channel order.
type Image struct {
	Height   int
	Width    int
	Channels int
	Pix      []uint8
}

// Shape returns the dimensions as [Height, Width, Channels].
func (img Image) Shape() []int {
	return []int{img.Height, img.Width, img.Channels}
}

// At returns the sample for channel c of the pixel at row y, column x.
func (img Image) At(y, x, c int) uint8 {
	return img.Pix[(y*img.Width+x)*img.Channels+c]
}

// Array views the image as a 3-D uint8 Array sharing the same pixels.
func (img Image) Array() Array {
	return Array{
		DType: Uint8,
		Shape: img.Shape(),
		Data:  img.Pix,
	}
}

// String implements the fmt.Stringer interface.
func (img Image) String() string {
	return fmt.Sprintf("<image %dx%dx%d>", img.Height, img.Width, img.Channels)
}
