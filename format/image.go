// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/z5labs/assettree/internal/try"
	"github.com/z5labs/assettree/value"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageDecodeError occurs when image content cannot be decoded. It wraps
// image.ErrFormat if no registered codec recognizes the content.
type ImageDecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e ImageDecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ImageDecodeError) Unwrap() error {
	return e.Cause
}

// Image decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image into an 8-bit,
// 3 channel value.Image in BGR order. Alpha is dropped and samples wider
// than 8 bits are truncated to their high byte.
func Image(b []byte) (value.Value, error) {
	img, err := decodeImage(b)
	if err != nil {
		return nil, ImageDecodeError{Cause: err}
	}
	return toBGR(img), nil
}

func decodeImage(b []byte) (img image.Image, err error) {
	defer try.Recover(&err)

	img, _, err = image.Decode(bytes.NewReader(b))
	return
}

func toBGR(img image.Image) value.Image {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	pix := make([]uint8, h*w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * 3
			pix[i] = c.B
			pix[i+1] = c.G
			pix[i+2] = c.R
		}
	}
	return value.Image{
		Height:   h,
		Width:    w,
		Channels: 3,
		Pix:      pix,
	}
}
