// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sniff

import (
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encoding is the compression a file's content was stored with.
type Encoding int

const (
	Identity Encoding = iota
	Gzip
	Zstd
	Bzip2
	LZ4
)

// String implements the fmt.Stringer interface.
func (e Encoding) String() string {
	switch e {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Bzip2:
		return "bzip2"
	case LZ4:
		return "lz4"
	default:
		return "identity"
	}
}

type signature struct {
	encoding Encoding
	magic    []byte
	valid    func([]byte) bool
	suffixes []string
	open     func([]byte) ([]byte, error)
}

var signatures = []signature{
	{
		encoding: Gzip,
		magic:    []byte{0x1f, 0x8b, 0x08},
		suffixes: []string{".gz", ".gzip"},
		open:     gunzip,
	},
	{
		encoding: Zstd,
		magic:    []byte{0x28, 0xb5, 0x2f, 0xfd},
		suffixes: []string{".zst", ".zstd"},
		open:     unzstd,
	},
	{
		encoding: Bzip2,
		magic:    []byte("BZh"),
		valid: func(b []byte) bool {
			return len(b) > 3 && b[3] >= '1' && b[3] <= '9'
		},
		suffixes: []string{".bz2"},
		open:     bunzip2,
	},
	{
		encoding: LZ4,
		magic:    []byte{0x04, 0x22, 0x4d, 0x18},
		suffixes: []string{".lz4"},
		open:     unlz4,
	},
}

// DecompressError occurs when content carries a compression signature but
// cannot be decompressed.
type DecompressError struct {
	Encoding Encoding
	Cause    error
}

// Error implements the error interface.
func (e DecompressError) Error() string {
	return fmt.Sprintf("failed to decompress %s content: %s", e.Encoding, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DecompressError) Unwrap() error {
	return e.Cause
}

// Decompress detects a single layer of compression by its signature and
// returns the uncompressed content. Content without a known signature is
// returned unchanged with the Identity encoding.
func Decompress(content []byte) (Encoding, []byte, error) {
	for _, sig := range signatures {
		if !bytes.HasPrefix(content, sig.magic) {
			continue
		}
		if sig.valid != nil && !sig.valid(content) {
			continue
		}
		b, err := sig.open(content)
		if err != nil {
			return sig.encoding, nil, DecompressError{Encoding: sig.encoding, Cause: err}
		}
		return sig.encoding, b, nil
	}
	return Identity, content, nil
}

func gunzip(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func unzstd(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

func bunzip2(b []byte) ([]byte, error) {
	return io.ReadAll(bzip2.NewReader(bytes.NewReader(b)))
}

func unlz4(b []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(b)))
}
