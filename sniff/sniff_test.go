// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sniff

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		content  []byte
		kind     Kind
	}{
		{
			name:     "yaml by extension",
			filename: "camera.yaml",
			content:  []byte("fx: 500\n"),
			kind:     YAML,
		},
		{
			name:     "yml by extension",
			filename: "camera.YML",
			content:  []byte("fx: 500\n"),
			kind:     YAML,
		},
		{
			name:     "yaml extension wins over json content",
			filename: "camera.yaml",
			content:  []byte(`{"fx": 500}`),
			kind:     YAML,
		},
		{
			name:     "image by signature",
			filename: "left",
			content:  pngBytes(t),
			kind:     Image,
		},
		{
			name:     "image signature wins over csv extension",
			filename: "left.csv",
			content:  pngBytes(t),
			kind:     Image,
		},
		{
			name:     "csv by extension",
			filename: "tasks.csv",
			content:  []byte("a\n"),
			kind:     CSV,
		},
		{
			name:     "json by signature",
			filename: "camera",
			content:  []byte(`{"fx": 500, "fy": 500}`),
			kind:     JSON,
		},
		{
			name:     "json by extension",
			filename: "camera.json",
			content:  []byte(`{`),
			kind:     JSON,
		},
		{
			name:     "toml by extension",
			filename: "robot.toml",
			content:  []byte("x"),
			kind:     TOML,
		},
		{
			name:     "npy by extension",
			filename: "weights.npy",
			content:  []byte("\x93NUMPY"),
			kind:     NPY,
		},
		{
			name:     "compression suffix is ignored",
			filename: "camera.yaml.gz",
			content:  []byte("fx: 500\n"),
			kind:     YAML,
		},
		{
			name:     "unknown text",
			filename: "notes.txt",
			content:  []byte("hello"),
			kind:     Unknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Classify(tc.filename, tc.content)
			require.Equal(t, tc.kind, res.Kind, "media type: %s", res.MediaType)
		})
	}
}

func TestMediaType(t *testing.T) {
	require.Equal(t, "image/png", MediaType(pngBytes(t)))
	require.Equal(t, "text/plain", MediaType([]byte("hello")))
}

func TestKind_Structured(t *testing.T) {
	require.True(t, YAML.Structured())
	require.True(t, JSON.Structured())
	require.True(t, TOML.Structured())
	require.False(t, Image.Structured())
	require.False(t, CSV.Structured())
	require.False(t, NPY.Structured())
	require.False(t, Unknown.Structured())
	require.Equal(t, "toml", TOML.String())
	require.Equal(t, "unknown", Kind(42).String())
}
