// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/z5labs/assettree/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAML(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected value.Value
	}{
		{
			name: "scalars",
			in: `
name: left
fps: 30
scale: 0.5
enabled: true
missing: ~
hex: 0x10
quoted: "42"
stamp: 2023-06-29
`,
			expected: value.Mapping{
				"name":    value.String("left"),
				"fps":     value.Int(30),
				"scale":   value.Float(0.5),
				"enabled": value.Bool(true),
				"missing": value.Null{},
				"hex":     value.Int(16),
				"quoted":  value.String("42"),
				"stamp":   value.String("2023-06-29"),
			},
		},
		{
			name: "collections",
			in: `
cameras:
  - left.yaml
  - right.yaml
size: [640, 480]
`,
			expected: value.Mapping{
				"cameras": value.Sequence{value.String("left.yaml"), value.String("right.yaml")},
				"size":    value.Sequence{value.Int(640), value.Int(480)},
			},
		},
		{
			name: "anchors and merge keys",
			in: `
base: &base
  fps: 30
  name: default
left:
  <<: *base
  name: left
`,
			expected: value.Mapping{
				"base": value.Mapping{"fps": value.Int(30), "name": value.String("default")},
				"left": value.Mapping{"fps": value.Int(30), "name": value.String("left")},
			},
		},
		{
			name: "integer keys",
			in:   "1: one\n",
			expected: value.Mapping{
				"1": value.String("one"),
			},
		},
		{
			name:     "binary",
			in:       "raw: !!binary aGVsbG8=\n",
			expected: value.Mapping{"raw": value.Blob("hello")},
		},
		{
			name:     "empty document",
			in:       "",
			expected: value.Null{},
		},
		{
			name:     "opencv directive",
			in:       "%YAML:1.0\n---\nfx: 500\n",
			expected: value.Mapping{"fx": value.Int(500)},
		},
		{
			name:     "first document only",
			in:       "a: 1\n---\na: 2\n",
			expected: value.Mapping{"a": value.Int(1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := YAML([]byte(tc.in), DefaultTagDecoders())
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}

func TestYAML_Errors(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the content is not valid yaml", func(t *testing.T) {
			_, err := YAML([]byte("a: [1, 2"), nil)

			var perr ParseError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "yaml", perr.Format) {
				return
			}
			if !assert.NotEmpty(t, perr.Error()) {
				return
			}
		})

		t.Run("if a tag has no registered decoder", func(t *testing.T) {
			_, err := YAML([]byte("p: !point [1, 2]\n"), DefaultTagDecoders())

			var terr UnknownTagError
			if !assert.ErrorAs(t, err, &terr) {
				return
			}
			if !assert.Equal(t, "!point", terr.Tag) {
				return
			}
		})

		t.Run("if an anchor contains an alias to itself", func(t *testing.T) {
			_, err := YAML([]byte("a: &x [1, *x]\n"), DefaultTagDecoders())

			var perr ParseError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Contains(t, perr.Error(), "refers to itself") {
				return
			}
		})

		t.Run("if an anchor merges itself", func(t *testing.T) {
			_, err := YAML([]byte("a: &x {b: 1, <<: *x}\n"), nil)

			var perr ParseError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Contains(t, perr.Error(), "refers to itself") {
				return
			}
		})

		t.Run("if aliases expand far beyond the document size", func(t *testing.T) {
			var sb strings.Builder
			sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
			for i := 1; i <= 8; i++ {
				fmt.Fprintf(&sb, "l%d: &l%d [", i, i)
				for j := 0; j < 10; j++ {
					if j > 0 {
						sb.WriteString(", ")
					}
					fmt.Fprintf(&sb, "*l%d", i-1)
				}
				sb.WriteString("]\n")
			}

			_, err := YAML([]byte(sb.String()), nil)
			if !assert.ErrorIs(t, err, ErrAliasBudget) {
				return
			}
		})

		t.Run("if a registered decoder fails", func(t *testing.T) {
			decErr := errors.New("bad point")
			tags := TagDecoders{
				"!point": func(n *yaml.Node) (value.Value, error) {
					return nil, decErr
				},
			}

			_, err := YAML([]byte("p: !point [1, 2]\n"), tags)
			if !assert.ErrorIs(t, err, decErr) {
				return
			}
		})
	})

	t.Run("will use a registered decoder", func(t *testing.T) {
		t.Run("if a node carries its tag", func(t *testing.T) {
			tags := TagDecoders{
				"!point": func(n *yaml.Node) (value.Value, error) {
					var xs []float64
					if err := n.Decode(&xs); err != nil {
						return nil, err
					}
					return value.NewArray([]int{len(xs)}, xs)
				},
			}

			v, err := YAML([]byte("p: !point [1, 2]\n"), tags)
			if !assert.Nil(t, err) {
				return
			}

			p, ok := v.(value.Mapping)["p"].(value.Array)
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, []float64{1, 2}, p.Data) {
				return
			}
		})
	})
}

func TestTagDecoders_Clone(t *testing.T) {
	tds := TagDecoders{"tag:yaml.org,2002:point": OpenCVMatrix}

	c := tds.Clone()
	c["!other"] = OpenCVMatrix

	require.Len(t, tds, 1)
	require.Contains(t, c, "!!point")
	require.Contains(t, c, "!other")
}
