// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/z5labs/assettree/value"
	"gopkg.in/yaml.v3"
)

// TagDecoder builds a value from a YAML node carrying a custom tag.
type TagDecoder func(*yaml.Node) (value.Value, error)

// TagDecoders maps YAML tags to the decoder handling them. Tags are given
// in short form, e.g. "!!opencv-matrix" or "!point".
type TagDecoders map[string]TagDecoder

// DefaultTagDecoders returns the decoders every loader starts with.
func DefaultTagDecoders() TagDecoders {
	return TagDecoders{
		OpenCVMatrixTag: OpenCVMatrix,
	}
}

// Clone returns a copy of tds which can be modified independently.
func (tds TagDecoders) Clone() TagDecoders {
	c := make(TagDecoders, len(tds))
	for tag, dec := range tds {
		c[normalizeTag(tag)] = dec
	}
	return c
}

const yamlLongTagPrefix = "tag:yaml.org,2002:"

func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, yamlLongTagPrefix) {
		return "!!" + strings.TrimPrefix(tag, yamlLongTagPrefix)
	}
	return tag
}

// UnknownTagError occurs when a node carries a tag with no registered decoder.
type UnknownTagError struct {
	Tag  string
	Line int
}

// Error implements the error interface.
func (e UnknownTagError) Error() string {
	return fmt.Sprintf("line %d: no decoder registered for tag %s", e.Line, e.Tag)
}

// YAML parses the first document of a YAML stream. Core schema scalars,
// anchors, aliases and merge keys are supported. Nodes with any other tag
// are handed to the matching decoder in tags.
//
// Files written by OpenCV start with a "%YAML:1.0" directive which is not
// valid YAML. That line is dropped before parsing.
func YAML(b []byte, tags TagDecoders) (value.Value, error) {
	var doc yaml.Node
	err := yaml.Unmarshal(stripOpenCVDirective(b), &doc)
	if err != nil {
		return nil, ParseError{Format: "yaml", Cause: err}
	}

	d := &yamlDecoder{
		tags:      tags,
		expanding: make(map[*yaml.Node]bool),
		budget:    aliasBudget(&doc),
	}
	v, err := d.decode(&doc)
	if err != nil {
		return nil, ParseError{Format: "yaml", Cause: err}
	}
	return v, nil
}

func stripOpenCVDirective(b []byte) []byte {
	if !bytes.HasPrefix(b, []byte("%YAML:")) {
		return b
	}
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return nil
	}
	return b[i+1:]
}

// ErrAliasBudget occurs when expanding aliases would produce far more
// nodes than the document itself contains.
var ErrAliasBudget = errors.New("document expands too many aliases")

const minAliasBudget = 10000

// aliasBudget returns how many nodes may be produced by expanding aliases:
// 100 per node written in the document, but never less than minAliasBudget.
func aliasBudget(n *yaml.Node) int {
	count := 0
	var walk func(*yaml.Node)
	walk = func(n *yaml.Node) {
		count++
		if n.Kind == yaml.AliasNode {
			return
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(n)
	return max(minAliasBudget, 100*count)
}

type yamlDecoder struct {
	tags TagDecoders

	// anchors currently being expanded through an alias
	expanding  map[*yaml.Node]bool
	aliasDepth int
	budget     int
}

// alias runs f on the node anchored by the alias n. An anchor which
// contains an alias to itself is an error.
func (d *yamlDecoder) alias(n *yaml.Node, f func(*yaml.Node) error) error {
	target := n.Alias
	if target == nil {
		return fmt.Errorf("line %d: unknown anchor %s", n.Line, n.Value)
	}
	if d.expanding[target] {
		return fmt.Errorf("line %d: anchor %s refers to itself", n.Line, n.Value)
	}

	d.expanding[target] = true
	d.aliasDepth++
	defer func() {
		delete(d.expanding, target)
		d.aliasDepth--
	}()
	return f(target)
}

func (d *yamlDecoder) decode(n *yaml.Node) (value.Value, error) {
	if d.aliasDepth > 0 {
		d.budget--
		if d.budget < 0 {
			return nil, ErrAliasBudget
		}
	}

	switch n.Kind {
	case 0:
		return value.Null{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null{}, nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		var v value.Value
		err := d.alias(n, func(target *yaml.Node) (err error) {
			v, err = d.decode(target)
			return err
		})
		return v, err
	}

	tag := normalizeTag(n.ShortTag())
	if dec, ok := d.tags[tag]; ok {
		return dec(n)
	}

	switch n.Kind {
	case yaml.MappingNode:
		if tag != "!!map" && tag != "!!set" {
			return nil, UnknownTagError{Tag: tag, Line: n.Line}
		}
		return d.mapping(n)
	case yaml.SequenceNode:
		if tag != "!!seq" && tag != "!!omap" && tag != "!!pairs" {
			return nil, UnknownTagError{Tag: tag, Line: n.Line}
		}
		return d.sequence(n)
	case yaml.ScalarNode:
		return scalar(n, tag)
	default:
		return nil, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
	}
}

func (d *yamlDecoder) mapping(n *yaml.Node) (value.Value, error) {
	m := make(value.Mapping, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}

		ev, err := d.decode(v)
		if err != nil {
			return nil, err
		}
		m[k.Value] = ev
	}

	for _, mn := range merges {
		err := d.merge(m, mn)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// merge copies keys of the mapping(s) referenced by a "<<" entry into m
// without overriding keys already present.
func (d *yamlDecoder) merge(m value.Mapping, n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		return d.alias(n, func(target *yaml.Node) error {
			return d.merge(m, target)
		})
	}
	switch n.Kind {
	case yaml.MappingNode:
		src, err := d.mapping(n)
		if err != nil {
			return err
		}
		for k, v := range src.(value.Mapping) {
			if _, exists := m[k]; !exists {
				m[k] = v
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, e := range n.Content {
			err := d.merge(m, e)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", n.Line)
	}
}

func (d *yamlDecoder) sequence(n *yaml.Node) (value.Value, error) {
	s := make(value.Sequence, len(n.Content))
	for i, e := range n.Content {
		ev, err := d.decode(e)
		if err != nil {
			return nil, err
		}
		s[i] = ev
	}
	return s, nil
}

func scalar(n *yaml.Node, tag string) (value.Value, error) {
	switch tag {
	case "!!null":
		return value.Null{}, nil
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		if err != nil {
			return nil, err
		}
		return value.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i), nil
		}
		var f float64
		err := n.Decode(&f)
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	case "!!float":
		var f float64
		err := n.Decode(&f)
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid !!binary: %w", n.Line, err)
		}
		return value.Blob(b), nil
	case "!!str", "!!timestamp":
		return value.String(n.Value), nil
	default:
		return nil, UnknownTagError{Tag: tag, Line: n.Line}
	}
}

var errNotMapping = errors.New("expected a mapping")
