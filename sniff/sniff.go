// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sniff classifies file content so the loader can choose a parser.
//
// Classification combines a media type sniffed from the content itself with
// the file name extension. Either one is sufficient to select a kind, which
// lets extensions cover formats without a reliable signature (YAML, NPY)
// and signatures cover files with misleading or missing extensions.
package sniff

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is the parser family a file is dispatched to.
type Kind int

const (
	Unknown Kind = iota
	YAML
	Image
	CSV
	JSON
	TOML
	NPY
)

var kindNames = [...]string{
	Unknown: "unknown",
	YAML:    "yaml",
	Image:   "image",
	CSV:     "csv",
	JSON:    "json",
	TOML:    "toml",
	NPY:     "npy",
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Structured reports whether files of this kind are structured config
// whose string values should be resolved as file references.
func (k Kind) Structured() bool {
	return k == YAML || k == JSON || k == TOML
}

// Result is the outcome of classifying a file.
type Result struct {
	Kind      Kind
	MediaType string
}

type rule struct {
	kind       Kind
	mediaTypes []string
	prefix     string
	exts       []string
}

// rules are checked in order, first match wins.
var rules = []rule{
	{
		kind:       YAML,
		mediaTypes: []string{"application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml"},
		exts:       []string{".yaml", ".yml"},
	},
	{
		kind:   Image,
		prefix: "image/",
	},
	{
		kind:       CSV,
		mediaTypes: []string{"text/csv", "application/csv"},
		exts:       []string{".csv"},
	},
	{
		kind:       JSON,
		mediaTypes: []string{"application/json", "text/json"},
		exts:       []string{".json"},
	},
	{
		kind:       TOML,
		mediaTypes: []string{"application/toml", "text/toml"},
		exts:       []string{".toml"},
	},
	{
		kind: NPY,
		exts: []string{".npy"},
	},
}

func (r rule) matches(mediaType, ext string) bool {
	if r.prefix != "" && strings.HasPrefix(mediaType, r.prefix) {
		return true
	}
	for _, mt := range r.mediaTypes {
		if mediaType == mt {
			return true
		}
	}
	for _, e := range r.exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Classify selects the Kind of a file from its name and its uncompressed
// content. A compression suffix on name, e.g. ".gz", is ignored.
func Classify(name string, content []byte) Result {
	mt := MediaType(content)
	ext := Extension(name)
	for _, r := range rules {
		if r.matches(mt, ext) {
			return Result{Kind: r.kind, MediaType: mt}
		}
	}
	return Result{Kind: Unknown, MediaType: mt}
}

// MediaType sniffs the media type of content, without parameters.
func MediaType(content []byte) string {
	mt := mimetype.Detect(content).String()
	mt, _, _ = strings.Cut(mt, ";")
	return strings.TrimSpace(mt)
}

// Extension returns the lower cased extension of name after removing one
// compression suffix.
func Extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, sig := range signatures {
		for _, s := range sig.suffixes {
			if ext == s {
				name = strings.TrimSuffix(name, filepath.Ext(name))
				return strings.ToLower(filepath.Ext(name))
			}
		}
	}
	return ext
}
