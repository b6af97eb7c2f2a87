// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/z5labs/assettree/value"
)

// TOML parses a TOML document. Date and time values are kept as their
// textual form.
func TOML(b []byte) (value.Value, error) {
	m := make(map[string]any)
	err := toml.Unmarshal(b, &m)
	if err != nil {
		return nil, ParseError{Format: "toml", Cause: err}
	}

	v, err := fromGo(m)
	if err != nil {
		return nil, ParseError{Format: "toml", Cause: err}
	}
	return v, nil
}
