// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/tidwall/jsonc"
	"github.com/z5labs/assettree/value"
)

// JSON parses a JSON document. Comments and trailing commas are tolerated.
// Integral numbers become value.Int and all others value.Float.
func JSON(b []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(b)))
	dec.UseNumber()

	var x any
	err := dec.Decode(&x)
	if err != nil {
		return nil, ParseError{Format: "json", Cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ParseError{Format: "json", Cause: errors.New("unexpected data after top-level value")}
	}

	v, err := fromGo(x)
	if err != nil {
		return nil, ParseError{Format: "json", Cause: err}
	}
	return v, nil
}
