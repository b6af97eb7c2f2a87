// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"bytes"
	"encoding/csv"

	"github.com/z5labs/assettree/value"
)

// CSV reads every record as a sequence of string fields. Records may have
// differing numbers of fields. No header detection or type inference is done.
func CSV(b []byte) (value.Value, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, ParseError{Format: "csv", Cause: err}
	}

	rows := make(value.Sequence, len(records))
	for i, rec := range records {
		row := make(value.Sequence, len(rec))
		for j, field := range rec {
			row[j] = value.String(field)
		}
		rows[i] = row
	}
	return rows, nil
}
