// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package format

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/z5labs/assettree/value"
)

// fromGo converts the generic output of encoding/json and go-toml into a
// value.Value.
func fromGo(x any) (value.Value, error) {
	switch v := x.(type) {
	case nil:
		return value.Null{}, nil
	case map[string]any:
		m := make(value.Mapping, len(v))
		for k, e := range v {
			ev, err := fromGo(e)
			if err != nil {
				return nil, err
			}
			m[k] = ev
		}
		return m, nil
	case []any:
		s := make(value.Sequence, len(v))
		for i, e := range v {
			ev, err := fromGo(e)
			if err != nil {
				return nil, err
			}
			s[i] = ev
		}
		return s, nil
	case string:
		return value.String(v), nil
	case bool:
		return value.Bool(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return value.Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	case int64:
		return value.Int(v), nil
	case int:
		return value.Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return value.Float(float64(v)), nil
		}
		return value.Int(int64(v)), nil
	case float64:
		return value.Float(v), nil
	case time.Time:
		return value.String(v.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return value.String(v.String()), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", x)
	}
}
