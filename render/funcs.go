// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"os"
	"reflect"
)

// Env returns the environment variable value for the given key
// or an empty string, if the environment variable does not exist.
func Env(key string) string {
	return os.Getenv(key)
}

// Default returns the provided def value if v is either nil or the zero value for its type.
func Default(def, v any) any {
	if v == nil {
		return def
	}
	val := reflect.ValueOf(v)
	if val.IsZero() {
		return def
	}
	return v
}
