// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package assettree

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/z5labs/assettree/value"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes a resolved tree into out, which must be a pointer.
// Struct fields are matched by their `config` tag. Arrays and images are
// assigned to fields of type [value.Array] and [value.Image] as is.
func Unmarshal(v value.Value, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  out,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
			imageArrayHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(value.Interface(v))
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a tree
// value to a struct field whose type does not match the tree
// value type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}

		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}

		err := u.UnmarshalText([]byte(reflect.ValueOf(data).String()))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(reflect.ValueOf(data).String())
		case reflect.Int, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()), nil
		case reflect.Float64:
			return time.Duration(reflect.ValueOf(data).Float()), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

var (
	arrayType = reflect.TypeOf(value.Array{})
	imageType = reflect.TypeOf(value.Image{})
)

// imageArrayHookFunc lets an image be decoded into a value.Array field.
func imageArrayHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != imageType || t != arrayType {
			return nil, errInvalidDecodeCondition
		}
		return data.(value.Image).Array(), nil
	}
}
