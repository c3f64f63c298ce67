// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prediction

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	msgMissing      = "Field required"
	msgFloatParsing = "Input should be a valid number, unable to parse string as a number"
	msgFloatType    = "Input should be a valid number"
	msgFiniteNumber = "Input should be a finite number"
)

// fields lists the payload keys in schema order. Errors are reported in this
// order regardless of map iteration.
var fields = []string{"x", "y"}

// candidate holds coerced values before the rule stage runs. A nil pointer
// means the key was absent.
type candidate struct {
	X *float64 `json:"x" validate:"required,finite"`
	Y *float64 `json:"y" validate:"required,finite"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// rules returns the shared validator with the "finite" tag registered.
func rules() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			return name
		})
		if err := v.RegisterValidation("finite", isFinite); err != nil {
			panic(err) // only fails on an empty tag name
		}
		validate = v
	})
	return validate
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() { //nolint:exhaustive // only floats carry non-finite values
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

// Validate checks a decoded payload and returns the typed Request. Unknown
// keys are ignored. On failure the error is a *ValidationError listing every
// failing field.
func Validate(payload map[string]any) (*Request, error) {
	var c candidate
	failed := make(map[string]FieldError, len(fields))

	for _, name := range fields {
		raw, ok := payload[name]
		if !ok {
			continue
		}
		v, fe := coerceFloat(name, raw)
		if fe != nil {
			failed[name] = *fe
			continue
		}
		switch name {
		case "x":
			c.X = &v
		case "y":
			c.Y = &v
		}
	}

	if err := rules().Struct(&c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, ve := range verrs {
			name := ve.Field()
			if _, seen := failed[name]; seen {
				continue
			}
			failed[name] = ruleError(name, ve.Tag(), payload)
		}
	}

	if len(failed) > 0 {
		out := &ValidationError{}
		for _, name := range fields {
			if fe, ok := failed[name]; ok {
				out.Errors = append(out.Errors, fe)
			}
		}
		return nil, out
	}

	return &Request{X: *c.X, Y: *c.Y}, nil
}

// ruleError converts a failed struct tag into a FieldError.
func ruleError(name, tag string, payload map[string]any) FieldError {
	loc := []string{"body", name}
	if tag == "required" {
		return FieldError{Loc: loc, Msg: msgMissing, Type: ErrTypeMissing, Input: sanitizeInput(payload)}
	}
	return FieldError{Loc: loc, Msg: msgFiniteNumber, Type: ErrTypeFiniteNumber, Input: sanitizeInput(payload[name])}
}

// coerceFloat accepts JSON numbers, integer kinds and numeric strings. Values
// that parse but are not finite are returned as-is for the rule stage.
func coerceFloat(name string, raw any) (float64, *FieldError) {
	loc := []string{"body", name}
	typeErr := &FieldError{Loc: loc, Msg: msgFloatType, Type: ErrTypeFloatType, Input: sanitizeInput(raw)}

	switch v := raw.(type) {
	case nil:
		return 0, typeErr
	case json.Number:
		return parseNumeric(loc, v.String(), raw)
	case string:
		return parseNumeric(loc, v, raw)
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, typeErr
	}
}

func parseNumeric(loc []string, s string, raw any) (float64, *FieldError) {
	s = strings.TrimSpace(s)
	if isHexLiteral(s) {
		return 0, &FieldError{Loc: loc, Msg: msgFloatParsing, Type: ErrTypeFloatParsing, Input: raw}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// overflow yields ±Inf, rejected by the finite rule
			return f, nil
		}
		return 0, &FieldError{Loc: loc, Msg: msgFloatParsing, Type: ErrTypeFloatParsing, Input: raw}
	}
	return f, nil
}

// isHexLiteral reports whether s uses the 0x prefix, which ParseFloat accepts
// but decimal number strings never contain.
func isHexLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// sanitizeInput makes an offending input safe to echo back as JSON. Non-finite
// numbers become strings and maps with non-string keys get string keys.
func sanitizeInput(v any) any {
	switch t := v.(type) {
	case json.Number:
		if f, err := strconv.ParseFloat(t.String(), 64); err != nil || math.IsInf(f, 0) {
			return t.String()
		}
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'g', -1, 64)
		}
		return t
	case float32:
		return sanitizeInput(float64(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = sanitizeInput(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = sanitizeInput(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = sanitizeInput(val)
		}
		return out
	default:
		return v
	}
}
