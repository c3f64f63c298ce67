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
	"fmt"
	"math"
	"strings"

	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
)

// DefaultModelName labels results when the caller names no model.
const DefaultModelName = "cnn"

// Field error types.
const (
	ErrTypeMissing        = "missing"
	ErrTypeFloatParsing   = "float_parsing"
	ErrTypeFloatType      = "float_type"
	ErrTypeFiniteNumber   = "finite_number"
	ErrTypeJSONInvalid    = "json_invalid"
	ErrTypeNotAnObject    = "model_attributes_type"
	validationFailedTitle = "Request validation failed"
)

// Request is a validated prediction payload.
type Request struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Result pairs the model name with the computed prediction.
type Result struct {
	Model      string  `json:"model" yaml:"model"`
	Prediction float64 `json:"prediction" yaml:"prediction"`
}

// resultJSON is the wire form of Result. JSON has no infinity or NaN, so a
// non-finite prediction is sent as null.
type resultJSON struct {
	Model      string   `json:"model"`
	Prediction *float64 `json:"prediction"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Model: r.Model}
	if !math.IsNaN(r.Prediction) && !math.IsInf(r.Prediction, 0) {
		out.Prediction = &r.Prediction
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. A null prediction decodes as NaN
// because the sign of an overflowed product is not on the wire.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Model = in.Model
	r.Prediction = math.NaN()
	if in.Prediction != nil {
		r.Prediction = *in.Prediction
	}
	return nil
}

// FieldError describes one validation failure.
type FieldError struct {
	Loc   []string `json:"loc" yaml:"loc"`
	Msg   string   `json:"msg" yaml:"msg"`
	Type  string   `json:"type" yaml:"type"`
	Input any      `json:"input,omitempty" yaml:"input,omitempty"`
}

// ValidationError is returned by Decode and Validate when the payload does not
// satisfy the request schema. It unwraps to a StructuredError with
// ErrCodeValidation carrying the field list under "detail".
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap exposes the structured form used by the HTTP error writer.
func (e *ValidationError) Unwrap() error {
	return apperrors.NewWithContext(apperrors.ErrCodeValidation, validationFailedTitle,
		map[string]any{"detail": e.Errors})
}

// bodyError builds a single error located at the body itself.
func bodyError(errType, msg string, input any) *ValidationError {
	return &ValidationError{Errors: []FieldError{{
		Loc:   []string{"body"},
		Msg:   msg,
		Type:  errType,
		Input: input,
	}}}
}
