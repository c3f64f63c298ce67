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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/NVIDIA/inference-template/pkg/serializer"
	"gopkg.in/yaml.v3"
)

const (
	msgJSONInvalid = "JSON decode error"
	msgYAMLInvalid = "YAML decode error"
	msgNotAnObject = "Input should be a valid dictionary or object to extract fields from"
)

// Decode reads a request body and validates it. The content type selects YAML
// (application/yaml, application/x-yaml, text/yaml) or JSON for anything else.
// Read failures are returned unchanged so callers can tell an oversized body
// from a bad payload. Every payload problem is a *ValidationError.
func Decode(body io.Reader, contentType string) (*Request, error) {
	if body == nil {
		return nil, bodyError(ErrTypeMissing, msgMissing, nil)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, bodyError(ErrTypeMissing, msgMissing, nil)
	}

	var doc any
	switch serializer.FormatFromContentType(contentType) {
	case serializer.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, bodyError(ErrTypeJSONInvalid, msgYAMLInvalid, nil)
		}
	default:
		if err := decodeJSON(data, &doc); err != nil {
			return nil, bodyError(ErrTypeJSONInvalid, msgJSONInvalid, nil)
		}
	}

	payload, ok := doc.(map[string]any)
	if !ok {
		return nil, bodyError(ErrTypeNotAnObject, msgNotAnObject, sanitizeInput(doc))
	}

	return Validate(payload)
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}
