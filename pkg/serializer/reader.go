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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/NVIDIA/inference-template/pkg/defaults"
	"github.com/NVIDIA/inference-template/pkg/k8s/client"
)

// Reader deserializes JSON or YAML from an io.Reader.
// Close must be called when the Reader was created with NewFileReader.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for the given format.
// Table format is write-only and is rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a Reader over a local file or an http(s) URL.
// Remote content is fetched eagerly with the default HTTPClient.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		data, err := NewHTTPClient().Get(context.Background(), filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		return NewReader(format, bytes.NewReader(data))
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r, err := NewReader(format, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// Deserialize decodes the input into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the underlying source. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a T from a file path, an http(s) URL, or a ConfigMap URI
// (cm://namespace/name). The format follows the path extension; ConfigMaps
// record their own format.
func FromFile[T any](path string) (*T, error) {
	return FromFileWithKubeconfig[T](path, "")
}

// FromFileWithKubeconfig is FromFile with an explicit kubeconfig for ConfigMap URIs.
// An empty kubeconfig uses default discovery.
func FromFileWithKubeconfig[T any](path, kubeconfig string) (*T, error) {
	if strings.HasPrefix(path, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(path)
		if err != nil {
			return nil, fmt.Errorf("invalid ConfigMap URI: %w", err)
		}

		k8sClient, _, err := client.GetKubeClientWithConfig(kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), defaults.ConfigMapReadTimeout)
		defer cancel()
		return fromConfigMap[T](ctx, k8sClient, namespace, name)
	}

	format := FormatFromPath(path)
	slog.Debug("determined file format", "path", path, "format", format)

	reader, err := NewFileReader(format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var v T
	if err := reader.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}
	return &v, nil
}

// fromConfigMap reads content written by ConfigMapWriter.
func fromConfigMap[T any](ctx context.Context, k8sClient client.Interface, namespace, name string) (*T, error) {
	cm, err := k8sClient.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	format := FormatYAML
	if f := Format(cm.Data[configMapFormatKey]); !f.IsUnknown() && f != FormatTable {
		format = f
	}

	content, ok := cm.Data[configMapContentKey(format)]
	if !ok {
		// fall back to whichever readable key is present
		for _, f := range []Format{FormatYAML, FormatJSON} {
			if data, found := cm.Data[configMapContentKey(f)]; found {
				content, format, ok = data, f, true
				break
			}
		}
	}
	if !ok {
		return nil, fmt.Errorf("ConfigMap %s/%s has no readable content", namespace, name)
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"size", len(content))

	reader, err := NewReader(format, strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for ConfigMap data: %w", err)
	}

	var v T
	if err := reader.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize ConfigMap data: %w", err)
	}
	return &v, nil
}
