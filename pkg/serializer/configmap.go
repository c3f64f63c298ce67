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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
	"k8s.io/utils/clock"

	"github.com/NVIDIA/inference-template/pkg/defaults"
	"github.com/NVIDIA/inference-template/pkg/k8s/client"
)

const (
	configMapFormatKey    = "format"
	configMapTimestampKey = "timestamp"
	configMapFieldManager = "infer"
	configMapAppName      = "inference-template"
)

func configMapContentKey(format Format) string {
	return "content." + format.Extension()
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap using
// server-side apply, so the ConfigMap is created or updated atomically.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	clock     clock.PassiveClock
}

// NewConfigMapWriter creates a ConfigMapWriter for namespace/name.
// Unknown formats fall back to JSON.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
		clock:     clock.RealClock{},
	}
}

// Serialize applies a ConfigMap holding:
//   - content.{json|yaml|txt}: the serialized data
//   - format: the format used
//   - timestamp: RFC 3339 time of the write
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	k8sClient, _, err := client.GetKubeClient()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return w.apply(writeCtx, k8sClient, data)
}

func (w *ConfigMapWriter) apply(ctx context.Context, k8sClient client.Interface, data any) error {
	cm, err := w.buildConfigMap(data)
	if err != nil {
		return err
	}

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = k8sClient.CoreV1().ConfigMaps(w.namespace).Apply(ctx, cm, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

func (w *ConfigMapWriter) buildConfigMap(data any) (*accorev1.ConfigMapApplyConfiguration, error) {
	content, err := encode(w.format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize data: %w", err)
	}

	return accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       configMapAppName,
			"app.kubernetes.io/managed-by": configMapFieldManager,
		}).
		WithData(map[string]string{
			configMapContentKey(w.format): string(content),
			configMapFormatKey:            string(w.format),
			configMapTimestampKey:         w.clock.Now().UTC().Format(time.RFC3339),
		}), nil
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// parseConfigMapURI splits cm://namespace/name into its components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
