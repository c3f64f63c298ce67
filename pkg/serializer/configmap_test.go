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
	"strings"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	clocktesting "k8s.io/utils/clock/testing"
	"k8s.io/utils/ptr"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{
			name:          "valid URI",
			uri:           "cm://ml-serving/predict-result",
			wantNamespace: "ml-serving",
			wantName:      "predict-result",
		},
		{
			name:          "valid URI with spaces",
			uri:           "cm://ml-serving / predict-result ",
			wantNamespace: "ml-serving",
			wantName:      "predict-result",
		},
		{
			name:          "valid URI with default namespace",
			uri:           "cm://default/result",
			wantNamespace: "default",
			wantName:      "result",
		},
		{name: "missing scheme", uri: "ml-serving/predict-result", wantErr: true},
		{name: "wrong scheme", uri: "http://ml-serving/predict-result", wantErr: true},
		{name: "missing name", uri: "cm://ml-serving/", wantErr: true},
		{name: "missing namespace", uri: "cm:///predict-result", wantErr: true},
		{name: "missing separator", uri: "cm://ml-serving", wantErr: true},
		{name: "empty URI", uri: "", wantErr: true},
		{name: "only scheme", uri: "cm://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namespace, name, err := parseConfigMapURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseConfigMapURI() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if namespace != tt.wantNamespace {
				t.Errorf("parseConfigMapURI() namespace = %v, want %v", namespace, tt.wantNamespace)
			}
			if name != tt.wantName {
				t.Errorf("parseConfigMapURI() name = %v, want %v", name, tt.wantName)
			}
		})
	}
}

func TestNewConfigMapWriter(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		wantFormat Format
	}{
		{"json", FormatJSON, FormatJSON},
		{"yaml", FormatYAML, FormatYAML},
		{"table", FormatTable, FormatTable},
		{"unknown defaults to JSON", Format("xml"), FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewConfigMapWriter("default", "result", tt.format)
			if writer.namespace != "default" || writer.name != "result" {
				t.Errorf("unexpected target %s/%s", writer.namespace, writer.name)
			}
			if writer.format != tt.wantFormat {
				t.Errorf("format = %v, want %v", writer.format, tt.wantFormat)
			}
			if err := writer.Close(); err != nil {
				t.Errorf("Close() = %v, want nil", err)
			}
		})
	}
}

func TestConfigMapWriter_BuildConfigMap(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	writer := NewConfigMapWriter("ml-serving", "predict-result", FormatYAML)
	writer.clock = clocktesting.NewFakePassiveClock(now)

	cm, err := writer.buildConfigMap(testResult{Model: "cnn", Prediction: 8})
	if err != nil {
		t.Fatalf("buildConfigMap() error = %v", err)
	}

	if got := ptr.Deref(cm.Name, ""); got != "predict-result" {
		t.Errorf("name = %q, want predict-result", got)
	}
	if got := ptr.Deref(cm.Namespace, ""); got != "ml-serving" {
		t.Errorf("namespace = %q, want ml-serving", got)
	}
	if cm.Labels["app.kubernetes.io/name"] != configMapAppName {
		t.Errorf("missing app label: %v", cm.Labels)
	}
	if cm.Data[configMapFormatKey] != "yaml" {
		t.Errorf("format = %q, want yaml", cm.Data[configMapFormatKey])
	}
	if cm.Data[configMapTimestampKey] != "2025-03-01T12:00:00Z" {
		t.Errorf("timestamp = %q", cm.Data[configMapTimestampKey])
	}
	if !strings.Contains(cm.Data["content.yaml"], "model: cnn") {
		t.Errorf("unexpected content: %q", cm.Data["content.yaml"])
	}
}

func TestConfigMapWriter_BuildConfigMapTable(t *testing.T) {
	writer := NewConfigMapWriter("default", "result", FormatTable)

	cm, err := writer.buildConfigMap(testResult{Model: "cnn", Prediction: 8})
	if err != nil {
		t.Fatalf("buildConfigMap() error = %v", err)
	}
	if _, ok := cm.Data["content.txt"]; !ok {
		t.Errorf("expected content.txt key, got %v", cm.Data)
	}
}

func TestFromConfigMap(t *testing.T) {
	newCM := func(data map[string]string) *corev1.ConfigMap {
		return &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "payload", Namespace: "default"},
			Data:       data,
		}
	}

	type payload struct {
		X any `json:"x" yaml:"x"`
		Y any `json:"y" yaml:"y"`
	}

	tests := []struct {
		name    string
		cm      *corev1.ConfigMap
		wantErr bool
	}{
		{
			name: "yaml content",
			cm:   newCM(map[string]string{"format": "yaml", "content.yaml": "x: 4\ny: 2\n"}),
		},
		{
			name: "json content",
			cm:   newCM(map[string]string{"format": "json", "content.json": `{"x":4,"y":2}`}),
		},
		{
			name: "missing format falls back to present key",
			cm:   newCM(map[string]string{"content.json": `{"x":4,"y":2}`}),
		},
		{
			name:    "no content",
			cm:      newCM(map[string]string{"format": "yaml"}),
			wantErr: true,
		},
		{
			name:    "not found",
			cm:      &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "other", Namespace: "default"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k8sClient := fake.NewSimpleClientset(tt.cm)

			got, err := fromConfigMap[payload](context.Background(), k8sClient, "default", "payload")
			if (err != nil) != tt.wantErr {
				t.Fatalf("fromConfigMap() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.X == nil || got.Y == nil {
				t.Errorf("expected x and y to be populated, got %+v", got)
			}
		})
	}
}
