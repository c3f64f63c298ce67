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

// Package serializer reads and writes structured data in JSON, YAML, and table form.
//
// Writers send output to stdout, a file, or a Kubernetes ConfigMap
// (cm://namespace/name). Readers load JSON or YAML from files, HTTP URLs, or
// ConfigMaps. The package also carries the HTTP plumbing shared by the server
// and the CLI: RespondJSON for handlers and HTTPClient for outbound calls.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON encodes into a buffer before writing headers, so an encoding
// failure never produces a partial 200 response.
package serializer
