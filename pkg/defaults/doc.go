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

// Package defaults provides centralized configuration constants for the
// inference service and CLI.
//
// Centralizing these values keeps the daemon, the CLI, and their tests in
// agreement on ports, limits, and timeouts.
//
// # Categories
//
//   - Server: bind address, port, and HTTP server timeouts
//   - Limits: rate limiting and request body size
//   - HTTP client: outbound requests made by the CLI
//   - Kubernetes: ConfigMap reads and writes
//
// # Usage
//
//	import "github.com/NVIDIA/inference-template/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLIPredictTimeout)
//	defer cancel()
package defaults
