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

// Package api wires the inference routes into the reusable pkg/server.
//
// Routes:
//
//	GET  /                          greeting, the JSON string "Hello 🐍 🚀 ✨"
//	POST /api/predict?model_name=M  see pkg/prediction
//
// System endpoints (/health, /ready, /metrics) come from pkg/server.
//
// Serve blocks until SIGINT or SIGTERM:
//
//	settings, err := config.Load(config.Options{})
//	if err != nil {
//	    return err
//	}
//	return api.Serve(ctx, settings)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/inference-template/pkg/api.version=1.0.0'"
package api
