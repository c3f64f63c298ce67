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

// Package config loads the settings shared by the inferd daemon and the
// infer CLI.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (pkg/defaults)
//  2. an optional config file (YAML, JSON or TOML, by extension)
//  3. an optional dotenv file
//  4. INFER_* environment variables
//
// Keys use snake_case in files and INFER_ plus the upper-cased key in the
// environment:
//
//	host              INFER_HOST              0.0.0.0
//	port              INFER_PORT              8000
//	log_level         INFER_LOG_LEVEL         info
//	default_model     INFER_DEFAULT_MODEL     cnn
//	max_body_bytes    INFER_MAX_BODY_BYTES    1048576
//	rate_limit        INFER_RATE_LIMIT        100
//	rate_limit_burst  INFER_RATE_LIMIT_BURST  200
//	shutdown_timeout  INFER_SHUTDOWN_TIMEOUT  30s
//
// Settings are loaded once at startup and not reloaded.
package config
