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

package defaults

// Server bind defaults.
const (
	// ServerHost binds all interfaces.
	ServerHost = "0.0.0.0"

	// ServerPort is the default listening port.
	ServerPort = 8000
)

// Request limits.
const (
	// RateLimit is the sustained request rate allowed per second.
	RateLimit = 100

	// RateLimitBurst is the token bucket size.
	RateLimitBurst = 200

	// MaxRequestBodyBytes caps the size of a prediction payload.
	MaxRequestBodyBytes int64 = 1 << 20
)
