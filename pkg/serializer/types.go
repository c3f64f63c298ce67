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

import "context"

// ConfigMapURIScheme prefixes ConfigMap locations, e.g. cm://default/result.
const ConfigMapURIScheme = "cm://"

// Serializer writes a value to some destination.
//
// The context bounds implementations that perform remote I/O (ConfigMap writes).
type Serializer interface {
	Serialize(ctx context.Context, data any) error
	Close() error
}
