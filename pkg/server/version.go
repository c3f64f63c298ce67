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

package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// APIVersionHeader carries the negotiated version on every routed response.
	APIVersionHeader = "X-API-Version"

	vendorMediaTypePrefix = "application/vnd.nvidia.infer."
)

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion picks the first supported version named in Accept, e.g.
// "application/vnd.nvidia.infer.v1+json". Unknown or absent versions fall
// back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for mediaType := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mediaType, _, _ = strings.Cut(mediaType, ";")
		rest, ok := strings.CutPrefix(strings.TrimSpace(mediaType), vendorMediaTypePrefix)
		if !ok {
			continue
		}
		if version, _, _ := strings.Cut(rest, "+"); supportedAPIVersions[version] {
			return version
		}
	}
	return DefaultAPIVersion
}

// SetAPIVersionHeader records the version used to serve the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set(APIVersionHeader, version)
}
