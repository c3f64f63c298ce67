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
	"time"

	"github.com/NVIDIA/inference-template/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Version   string    `json:"version,omitempty" yaml:"version,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth is the liveness check. It succeeds whenever the process can
// serve HTTP.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeHealth(w, r, http.StatusOK, statusHealthy, "")
}

// handleReady is the readiness check. It fails before Start binds the
// listener and once Shutdown begins.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		s.writeHealth(w, r, http.StatusServiceUnavailable, statusNotReady, "service is not accepting traffic")
		return
	}
	s.writeHealth(w, r, http.StatusOK, statusReady, "")
}

func (s *Server) writeHealth(w http.ResponseWriter, r *http.Request, code int, status, reason string) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serializer.RespondJSON(w, code, HealthResponse{
		Status:    status,
		Version:   s.config.Version,
		Timestamp: s.clock.Now().UTC(),
		Reason:    reason,
	})
}
