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

// Package server provides the reusable HTTP server used by the inference API.
//
// The server owns everything that is not application logic: listener
// lifecycle, graceful shutdown, middleware, health checks and metrics.
// Application routes are supplied once at construction and never change:
//
//	s := server.New(
//	    server.WithName("inferd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/predict": h.HandlePredict,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Middleware
//
// Every application route is wrapped, outermost first, with:
//
//   - metrics: infer_http_requests_total, infer_http_request_duration_seconds
//     and infer_http_requests_in_flight, labeled by matched route
//   - API version negotiation (Accept: application/vnd.nvidia.infer.v1+json)
//   - request ID (X-Request-Id, generated when absent or not a UUID)
//   - panic recovery (500 INTERNAL)
//   - token bucket rate limiting (429 RATE_LIMIT_EXCEEDED with Retry-After)
//   - debug request logging
//
// # System Endpoints
//
// These bypass the middleware chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until the listener is up and during shutdown
//	GET /metrics  Prometheus exposition
//
// When no handler is registered for "/", a default root handler lists the
// registered routes.
//
// # Errors
//
// Non-2xx responses share one JSON shape, ErrorResponse. WriteErrorFromErr
// maps a pkg/errors StructuredError to its status code:
//
//	{
//	  "code": "VALIDATION_FAILED",
//	  "message": "Request validation failed",
//	  "details": {"detail": [...]},
//	  "requestId": "c1f0...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// NewConfig reads defaults from pkg/defaults and these environment variables:
//
//	HOST                      bind address (default 0.0.0.0)
//	PORT                      listen port (default 8000)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//
// Under systemd, Start and Shutdown send READY=1 and STOPPING=1 through
// sd_notify.
package server
