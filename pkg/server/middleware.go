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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
	"github.com/google/uuid"
)

const (
	headerRequestID          = "X-Request-Id"
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// middleware decorates a handler.
type middleware func(http.HandlerFunc) http.HandlerFunc

// chain applies mws so that the first one is outermost.
func chain(h http.HandlerFunc, mws ...middleware) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// withMiddleware wraps an application route. Recovery runs before the rate
// limiter so a panicking handler never consumes more than its own token.
func (s *Server) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return chain(handler,
		s.metricsMiddleware,
		s.versionMiddleware,
		s.requestIDMiddleware,
		s.panicRecoveryMiddleware,
		s.rateLimitMiddleware,
		s.loggingMiddleware,
	)
}

// versionMiddleware negotiates the API version from Accept and echoes it back.
func (s *Server) versionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := negotiateAPIVersion(r)
		SetAPIVersionHeader(w, version)
		next.ServeHTTP(w, r.WithContext(withAPIVersion(r.Context(), version)))
	}
}

// requestIDMiddleware keeps a caller supplied UUID or assigns a new one. It
// also stores the server clock so error responses share its timestamps.
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(headerRequestID, id)
		ctx := withClock(withRequestID(r.Context(), id), s.clock)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// rateLimitMiddleware applies the shared token bucket. Time comes from the
// server clock so tests can pin it.
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := s.clock.Now()
		if !s.rateLimiter.AllowN(now, 1) {
			rateLimitRejects.Inc()
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, apperrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				})
			return
		}

		h := w.Header()
		h.Set(headerRateLimitLimit, strconv.Itoa(int(s.config.RateLimit)))
		h.Set(headerRateLimitRemaining, strconv.Itoa(int(s.rateLimiter.TokensAt(now))))
		h.Set(headerRateLimitReset, strconv.FormatInt(now.Add(time.Second).Unix(), 10))

		next.ServeHTTP(w, r)
	}
}

// panicRecoveryMiddleware turns a handler panic into a 500 response.
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			panicRecoveries.Inc()
			slog.Error("panic recovered",
				"error", fmt.Sprint(rec),
				"requestID", RequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal,
				"Internal server error", true, nil)
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs each completed request. Server errors are logged at
// warn, everything else at debug.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		level := slog.LevelDebug
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request completed",
			"requestID", RequestID(r.Context()),
			"apiVersion", APIVersion(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start).String(),
		)
	}
}
