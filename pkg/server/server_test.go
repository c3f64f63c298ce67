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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

func TestNew(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithHandler(routes))
	if s == nil {
		t.Fatal("expected server instance, got nil")
		return
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}

	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}

	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}

	if s.httpServer.ErrorLog == nil {
		t.Error("expected http server error log to be bridged to slog")
	}
}

func TestHealthEndpoint(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := New(WithClock(clocktesting.NewFakePassiveClock(now)), WithVersion("1.2.3"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.Timestamp.Equal(now))
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Empty(t, resp.Reason)
}

func TestHealthEndpointMethodNotAllowed(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "ready state",
			ready:          true,
			expectedStatus: http.StatusOK,
			expectedBody:   "ready",
		},
		{
			name:           "not ready state",
			ready:          false,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "not_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			w := httptest.NewRecorder()

			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp.Status)
		})
	}
}

func TestRateLimiting(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	cfg := NewConfig()
	cfg.RateLimit = 1      // 1 req/sec
	cfg.RateLimitBurst = 1 // burst of 1
	cfg.Handlers = routes

	s := New(WithConfig(cfg))

	handler := s.withMiddleware(s.config.Handlers["/test"])

	req1 := httptest.NewRequest(http.MethodGet, "/test", nil)
	w1 := httptest.NewRecorder()
	handler(w1, req1)

	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed with status 200, got %d", w1.Code)
	}

	// bucket is empty now
	req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
	w2 := httptest.NewRecorder()
	handler(w2, req2)

	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected rate limit error with status 429, got %d", w2.Code)
	}

	if w2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	assert.True(t, resp.Retryable)
}

func TestPanicRecovery(t *testing.T) {
	panicHandler := func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic")
	}

	s := New(WithHandler(map[string]http.HandlerFunc{"/panic": panicHandler}))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()

	s.withMiddleware(panicHandler)(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d after panic recovery, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0 // any free port
	cfg.ShutdownTimeout = 100 * time.Millisecond

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	require.Eventually(t, s.isReady, time.Second, 10*time.Millisecond,
		"server should become ready once listening")

	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("shutdown timed out")
	}

	assert.False(t, s.isReady(), "server should not be ready after shutdown")
}

func TestStartListenError(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "256.256.256.256"
	cfg.Port = 1

	s := New(WithConfig(cfg))

	err := s.Start(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.False(t, s.isReady())
}

func TestDefaultRootHandler(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/api/v1/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithName("test-server"), WithVersion("1.2.3"), WithHandler(routes))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler := s.config.Handlers["/"]
	if handler == nil {
		t.Fatal("expected default root handler to be created")
	}

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body struct {
		Service string   `json:"service"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "test-server", body.Service)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, []string{"/api/v1/test"}, body.Routes)
}

func TestDefaultRootHandlerMethodNotAllowed(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()

	s.config.Handlers["/"](w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestDefaultRootHandlerUnknownPath(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	s.config.Handlers["/"](w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	customCalled := false
	routes := map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			customCalled = true
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithHandler(routes))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.config.Handlers["/"](w, req)

	if !customCalled {
		t.Error("expected custom root handler to be called, not default")
	}
}

func TestRoutesThroughMux(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/echo": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		},
	}
	s := New(WithHandler(routes))
	s.setReady(true)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/echo", http.StatusOK, "ok"},
		{"/health", http.StatusOK, "healthy"},
		{"/ready", http.StatusOK, "ready"},
		{"/metrics", http.StatusOK, "infer_http_requests_total"},
		{"/does-not-exist", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, ts.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := ts.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.True(t, strings.Contains(string(body), tt.wantBody),
				"body %q should contain %q", string(body), tt.wantBody)
		})
	}
}

func TestWithName(t *testing.T) {
	customName := "custom-api-server"
	s := New(WithName(customName))

	if s.config.Name != customName {
		t.Errorf("expected server name %s, got %s", customName, s.config.Name)
	}
}

func TestWithHandler(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/api/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithHandler(routes))

	if _, exists := s.config.Handlers["/api/test"]; !exists {
		t.Error("expected /api/test handler to exist")
	}

	if _, exists := s.config.Handlers["/"]; !exists {
		t.Error("expected default root handler to be created")
	}
}

func TestWithConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "test-server"
	cfg.Port = 9090
	cfg.RateLimit = 500

	s := New(WithConfig(cfg))

	if s.config.Name != "test-server" {
		t.Errorf("expected name test-server, got %s", s.config.Name)
	}

	if s.config.Port != 9090 {
		t.Errorf("expected port 9090, got %d", s.config.Port)
	}

	if s.config.RateLimit != 500 {
		t.Errorf("expected rate limit 500, got %v", s.config.RateLimit)
	}

	if s.httpServer.Addr != "0.0.0.0:9090" {
		t.Errorf("expected addr 0.0.0.0:9090, got %s", s.httpServer.Addr)
	}
}

func TestWithConfigNilKeepsDefaults(t *testing.T) {
	s := New(WithConfig(nil))
	assert.Equal(t, "server", s.config.Name)
}

func TestDefaultServerName(t *testing.T) {
	s := New()

	if s.config.Name != "server" {
		t.Errorf("expected default name 'server', got %s", s.config.Name)
	}
}
