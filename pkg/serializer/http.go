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

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/inference-template/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// connection is gone, nothing left to send
		slog.Warn("response write failed", "error", err)
	}
}

// HTTPClientUserAgent identifies outbound requests.
const HTTPClientUserAgent = "infer-cli/1.0"

// maxResponseBytes caps how much of a response body is read into memory.
const maxResponseBytes = 10 << 20

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// HTTPClient performs outbound HTTP calls with pooled connections and
// bounded timeouts.
type HTTPClient struct {
	UserAgent string
	Client    *http.Client
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.UserAgent = userAgent
	}
}

// WithTotalTimeout sets the end-to-end request timeout.
func WithTotalTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.Client.Timeout = timeout
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Only applies to the default transport.
func WithInsecureSkipVerify(skip bool) HTTPClientOption {
	return func(c *HTTPClient) {
		if tr, ok := c.Client.Transport.(*http.Transport); ok && tr.TLSClientConfig != nil {
			tr.TLSClientConfig.InsecureSkipVerify = skip
		}
	}
}

// WithClient replaces the underlying *http.Client, e.g. with httptest's client.
func WithClient(client *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		if client != nil {
			c.Client = client
		}
	}
}

// NewHTTPClient creates an HTTPClient with the given options.
func NewHTTPClient(options ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		UserAgent: HTTPClientUserAgent,
		Client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newDefaultHTTPTransport(),
		},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Do sends a request and reads the whole response body.
// Non-2xx statuses are returned as a Response, not an error.
func (c *HTTPClient) Do(ctx context.Context, method, url, contentType string, body io.Reader) (*Response, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if c.Client == nil {
		return nil, fmt.Errorf("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// Get fetches url and returns the body. Any status other than 200 is an error.
func (c *HTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch data: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// PostJSON encodes payload as JSON and posts it to url.
func (c *HTTPClient) PostJSON(ctx context.Context, url string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.Do(ctx, http.MethodPost, url, "application/json", bytes.NewReader(body))
}
