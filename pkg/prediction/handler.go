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

package prediction

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/inference-template/pkg/defaults"
	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
	"github.com/NVIDIA/inference-template/pkg/serializer"
	"github.com/NVIDIA/inference-template/pkg/server"
)

// ModelNameParam is the query parameter naming the model.
const ModelNameParam = "model_name"

// Option configures a Handler.
type Option func(*Handler)

// WithDefaultModel sets the model name used when the request names none.
func WithDefaultModel(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.defaultModel = name
		}
	}
}

// WithMaxBodyBytes caps the request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// Handler serves prediction requests. It holds no mutable state and is safe
// for concurrent use.
type Handler struct {
	defaultModel string
	maxBodyBytes int64
}

// NewHandler returns a Handler with the given options applied.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		defaultModel: DefaultModelName,
		maxBodyBytes: defaults.MaxRequestBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DefaultModel returns the model name used when a request names none.
func (h *Handler) DefaultModel() string {
	return h.defaultModel
}

// Predict validates an already decoded payload and runs the model. An empty
// modelName selects the handler's default model.
func (h *Handler) Predict(payload map[string]any, modelName string) (*Result, error) {
	req, err := Validate(payload)
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = h.defaultModel
	}
	res := Predict(*req, modelName)
	return &res, nil
}

// modelFromQuery returns the model_name parameter when present, even if it is
// empty, and the default model otherwise.
func (h *Handler) modelFromQuery(r *http.Request) string {
	q := r.URL.Query()
	if !q.Has(ModelNameParam) {
		return h.defaultModel
	}
	return q.Get(ModelNameParam)
}

// HandlePredict handles POST /api/predict?model_name=NAME.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		predictionDuration.Observe(time.Since(start).Seconds())
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	req, err := Decode(body, r.Header.Get("Content-Type"))
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	res := Predict(*req, h.modelFromQuery(r))
	predictionsTotal.WithLabelValues(outcomeOK).Inc()

	serializer.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		predictionsTotal.WithLabelValues(outcomeInvalid).Inc()
		slog.Debug("prediction payload rejected", "error", verr.Error())
		server.WriteErrorFromErr(w, r, verr, "Request validation failed", nil)
		return
	}

	predictionsTotal.WithLabelValues(outcomeError).Inc()

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeInvalidRequest,
			"Request body too large", false, map[string]any{
				"limit": tooLarge.Limit,
			})
		return
	}

	server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
		"Failed to read request body", false, map[string]any{
			"error": err.Error(),
		})
}
