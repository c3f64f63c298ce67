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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/inference-template/pkg/config"
	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
	"github.com/NVIDIA/inference-template/pkg/logging"
	"github.com/NVIDIA/inference-template/pkg/prediction"
	"github.com/NVIDIA/inference-template/pkg/serializer"
	"github.com/NVIDIA/inference-template/pkg/server"
)

const (
	name           = "inferd"
	serviceName    = "inference-template"
	versionDefault = "dev"

	// Greeting is the body of GET /.
	Greeting = "Hello 🐍 🚀 ✨"

	// PredictPath is the prediction route.
	PredictPath = "/api/predict"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/inference-template/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application routes for the given settings.
func Routes(settings *config.Settings) map[string]http.HandlerFunc {
	h := prediction.NewHandler(
		prediction.WithDefaultModel(settings.DefaultModel),
		prediction.WithMaxBodyBytes(settings.MaxBodyBytes),
	)

	return map[string]http.HandlerFunc{
		"/":         HandleRoot,
		PredictPath: h.HandlePredict,
	}
}

// NewServer builds the API server. Routes and configuration are fixed here.
func NewServer(settings *config.Settings) *server.Server {
	return server.New(
		server.WithConfig(settings.ServerConfig()),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(settings)),
	)
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
func Serve(ctx context.Context, settings *config.Settings) error {
	logging.SetDefaultStructuredLoggerWithLevel(serviceName, version, settings.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := NewServer(settings).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// HandleRoot serves the greeting at "/" and 404 for any unrouted path.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		server.WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			"Not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet, http.MethodHead},
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, Greeting)
}

// Version returns the build version, commit and date.
func Version() (v, c, d string) {
	return version, commit, date
}
