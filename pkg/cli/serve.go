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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/inference-template/pkg/api"
	"github.com/NVIDIA/inference-template/pkg/config"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Settings file (YAML, JSON or TOML)",
		Sources: cli.EnvVars("INFER_CONFIG"),
	}

	envFileFlag = &cli.StringFlag{
		Name:  "env-file",
		Usage: "Dotenv file with INFER_* settings",
	}
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the inference HTTP API server",
		Description: `Run the HTTP API server in the foreground until SIGINT or SIGTERM.

Routes:
  GET  /                          greeting
  POST /api/predict?model_name=M  prediction
  GET  /health, /ready, /metrics  system endpoints

Settings come from defaults, --config, --env-file and INFER_* variables,
in increasing precedence. --host and --port override all of them.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Bind address (default 0.0.0.0)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (default 8000)",
			},
			&cli.StringFlag{
				Name:  "default-model",
				Usage: "Model name used when a request names none (default cnn)",
			},
			configFlag,
			envFileFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := loadServeSettings(cmd)
			if err != nil {
				return err
			}
			return api.Serve(ctx, settings)
		},
	}
}

// loadServeSettings resolves settings and applies explicit command-line
// overrides on top.
func loadServeSettings(cmd *cli.Command) (*config.Settings, error) {
	settings, err := config.Load(config.Options{
		ConfigFile: cmd.String("config"),
		EnvFile:    cmd.String("env-file"),
	})
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("host") {
		settings.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		settings.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("default-model") {
		settings.DefaultModel = cmd.String("default-model")
	}
	if cmd.IsSet("log-level") {
		settings.LogLevel = cmd.String("log-level")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
