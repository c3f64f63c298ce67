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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
	"github.com/NVIDIA/inference-template/pkg/logging"
	"github.com/NVIDIA/inference-template/pkg/serializer"
)

const (
	name           = "infer"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage: `Output destination: file path, or ConfigMap URI (cm://namespace/name).
	Defaults to stdout.`,
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("INFER_LOG_LEVEL"),
	}
)

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err)) //nolint:gocritic // stop is called explicitly above
	}
}

// exitCode is 2 for rejected input, 3 when the prediction server could not be
// reached in time, and 1 otherwise.
func exitCode(err error) int {
	switch apperrors.CodeOf(err) {
	case "":
		return 0
	case apperrors.ErrCodeValidation, apperrors.ErrCodeInvalidRequest:
		return 2
	case apperrors.ErrCodeTimeout, apperrors.ErrCodeUnavailable:
		return 3
	default:
		return 1
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "inference-template CLI",
		Version:               version,
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`infer - client and server for the inference-template service

Version: %s
Commit:  %s
Built:   %s

serve   - run the HTTP API server
predict - compute a prediction locally or against a running server`, version, commit, date),
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			predictCmd(),
			versionCmd(),
		},
	}
}

// parseOutputFormat returns the --format value, rejecting unknown formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeOutput serializes data to the --output destination.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}
