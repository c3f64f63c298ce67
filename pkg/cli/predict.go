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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/inference-template/pkg/api"
	"github.com/NVIDIA/inference-template/pkg/defaults"
	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
	"github.com/NVIDIA/inference-template/pkg/prediction"
	"github.com/NVIDIA/inference-template/pkg/serializer"
	"github.com/NVIDIA/inference-template/pkg/server"
)

func predictCmd() *cli.Command {
	return &cli.Command{
		Name:                  "predict",
		EnableShellCompletion: true,
		Usage:                 "Compute a prediction for an x, y pair",
		Description: `Validate an {x, y} payload and compute the prediction.

Without --server the prediction runs in-process through the same validation
as the HTTP endpoint. With --server the payload is posted to
<server>/api/predict and the server's answer is printed.

The payload comes from -x and -y, from --input, or both (flags win):

  infer predict -x 4 -y 2
  infer predict -x "4.0" -y "2.0" --model random_model --server http://localhost:8000
  infer predict --input payload.yaml --output cm://default/prediction --format yaml

--input supports file paths, HTTP/HTTPS URLs and ConfigMap URIs (cm://namespace/name).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "x",
				Usage: "First operand; numeric strings such as 4.0 are accepted",
			},
			&cli.StringFlag{
				Name:  "y",
				Usage: "Second operand",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   fmt.Sprintf("Model name to label the result with (default %q)", prediction.DefaultModelName),
			},
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Base URL of a running server, e.g. http://localhost:8000",
				Sources: cli.EnvVars("INFER_SERVER"),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage:   "Payload source: file path, HTTP/HTTPS URL, or ConfigMap URI (cm://namespace/name)",
			},
			&cli.StringFlag{
				Name:    "kubeconfig",
				Usage:   "Kubeconfig for cm:// input (default: KUBECONFIG, ~/.kube/config, in-cluster)",
				Sources: cli.EnvVars("KUBECONFIG"),
			},
			&cli.BoolFlag{
				Name:  "insecure-skip-verify",
				Usage: "Skip TLS verification when talking to --server",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			payload, err := buildPayloadFromCmd(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIPredictTimeout)
			defer cancel()

			var res *prediction.Result
			if base := cmd.String("server"); base != "" {
				client := serializer.NewHTTPClient(
					serializer.WithUserAgent(name+"/"+version),
					serializer.WithTotalTimeout(defaults.CLIPredictTimeout),
					serializer.WithInsecureSkipVerify(cmd.Bool("insecure-skip-verify")),
				)
				res, err = remotePredict(ctx, client, base, cmd.String("model"), payload)
			} else {
				res, err = prediction.NewHandler().Predict(payload, cmd.String("model"))
			}
			if err != nil {
				return fmt.Errorf("prediction failed: %w", err)
			}

			return writeOutput(ctx, cmd, res)
		},
	}
}

// buildPayloadFromCmd assembles the raw payload from --input and the -x/-y
// flags. Values stay raw so validation matches the HTTP endpoint.
func buildPayloadFromCmd(cmd *cli.Command) (map[string]any, error) {
	payload := map[string]any{}

	if in := cmd.String("input"); in != "" {
		loaded, err := serializer.FromFileWithKubeconfig[map[string]any](in, cmd.String("kubeconfig"))
		if err != nil {
			return nil, fmt.Errorf("failed to load payload from %q: %w", in, err)
		}
		if loaded != nil {
			for k, v := range *loaded {
				payload[k] = v
			}
		}
	}

	for _, key := range []string{"x", "y"} {
		if cmd.IsSet(key) {
			payload[key] = cmd.String(key)
		}
	}

	return payload, nil
}

// remotePredict posts payload to the server's prediction route.
func remotePredict(ctx context.Context, client *serializer.HTTPClient, base, model string, payload map[string]any) (*prediction.Result, error) {
	endpoint, err := predictURL(base, model)
	if err != nil {
		return nil, err
	}

	slog.Debug("posting prediction", "url", endpoint)

	resp, err := client.PostJSON(ctx, endpoint, payload)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "prediction server timed out", err)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "prediction server unreachable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var res prediction.Result
	if err := json.Unmarshal(resp.Body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode server response: %w", err)
	}
	return &res, nil
}

// predictURL joins the base URL with the prediction route and model query.
func predictURL(base, model string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + api.PredictPath)
	if err != nil {
		return "", fmt.Errorf("invalid server URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid server URL %q: scheme must be http or https", base)
	}
	if model != "" {
		q := u.Query()
		q.Set(prediction.ModelNameParam, model)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// remoteError converts a non-200 server answer into an error. Validation
// failures are rebuilt as *prediction.ValidationError.
func remoteError(resp *serializer.Response) error {
	var errResp server.ErrorResponse
	if err := json.Unmarshal(resp.Body, &errResp); err != nil || errResp.Code == "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(resp.Body)))
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var body struct {
			Details struct {
				Detail []prediction.FieldError `json:"detail"`
			} `json:"details"`
		}
		if err := json.Unmarshal(resp.Body, &body); err == nil && len(body.Details.Detail) > 0 {
			return &prediction.ValidationError{Errors: body.Details.Detail}
		}
	}

	return fmt.Errorf("server returned %d %s: %s (request %s)",
		resp.StatusCode, errResp.Code, errResp.Message, errResp.RequestID)
}
