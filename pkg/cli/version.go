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

	"github.com/urfave/cli/v3"
)

// BuildInfo is the output of the version command.
type BuildInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "text",
				Usage:   "Output format (text, json, yaml, table)",
			},
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info := BuildInfo{Name: name, Version: version, Commit: commit, Date: date}

			if cmd.String("format") == "text" {
				_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (commit %s, built %s)\n",
					info.Name, info.Version, info.Commit, info.Date)
				return err
			}

			return writeOutput(ctx, cmd, info)
		},
	}
}
