// Copyright (c) 2025, The usdarest Authors.  All rights reserved.
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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/foodref/usdarest/pkg/api"
	"github.com/foodref/usdarest/pkg/logging"
	"github.com/foodref/usdarest/pkg/serializer"
	"github.com/foodref/usdarest/pkg/store"
)

var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log verbosity (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}

	databaseURLFlag = &cli.StringFlag{
		Name:    "database-url",
		Usage:   "PostgreSQL connection string of the SR database",
		Sources: cli.EnvVars(api.EnvDatabaseURL),
	}

	datasetFlag = &cli.StringFlag{
		Name:    "dataset",
		Aliases: []string{"d"},
		Usage:   "Path or http(s) URL of a YAML/JSON dataset document",
		Sources: cli.EnvVars(api.EnvDataset),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(formatFlag.Name))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// sourceFromCmd reads the data source flags.
func sourceFromCmd(cmd *cli.Command) api.Source {
	return api.Source{
		DatabaseURL: cmd.String(databaseURLFlag.Name),
		Dataset:     cmd.String(datasetFlag.Name),
	}
}

// withStore opens the configured store for the duration of fn.
func withStore(ctx context.Context, cmd *cli.Command, fn func(store.Store) error) error {
	st, err := api.OpenStore(ctx, sourceFromCmd(cmd))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

// write serializes v to the --output destination in the --format format.
func write(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String(outputFlag.Name))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}

// requireArgs returns the positional arguments when exactly one per name
// was given.
func requireArgs(cmd *cli.Command, names ...string) ([]string, error) {
	if cmd.Args().Len() != len(names) {
		return nil, fmt.Errorf("%s expects %d argument(s): %s",
			cmd.Name, len(names), strings.Join(names, " "))
	}
	return cmd.Args().Slice(), nil
}
