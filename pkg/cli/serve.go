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

	"github.com/urfave/cli/v3"

	"github.com/foodref/usdarest/pkg/api"
	"github.com/foodref/usdarest/pkg/defaults"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the read-only REST API",
		Description: `Serve foods, serving weights, nutrients and food groups over HTTP.

The listen port, rate limit and shutdown timeout are read from PORT,
RATE_LIMIT, RATE_LIMIT_BURST and SHUTDOWN_TIMEOUT_SECONDS.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "page-size",
				Value:   defaults.PageSize,
				Usage:   fmt.Sprintf("Items per list page (1-%d)", defaults.MaxPageSize),
				Sources: cli.EnvVars(api.EnvPageSize),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			size := int(cmd.Int("page-size"))
			if size < 1 || size > defaults.MaxPageSize {
				return fmt.Errorf("page size %d out of range 1-%d", size, defaults.MaxPageSize)
			}
			return api.Run(ctx, api.Config{
				Source:   sourceFromCmd(cmd),
				PageSize: size,
			})
		},
	}
}
