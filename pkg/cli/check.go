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

	"github.com/urfave/cli/v3"

	"github.com/foodref/usdarest/pkg/defaults"
	"github.com/foodref/usdarest/pkg/store"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify the referential integrity of the dataset",
		Description: `Check that every food references an existing food group, every serving
weight and measurement references an existing food and nutrient, and no
compound key is duplicated.

The report is written in full; the command fails when it lists any violation.`,
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withStore(ctx, cmd, func(st store.Store) error {
				ctx, cancel := context.WithTimeout(ctx, defaults.IntegrityCheckTimeout)
				defer cancel()

				report, err := st.Verify(ctx)
				if err != nil {
					return fmt.Errorf("integrity check failed to run: %w", err)
				}
				slog.Info("integrity check complete",
					"store", report.Store, "violations", len(report.Violations))

				if err := write(ctx, cmd, report); err != nil {
					return err
				}
				return report.Err()
			})
		},
	}
}
