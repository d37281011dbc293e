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

	"github.com/foodref/usdarest/pkg/derive"
	cerrors "github.com/foodref/usdarest/pkg/errors"
	"github.com/foodref/usdarest/pkg/resource"
	"github.com/foodref/usdarest/pkg/store"
)

func foodCmd() *cli.Command {
	return &cli.Command{
		Name:      "food",
		Usage:     "Show a food description",
		ArgsUsage: "FOOD_ID",
		Flags:     []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "FOOD_ID")
			if err != nil {
				return err
			}
			return withStore(ctx, cmd, func(st store.Store) error {
				f, ok, err := st.Food(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to read food %s: %w", args[0], err)
				}
				if !ok {
					return cerrors.New(cerrors.ErrCodeNotFound, "food "+args[0]+" not found")
				}
				return write(ctx, cmd, resource.NewFoodDetail(*f))
			})
		},
	}
}

func weightsCmd() *cli.Command {
	return &cli.Command{
		Name:      "weights",
		Usage:     "List the serving measures of a food",
		ArgsUsage: "FOOD_ID",
		Flags:     []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "FOOD_ID")
			if err != nil {
				return err
			}
			return withStore(ctx, cmd, func(st store.Store) error {
				if _, ok, err := st.Food(ctx, args[0]); err != nil {
					return fmt.Errorf("failed to read food %s: %w", args[0], err)
				} else if !ok {
					return cerrors.New(cerrors.ErrCodeNotFound, "food "+args[0]+" not found")
				}

				ws, err := st.ServingWeights(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to read serving weights of %s: %w", args[0], err)
				}
				return write(ctx, cmd, resource.SeqDetails(resource.Map(ws, resource.NewSeqDetail)))
			})
		},
	}
}

func quantityCmd() *cli.Command {
	return &cli.Command{
		Name:      "quantity",
		Usage:     "Compute the amount of a nutrient in one serving of a food",
		ArgsUsage: "FOOD_ID SEQ NUTR_ID",
		Description: `Scale the per-100 g nutrient value to the gram weight of the serving:

  quantity = value * grams / 100`,
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := requireArgs(cmd, "FOOD_ID", "SEQ", "NUTR_ID")
			if err != nil {
				return err
			}
			return withStore(ctx, cmd, func(st store.Store) error {
				q, err := derive.NewCalculator(st).Compute(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				return write(ctx, cmd, resource.NewNutrientQuantity(*q))
			})
		},
	}
}
