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

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/jackc/pgx/v5"
)

// queryOne runs a single-row query. pgx.ErrNoRows is reported as absent.
func queryOne[T any](ctx context.Context, s *Store, name, sql string, scan func(scanner) (T, error), args ...any) (*T, bool, error) {
	defer store.ObserveQuery(Kind, name, time.Now())
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	v, err := scan(s.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		store.RecordMiss(Kind, name)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, queryError(name, err)
	}
	return &v, true, nil
}

// queryMany runs a multi-row query and scans every row.
func queryMany[T any](ctx context.Context, s *Store, name, sql string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	defer store.ObserveQuery(Kind, name, time.Now())
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, queryError(name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, queryError(name, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(name, err)
	}
	return out, nil
}

func (s *Store) count(ctx context.Context, name, sql string, args ...any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var n int
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, queryError(name, err)
	}
	return n, nil
}

// limitOffset converts a page into LIMIT/OFFSET arguments. LIMIT NULL
// means no limit.
func limitOffset(p store.Page) (*int, int) {
	if p.Unbounded() {
		return nil, 0
	}
	size := p.Size
	return &size, p.Offset()
}

// Measurement and ServingWeight use LIMIT 1 so a duplicated compound key
// still yields a single row; Verify reports the duplicate.

func (s *Store) Measurement(ctx context.Context, foodID, nutrID string) (*nutrition.Measurement, bool, error) {
	return queryOne(ctx, s, "measurement",
		`SELECT `+measurementColumns+` FROM usda_nutrient_data
		 WHERE food_id = $1 AND nutr_id = $2 LIMIT 1`,
		scanMeasurement, foodID, nutrID)
}

func (s *Store) ServingWeight(ctx context.Context, foodID, seq string) (*nutrition.ServingWeight, bool, error) {
	return queryOne(ctx, s, "serving_weight",
		`SELECT `+weightColumns+` FROM usda_weight
		 WHERE food_id = $1 AND seq = $2 LIMIT 1`,
		scanWeight, foodID, seq)
}

func (s *Store) FoodGroups(ctx context.Context) ([]nutrition.FoodGroup, error) {
	return queryMany(ctx, s, "food_groups",
		`SELECT `+foodGroupColumns+` FROM usda_food_group ORDER BY food_group_id`,
		scanFoodGroup)
}

func (s *Store) FoodGroup(ctx context.Context, id string) (*nutrition.FoodGroup, bool, error) {
	return queryOne(ctx, s, "food_group",
		`SELECT `+foodGroupColumns+` FROM usda_food_group WHERE food_group_id = $1`,
		scanFoodGroup, id)
}

func (s *Store) Foods(ctx context.Context, page store.Page) ([]nutrition.Food, int, error) {
	total, err := s.count(ctx, "foods_count", `SELECT count(*) FROM usda_food_desc`)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := limitOffset(page)
	foods, err := queryMany(ctx, s, "foods",
		`SELECT `+foodColumns+` FROM usda_food_desc ORDER BY food_id LIMIT $1 OFFSET $2`,
		scanFood, limit, offset)
	return foods, total, err
}

func (s *Store) Food(ctx context.Context, id string) (*nutrition.Food, bool, error) {
	return queryOne(ctx, s, "food",
		`SELECT `+foodColumns+` FROM usda_food_desc WHERE food_id = $1`,
		scanFood, id)
}

func (s *Store) ServingWeights(ctx context.Context, foodID string) ([]nutrition.ServingWeight, error) {
	return queryMany(ctx, s, "serving_weights",
		`SELECT `+weightColumns+` FROM usda_weight WHERE food_id = $1 ORDER BY seq`,
		scanWeight, foodID)
}

func (s *Store) Nutrients(ctx context.Context, page store.Page) ([]nutrition.NutrientDef, int, error) {
	total, err := s.count(ctx, "nutrients_count", `SELECT count(*) FROM usda_nutrient_def`)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := limitOffset(page)
	nutrients, err := queryMany(ctx, s, "nutrients",
		`SELECT `+nutrientColumns+` FROM usda_nutrient_def
		 ORDER BY sr_order, nutr_id LIMIT $1 OFFSET $2`,
		scanNutrient, limit, offset)
	return nutrients, total, err
}

func (s *Store) Nutrient(ctx context.Context, id string) (*nutrition.NutrientDef, bool, error) {
	return queryOne(ctx, s, "nutrient",
		`SELECT `+nutrientColumns+` FROM usda_nutrient_def WHERE nutr_id = $1`,
		scanNutrient, id)
}

func (s *Store) MeasuredNutrients(ctx context.Context, foodID string, page store.Page) ([]nutrition.NutrientDef, int, error) {
	total, err := s.count(ctx, "measured_nutrients_count",
		`SELECT count(DISTINCT nutr_id) FROM usda_nutrient_data WHERE food_id = $1`, foodID)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := limitOffset(page)
	nutrients, err := queryMany(ctx, s, "measured_nutrients",
		`SELECT `+nutrientColumns+` FROM usda_nutrient_def
		 WHERE nutr_id IN (SELECT nutr_id FROM usda_nutrient_data WHERE food_id = $1)
		 ORDER BY sr_order, nutr_id LIMIT $2 OFFSET $3`,
		scanNutrient, foodID, limit, offset)
	return nutrients, total, err
}
