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
	"sync"

	"github.com/foodref/usdarest/pkg/defaults"
	"github.com/foodref/usdarest/pkg/store"
	"golang.org/x/sync/errgroup"
)

// maxViolationsPerCheck caps how many offending keys one check reports.
const maxViolationsPerCheck = 1000

type integrityCheck struct {
	kind store.ViolationKind
	sql  string
}

var integrityChecks = []integrityCheck{
	{store.DanglingFoodGroup, `
		SELECT f.food_id || '/' || f.food_group_id FROM usda_food_desc f
		LEFT JOIN usda_food_group g ON g.food_group_id = f.food_group_id
		WHERE g.food_group_id IS NULL ORDER BY 1 LIMIT $1`},
	{store.DanglingWeightFood, `
		SELECT w.food_id || '/' || w.seq FROM usda_weight w
		LEFT JOIN usda_food_desc f ON f.food_id = w.food_id
		WHERE f.food_id IS NULL ORDER BY 1 LIMIT $1`},
	{store.DanglingMeasurementFood, `
		SELECT m.food_id || '/' || m.nutr_id FROM usda_nutrient_data m
		LEFT JOIN usda_food_desc f ON f.food_id = m.food_id
		WHERE f.food_id IS NULL ORDER BY 1 LIMIT $1`},
	{store.DanglingMeasurementNutrient, `
		SELECT m.food_id || '/' || m.nutr_id FROM usda_nutrient_data m
		LEFT JOIN usda_nutrient_def n ON n.nutr_id = m.nutr_id
		WHERE n.nutr_id IS NULL ORDER BY 1 LIMIT $1`},
	{store.DuplicateWeight, `
		SELECT food_id || '/' || seq FROM usda_weight
		GROUP BY food_id, seq HAVING count(*) > 1 ORDER BY 1 LIMIT $1`},
	{store.DuplicateMeasurement, `
		SELECT food_id || '/' || nutr_id FROM usda_nutrient_data
		GROUP BY food_id, nutr_id HAVING count(*) > 1 ORDER BY 1 LIMIT $1`},
}

var rowCounts = map[string]string{
	"food_groups":  `SELECT count(*) FROM usda_food_group`,
	"foods":        `SELECT count(*) FROM usda_food_desc`,
	"weights":      `SELECT count(*) FROM usda_weight`,
	"nutrients":    `SELECT count(*) FROM usda_nutrient_def`,
	"measurements": `SELECT count(*) FROM usda_nutrient_data`,
}

// Verify runs every integrity check concurrently. Only a query failure is
// returned as an error; violations go into the report.
func (s *Store) Verify(ctx context.Context) (*store.Report, error) {
	report := store.NewReport(Kind)
	var mu sync.Mutex

	scan := &Store{pool: s.pool, queryTimeout: defaults.IntegrityCheckTimeout}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(s.pool.Config().MaxConns))

	for _, c := range integrityChecks {
		g.Go(func() error {
			keys, err := queryMany(gctx, scan, "verify_"+string(c.kind), c.sql, scanKey, maxViolationsPerCheck)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for _, k := range keys {
				report.Add(c.kind, k)
			}
			return nil
		})
	}

	for table, sql := range rowCounts {
		g.Go(func() error {
			n, err := scan.count(gctx, "verify_count", sql)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Rows[table] = n
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Sort()
	return report, nil
}

func scanKey(row scanner) (string, error) {
	var k string
	err := row.Scan(&k)
	return k, err
}
