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

package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/serializer"
	"github.com/foodref/usdarest/pkg/store"
)

// Kind is the store kind reported in metrics and integrity reports.
const Kind = "memory"

// Store is an immutable, validated, in-memory dataset.
type Store struct {
	groups    []nutrition.FoodGroup
	foods     []nutrition.Food
	nutrients []nutrition.NutrientDef

	groupIdx    map[string]int
	foodIdx     map[string]int
	nutrientIdx map[string]int

	weights       map[nutrition.WeightKey]nutrition.ServingWeight
	weightsByFood map[string][]nutrition.ServingWeight

	measurements   map[nutrition.MeasurementKey]nutrition.Measurement
	measuredByFood map[string][]int // indexes into nutrients, in nutrient order

	rows map[string]int
}

var _ store.Store = (*Store)(nil)

// New builds a store from ds. It fails when ds violates referential
// integrity or key uniqueness; the error lists the violations.
func New(ds *nutrition.Dataset) (*Store, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is nil")
	}

	report := Check(ds)
	if err := report.Err(); err != nil {
		return nil, err
	}

	s := &Store{
		groups:         append([]nutrition.FoodGroup(nil), ds.FoodGroups...),
		foods:          append([]nutrition.Food(nil), ds.Foods...),
		nutrients:      append([]nutrition.NutrientDef(nil), ds.Nutrients...),
		groupIdx:       make(map[string]int, len(ds.FoodGroups)),
		foodIdx:        make(map[string]int, len(ds.Foods)),
		nutrientIdx:    make(map[string]int, len(ds.Nutrients)),
		weights:        make(map[nutrition.WeightKey]nutrition.ServingWeight, len(ds.Weights)),
		weightsByFood:  make(map[string][]nutrition.ServingWeight),
		measurements:   make(map[nutrition.MeasurementKey]nutrition.Measurement, len(ds.Measurements)),
		measuredByFood: make(map[string][]int),
		rows:           report.Rows,
	}

	sort.Slice(s.groups, func(i, j int) bool { return s.groups[i].ID < s.groups[j].ID })
	sort.Slice(s.foods, func(i, j int) bool { return s.foods[i].ID < s.foods[j].ID })
	sort.Slice(s.nutrients, func(i, j int) bool { return nutrientLess(s.nutrients[i], s.nutrients[j]) })

	for i, g := range s.groups {
		s.groupIdx[g.ID] = i
	}
	for i, f := range s.foods {
		s.foodIdx[f.ID] = i
	}
	for i, n := range s.nutrients {
		s.nutrientIdx[n.ID] = i
	}

	for _, w := range ds.Weights {
		s.weights[w.Key()] = w
		s.weightsByFood[w.FoodID] = append(s.weightsByFood[w.FoodID], w)
	}
	for _, ws := range s.weightsByFood {
		sort.Slice(ws, func(i, j int) bool { return seqLess(ws[i].Seq, ws[j].Seq) })
	}

	for _, m := range ds.Measurements {
		s.measurements[m.Key()] = m
		s.measuredByFood[m.FoodID] = append(s.measuredByFood[m.FoodID], s.nutrientIdx[m.NutrID])
	}
	for _, idx := range s.measuredByFood {
		sort.Ints(idx)
	}

	return s, nil
}

// Load reads a dataset document from a local path or http(s) URL and
// builds a store from it.
func Load(ctx context.Context, path string) (*Store, error) {
	start := time.Now()
	ds, err := serializer.FromFile[nutrition.Dataset](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	s, err := New(ds)
	if err != nil {
		return nil, err
	}

	slog.Debug("dataset loaded",
		"path", path,
		"foods", len(s.foods),
		"measurements", len(s.measurements),
		"duration", time.Since(start))
	return s, nil
}

// nutrientLess orders nutrients the way SR reports do: by sr_order, then id.
func nutrientLess(a, b nutrition.NutrientDef) bool {
	if c := a.SROrder.Cmp(b.SROrder); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

// seqLess orders serving sequence numbers numerically when both parse.
func seqLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
