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
	"time"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/store"
)

func (s *Store) Kind() string { return Kind }

// Ping always succeeds; the data is already in memory.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (s *Store) Close() {}

func (s *Store) Measurement(_ context.Context, foodID, nutrID string) (*nutrition.Measurement, bool, error) {
	defer store.ObserveQuery(Kind, "measurement", time.Now())
	m, ok := s.measurements[nutrition.MeasurementKey{FoodID: foodID, NutrID: nutrID}]
	if !ok {
		store.RecordMiss(Kind, "measurement")
		return nil, false, nil
	}
	return &m, true, nil
}

func (s *Store) ServingWeight(_ context.Context, foodID, seq string) (*nutrition.ServingWeight, bool, error) {
	defer store.ObserveQuery(Kind, "serving_weight", time.Now())
	w, ok := s.weights[nutrition.WeightKey{FoodID: foodID, Seq: seq}]
	if !ok {
		store.RecordMiss(Kind, "serving_weight")
		return nil, false, nil
	}
	return &w, true, nil
}

func (s *Store) FoodGroups(_ context.Context) ([]nutrition.FoodGroup, error) {
	return append([]nutrition.FoodGroup(nil), s.groups...), nil
}

func (s *Store) FoodGroup(_ context.Context, id string) (*nutrition.FoodGroup, bool, error) {
	i, ok := s.groupIdx[id]
	if !ok {
		store.RecordMiss(Kind, "food_group")
		return nil, false, nil
	}
	g := s.groups[i]
	return &g, true, nil
}

func (s *Store) Foods(_ context.Context, page store.Page) ([]nutrition.Food, int, error) {
	rows := store.Slice(s.foods, page)
	return append([]nutrition.Food(nil), rows...), len(s.foods), nil
}

func (s *Store) Food(_ context.Context, id string) (*nutrition.Food, bool, error) {
	defer store.ObserveQuery(Kind, "food", time.Now())
	i, ok := s.foodIdx[id]
	if !ok {
		store.RecordMiss(Kind, "food")
		return nil, false, nil
	}
	f := s.foods[i]
	return &f, true, nil
}

func (s *Store) ServingWeights(_ context.Context, foodID string) ([]nutrition.ServingWeight, error) {
	return append([]nutrition.ServingWeight{}, s.weightsByFood[foodID]...), nil
}

func (s *Store) Nutrients(_ context.Context, page store.Page) ([]nutrition.NutrientDef, int, error) {
	rows := store.Slice(s.nutrients, page)
	return append([]nutrition.NutrientDef(nil), rows...), len(s.nutrients), nil
}

func (s *Store) Nutrient(_ context.Context, id string) (*nutrition.NutrientDef, bool, error) {
	i, ok := s.nutrientIdx[id]
	if !ok {
		store.RecordMiss(Kind, "nutrient")
		return nil, false, nil
	}
	n := s.nutrients[i]
	return &n, true, nil
}

func (s *Store) MeasuredNutrients(_ context.Context, foodID string, page store.Page) ([]nutrition.NutrientDef, int, error) {
	idx := s.measuredByFood[foodID]
	window := store.Slice(idx, page)
	out := make([]nutrition.NutrientDef, 0, len(window))
	for _, i := range window {
		out = append(out, s.nutrients[i])
	}
	return out, len(idx), nil
}

// Verify re-runs the integrity check over the loaded data. A store built
// by New always passes; the report still carries the row counts.
func (s *Store) Verify(ctx context.Context) (*store.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := &nutrition.Dataset{
		FoodGroups: s.groups,
		Foods:      s.foods,
		Nutrients:  s.nutrients,
	}
	for _, ws := range s.weightsByFood {
		ds.Weights = append(ds.Weights, ws...)
	}
	for _, m := range s.measurements {
		ds.Measurements = append(ds.Measurements, m)
	}
	return Check(ds), nil
}
