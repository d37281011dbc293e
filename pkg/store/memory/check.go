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
	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/shopspring/decimal"
)

// Check validates a dataset document without building a store.
func Check(ds *nutrition.Dataset) *store.Report {
	r := store.NewReport(Kind)
	r.Rows["food_groups"] = len(ds.FoodGroups)
	r.Rows["foods"] = len(ds.Foods)
	r.Rows["weights"] = len(ds.Weights)
	r.Rows["nutrients"] = len(ds.Nutrients)
	r.Rows["measurements"] = len(ds.Measurements)

	groups := make(map[string]struct{}, len(ds.FoodGroups))
	for _, g := range ds.FoodGroups {
		if _, dup := groups[g.ID]; dup {
			r.Add(store.DuplicatePrimaryKey, "food_group:"+g.ID)
		}
		groups[g.ID] = struct{}{}
	}

	foods := make(map[string]struct{}, len(ds.Foods))
	for _, f := range ds.Foods {
		if _, dup := foods[f.ID]; dup {
			r.Add(store.DuplicatePrimaryKey, "food:"+f.ID)
		}
		foods[f.ID] = struct{}{}
		if _, ok := groups[f.GroupID]; !ok {
			r.Add(store.DanglingFoodGroup, f.ID+"/"+f.GroupID)
		}
		sc := scaleCheck{r: r, key: "food:" + f.ID}
		sc.nullable("refuse", f.Refuse, nutrition.RefuseScale)
		sc.nullable("n_factor", f.NFactor, nutrition.FactorScale)
		sc.nullable("pro_factor", f.ProFactor, nutrition.FactorScale)
		sc.nullable("fat_factor", f.FatFactor, nutrition.FactorScale)
		sc.nullable("cho_factor", f.ChoFactor, nutrition.FactorScale)
	}

	nutrients := make(map[string]struct{}, len(ds.Nutrients))
	for _, n := range ds.Nutrients {
		if _, dup := nutrients[n.ID]; dup {
			r.Add(store.DuplicatePrimaryKey, "nutrient:"+n.ID)
		}
		nutrients[n.ID] = struct{}{}
		sc := scaleCheck{r: r, key: "nutrient:" + n.ID}
		sc.value("sr_order", n.SROrder, nutrition.SROrderScale)
	}

	weights := make(map[nutrition.WeightKey]struct{}, len(ds.Weights))
	for _, w := range ds.Weights {
		k := w.Key()
		if _, dup := weights[k]; dup {
			r.Add(store.DuplicateWeight, k.String())
		}
		weights[k] = struct{}{}
		if _, ok := foods[w.FoodID]; !ok {
			r.Add(store.DanglingWeightFood, k.String())
		}
		sc := scaleCheck{r: r, key: "weight:" + k.String()}
		sc.value("amount", w.Amount, nutrition.AmountScale)
		sc.value("grams", w.Grams, nutrition.GramsScale)
		sc.nullable("num_data_pts", w.NumDataPts, nutrition.CountScale)
		sc.nullable("std_dev", w.StdDev, nutrition.StdDevScale)
	}

	measurements := make(map[nutrition.MeasurementKey]struct{}, len(ds.Measurements))
	for _, m := range ds.Measurements {
		k := m.Key()
		if _, dup := measurements[k]; dup {
			r.Add(store.DuplicateMeasurement, k.String())
		}
		measurements[k] = struct{}{}
		if _, ok := foods[m.FoodID]; !ok {
			r.Add(store.DanglingMeasurementFood, k.String())
		}
		if _, ok := nutrients[m.NutrID]; !ok {
			r.Add(store.DanglingMeasurementNutrient, k.String())
		}
		sc := scaleCheck{r: r, key: "measurement:" + k.String()}
		sc.value("nutr_value", m.Value, nutrition.ValueScale)
		sc.value("num_data_pts", m.NumDataPts, nutrition.CountScale)
		sc.nullable("std_error", m.StdError, nutrition.ValueScale)
		sc.nullable("number_studies", m.NumberStudies, nutrition.CountScale)
		sc.nullable("min_value", m.MinValue, nutrition.ValueScale)
		sc.nullable("max_value", m.MaxValue, nutrition.ValueScale)
		sc.nullable("degrees_freedom", m.DegreesFreedom, nutrition.CountScale)
		sc.nullable("low_error_bound", m.LowErrorBound, nutrition.ValueScale)
		sc.nullable("upper_error_bound", m.UpperErrorBound, nutrition.ValueScale)
	}

	r.Sort()
	return r
}

// scaleCheck reports numeric columns of one record that do not fit the
// column scale. Trailing zeros are not counted: 5.00 fits scale 1.
type scaleCheck struct {
	r   *store.Report
	key string
}

func (c scaleCheck) value(column string, d decimal.Decimal, scale int32) {
	if !d.Truncate(scale).Equal(d) {
		c.r.Add(store.ExcessPrecision, c.key+":"+column)
	}
}

func (c scaleCheck) nullable(column string, d *decimal.Decimal, scale int32) {
	if d != nil {
		c.value(column, *d, scale)
	}
}
