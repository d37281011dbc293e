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
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func testDataset() *nutrition.Dataset {
	return &nutrition.Dataset{
		FoodGroups: []nutrition.FoodGroup{
			{ID: "0100", Description: "Dairy and Egg Products"},
		},
		Foods: []nutrition.Food{
			{ID: "01002", GroupID: "0100", ShortDesc: "BUTTER,WHIPPED,W/ SALT"},
			{ID: "01001", GroupID: "0100", ShortDesc: "BUTTER,WITH SALT", Refuse: ptr.To(decimal.Zero)},
		},
		Weights: []nutrition.ServingWeight{
			{FoodID: "01001", Seq: "2", Amount: decimal.NewFromInt(1), MeasureDesc: "tbsp", Grams: decimal.RequireFromString("14.2")},
			{FoodID: "01001", Seq: "1", Amount: decimal.NewFromInt(1), MeasureDesc: "pat", Grams: decimal.RequireFromString("5.0")},
		},
		Nutrients: []nutrition.NutrientDef{
			{ID: "203", Description: "Protein", SROrder: decimal.NewFromInt(600)},
			{ID: "255", Description: "Water", SROrder: decimal.NewFromInt(100)},
			{ID: "601", Description: "Cholesterol", SROrder: decimal.NewFromInt(15700)},
		},
		Measurements: []nutrition.Measurement{
			{FoodID: "01001", NutrID: "203", Value: decimal.RequireFromString("0.850")},
			{FoodID: "01001", NutrID: "255", Value: decimal.RequireFromString("15.870")},
			{FoodID: "01002", NutrID: "203", Value: decimal.RequireFromString("0.490")},
		},
	}
}

func TestNewOrdersAndIndexes(t *testing.T) {
	ctx := context.Background()
	s, err := New(testDataset())
	require.NoError(t, err)

	foods, total, err := s.Foods(ctx, store.All)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "01001", foods[0].ID)

	nutrients, _, err := s.Nutrients(ctx, store.All)
	require.NoError(t, err)
	assert.Equal(t, []string{"255", "203", "601"}, nutrientIDs(nutrients))

	weights, err := s.ServingWeights(ctx, "01001")
	require.NoError(t, err)
	require.Len(t, weights, 2)
	assert.Equal(t, "1", weights[0].Seq)
}

func TestLookups(t *testing.T) {
	ctx := context.Background()
	s, err := New(testDataset())
	require.NoError(t, err)

	m, ok, err := s.Measurement(ctx, "01001", "203")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, m.Value.Equal(decimal.RequireFromString("0.85")))

	w, ok, err := s.ServingWeight(ctx, "01001", "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "5", w.Grams.String())

	tests := []struct {
		name string
		find func() (bool, error)
	}{
		{"measurement for existing pair without row", func() (bool, error) {
			_, ok, err := s.Measurement(ctx, "01001", "601")
			return ok, err
		}},
		{"measurement for unknown food", func() (bool, error) {
			_, ok, err := s.Measurement(ctx, "99999", "203")
			return ok, err
		}},
		{"weight for unknown seq", func() (bool, error) {
			_, ok, err := s.ServingWeight(ctx, "01001", "9")
			return ok, err
		}},
		{"unknown food", func() (bool, error) {
			_, ok, err := s.Food(ctx, "99999")
			return ok, err
		}},
		{"unknown nutrient", func() (bool, error) {
			_, ok, err := s.Nutrient(ctx, "999")
			return ok, err
		}},
		{"unknown food group", func() (bool, error) {
			_, ok, err := s.FoodGroup(ctx, "9900")
			return ok, err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.find()
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s, err := New(testDataset())
	require.NoError(t, err)

	f, ok, err := s.Food(ctx, "01001")
	require.NoError(t, err)
	require.True(t, ok)
	f.ShortDesc = "changed"

	again, _, _ := s.Food(ctx, "01001")
	assert.Equal(t, "BUTTER,WITH SALT", again.ShortDesc)
}

func TestMeasuredNutrients(t *testing.T) {
	ctx := context.Background()
	s, err := New(testDataset())
	require.NoError(t, err)

	got, total, err := s.MeasuredNutrients(ctx, "01001", store.All)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"255", "203"}, nutrientIDs(got))

	got, total, err = s.MeasuredNutrients(ctx, "01001", store.Page{Number: 2, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"203"}, nutrientIDs(got))

	got, total, err = s.MeasuredNutrients(ctx, "99999", store.All)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, got)
}

func TestNewRejectsInconsistentData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*nutrition.Dataset)
		kind   store.ViolationKind
	}{
		{"weight for unknown food", func(ds *nutrition.Dataset) {
			ds.Weights = append(ds.Weights, nutrition.ServingWeight{FoodID: "99999", Seq: "1"})
		}, store.DanglingWeightFood},
		{"measurement for unknown food", func(ds *nutrition.Dataset) {
			ds.Measurements = append(ds.Measurements, nutrition.Measurement{FoodID: "99999", NutrID: "203"})
		}, store.DanglingMeasurementFood},
		{"measurement for unknown nutrient", func(ds *nutrition.Dataset) {
			ds.Measurements = append(ds.Measurements, nutrition.Measurement{FoodID: "01001", NutrID: "999"})
		}, store.DanglingMeasurementNutrient},
		{"food in unknown group", func(ds *nutrition.Dataset) {
			ds.Foods = append(ds.Foods, nutrition.Food{ID: "02001", GroupID: "0200"})
		}, store.DanglingFoodGroup},
		{"duplicate weight key", func(ds *nutrition.Dataset) {
			ds.Weights = append(ds.Weights, nutrition.ServingWeight{FoodID: "01001", Seq: "1"})
		}, store.DuplicateWeight},
		{"duplicate measurement key", func(ds *nutrition.Dataset) {
			ds.Measurements = append(ds.Measurements, nutrition.Measurement{FoodID: "01001", NutrID: "203"})
		}, store.DuplicateMeasurement},
		{"duplicate food", func(ds *nutrition.Dataset) {
			ds.Foods = append(ds.Foods, nutrition.Food{ID: "01001", GroupID: "0100"})
		}, store.DuplicatePrimaryKey},
		{"measurement value past 3 dp", func(ds *nutrition.Dataset) {
			ds.Measurements[0].Value = decimal.RequireFromString("0.12345")
		}, store.ExcessPrecision},
		{"grams past 1 dp", func(ds *nutrition.Dataset) {
			ds.Weights[0].Grams = decimal.RequireFromString("1.55")
		}, store.ExcessPrecision},
		{"std_dev past 3 dp", func(ds *nutrition.Dataset) {
			ds.Weights[1].StdDev = ptr.To(decimal.RequireFromString("0.1234"))
		}, store.ExcessPrecision},
		{"fractional refuse", func(ds *nutrition.Dataset) {
			ds.Foods[1].Refuse = ptr.To(decimal.RequireFromString("2.5"))
		}, store.ExcessPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := testDataset()
			tt.mutate(ds)

			report := Check(ds)
			require.False(t, report.OK())
			assert.Equal(t, tt.kind, report.Violations[0].Kind)

			_, err := New(ds)
			assert.Error(t, err)
		})
	}
}

func TestCheckExcessPrecisionKeys(t *testing.T) {
	ds := testDataset()
	ds.Measurements[0].Value = decimal.RequireFromString("0.12345")
	ds.Weights[1].Grams = decimal.RequireFromString("1.55")

	report := Check(ds)
	assert.Equal(t, []store.Violation{
		{Kind: store.ExcessPrecision, Key: "measurement:01001/203:nutr_value"},
		{Kind: store.ExcessPrecision, Key: "weight:01001/1:grams"},
	}, report.Violations)
}

func TestCheckIgnoresTrailingZeros(t *testing.T) {
	ds := testDataset()
	ds.Weights[1].Grams = decimal.RequireFromString("5.000")
	ds.Measurements[0].Value = decimal.RequireFromString("0.85000")

	assert.True(t, Check(ds).OK())
}

func TestNewNilDataset(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	s, err := New(testDataset())
	require.NoError(t, err)

	report, err := s.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 3, report.Rows["measurements"])
	assert.Equal(t, Kind, report.Store)
}

func TestSample(t *testing.T) {
	ctx := context.Background()
	s, err := Sample()
	require.NoError(t, err)

	m, ok, err := s.Measurement(ctx, "01001", "203")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0.850", m.Value.StringFixed(nutrition.ValueScale))

	w, ok, err := s.ServingWeight(ctx, "01001", "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "5.0", w.Grams.StringFixed(nutrition.GramsScale))
	assert.Equal(t, `1.0 pat (1" sq, 1/3" high)`, w.String())

	g, ok, err := s.FoodGroup(ctx, "0100")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Dairy and Egg Products", g.String())

	report, err := s.Verify(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestSampleConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := Sample()
			if !assert.NoError(t, err) {
				return
			}
			_, ok, err := s.ServingWeight(context.Background(), "09003", "4")
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	doc := `{
  "food_groups": [{"food_group_id": "0100", "food_group_desc": "Dairy and Egg Products"}],
  "foods": [{"food_id": "01001", "food_group_id": "0100", "long_desc": "Butter, salted", "short_desc": "BUTTER,WITH SALT"}],
  "weights": [{"food_id": "01001", "seq": "1", "amount": "1.000", "measure_desc": "pat", "grams": "5.0"}],
  "nutrients": [{"nutr_id": "203", "units": "g", "nutr_desc": "Protein", "decimal_places": "2", "sr_order": "600"}],
  "measurements": [{"food_id": "01001", "nutr_id": "203", "nutr_value": "0.850", "num_data_pts": "16", "source_code": "1"}]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	s, err := Load(context.Background(), path)
	require.NoError(t, err)

	_, ok, err := s.Measurement(context.Background(), "01001", "203")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func nutrientIDs(ns []nutrition.NutrientDef) []string {
	ids := make([]string, 0, len(ns))
	for _, n := range ns {
		ids = append(ids, n.ID)
	}
	return ids
}
