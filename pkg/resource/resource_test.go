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

package resource

import (
	"encoding/json"
	"testing"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/shopspring/decimal"
	"k8s.io/utils/ptr"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.0425", "0.0425"},
		{"0.042500", "0.0425"},
		{"0.042513", "0.042513"},
		{"0.04251", "0.04251"},
		{"3", "3.0000"},
		{"184.1197", "184.1197"},
		{"0.0000001", "0.0000001"},
		{"0.001913475", "0.001913475"},
		{"0.0019134750", "0.001913475"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Quantity(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Errorf("Quantity(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewSeqDetail(t *testing.T) {
	w := nutrition.ServingWeight{
		FoodID:      "01009",
		Seq:         "1",
		Amount:      decimal.RequireFromString("1"),
		MeasureDesc: "cup, diced",
		Grams:       decimal.RequireFromString("132"),
		StdDev:      ptr.To(decimal.RequireFromString("7.263")),
	}

	got := NewSeqDetail(w)
	if got.Amount != "1.000" || got.Grams != "132.0" {
		t.Errorf("unexpected precision: amount=%s grams=%s", got.Amount, got.Grams)
	}
	if got.NumDataPts != nil {
		t.Errorf("expected nil num_data_pts, got %v", *got.NumDataPts)
	}
	if got.StdDev == nil || *got.StdDev != "7.263" {
		t.Errorf("unexpected std_dev %v", got.StdDev)
	}
	if got.Label() != "1.0 cup, diced" {
		t.Errorf("Label() = %q", got.Label())
	}

	body, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"food":"01009","seq":"1","amount":"1.000","measure_desc":"cup, diced","grams":"132.0","num_data_pts":null,"std_dev":"7.263"}`
	if string(body) != want {
		t.Errorf("json = %s\nwant   %s", body, want)
	}
}

func TestNewFoodDetail(t *testing.T) {
	f := nutrition.Food{
		ID:        "01001",
		GroupID:   "0100",
		ShortDesc: "BUTTER,WITH SALT",
		Refuse:    ptr.To(decimal.Zero),
		NFactor:   ptr.To(decimal.RequireFromString("6.38")),
		ProFactor: ptr.To(decimal.RequireFromString("4.2")),
	}

	got := NewFoodDetail(f)
	if got.FoodGroupID != "0100" {
		t.Errorf("food_group_id = %q", got.FoodGroupID)
	}
	if *got.Refuse != "0" || *got.NFactor != "6.38" || *got.ProFactor != "4.20" {
		t.Errorf("unexpected factors refuse=%s n=%s pro=%s", *got.Refuse, *got.NFactor, *got.ProFactor)
	}
	if got.FatFactor != nil || got.ChoFactor != nil {
		t.Error("expected nil fat/cho factors")
	}
}

func TestNewNutrientQuantity(t *testing.T) {
	q := nutrition.NutrientQuantity{FoodID: "01001", SeqID: "1", NutrID: "203", Value: decimal.RequireFromString("0.0425")}

	body, err := json.Marshal(NewNutrientQuantity(q))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"food_id":"01001","seq_id":"1","nutr_id":"203","value":"0.0425"}`
	if string(body) != want {
		t.Errorf("json = %s, want %s", body, want)
	}
}

func TestNewNutrientDetail(t *testing.T) {
	n := nutrition.NutrientDef{ID: "203", Units: "g", Tagname: "PROCNT", Description: "Protein", DecimalPlaces: "2", SROrder: decimal.NewFromInt(600)}
	got := NewNutrientDetail(n)
	if got.SROrder != "600" || got.NutrDesc != "Protein" {
		t.Errorf("unexpected detail %+v", got)
	}
}

func TestSeqDetailsTable(t *testing.T) {
	rows := SeqDetails{NewSeqDetail(nutrition.ServingWeight{
		FoodID: "01001", Seq: "2", Amount: decimal.NewFromInt(1), MeasureDesc: "tbsp", Grams: decimal.RequireFromString("14.2"),
	})}
	if len(rows.TableHeader()) != len(rows.TableRows()[0]) {
		t.Fatal("header and row widths differ")
	}
	if got := rows.TableRows()[0][1]; got != "1.0 tbsp" {
		t.Errorf("measure cell = %q", got)
	}
}

func TestMap(t *testing.T) {
	groups := []nutrition.FoodGroup{{ID: "0100", Description: "Dairy"}, {ID: "0900", Description: "Fruits"}}
	got := Map(groups, NewFoodGroup)
	if len(got) != 2 || got[1].FoodGroupID != "0900" {
		t.Errorf("unexpected mapping %+v", got)
	}
	if empty := Map([]nutrition.FoodGroup(nil), NewFoodGroup); empty == nil {
		t.Error("Map should return an empty, non-nil slice")
	}
}
