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
	"github.com/foodref/usdarest/pkg/nutrition"
)

// FoodSummary is an entry of the food list.
type FoodSummary struct {
	FoodID    string `json:"food_id" yaml:"food_id"`
	LongDesc  string `json:"long_desc" yaml:"long_desc"`
	ShortDesc string `json:"short_desc" yaml:"short_desc"`
}

// FoodDetail is the full description of one food. The food group is
// exposed as its bare code.
type FoodDetail struct {
	FoodID          string  `json:"food_id" yaml:"food_id"`
	FoodGroupID     string  `json:"food_group_id" yaml:"food_group_id"`
	LongDesc        string  `json:"long_desc" yaml:"long_desc"`
	ShortDesc       string  `json:"short_desc" yaml:"short_desc"`
	CommonName      string  `json:"common_name" yaml:"common_name"`
	ManufactureName string  `json:"manufacture_name" yaml:"manufacture_name"`
	Survey          string  `json:"survey" yaml:"survey"`
	RefuseDesc      string  `json:"refuse_desc" yaml:"refuse_desc"`
	Refuse          *string `json:"refuse" yaml:"refuse"`
	ScientificName  string  `json:"scientific_name" yaml:"scientific_name"`
	NFactor         *string `json:"n_factor" yaml:"n_factor"`
	ProFactor       *string `json:"pro_factor" yaml:"pro_factor"`
	FatFactor       *string `json:"fat_factor" yaml:"fat_factor"`
	ChoFactor       *string `json:"cho_factor" yaml:"cho_factor"`
}

// Seq identifies one serving measure of a food.
type Seq struct {
	Food string `json:"food" yaml:"food"`
	Seq  string `json:"seq" yaml:"seq"`
}

// SeqDetail describes one serving measure of a food.
type SeqDetail struct {
	Food        string  `json:"food" yaml:"food"`
	Seq         string  `json:"seq" yaml:"seq"`
	Amount      string  `json:"amount" yaml:"amount"`
	MeasureDesc string  `json:"measure_desc" yaml:"measure_desc"`
	Grams       string  `json:"grams" yaml:"grams"`
	NumDataPts  *string `json:"num_data_pts" yaml:"num_data_pts"`
	StdDev      *string `json:"std_dev" yaml:"std_dev"`

	// label is the display form, e.g. "1.0 cup"; it is not serialized.
	label string
}

// NutrientSummary is an entry of a nutrient list.
type NutrientSummary struct {
	NutrID   string `json:"nutr_id" yaml:"nutr_id"`
	NutrDesc string `json:"nutr_desc" yaml:"nutr_desc"`
}

// NutrientDetail is the full definition of one nutrient.
type NutrientDetail struct {
	NutrID        string `json:"nutr_id" yaml:"nutr_id"`
	Units         string `json:"units" yaml:"units"`
	Tagname       string `json:"tagname" yaml:"tagname"`
	NutrDesc      string `json:"nutr_desc" yaml:"nutr_desc"`
	DecimalPlaces string `json:"decimal_places" yaml:"decimal_places"`
	SROrder       string `json:"sr_order" yaml:"sr_order"`
}

// FoodGroup is a food group code and its description.
type FoodGroup struct {
	FoodGroupID   string `json:"food_group_id" yaml:"food_group_id"`
	FoodGroupDesc string `json:"food_group_desc" yaml:"food_group_desc"`
}

// NutrientQuantity is the derived amount of a nutrient in one serving.
type NutrientQuantity struct {
	FoodID string `json:"food_id" yaml:"food_id"`
	SeqID  string `json:"seq_id" yaml:"seq_id"`
	NutrID string `json:"nutr_id" yaml:"nutr_id"`
	Value  string `json:"value" yaml:"value"`
}

func NewFoodSummary(f nutrition.Food) FoodSummary {
	return FoodSummary{FoodID: f.ID, LongDesc: f.LongDesc, ShortDesc: f.ShortDesc}
}

func NewFoodDetail(f nutrition.Food) FoodDetail {
	return FoodDetail{
		FoodID:          f.ID,
		FoodGroupID:     f.GroupID,
		LongDesc:        f.LongDesc,
		ShortDesc:       f.ShortDesc,
		CommonName:      f.CommonName,
		ManufactureName: f.ManufactureName,
		Survey:          f.Survey,
		RefuseDesc:      f.RefuseDesc,
		Refuse:          NullableDecimal(f.Refuse, nutrition.RefuseScale),
		ScientificName:  f.ScientificName,
		NFactor:         NullableDecimal(f.NFactor, nutrition.FactorScale),
		ProFactor:       NullableDecimal(f.ProFactor, nutrition.FactorScale),
		FatFactor:       NullableDecimal(f.FatFactor, nutrition.FactorScale),
		ChoFactor:       NullableDecimal(f.ChoFactor, nutrition.FactorScale),
	}
}

func NewSeq(w nutrition.ServingWeight) Seq {
	return Seq{Food: w.FoodID, Seq: w.Seq}
}

func NewSeqDetail(w nutrition.ServingWeight) SeqDetail {
	return SeqDetail{
		Food:        w.FoodID,
		Seq:         w.Seq,
		Amount:      Decimal(w.Amount, nutrition.AmountScale),
		MeasureDesc: w.MeasureDesc,
		Grams:       Decimal(w.Grams, nutrition.GramsScale),
		NumDataPts:  NullableDecimal(w.NumDataPts, nutrition.CountScale),
		StdDev:      NullableDecimal(w.StdDev, nutrition.StdDevScale),
		label:       w.String(),
	}
}

// Label is the household-measure display form of the serving.
func (s SeqDetail) Label() string {
	return s.label
}

func NewNutrientSummary(n nutrition.NutrientDef) NutrientSummary {
	return NutrientSummary{NutrID: n.ID, NutrDesc: n.Description}
}

func NewNutrientDetail(n nutrition.NutrientDef) NutrientDetail {
	return NutrientDetail{
		NutrID:        n.ID,
		Units:         n.Units,
		Tagname:       n.Tagname,
		NutrDesc:      n.Description,
		DecimalPlaces: n.DecimalPlaces,
		SROrder:       Decimal(n.SROrder, nutrition.SROrderScale),
	}
}

func NewFoodGroup(g nutrition.FoodGroup) FoodGroup {
	return FoodGroup{FoodGroupID: g.ID, FoodGroupDesc: g.Description}
}

func NewNutrientQuantity(q nutrition.NutrientQuantity) NutrientQuantity {
	return NutrientQuantity{
		FoodID: q.FoodID,
		SeqID:  q.SeqID,
		NutrID: q.NutrID,
		Value:  Quantity(q.Value),
	}
}

// Map applies fn to every element of in.
func Map[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
