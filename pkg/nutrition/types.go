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

package nutrition

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FoodGroup is a coarse food category (USDA FD_GROUP).
type FoodGroup struct {
	// ID is the 4-digit FdGrp_Cd; only the first two digits are assigned today.
	ID          string `json:"food_group_id" yaml:"food_group_id"`
	Description string `json:"food_group_desc" yaml:"food_group_desc"`
}

func (g FoodGroup) String() string {
	return strings.TrimSpace(g.Description)
}

// Food is a single food item (USDA FOOD_DES).
type Food struct {
	// ID is the 5-digit NDB_No. It is a string so the leading zero survives.
	ID              string           `json:"food_id" yaml:"food_id"`
	GroupID         string           `json:"food_group_id" yaml:"food_group_id"`
	LongDesc        string           `json:"long_desc" yaml:"long_desc"`
	ShortDesc       string           `json:"short_desc" yaml:"short_desc"`
	CommonName      string           `json:"common_name,omitempty" yaml:"common_name,omitempty"`
	ManufactureName string           `json:"manufacture_name,omitempty" yaml:"manufacture_name,omitempty"`
	Survey          string           `json:"survey,omitempty" yaml:"survey,omitempty"`
	RefuseDesc      string           `json:"refuse_desc,omitempty" yaml:"refuse_desc,omitempty"`
	Refuse          *decimal.Decimal `json:"refuse,omitempty" yaml:"refuse,omitempty"`
	ScientificName  string           `json:"scientific_name,omitempty" yaml:"scientific_name,omitempty"`
	NFactor         *decimal.Decimal `json:"n_factor,omitempty" yaml:"n_factor,omitempty"`
	ProFactor       *decimal.Decimal `json:"pro_factor,omitempty" yaml:"pro_factor,omitempty"`
	FatFactor       *decimal.Decimal `json:"fat_factor,omitempty" yaml:"fat_factor,omitempty"`
	ChoFactor       *decimal.Decimal `json:"cho_factor,omitempty" yaml:"cho_factor,omitempty"`
}

func (f Food) String() string {
	return f.ShortDesc
}

// ServingWeight is the gram weight of one household measure of a food
// (USDA WEIGHT). Seq disambiguates the measures of the same food.
type ServingWeight struct {
	FoodID      string           `json:"food_id" yaml:"food_id"`
	Seq         string           `json:"seq" yaml:"seq"`
	Amount      decimal.Decimal  `json:"amount" yaml:"amount"`
	MeasureDesc string           `json:"measure_desc" yaml:"measure_desc"`
	Grams       decimal.Decimal  `json:"grams" yaml:"grams"`
	NumDataPts  *decimal.Decimal `json:"num_data_pts,omitempty" yaml:"num_data_pts,omitempty"`
	StdDev      *decimal.Decimal `json:"std_dev,omitempty" yaml:"std_dev,omitempty"`
}

// Key returns the compound key of the weight.
func (w ServingWeight) Key() WeightKey {
	return WeightKey{FoodID: w.FoodID, Seq: w.Seq}
}

// String renders the measure the way it reads on a label, e.g. "1.0 cup".
func (w ServingWeight) String() string {
	amount := w.Amount.String()
	if !strings.Contains(amount, ".") {
		amount += ".0"
	}
	return amount + " " + w.MeasureDesc
}

// NutrientDef describes a measurable nutrient (USDA NUTR_DEF).
type NutrientDef struct {
	ID            string          `json:"nutr_id" yaml:"nutr_id"`
	Units         string          `json:"units" yaml:"units"`
	Tagname       string          `json:"tagname,omitempty" yaml:"tagname,omitempty"`
	Description   string          `json:"nutr_desc" yaml:"nutr_desc"`
	DecimalPlaces string          `json:"decimal_places" yaml:"decimal_places"`
	SROrder       decimal.Decimal `json:"sr_order" yaml:"sr_order"`
}

func (n NutrientDef) String() string {
	return n.Description
}

// Measurement is the amount of one nutrient in 100 grams edible portion
// of one food (USDA NUT_DATA).
type Measurement struct {
	FoodID          string           `json:"food_id" yaml:"food_id"`
	NutrID          string           `json:"nutr_id" yaml:"nutr_id"`
	Value           decimal.Decimal  `json:"nutr_value" yaml:"nutr_value"`
	NumDataPts      decimal.Decimal  `json:"num_data_pts" yaml:"num_data_pts"`
	StdError        *decimal.Decimal `json:"std_error,omitempty" yaml:"std_error,omitempty"`
	SourceCode      string           `json:"source_code" yaml:"source_code"`
	DerivationCode  string           `json:"derivation_code,omitempty" yaml:"derivation_code,omitempty"`
	RefFoodID       string           `json:"ref_food_id,omitempty" yaml:"ref_food_id,omitempty"`
	Fortified       string           `json:"fortified,omitempty" yaml:"fortified,omitempty"`
	NumberStudies   *decimal.Decimal `json:"number_studies,omitempty" yaml:"number_studies,omitempty"`
	MinValue        *decimal.Decimal `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue        *decimal.Decimal `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	DegreesFreedom  *decimal.Decimal `json:"degrees_freedom,omitempty" yaml:"degrees_freedom,omitempty"`
	LowErrorBound   *decimal.Decimal `json:"low_error_bound,omitempty" yaml:"low_error_bound,omitempty"`
	UpperErrorBound *decimal.Decimal `json:"upper_error_bound,omitempty" yaml:"upper_error_bound,omitempty"`
	StatisticalCmt  string           `json:"statistical_cmt,omitempty" yaml:"statistical_cmt,omitempty"`
	AddModDate      *string          `json:"addmod_date,omitempty" yaml:"addmod_date,omitempty"`
	ConfidenceCode  *string          `json:"confidence_code,omitempty" yaml:"confidence_code,omitempty"`
}

// Key returns the compound key of the measurement.
func (m Measurement) Key() MeasurementKey {
	return MeasurementKey{FoodID: m.FoodID, NutrID: m.NutrID}
}

// NutrientQuantity is a measurement scaled from the 100 g basis to one serving.
type NutrientQuantity struct {
	FoodID string
	SeqID  string
	NutrID string
	Value  decimal.Decimal
}

// WeightKey is the compound key of a ServingWeight.
type WeightKey struct {
	FoodID string
	Seq    string
}

func (k WeightKey) String() string {
	return fmt.Sprintf("%s/%s", k.FoodID, k.Seq)
}

// MeasurementKey is the compound key of a Measurement.
type MeasurementKey struct {
	FoodID string
	NutrID string
}

func (k MeasurementKey) String() string {
	return fmt.Sprintf("%s/%s", k.FoodID, k.NutrID)
}

// Dataset is the document form of the whole reference dataset. It is the
// input of the in-memory store and the shape of the embedded sample.
type Dataset struct {
	FoodGroups   []FoodGroup     `json:"food_groups" yaml:"food_groups"`
	Foods        []Food          `json:"foods" yaml:"foods"`
	Weights      []ServingWeight `json:"weights" yaml:"weights"`
	Nutrients    []NutrientDef   `json:"nutrients" yaml:"nutrients"`
	Measurements []Measurement   `json:"measurements" yaml:"measurements"`
}
