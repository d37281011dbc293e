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
	"fmt"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/shopspring/decimal"
	"k8s.io/utils/ptr"
)

const (
	foodGroupColumns = `food_group_id, food_group_desc`

	foodColumns = `food_id, food_group_id, long_desc, short_desc,
		COALESCE(common_name, ''), COALESCE(manufacture_name, ''), COALESCE(survey, ''),
		COALESCE(refuse_desc, ''), refuse::text, COALESCE(scientific_name, ''),
		n_factor::text, pro_factor::text, fat_factor::text, cho_factor::text`

	weightColumns = `food_id, seq, amount::text, measure_desc, grams::text,
		num_data_pts::text, std_dev::text`

	nutrientColumns = `nutr_id, units, COALESCE(tagname, ''), nutr_desc, decimal_places, sr_order::text`

	measurementColumns = `food_id, nutr_id, nutr_value::text, num_data_pts::text, std_error::text,
		source_code, COALESCE(derivation_code, ''), COALESCE(ref_food_id, ''), COALESCE(fortified, ''),
		number_studies::text, min_value::text, max_value::text, degrees_freedom::text,
		low_error_bound::text, upper_error_bound::text, COALESCE(statistical_cmt, ''),
		addmod_date, confidence_code`
)

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFoodGroup(row scanner) (nutrition.FoodGroup, error) {
	var g nutrition.FoodGroup
	err := row.Scan(&g.ID, &g.Description)
	return g, err
}

func scanFood(row scanner) (nutrition.Food, error) {
	var (
		f                                  nutrition.Food
		refuse, nFac, proFac, fatFac, cFac *string
	)
	if err := row.Scan(&f.ID, &f.GroupID, &f.LongDesc, &f.ShortDesc,
		&f.CommonName, &f.ManufactureName, &f.Survey,
		&f.RefuseDesc, &refuse, &f.ScientificName,
		&nFac, &proFac, &fatFac, &cFac); err != nil {
		return f, err
	}

	var p decimalParser
	f.Refuse = p.nullable("refuse", refuse)
	f.NFactor = p.nullable("n_factor", nFac)
	f.ProFactor = p.nullable("pro_factor", proFac)
	f.FatFactor = p.nullable("fat_factor", fatFac)
	f.ChoFactor = p.nullable("cho_factor", cFac)
	return f, p.err
}

func scanWeight(row scanner) (nutrition.ServingWeight, error) {
	var (
		w                  nutrition.ServingWeight
		amount, grams      string
		numDataPts, stdDev *string
	)
	if err := row.Scan(&w.FoodID, &w.Seq, &amount, &w.MeasureDesc, &grams, &numDataPts, &stdDev); err != nil {
		return w, err
	}

	var p decimalParser
	w.Amount = p.required("amount", amount)
	w.Grams = p.required("grams", grams)
	w.NumDataPts = p.nullable("num_data_pts", numDataPts)
	w.StdDev = p.nullable("std_dev", stdDev)
	return w, p.err
}

func scanNutrient(row scanner) (nutrition.NutrientDef, error) {
	var (
		n       nutrition.NutrientDef
		srOrder string
	)
	if err := row.Scan(&n.ID, &n.Units, &n.Tagname, &n.Description, &n.DecimalPlaces, &srOrder); err != nil {
		return n, err
	}

	var p decimalParser
	n.SROrder = p.required("sr_order", srOrder)
	return n, p.err
}

func scanMeasurement(row scanner) (nutrition.Measurement, error) {
	var (
		m                                     nutrition.Measurement
		value, numDataPts                     string
		stdErr, studies, lo, hi, df, lEB, uEB *string
	)
	if err := row.Scan(&m.FoodID, &m.NutrID, &value, &numDataPts, &stdErr,
		&m.SourceCode, &m.DerivationCode, &m.RefFoodID, &m.Fortified,
		&studies, &lo, &hi, &df, &lEB, &uEB, &m.StatisticalCmt,
		&m.AddModDate, &m.ConfidenceCode); err != nil {
		return m, err
	}

	var p decimalParser
	m.Value = p.required("nutr_value", value)
	m.NumDataPts = p.required("num_data_pts", numDataPts)
	m.StdError = p.nullable("std_error", stdErr)
	m.NumberStudies = p.nullable("number_studies", studies)
	m.MinValue = p.nullable("min_value", lo)
	m.MaxValue = p.nullable("max_value", hi)
	m.DegreesFreedom = p.nullable("degrees_freedom", df)
	m.LowErrorBound = p.nullable("low_error_bound", lEB)
	m.UpperErrorBound = p.nullable("upper_error_bound", uEB)
	return m, p.err
}

// decimalParser parses numeric text columns and keeps the first failure.
type decimalParser struct {
	err error
}

func (p *decimalParser) required(column, text string) decimal.Decimal {
	d, err := decimal.NewFromString(text)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: invalid numeric %q: %w", column, text, err)
	}
	return d
}

func (p *decimalParser) nullable(column string, text *string) *decimal.Decimal {
	if text == nil {
		return nil
	}
	return ptr.To(p.required(column, *text))
}
