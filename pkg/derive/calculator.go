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

package derive

import (
	"context"
	"log/slog"

	cerrors "github.com/foodref/usdarest/pkg/errors"
	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/shopspring/decimal"
)

// Calculator derives per-serving nutrient quantities from a Lookup.
type Calculator struct {
	lookup store.Lookup
}

// NewCalculator returns a Calculator reading from lookup.
func NewCalculator(lookup store.Lookup) *Calculator {
	return &Calculator{lookup: lookup}
}

// Compute returns the quantity of nutrID in serving seq of foodID.
//
// Errors carry a code from pkg/errors: INVALID_REQUEST for an empty
// identifier, NOT_FOUND when the measurement or the serving weight does not
// exist, and the store's code when a lookup fails.
func (c *Calculator) Compute(ctx context.Context, foodID, seq, nutrID string) (*nutrition.NutrientQuantity, error) {
	keys := map[string]any{"food_id": foodID, "seq_id": seq, "nutr_id": nutrID}

	if foodID == "" || seq == "" || nutrID == "" {
		computations.WithLabelValues(resultInvalid).Inc()
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			"food_id, seq_id and nutr_id are required", keys)
	}

	m, ok, err := c.lookup.Measurement(ctx, foodID, nutrID)
	if err != nil {
		computations.WithLabelValues(resultError).Inc()
		return nil, cerrors.WrapWithContext(cerrors.CodeOf(err), "measurement lookup failed", err, keys)
	}
	if !ok {
		computations.WithLabelValues(resultNotFound).Inc()
		return nil, cerrors.NewWithContext(cerrors.ErrCodeNotFound,
			"no measurement of nutrient "+nutrID+" for food "+foodID, keys)
	}

	w, ok, err := c.lookup.ServingWeight(ctx, foodID, seq)
	if err != nil {
		computations.WithLabelValues(resultError).Inc()
		return nil, cerrors.WrapWithContext(cerrors.CodeOf(err), "serving weight lookup failed", err, keys)
	}
	if !ok {
		computations.WithLabelValues(resultNotFound).Inc()
		return nil, cerrors.NewWithContext(cerrors.ErrCodeNotFound,
			"no serving "+seq+" for food "+foodID, keys)
	}

	q := &nutrition.NutrientQuantity{
		FoodID: foodID,
		SeqID:  seq,
		NutrID: nutrID,
		Value:  Quantity(m.Value, w.Grams),
	}
	computations.WithLabelValues(resultOK).Inc()

	slog.Debug("nutrient quantity computed",
		"food", foodID, "seq", seq, "nutrient", nutrID,
		"per100g", m.Value.String(), "grams", w.Grams.String(), "value", q.Value.String())
	return q, nil
}

// Quantity scales perHundredGrams to a serving of grams: (V * W) / 100.
// Dividing by 100 is an exact shift of the decimal exponent, so the result
// keeps every digit of the product.
func Quantity(perHundredGrams, grams decimal.Decimal) decimal.Decimal {
	return perHundredGrams.Mul(grams).Shift(-2)
}
