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

package store

import (
	"context"

	"github.com/foodref/usdarest/pkg/nutrition"
)

// Lookup resolves the two compound keys the nutrient derivation depends on.
//
// Both methods return (record, true, nil) on a match and (nil, false, nil)
// when no row exists. A non-nil error always means the storage itself failed.
type Lookup interface {
	// Measurement returns the measurement of nutrID in 100 g of foodID.
	Measurement(ctx context.Context, foodID, nutrID string) (*nutrition.Measurement, bool, error)

	// ServingWeight returns the gram weight of serving seq of foodID.
	ServingWeight(ctx context.Context, foodID, seq string) (*nutrition.ServingWeight, bool, error)
}

// Store is the read-only view of the reference dataset.
//
// Point lookups follow the Lookup convention. Paged lists return the
// requested page and the total number of rows across all pages.
type Store interface {
	Lookup

	FoodGroups(ctx context.Context) ([]nutrition.FoodGroup, error)
	FoodGroup(ctx context.Context, id string) (*nutrition.FoodGroup, bool, error)

	Foods(ctx context.Context, page Page) ([]nutrition.Food, int, error)
	Food(ctx context.Context, id string) (*nutrition.Food, bool, error)

	// ServingWeights returns the weights of foodID ordered by seq.
	ServingWeights(ctx context.Context, foodID string) ([]nutrition.ServingWeight, error)

	Nutrients(ctx context.Context, page Page) ([]nutrition.NutrientDef, int, error)
	Nutrient(ctx context.Context, id string) (*nutrition.NutrientDef, bool, error)

	// MeasuredNutrients returns the nutrients that have a measurement for foodID.
	MeasuredNutrients(ctx context.Context, foodID string, page Page) ([]nutrition.NutrientDef, int, error)

	// Verify checks referential consistency and compound-key uniqueness.
	Verify(ctx context.Context) (*Report, error)

	// Ping reports whether the store can serve queries.
	Ping(ctx context.Context) error

	// Kind names the implementation, e.g. "memory" or "postgres".
	Kind() string

	Close()
}
