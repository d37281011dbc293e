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

package catalog

import (
	"context"
	"net/http"

	"github.com/foodref/usdarest/pkg/resource"
)

// GET /v1/nutrients
func (h *Handler) listNutrients(ctx context.Context, r *http.Request) (any, error) {
	p, err := h.requestedPage(r)
	if err != nil {
		return nil, err
	}

	nutrients, total, err := h.store.Nutrients(ctx, p)
	if err != nil {
		return nil, err
	}

	return envelope(r, p, total, resource.Map(nutrients, resource.NewNutrientSummary))
}

// GET /v1/nutrients/{nutr_id}
func (h *Handler) getNutrient(ctx context.Context, r *http.Request) (any, error) {
	id, err := pathID(r, paramNutrID)
	if err != nil {
		return nil, err
	}

	nutrient, ok, err := h.store.Nutrient(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("nutrient", map[string]any{paramNutrID: id})
	}
	return resource.NewNutrientDetail(*nutrient), nil
}
