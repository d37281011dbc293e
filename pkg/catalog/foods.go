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

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/resource"
)

// GET /v1/foods
func (h *Handler) listFoods(ctx context.Context, r *http.Request) (any, error) {
	p, err := h.requestedPage(r)
	if err != nil {
		return nil, err
	}

	foods, total, err := h.store.Foods(ctx, p)
	if err != nil {
		return nil, err
	}

	return envelope(r, p, total, resource.Map(foods, resource.NewFoodSummary))
}

// GET /v1/foods/{food_id}
func (h *Handler) getFood(ctx context.Context, r *http.Request) (any, error) {
	food, err := h.food(ctx, r)
	if err != nil {
		return nil, err
	}
	return resource.NewFoodDetail(*food), nil
}

// GET /v1/foods/{food_id}/seqs
func (h *Handler) listSeqs(ctx context.Context, r *http.Request) (any, error) {
	food, err := h.food(ctx, r)
	if err != nil {
		return nil, err
	}

	weights, err := h.store.ServingWeights(ctx, food.ID)
	if err != nil {
		return nil, err
	}

	return resource.Map(weights, resource.NewSeq), nil
}

// GET /v1/foods/{food_id}/seqs/{seq_id}
func (h *Handler) getSeq(ctx context.Context, r *http.Request) (any, error) {
	weight, err := h.servingWeight(ctx, r)
	if err != nil {
		return nil, err
	}
	return resource.NewSeqDetail(*weight), nil
}

// GET /v1/foods/{food_id}/seqs/{seq_id}/nutrients lists the nutrients
// measured for the food, i.e. the ones a quantity can be derived for.
func (h *Handler) listSeqNutrients(ctx context.Context, r *http.Request) (any, error) {
	weight, err := h.servingWeight(ctx, r)
	if err != nil {
		return nil, err
	}

	p, err := h.requestedPage(r)
	if err != nil {
		return nil, err
	}

	nutrients, total, err := h.store.MeasuredNutrients(ctx, weight.FoodID, p)
	if err != nil {
		return nil, err
	}

	return envelope(r, p, total, resource.Map(nutrients, resource.NewNutrientSummary))
}

// GET /v1/foods/{food_id}/seqs/{seq_id}/nutrients/{nutr_id}
func (h *Handler) getNutrientQuantity(ctx context.Context, r *http.Request) (any, error) {
	foodID, err := pathID(r, paramFoodID)
	if err != nil {
		return nil, err
	}
	seq, err := pathID(r, paramSeqID)
	if err != nil {
		return nil, err
	}
	nutrID, err := pathID(r, paramNutrID)
	if err != nil {
		return nil, err
	}

	q, err := h.calc.Compute(ctx, foodID, seq, nutrID)
	if err != nil {
		return nil, err
	}
	return resource.NewNutrientQuantity(*q), nil
}

func (h *Handler) food(ctx context.Context, r *http.Request) (*nutrition.Food, error) {
	id, err := pathID(r, paramFoodID)
	if err != nil {
		return nil, err
	}

	food, ok, err := h.store.Food(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("food", map[string]any{paramFoodID: id})
	}
	return food, nil
}

func (h *Handler) servingWeight(ctx context.Context, r *http.Request) (*nutrition.ServingWeight, error) {
	foodID, err := pathID(r, paramFoodID)
	if err != nil {
		return nil, err
	}
	seq, err := pathID(r, paramSeqID)
	if err != nil {
		return nil, err
	}

	weight, ok, err := h.store.ServingWeight(ctx, foodID, seq)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("serving weight", map[string]any{paramFoodID: foodID, paramSeqID: seq})
	}
	return weight, nil
}
