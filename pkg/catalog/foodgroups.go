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

// GET /v1/foodgroups
func (h *Handler) listFoodGroups(ctx context.Context, _ *http.Request) (any, error) {
	groups, err := h.store.FoodGroups(ctx)
	if err != nil {
		return nil, err
	}
	return resource.Map(groups, resource.NewFoodGroup), nil
}

// GET /v1/foodgroups/{food_group_id}
func (h *Handler) getFoodGroup(ctx context.Context, r *http.Request) (any, error) {
	id, err := pathID(r, paramFoodGroupID)
	if err != nil {
		return nil, err
	}

	group, ok, err := h.store.FoodGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("food group", map[string]any{paramFoodGroupID: id})
	}
	return resource.NewFoodGroup(*group), nil
}
