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
	"net/http"

	cerrors "github.com/foodref/usdarest/pkg/errors"
)

// Path parameter names.
const (
	paramFoodID      = "food_id"
	paramSeqID       = "seq_id"
	paramNutrID      = "nutr_id"
	paramFoodGroupID = "food_group_id"
)

// pathID returns the named path parameter. Identifiers are digit strings;
// anything else cannot name a row and is reported as not found.
func pathID(r *http.Request, name string) (string, error) {
	v := r.PathValue(name)
	if !isDigits(v) {
		return "", cerrors.NewWithContext(cerrors.ErrCodeNotFound, "No resource at this path",
			map[string]any{name: v})
	}
	return v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func notFound(entity string, keys map[string]any) error {
	return cerrors.NewWithContext(cerrors.ErrCodeNotFound, entity+" not found", keys)
}
