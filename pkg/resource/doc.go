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

// Package resource projects dataset records onto the flat field sets the
// API returns. The mapping only selects, renames and formats fields.
//
// Decimals are rendered as strings at the precision of their source column
// (grams with one place, nutrient values with three, and so on). Nullable
// columns render as JSON null.
package resource
