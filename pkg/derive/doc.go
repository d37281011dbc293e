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

// Package derive computes the amount of a nutrient present in one serving
// of a food.
//
// A measurement gives V, the nutrient amount in 100 g edible portion; a
// serving weight gives W, the grams in one serving. The quantity is
//
//	N = (V * W) / 100
//
// computed in decimal arithmetic so the result carries no binary rounding.
// A missing measurement or weight is reported as NOT_FOUND; only storage
// failures surface as other error codes. Results are never cached.
package derive
