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

// Package store defines the lookup layer over the USDA reference dataset.
//
// Lookups are exact-match by primary or compound key and return at most one
// record:
//
//	w, ok, err := s.ServingWeight(ctx, "01001", "1")
//	if err != nil {
//	    return err // storage fault
//	}
//	if !ok {
//	    // no such serving; the caller decides what absence means
//	}
//
// Two implementations exist: store/memory holds a validated dataset document
// in maps, and store/postgres queries the pre-loaded usda_* tables.
package store
