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

// Package nutrition defines the records of the USDA Standard Reference
// dataset served by this module: food groups, food descriptions, serving
// weights, nutrient definitions and nutrient measurements.
//
// Every numeric column is a fixed-point decimal. The records are immutable
// once loaded; stores hand out copies.
package nutrition
