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

package nutrition

// Decimal places of the stored numeric columns. They define the native
// precision used when values are rendered for the API.
const (
	RefuseScale  int32 = 0 // FOOD_DES.Refuse
	FactorScale  int32 = 2 // FOOD_DES.N_Factor, Pro_Factor, Fat_Factor, CHO_Factor
	AmountScale  int32 = 3 // WEIGHT.Amount
	GramsScale   int32 = 1 // WEIGHT.Gm_Wgt
	CountScale   int32 = 0 // data points, studies, degrees of freedom
	StdDevScale  int32 = 3 // WEIGHT.Std_Dev
	ValueScale   int32 = 3 // NUT_DATA.Nutr_Val, Std_Error, Min, Max, Low_EB, Up_EB
	SROrderScale int32 = 0 // NUTR_DEF.SR_Order
)

// Precision of a derived per-serving quantity. The product of a 3 dp value
// and a 1 dp weight has 4 dp; dividing by 100 adds at most 2 more.
const (
	QuantityMinScale = ValueScale + GramsScale
	QuantityMaxScale = QuantityMinScale + 2
)
