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

package resource

import (
	"strings"

	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/shopspring/decimal"
)

// Decimal renders d with exactly scale fractional digits.
func Decimal(d decimal.Decimal, scale int32) string {
	return d.StringFixed(scale)
}

// NullableDecimal renders d like Decimal, or returns nil when d is nil.
func NullableDecimal(d *decimal.Decimal, scale int32) *string {
	if d == nil {
		return nil
	}
	s := Decimal(*d, scale)
	return &s
}

// Quantity renders a derived per-serving value. It keeps at least
// nutrition.QuantityMinScale fractional digits and drops trailing zeros
// beyond that: 0.0425 stays "0.0425", 0.042513 stays "0.042513", 3 becomes
// "3.0000". Digits are never rounded away, so a value with more than
// nutrition.QuantityMaxScale digits is rendered in full.
func Quantity(d decimal.Decimal) string {
	scale := nutrition.QuantityMaxScale
	if exp := -d.Exponent(); exp > scale {
		scale = exp
	}
	s := d.StringFixed(scale)
	dot := strings.IndexByte(s, '.')
	minLen := dot + 1 + int(nutrition.QuantityMinScale)
	for len(s) > minLen && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}
