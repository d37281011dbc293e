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

package store

import "math"

// Page selects a window of an ordered list. Number is 1-based.
// The zero Page selects everything.
type Page struct {
	Number int
	Size   int
}

// All is the unbounded page.
var All = Page{}

// Unbounded reports whether the page selects the whole list.
func (p Page) Unbounded() bool {
	return p.Size <= 0
}

// Offset is the number of rows skipped before the page starts. It
// saturates at math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Unbounded() || p.Number <= 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Pages returns how many pages of this size a list of total rows spans.
// An empty list still has one (empty) page.
func (p Page) Pages(total int) int {
	if p.Unbounded() || total == 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}

// Slice returns the rows of items that fall on the page.
func Slice[T any](items []T, p Page) []T {
	if p.Unbounded() {
		return items
	}
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end < start || end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
