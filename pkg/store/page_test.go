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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{"unbounded", All, 0},
		{"first page", Page{Number: 1, Size: 30}, 0},
		{"zero number", Page{Number: 0, Size: 30}, 0},
		{"third page", Page{Number: 3, Size: 30}, 60},
		{"saturates", Page{Number: math.MaxInt, Size: 30}, math.MaxInt},
		{"saturates at boundary", Page{Number: math.MaxInt/30 + 2, Size: 30}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}

func TestPagePages(t *testing.T) {
	p := Page{Number: 1, Size: 30}
	assert.Equal(t, 1, p.Pages(0))
	assert.Equal(t, 1, p.Pages(30))
	assert.Equal(t, 2, p.Pages(31))
	assert.Equal(t, 1, All.Pages(1000))
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Slice(items, All))
	assert.Equal(t, []int{1, 2}, Slice(items, Page{Number: 1, Size: 2}))
	assert.Equal(t, []int{5}, Slice(items, Page{Number: 3, Size: 2}))
	assert.Empty(t, Slice(items, Page{Number: 4, Size: 2}))
	assert.Empty(t, Slice(items, Page{Number: math.MaxInt, Size: 30}))
	assert.Empty(t, Slice(items, Page{Number: math.MaxInt/30 + 2, Size: 30}))
}
