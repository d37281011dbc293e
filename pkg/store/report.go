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
	"fmt"
	"sort"
	"strings"

	cerrors "github.com/foodref/usdarest/pkg/errors"
)

// ViolationKind classifies a dataset integrity violation.
type ViolationKind string

const (
	// A food references a food group that does not exist.
	DanglingFoodGroup ViolationKind = "dangling_food_group"
	// A serving weight references a food that does not exist.
	DanglingWeightFood ViolationKind = "dangling_weight_food"
	// A measurement references a food that does not exist.
	DanglingMeasurementFood ViolationKind = "dangling_measurement_food"
	// A measurement references a nutrient that does not exist.
	DanglingMeasurementNutrient ViolationKind = "dangling_measurement_nutrient"
	// More than one serving weight shares a (food_id, seq) key.
	DuplicateWeight ViolationKind = "duplicate_weight"
	// More than one measurement shares a (food_id, nutr_id) key.
	DuplicateMeasurement ViolationKind = "duplicate_measurement"
	// A food group, food or nutrient id appears more than once.
	DuplicatePrimaryKey ViolationKind = "duplicate_primary_key"
	// A numeric column carries more fractional digits than its scale.
	ExcessPrecision ViolationKind = "excess_precision"
)

// Violation is a single integrity failure.
type Violation struct {
	Kind ViolationKind `json:"kind" yaml:"kind"`
	Key  string        `json:"key" yaml:"key"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Key)
}

// Report is the outcome of an integrity check.
type Report struct {
	Store      string         `json:"store" yaml:"store"`
	Rows       map[string]int `json:"rows" yaml:"rows"`
	Violations []Violation    `json:"violations" yaml:"violations"`
}

// NewReport returns an empty report for the named store kind.
func NewReport(kind string) *Report {
	return &Report{
		Store:      kind,
		Rows:       make(map[string]int),
		Violations: []Violation{},
	}
}

// Add records a violation.
func (r *Report) Add(kind ViolationKind, key string) {
	r.Violations = append(r.Violations, Violation{Kind: kind, Key: key})
}

// OK reports whether the check found no violations.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Sort orders violations by kind, then key.
func (r *Report) Sort() {
	sort.Slice(r.Violations, func(i, j int) bool {
		if r.Violations[i].Kind != r.Violations[j].Kind {
			return r.Violations[i].Kind < r.Violations[j].Kind
		}
		return r.Violations[i].Key < r.Violations[j].Key
	})
}

// Err returns nil for a clean report, otherwise an error listing the violations.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	const maxListed = 10
	listed := make([]string, 0, maxListed)
	for i, v := range r.Violations {
		if i == maxListed {
			listed = append(listed, fmt.Sprintf("... %d more", len(r.Violations)-maxListed))
			break
		}
		listed = append(listed, v.String())
	}
	return cerrors.NewWithContext(cerrors.ErrCodeInternal,
		fmt.Sprintf("dataset integrity check failed: %s", strings.Join(listed, "; ")),
		map[string]any{"violations": len(r.Violations), "store": r.Store})
}
