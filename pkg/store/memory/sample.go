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

package memory

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/foodref/usdarest/pkg/nutrition"
	"gopkg.in/yaml.v3"
)

//go:embed data/sample.yaml
var sampleYAML []byte

var (
	sampleOnce  sync.Once
	sampleStore *Store
	sampleErr   error
)

// Sample returns the store over the embedded SR28 excerpt. The document is
// parsed once per process; every caller shares the same immutable store.
func Sample() (*Store, error) {
	sampleOnce.Do(func() {
		var ds nutrition.Dataset
		if err := yaml.Unmarshal(sampleYAML, &ds); err != nil {
			sampleErr = fmt.Errorf("failed to parse embedded sample dataset: %w", err)
			return
		}
		sampleStore, sampleErr = New(&ds)
	})
	return sampleStore, sampleErr
}
