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

// SeqDetails lays out serving measures as a table.
type SeqDetails []SeqDetail

func (s SeqDetails) TableHeader() []string {
	return []string{"SEQ", "MEASURE", "GRAMS"}
}

func (s SeqDetails) TableRows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, d := range s {
		rows = append(rows, []string{d.Seq, d.Label(), d.Grams})
	}
	return rows
}
