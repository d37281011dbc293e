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

// Package memory implements store.Store over a dataset document held in
// memory.
//
// The document is validated when the store is built: dangling references or
// duplicate keys make New fail, so a running memory store is always
// consistent. The store never mutates its data after construction and
// returns copies from every lookup, which makes it safe for any number of
// concurrent readers without locking.
//
// Sample returns a store over a small embedded excerpt of SR28, used when no
// dataset or database is configured.
package memory
