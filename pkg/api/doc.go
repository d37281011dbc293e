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

// Package api wires the USDA reference API server: it selects the data
// store from the environment, mounts the catalog routes on pkg/server and
// runs until the process is signaled.
//
// Environment:
//
//	USDA_DATABASE_URL  PostgreSQL connection string; takes precedence
//	USDA_DATASET       YAML or JSON dataset file or URL for the in-memory store
//	USDA_PAGE_SIZE     list page size (default 30)
//	PORT               listen port (default 8080)
//	LOG_LEVEL          debug, info, warn or error
//
// With neither USDA_DATABASE_URL nor USDA_DATASET set, the embedded
// sample dataset is served.
package api
