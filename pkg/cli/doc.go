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

// Package cli implements the usda command-line tool.
//
// # Commands
//
// serve - Run the REST API:
//
//	usda serve --dataset sr28.yaml
//
// food - Show a food description:
//
//	usda food 01001 --format json
//
// weights - List the serving measures of a food:
//
//	usda weights 01001 --format table
//
// quantity - Amount of a nutrient in one serving, value * grams / 100:
//
//	usda quantity 01001 1 203
//
// check - Verify dataset integrity; exits 1 when violations are found:
//
//	usda check --database-url postgres://usda@localhost/usda -o report.yaml
//
// # Global Flags
//
//	--log-level        debug, info, warn, error (env LOG_LEVEL)
//	--database-url     PostgreSQL connection string (env USDA_DATABASE_URL)
//	--dataset, -d      YAML/JSON dataset path or URL (env USDA_DATASET)
//
// Without a data source the embedded sample dataset is used.
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/foodref/usdarest/pkg/cli.version=1.0.0'"
package cli
