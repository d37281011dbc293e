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

package api

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/foodref/usdarest/pkg/defaults"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/foodref/usdarest/pkg/store/memory"
	"github.com/foodref/usdarest/pkg/store/postgres"
)

// Environment variables selecting the data source.
const (
	EnvDatabaseURL = "USDA_DATABASE_URL"
	EnvDataset     = "USDA_DATASET"
	EnvPageSize    = "USDA_PAGE_SIZE"
)

// Source selects where the reference dataset is read from. DatabaseURL
// wins over Dataset; with neither set the embedded sample is served.
type Source struct {
	// DatabaseURL is a PostgreSQL connection string.
	DatabaseURL string
	// Dataset is a YAML or JSON dataset document, as a path or http(s) URL.
	Dataset string
}

// Kind names the store the source resolves to.
func (s Source) Kind() string {
	if s.DatabaseURL != "" {
		return postgres.Kind
	}
	return memory.Kind
}

// SourceFromEnv reads USDA_DATABASE_URL and USDA_DATASET.
func SourceFromEnv() Source {
	return Source{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		Dataset:     os.Getenv(EnvDataset),
	}
}

// PageSizeFromEnv reads USDA_PAGE_SIZE, falling back to defaults.PageSize.
func PageSizeFromEnv() int {
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= defaults.MaxPageSize {
			return n
		}
		slog.Warn("ignoring invalid page size", "env", EnvPageSize, "value", v)
	}
	return defaults.PageSize
}

// OpenStore opens the store the source points at. The caller owns the
// returned store and must Close it.
func OpenStore(ctx context.Context, src Source) (store.Store, error) {
	switch {
	case src.DatabaseURL != "":
		slog.Info("opening store", "kind", postgres.Kind)
		st, err := postgres.Connect(ctx, postgres.Config{URL: src.DatabaseURL})
		if err != nil {
			return nil, err
		}
		return st, nil
	case src.Dataset != "":
		slog.Info("opening store", "kind", memory.Kind, "dataset", src.Dataset)
		st, err := memory.Load(ctx, src.Dataset)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		slog.Info("opening store", "kind", memory.Kind, "dataset", "embedded sample")
		st, err := memory.Sample()
		if err != nil {
			return nil, err
		}
		return st, nil
	}
}
