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
	"fmt"
	"log/slog"

	"github.com/foodref/usdarest/pkg/catalog"
	"github.com/foodref/usdarest/pkg/logging"
	"github.com/foodref/usdarest/pkg/server"
	"github.com/foodref/usdarest/pkg/store"
)

const (
	name           = "usdad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/foodref/usdarest/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config is what Run needs besides the server settings read by pkg/server.
type Config struct {
	Source   Source
	PageSize int
}

// ConfigFromEnv reads the data source and page size from the environment.
func ConfigFromEnv() Config {
	return Config{
		Source:   SourceFromEnv(),
		PageSize: PageSizeFromEnv(),
	}
}

// Serve configures logging from LOG_LEVEL, then runs the API with the
// environment configuration until SIGINT/SIGTERM.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := Run(context.Background(), ConfigFromEnv()); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// Run opens the store, mounts the catalog routes and serves until ctx is
// canceled or the process is signaled.
func Run(ctx context.Context, cfg Config) error {
	st, err := OpenStore(ctx, cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Source.Kind(), err)
	}
	defer st.Close()

	s := NewServer(cfg, st)
	return s.Run(ctx)
}

// NewServer builds the API server over an open store.
func NewServer(cfg Config, st store.Store) *server.Server {
	h := catalog.NewHandler(st, catalog.WithPageSize(cfg.PageSize))
	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
		server.WithReadinessCheck(st.Ping),
	)
}
