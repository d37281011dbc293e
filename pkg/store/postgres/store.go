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

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodref/usdarest/pkg/defaults"
	cerrors "github.com/foodref/usdarest/pkg/errors"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Kind is the store kind reported in metrics and integrity reports.
const Kind = "postgres"

// Config holds the connection settings. Zero values take the defaults
// from pkg/defaults.
type Config struct {
	// URL is a libpq connection string or postgres:// URL.
	URL string

	MaxConns int32
	MinConns int32

	// ConnectAttempts is how many times the pool is dialed before Connect gives up.
	ConnectAttempts int
	RetryInterval   time.Duration

	// QueryTimeout bounds every individual query.
	QueryTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.MaxConns <= 0 {
		c.MaxConns = defaults.StoreMaxConns
	}
	if c.MinConns <= 0 {
		c.MinConns = defaults.StoreMinConns
	}
	if c.MinConns > c.MaxConns {
		c.MinConns = c.MaxConns
	}
	if c.ConnectAttempts <= 0 {
		c.ConnectAttempts = defaults.StoreConnectMaxAttempts
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = defaults.StoreConnectRetryInterval
	}
	if c.QueryTimeout <= 0 {
		c.QueryTimeout = defaults.StoreQueryTimeout
	}
}

// Store queries the reference dataset in PostgreSQL.
type Store struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

var _ store.Store = (*Store)(nil)

// Connect opens a pool and pings it, retrying while the database comes up.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "database URL is required")
	}
	cfg.applyDefaults()

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "failed to parse database URL", err)
	}
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns

	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectAttempts; attempt++ {
		pool, err := dial(ctx, poolConfig)
		if err == nil {
			slog.Debug("database pool ready",
				"host", poolConfig.ConnConfig.Host,
				"database", poolConfig.ConnConfig.Database,
				"attempt", attempt)
			return &Store{pool: pool, queryTimeout: cfg.QueryTimeout}, nil
		}
		lastErr = err

		if attempt == cfg.ConnectAttempts {
			break
		}
		slog.Warn("database not reachable, retrying",
			"attempt", attempt,
			"maxAttempts", cfg.ConnectAttempts,
			"retryIn", cfg.RetryInterval,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, cerrors.Wrap(cerrors.ErrCodeUnavailable, "database connect canceled", ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, cerrors.WrapWithContext(cerrors.ErrCodeUnavailable, "failed to connect to database", lastErr,
		map[string]any{"attempts": cfg.ConnectAttempts})
}

func dial(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaults.StoreConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// NewWithPool wraps an existing pool. The store takes ownership of it.
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, queryTimeout: defaults.StoreQueryTimeout}
}

func (s *Store) Kind() string { return Kind }

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		return queryError("ping", err)
	}
	return nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// queryError classifies a pgx error. Deadline overruns become TIMEOUT,
// everything else INTERNAL.
func queryError(query string, err error) error {
	code := cerrors.ErrCodeInternal
	if errors.Is(err, context.DeadlineExceeded) {
		code = cerrors.ErrCodeTimeout
	}
	return cerrors.WrapWithContext(code, fmt.Sprintf("%s query failed", query), err,
		map[string]any{"store": Kind})
}
