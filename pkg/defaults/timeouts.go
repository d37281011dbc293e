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

package defaults

import "time"

const (
	// HandlerTimeout bounds a single API request including all store lookups.
	HandlerTimeout = 15 * time.Second

	// StoreQueryTimeout bounds a single store query.
	// Should be less than HandlerTimeout so the handler can still report the failure.
	StoreQueryTimeout = 10 * time.Second

	// IntegrityCheckTimeout bounds a full referential integrity scan.
	IntegrityCheckTimeout = 5 * time.Minute
)

const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// ServerReadinessTimeout bounds the store ping behind /ready.
	ServerReadinessTimeout = 3 * time.Second
)

const (
	// StoreConnectTimeout bounds opening and pinging the database pool.
	StoreConnectTimeout = 30 * time.Second

	// StoreConnectRetryInterval is the pause between connection attempts.
	StoreConnectRetryInterval = 2 * time.Second

	// StoreConnectMaxAttempts is how many times the pool is dialed before giving up.
	StoreConnectMaxAttempts = 5

	// StoreMaxConns caps the pgx pool size.
	StoreMaxConns = 10

	// StoreMinConns keeps warm connections in the pool.
	StoreMinConns = 2
)

const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

const (
	// PageSize is the number of records per page on list endpoints.
	PageSize = 30

	// MaxPageSize caps a configured page size.
	MaxPageSize = 500
)
