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

// Package server is the HTTP shell shared by the API binaries: routing,
// middleware, system endpoints and graceful lifecycle.
//
// # Middleware
//
// Every API handler registered through WithHandler runs behind the same
// chain, outermost first:
//
//   - Prometheus RED metrics, labelled by route pattern
//   - API version negotiation (Accept: application/vnd.usdarest.v1+json)
//   - request ids (X-Request-Id, UUID)
//   - panic recovery
//   - token bucket rate limiting (golang.org/x/time/rate)
//   - debug request logging
//
// # System Endpoints
//
//	GET /         service index with the registered routes
//	GET /health   liveness
//	GET /ready    readiness, including the configured store check
//	GET /metrics  Prometheus exposition
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which
// map pkg/errors codes onto HTTP statuses:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "food not found",
//	  "details": {"food_id": "99999"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// # Usage
//
//	s := server.New(
//	    server.WithName("usdad"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	    server.WithReadinessCheck(st.Ping),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and RATE_LIMIT_BURST
// override the defaults. Under a systemd notify unit the server reports
// READY=1 once listening and STOPPING=1 on shutdown.
package server
