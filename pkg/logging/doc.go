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

// Package logging configures log/slog for the usdad server and the usda CLI.
//
// All records are JSON on stderr and carry the module name and build version.
// Debug records also carry the source location.
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
// The server reads LOG_LEVEL; the CLI takes --log-level.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("usdad", version)
//	    slog.Info("starting", "port", 8080)
//	}
//
// Explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("usda", version, "debug")
//
// Bridging to *log.Logger (for http.Server.ErrorLog):
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelError, false)
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "store opened",
//	    "module": "usdad",
//	    "version": "v1.0.0",
//	    "kind": "postgres"
//	}
package logging
