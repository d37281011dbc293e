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

// Package postgres implements store.Store over the pre-loaded usda_* tables
// in PostgreSQL using a pgx connection pool.
//
// Numeric columns are selected as text and parsed into decimals, so values
// reach the API with exactly the digits stored in the database. A query
// that matches no row is reported as absent, never as an error.
//
//	s, err := postgres.Connect(ctx, postgres.Config{URL: os.Getenv("USDA_DATABASE_URL")})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
package postgres
