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

// Package catalog serves the read-only USDA reference API: foods, their
// serving measures, nutrients, food groups and the derived nutrient
// quantity of one serving.
//
// Routes are registered with server.WithHandler:
//
//	h := catalog.NewHandler(st)
//	s := server.New(server.WithHandler(h.Routes()))
//
// Every route answers GET only; any other method is rejected with 405 and
// "Allow: GET". Path identifiers must be digit strings, anything else is a
// 404. A trailing slash is accepted on every path.
//
// The food list, the nutrient list and the nutrient list of a serving are
// paged with ?page=N and wrapped in an Envelope.
package catalog
