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

// Package serializer reads and writes structured documents as JSON, YAML or
// aligned text tables, and writes JSON HTTP responses.
//
// # Reading
//
// Datasets and other documents are read from a local path or an http(s) URL.
// The format is chosen from the file extension:
//
//	ds, err := serializer.FromFile[nutrition.Dataset](ctx, "sr28.yaml")
//
// Remote documents are downloaded with HttpReader, which uses the timeouts
// from pkg/defaults and a pooled transport with TLS 1.2 as the floor.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, v); err != nil {
//	    return err
//	}
//
// The table format prints values implementing Tabular as columns and
// flattens anything else into FIELD/VALUE rows.
//
// # HTTP
//
// RespondJSON encodes the body before writing headers so an encoding failure
// never produces a partial 200 response.
package serializer
