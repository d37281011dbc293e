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

package server

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultAPIVersion is used when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix introduces a versioned media type, e.g.
	// application/vnd.usdarest.v1+json.
	vendorMediaPrefix = "application/vnd.usdarest.v"
)

// supportedAPIVersions lists the major versions this build serves.
var supportedAPIVersions = map[int]bool{
	1: true,
}

// negotiateAPIVersion picks the first supported version named in the Accept
// header and falls back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, mediaRange := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(mediaRange), ";")
		rest, ok := strings.CutPrefix(strings.TrimSpace(mediaType), vendorMediaPrefix)
		if !ok {
			continue
		}
		major, _, _ := strings.Cut(rest, "+")
		if version := "v" + major; isValidAPIVersion(version) {
			return version
		}
	}
	return DefaultAPIVersion
}

// isValidAPIVersion reports whether version is "v<major>" for a served major.
func isValidAPIVersion(version string) bool {
	digits, ok := strings.CutPrefix(version, "v")
	if !ok {
		return false
	}
	major, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	return supportedAPIVersions[major]
}

// SetAPIVersionHeader sets X-API-Version on the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
