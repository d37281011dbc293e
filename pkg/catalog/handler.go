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

package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/foodref/usdarest/pkg/defaults"
	"github.com/foodref/usdarest/pkg/derive"
	"github.com/foodref/usdarest/pkg/serializer"
	"github.com/foodref/usdarest/pkg/server"
	"github.com/foodref/usdarest/pkg/store"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/v1"

// Handler holds the store every route reads from.
type Handler struct {
	store    store.Store
	calc     *derive.Calculator
	pageSize int
}

// Option configures a Handler.
type Option func(*Handler)

// WithPageSize sets the number of records per page. Values outside
// 1..defaults.MaxPageSize are ignored.
func WithPageSize(size int) Option {
	return func(h *Handler) {
		if size > 0 && size <= defaults.MaxPageSize {
			h.pageSize = size
		}
	}
}

// NewHandler returns a Handler reading from st.
func NewHandler(st store.Store, opts ...Option) *Handler {
	h := &Handler{
		store:    st,
		calc:     derive.NewCalculator(st),
		pageSize: defaults.PageSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PageSize returns the configured page size.
func (h *Handler) PageSize() int {
	return h.pageSize
}

// resolver produces the response body of a GET request.
type resolver func(ctx context.Context, r *http.Request) (any, error)

// Routes returns the ServeMux patterns of the API mapped to their handlers.
// Each path is registered with and without a trailing slash.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	routes := make(map[string]http.HandlerFunc)
	add := func(path string, fn resolver) {
		hf := h.get(fn)
		routes[APIPrefix+path] = hf
		routes[APIPrefix+path+"/{$}"] = hf
	}

	add("/foods", h.listFoods)
	add("/foods/{food_id}", h.getFood)
	add("/foods/{food_id}/seqs", h.listSeqs)
	add("/foods/{food_id}/seqs/{seq_id}", h.getSeq)
	add("/foods/{food_id}/seqs/{seq_id}/nutrients", h.listSeqNutrients)
	add("/foods/{food_id}/seqs/{seq_id}/nutrients/{nutr_id}", h.getNutrientQuantity)
	add("/nutrients", h.listNutrients)
	add("/nutrients/{nutr_id}", h.getNutrient)
	add("/foodgroups", h.listFoodGroups)
	add("/foodgroups/{food_group_id}", h.getFoodGroup)

	return routes
}

// get adapts a resolver into a GET-only JSON handler with a request
// deadline. Results are recomputed per request and must not be cached.
func (h *Handler) get(fn resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !server.AllowGet(w, r) {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
		defer cancel()

		body, err := fn(ctx, r)
		if err != nil {
			slog.Debug("request not served",
				"requestID", server.RequestID(r.Context()),
				"path", strings.TrimSuffix(r.URL.Path, "/"),
				"error", err,
			)
			server.WriteErrorFromErr(w, r, err, "Failed to read reference data", nil)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		serializer.RespondJSON(w, http.StatusOK, body)
	}
}
