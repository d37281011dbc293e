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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/foodref/usdarest/pkg/errors"
	"github.com/foodref/usdarest/pkg/nutrition"
	"github.com/foodref/usdarest/pkg/resource"
	"github.com/foodref/usdarest/pkg/server"
	"github.com/foodref/usdarest/pkg/store"
	"github.com/foodref/usdarest/pkg/store/memory"
)

func newTestAPI(t *testing.T, st store.Store, opts ...Option) http.Handler {
	t.Helper()
	if st == nil {
		sample, err := memory.Sample()
		require.NoError(t, err)
		st = sample
	}
	h := NewHandler(st, opts...)
	return server.New(server.WithHandler(h.Routes())).Handler()
}

func get(t *testing.T, api http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	api.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestNutrientQuantity(t *testing.T) {
	api := newTestAPI(t, nil)

	w := get(t, api, "/v1/foods/01001/seqs/1/nutrients/203")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	q := decode[resource.NutrientQuantity](t, w)
	assert.Equal(t, resource.NutrientQuantity{FoodID: "01001", SeqID: "1", NutrID: "203", Value: "0.0425"}, q)

	// Same request, same answer.
	again := decode[resource.NutrientQuantity](t, get(t, api, "/v1/foods/01001/seqs/1/nutrients/203/"))
	assert.Equal(t, q, again)
}

func TestNutrientQuantityValues(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/v1/foods/01001/seqs/3/nutrients/204", "184.1197"}, // 81.110 * 227.0 / 100
		{"/v1/foods/09003/seqs/4/nutrients/401", "2.5070"},   // 4.600 * 54.5 / 100
		{"/v1/foods/01001/seqs/2/nutrients/291", "0.0000"},
		{"/v1/foods/11090/seqs/2/nutrients/401", "542.3360"}, // 89.200 * 608.0 / 100
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, api, tt.path)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decode[resource.NutrientQuantity](t, w).Value)
		})
	}
}

func TestNotFound(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		name string
		path string
	}{
		{"unknown food", "/v1/foods/99999"},
		{"non-digit food", "/v1/foods/butter"},
		{"seqs of unknown food", "/v1/foods/99999/seqs"},
		{"unknown seq", "/v1/foods/01001/seqs/9"},
		{"nutrients of unknown seq", "/v1/foods/01001/seqs/9/nutrients"},
		{"quantity without measurement", "/v1/foods/09003/seqs/1/nutrients/601"},
		{"quantity without weight", "/v1/foods/01001/seqs/9/nutrients/203"},
		{"quantity of unknown food", "/v1/foods/99999/seqs/1/nutrients/203"},
		{"unknown nutrient", "/v1/nutrients/999"},
		{"non-digit nutrient", "/v1/nutrients/protein"},
		{"unknown food group", "/v1/foodgroups/0200"},
		{"unknown path", "/v1/recipes"},
		{"too deep", "/v1/foods/01001/seqs/1/nutrients/203/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, api, tt.path)
			require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

			resp := decode[server.ErrorResponse](t, w)
			assert.Equal(t, string(cerrors.ErrCodeNotFound), resp.Code)
			assert.False(t, resp.Retryable)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestReadOnly(t *testing.T) {
	api := newTestAPI(t, nil)

	paths := []string{
		"/v1/foods",
		"/v1/foods/01001",
		"/v1/foods/01001/seqs",
		"/v1/foods/01001/seqs/1",
		"/v1/foods/01001/seqs/1/nutrients",
		"/v1/foods/01001/seqs/1/nutrients/203",
		"/v1/nutrients",
		"/v1/nutrients/203",
		"/v1/foodgroups",
		"/v1/foodgroups/0100",
	}
	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	before := map[string]string{}
	for _, p := range paths {
		before[p] = get(t, api, p).Body.String()
	}

	for _, p := range paths {
		for _, m := range methods {
			t.Run(m+" "+p, func(t *testing.T) {
				w := httptest.NewRecorder()
				api.ServeHTTP(w, httptest.NewRequest(m, p, strings.NewReader(`{"food_id":"01001","long_desc":"changed"}`)))

				require.Equal(t, http.StatusMethodNotAllowed, w.Code)
				assert.Equal(t, "GET", w.Header().Get("Allow"))
				assert.Equal(t, string(cerrors.ErrCodeMethodNotAllowed), decode[server.ErrorResponse](t, w).Code)
			})
		}
	}

	for _, p := range paths {
		w := get(t, api, p)
		assert.Equal(t, http.StatusOK, w.Code, p)
		assert.Equal(t, before[p], w.Body.String(), p)
	}
}

func TestFoodDetail(t *testing.T) {
	api := newTestAPI(t, nil)

	for _, path := range []string{"/v1/foods/09003", "/v1/foods/09003/"} {
		w := get(t, api, path)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		d := decode[resource.FoodDetail](t, w)
		assert.Equal(t, "09003", d.FoodID)
		assert.Equal(t, "0900", d.FoodGroupID)
		assert.Equal(t, "Core and stem", d.RefuseDesc)
		require.NotNil(t, d.Refuse)
		assert.Equal(t, "10", *d.Refuse)
		require.NotNil(t, d.ChoFactor)
		assert.Equal(t, "3.60", *d.ChoFactor)
	}
}

func TestSeqs(t *testing.T) {
	api := newTestAPI(t, nil)

	w := get(t, api, "/v1/foods/01001/seqs")
	require.Equal(t, http.StatusOK, w.Code)
	seqs := decode[[]resource.Seq](t, w)
	assert.Equal(t, []resource.Seq{
		{Food: "01001", Seq: "1"},
		{Food: "01001", Seq: "2"},
		{Food: "01001", Seq: "3"},
		{Food: "01001", Seq: "4"},
	}, seqs)

	w = get(t, api, "/v1/foods/09003/seqs/4")
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "0.500", detail["amount"])
	assert.Equal(t, "54.5", detail["grams"])
	assert.Equal(t, "cup slices", detail["measure_desc"])
	assert.Nil(t, detail["num_data_pts"])
	assert.Contains(t, detail, "std_dev")

	d := decode[resource.SeqDetail](t, get(t, api, "/v1/foods/01009/seqs/1"))
	require.NotNil(t, d.NumDataPts)
	assert.Equal(t, "9", *d.NumDataPts)
	require.NotNil(t, d.StdDev)
	assert.Equal(t, "7.263", *d.StdDev)
}

func TestPagination(t *testing.T) {
	api := newTestAPI(t, nil, WithPageSize(2))

	t.Run("first page", func(t *testing.T) {
		env := decode[Envelope[resource.FoodSummary]](t, get(t, api, "/v1/foods"))
		assert.Equal(t, 5, env.Count)
		assert.Nil(t, env.Previous)
		require.NotNil(t, env.Next)
		assert.Equal(t, "http://example.com/v1/foods?page=2", *env.Next)
		require.Len(t, env.Results, 2)
		assert.Equal(t, "01001", env.Results[0].FoodID)
		assert.Equal(t, "Butter, salted", env.Results[0].LongDesc)
	})

	t.Run("middle page", func(t *testing.T) {
		env := decode[Envelope[resource.FoodSummary]](t, get(t, api, "/v1/foods?page=2"))
		require.NotNil(t, env.Previous)
		assert.Equal(t, "http://example.com/v1/foods", *env.Previous)
		require.NotNil(t, env.Next)
		assert.Equal(t, "http://example.com/v1/foods?page=3", *env.Next)
		assert.Equal(t, "01009", env.Results[0].FoodID)
	})

	t.Run("last page", func(t *testing.T) {
		env := decode[Envelope[resource.FoodSummary]](t, get(t, api, "/v1/foods/?page=3"))
		assert.Nil(t, env.Next)
		require.NotNil(t, env.Previous)
		assert.Equal(t, "http://example.com/v1/foods/?page=2", *env.Previous)
		require.Len(t, env.Results, 1)
		assert.Equal(t, "11090", env.Results[0].FoodID)
	})

	t.Run("forwarded scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/nutrients", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		api.ServeHTTP(w, req)

		env := decode[Envelope[resource.NutrientSummary]](t, w)
		require.NotNil(t, env.Next)
		assert.Equal(t, "https://example.com/v1/nutrients?page=2", *env.Next)
	})

	for _, page := range []string{"4", "0", "-1", "abc", "1.5",
		"9223372036854775807", "307445734561825862", "99999999999999999999"} {
		t.Run("invalid page "+page, func(t *testing.T) {
			w := get(t, api, "/v1/foods?page="+page)
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Invalid page", decode[server.ErrorResponse](t, w).Message)
		})
	}
}

func TestNutrientLists(t *testing.T) {
	api := newTestAPI(t, nil, WithPageSize(2))

	env := decode[Envelope[resource.NutrientSummary]](t, get(t, api, "/v1/nutrients"))
	assert.Equal(t, 9, env.Count)
	assert.Equal(t, []resource.NutrientSummary{
		{NutrID: "255", NutrDesc: "Water"},
		{NutrID: "208", NutrDesc: "Energy"},
	}, env.Results)

	// Only nutrients measured for the food are listed.
	env = decode[Envelope[resource.NutrientSummary]](t, get(t, api, "/v1/foods/11090/seqs/1/nutrients"))
	assert.Equal(t, 4, env.Count)
	assert.Equal(t, "208", env.Results[0].NutrID)
	assert.Equal(t, "203", env.Results[1].NutrID)

	detail := decode[resource.NutrientDetail](t, get(t, api, "/v1/nutrients/203"))
	assert.Equal(t, resource.NutrientDetail{
		NutrID:        "203",
		Units:         "g",
		Tagname:       "PROCNT",
		NutrDesc:      "Protein",
		DecimalPlaces: "2",
		SROrder:       "600",
	}, detail)
}

func TestFoodGroups(t *testing.T) {
	api := newTestAPI(t, nil)

	groups := decode[[]resource.FoodGroup](t, get(t, api, "/v1/foodgroups"))
	require.Len(t, groups, 4)
	assert.Equal(t, "0100", groups[0].FoodGroupID)

	group := decode[resource.FoodGroup](t, get(t, api, "/v1/foodgroups/0900/"))
	assert.Equal(t, resource.FoodGroup{FoodGroupID: "0900", FoodGroupDesc: "Fruits and Fruit Juices"}, group)
}

func TestWithPageSizeBounds(t *testing.T) {
	st, err := memory.Sample()
	require.NoError(t, err)

	assert.Equal(t, 30, NewHandler(st).PageSize())
	assert.Equal(t, 10, NewHandler(st, WithPageSize(10)).PageSize())
	assert.Equal(t, 30, NewHandler(st, WithPageSize(0)).PageSize())
	assert.Equal(t, 30, NewHandler(st, WithPageSize(100000)).PageSize())
}

// faultyStore fails every food lookup with err.
type faultyStore struct {
	store.Store
	err error
}

func (f faultyStore) Food(context.Context, string) (*nutrition.Food, bool, error) {
	return nil, false, f.err
}

func (f faultyStore) Measurement(context.Context, string, string) (*nutrition.Measurement, bool, error) {
	return nil, false, f.err
}

func TestStoreFaults(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   cerrors.ErrorCode
	}{
		{"storage fault", cerrors.Wrap(cerrors.ErrCodeInternal, "query failed", errors.New("conn reset")), http.StatusInternalServerError, cerrors.ErrCodeInternal},
		{"deadline", cerrors.Wrap(cerrors.ErrCodeTimeout, "query timed out", context.DeadlineExceeded), http.StatusGatewayTimeout, cerrors.ErrCodeTimeout},
		{"unstructured", errors.New("boom"), http.StatusInternalServerError, cerrors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, faultyStore{err: tt.err})

			for _, path := range []string{"/v1/foods/01001", "/v1/foods/01001/seqs/1/nutrients/203"} {
				w := get(t, api, path)
				require.Equal(t, tt.status, w.Code, path)

				resp := decode[server.ErrorResponse](t, w)
				assert.Equal(t, string(tt.code), resp.Code, path)
				assert.True(t, resp.Retryable, path)
			}
		})
	}
}
