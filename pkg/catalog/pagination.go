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
	"math"
	"net/http"
	"net/url"
	"strconv"

	cerrors "github.com/foodref/usdarest/pkg/errors"
	"github.com/foodref/usdarest/pkg/store"
)

// pageParam is the query parameter selecting a page.
const pageParam = "page"

// Envelope wraps one page of a list. Next and Previous are absolute URLs,
// or null on the last and first page.
type Envelope[T any] struct {
	Count    int     `json:"count" yaml:"count"`
	Next     *string `json:"next" yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Results  []T     `json:"results" yaml:"results"`
}

// requestedPage reads ?page=N. A missing or empty value is page 1; anything
// that is not a positive integer, or whose offset would not fit in an int,
// is an invalid page.
func (h *Handler) requestedPage(r *http.Request) (store.Page, error) {
	p := store.Page{Number: 1, Size: h.pageSize}

	raw := r.URL.Query().Get(pageParam)
	if raw == "" {
		return p, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n-1 > math.MaxInt/h.pageSize {
		return p, invalidPage(raw)
	}
	p.Number = n
	return p, nil
}

// envelope builds the response for page p of a list with total rows.
// A page past the end of a non-empty list is an invalid page.
func envelope[T any](r *http.Request, p store.Page, total int, results []T) (*Envelope[T], error) {
	last := p.Pages(total)
	if p.Number > last {
		return nil, invalidPage(strconv.Itoa(p.Number))
	}

	env := &Envelope[T]{
		Count:   total,
		Results: results,
	}
	if env.Results == nil {
		env.Results = []T{}
	}
	if p.Number < last {
		env.Next = pageURL(r, p.Number+1)
	}
	if p.Number > 1 {
		env.Previous = pageURL(r, p.Number-1)
	}
	return env, nil
}

// pageURL returns the absolute URL of page n of the current request. The
// first page is addressed without a page parameter.
func pageURL(r *http.Request, n int) *string {
	u := url.URL{
		Scheme: requestScheme(r),
		Host:   r.Host,
		Path:   r.URL.Path,
	}

	q := r.URL.Query()
	if n <= 1 {
		q.Del(pageParam)
	} else {
		q.Set(pageParam, strconv.Itoa(n))
	}
	u.RawQuery = q.Encode()

	s := u.String()
	return &s
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func invalidPage(raw string) error {
	return cerrors.NewWithContext(cerrors.ErrCodeNotFound, "Invalid page",
		map[string]any{pageParam: raw})
}
