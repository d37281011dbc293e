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

package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "usda_store_query_duration_seconds",
			Help:    "Duration of dataset queries in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"store", "query"},
	)

	lookupMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usda_store_lookup_misses_total",
			Help: "Total number of point lookups that matched no row",
		},
		[]string{"store", "entity"},
	)
)

// ObserveQuery records the duration of a query that started at start.
// Use it with defer:
//
//	defer store.ObserveQuery("postgres", "food", time.Now())
func ObserveQuery(kind, query string, start time.Time) {
	queryDuration.WithLabelValues(kind, query).Observe(time.Since(start).Seconds())
}

// RecordMiss counts a point lookup that found nothing.
func RecordMiss(kind, entity string) {
	lookupMisses.WithLabelValues(kind, entity).Inc()
}
