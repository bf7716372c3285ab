/*
 *     Copyright 2023 The Mirrorlist Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace is the prometheus namespace of all metrics.
	MetricsNamespace = "mirrorlist"
)

// Variables declared for metrics.
var (
	SearchCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "search_total",
		Help:      "Counter of the number of nearest-mirror selections.",
	})

	SearchUnknownCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "search_unknown_total",
		Help:      "Counter of the number of selections for unresolved addresses.",
	})

	SyncCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "sync_total",
		Help:      "Counter of the number of registry replacement cycles.",
	})

	SyncFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "sync_failure_total",
		Help:      "Counter of the number of failed registry replacement cycles.",
	})

	SyncSkippedMirrorCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "sync_skipped_mirror_total",
		Help:      "Counter of the number of malformed mirror descriptors skipped during sync.",
	})
)
