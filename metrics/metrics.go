// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agent_chat"

// Credential attempt outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeTransient = "transient"
	OutcomePermanent = "permanent"
)

var (
	// CredentialAttempts counts individual requests made to the metadata server.
	CredentialAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credential_attempts_total",
			Help:      "Total credential fetch attempts against the metadata server",
		},
		[]string{"outcome"},
	)

	// CredentialFetchDuration observes the total time spent in one GetToken call, backoff included.
	CredentialFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "credential_fetch_duration_seconds",
			Help:      "Time taken to obtain a credential including retries",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// AgentRequests counts calls to the remote agent by flow and result.
	AgentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_requests_total",
			Help:      "Total requests sent to the remote agent",
		},
		[]string{"flow", "status"},
	)

	// AgentRequestDuration observes remote agent latency per flow.
	AgentRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "agent_request_duration_seconds",
			Help:      "Remote agent request latency",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"flow"},
	)

	// HTTPRequests counts inbound API requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total inbound HTTP requests",
		},
		[]string{"method", "code"},
	)
)

// ObserveAgentRequest records the result of one remote agent call.
func ObserveAgentRequest(flow string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	AgentRequests.WithLabelValues(flow, status).Inc()
	AgentRequestDuration.WithLabelValues(flow).Observe(time.Since(start).Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type codeRecorder struct {
	http.ResponseWriter
	code int
}

func (r *codeRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts inbound requests by method and response code.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &codeRecorder{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(rec, r)
			HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rec.code)).Inc()
		})
	}
}
