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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAddCorrelationID(t *testing.T) {
	t.Run("generates an id and exposes it", func(t *testing.T) {
		var sawLogger bool
		handler := AddCorrelationID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawLogger = logger.GetLogger(r.Context()) != nil
		}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions", nil))

		assert.True(t, sawLogger)
		assert.Len(t, rec.Header().Get(logger.CorrelationIDHeader), 36)
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		req.Header.Set(logger.CorrelationIDHeader, "abc-123")

		AddCorrelationID()(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(logger.CorrelationIDHeader))
	})
}

func TestCORS(t *testing.T) {
	handler := CORS("http://localhost:9002")(okHandler())

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/sessions", nil)
		req.Header.Set("Origin", "http://localhost:9002")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:9002", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("foreign origin gets no grant", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		req.Header.Set("Origin", "http://evil.example")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		req.Header.Set("Origin", "http://anything.example")

		CORS("*")(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "http://anything.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecovererOnPanic(t *testing.T) {
	handler := RecovererOnPanic()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(NewRateLimiter(2))(okHandler())
	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000"))
}

func TestRateLimit_Disabled(t *testing.T) {
	assert.Nil(t, NewRateLimiter(0))
	handler := RateLimit(nil)(okHandler())
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	t.Run("extracts only first IP from X-Forwarded-For", func(t *testing.T) {
		req := &http.Request{Header: http.Header{}}
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2, 192.0.2.3")

		assert.Equal(t, "203.0.113.1", getClientIP(req))
	})

	t.Run("header rotation maps to the same client", func(t *testing.T) {
		for _, xff := range []string{
			"203.0.113.1",
			"203.0.113.1, 198.51.100.2",
			"203.0.113.1,different-proxy-1,different-proxy-2",
		} {
			req := &http.Request{Header: http.Header{}}
			req.Header.Set("X-Forwarded-For", xff)
			assert.Equal(t, "203.0.113.1", getClientIP(req), xff)
		}
	})

	t.Run("uses X-Real-IP", func(t *testing.T) {
		req := &http.Request{Header: http.Header{}}
		req.Header.Set("X-Real-IP", " 198.51.100.7 ")

		assert.Equal(t, "198.51.100.7", getClientIP(req))
	})

	t.Run("strips port from RemoteAddr", func(t *testing.T) {
		req := &http.Request{Header: http.Header{}, RemoteAddr: "192.0.2.3:8080"}

		assert.Equal(t, "192.0.2.3", getClientIP(req))
	})
}
