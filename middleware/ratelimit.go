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
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

const (
	limiterIdleTTL         = 10 * time.Minute
	limiterCleanupInterval = 5 * time.Minute
)

// RateLimiter throttles each client IP to a fixed number of requests per minute.
type RateLimiter struct {
	perMinute int
	limiters  *cache.Cache
}

// NewRateLimiter returns nil when perMinute is not positive, which disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		perMinute: perMinute,
		limiters:  cache.New(limiterIdleTTL, limiterCleanupInterval),
	}
}

// Allow reports whether clientIP may issue another request now.
func (l *RateLimiter) Allow(clientIP string) bool {
	return l.limiterFor(clientIP).Allow()
}

func (l *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
	// Add fails when another request already stored a limiter for this IP
	if err := l.limiters.Add(clientIP, limiter, cache.DefaultExpiration); err != nil {
		if existing, found := l.limiters.Get(clientIP); found {
			limiter = existing.(*rate.Limiter)
		}
	}
	l.limiters.SetDefault(clientIP, limiter)
	return limiter
}

// RateLimit rejects requests over the limit with 429. A nil limiter passes everything through.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)
			if !limiter.Allow(clientIP) {
				logger.GetLogger(r.Context()).Warn("rate limit exceeded", "clientIP", clientIP)
				w.Header().Set("Retry-After", strconv.Itoa(60/limiter.perMinute+1))
				utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (parse only first IP)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Only trust the leftmost IP (actual client)
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	// Fall back to RemoteAddr (strip port if present)
	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}
