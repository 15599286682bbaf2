// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

package requests

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RetryableHTTPClient wraps a retryablehttp.Client so it satisfies HttpClient.
// Request bodies are buffered and replayed on every attempt.
type RetryableHTTPClient struct {
	client *retryablehttp.Client
	config RequestRetryConfig
}

// Compile-time check that RetryableHTTPClient implements HttpClient
var _ HttpClient = (*RetryableHTTPClient)(nil)

// NewRetryableHTTPClient creates a new RetryableHTTPClient.
// Config is optional - defaults will be used if not provided.
func NewRetryableHTTPClient(httpClient *http.Client, config ...RequestRetryConfig) *RetryableHTTPClient {
	var cfg RequestRetryConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	cfg = cfg.withDefaults()

	hc := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	if hc.Timeout == 0 {
		hc.Timeout = cfg.AttemptTimeout
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = hc
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.RetryMax = cfg.RetryAttemptsMax
	rc.Logger = slog.Default()
	rc.Backoff = func(min, max time.Duration, attemptNum int, _ *http.Response) time.Duration {
		return calculateBackoff(min, max, attemptNum+1)
	}
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		method := http.MethodGet
		if resp.Request != nil {
			method = resp.Request.Method
		}
		return cfg.shouldRetryStatus(method, resp.StatusCode), nil
	}
	// Hand the last response back to the caller instead of a generic "giving up" error
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &RetryableHTTPClient{
		client: rc,
		config: cfg,
	}
}

// Do executes the HTTP request with retry logic.
func (c *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	rreq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare retryable request: %w", err)
	}
	resp, err := c.client.Do(rreq)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, fmt.Errorf("context cancelled or timed out: %w", ctxErr)
		}
		return resp, err
	}
	return resp, nil
}

// calculateBackoff returns an exponential backoff duration with jitter, capped by max.
// Uses "equal jitter" strategy: base/2 + random(0, base/2), giving a range of [base/2, base].
// This prevents thundering herd when many clients retry simultaneously.
func calculateBackoff(min, max time.Duration, attempt int) time.Duration {
	// Calculate base exponential backoff: 2^(attempt-1) * min
	base := min * time.Duration(1<<uint(attempt-1))
	if base > max {
		base = max
	}
	// Equal jitter: random value between base/2 and base
	halfBase := base / 2
	if halfBase <= 0 {
		return base
	}
	return halfBase + time.Duration(rand.Int64N(int64(halfBase)))
}
