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

// Package metadata obtains short lived bearer credentials from the instance
// metadata server.
//
//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/credential_provider_fake.go . CredentialProvider:CredentialProviderMock
package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/requests"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/metrics"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
)

const (
	DefaultTokenURL       = "http://metadata.google.internal/computeMetadata/v1/instance/service-accounts/default/token"
	DefaultScope          = "https://www.googleapis.com/auth/cloud-platform"
	DefaultMaxAttempts    = 3
	DefaultBaseDelay      = 100 * time.Millisecond
	DefaultAttemptTimeout = 5 * time.Second

	// Upper bounds for Config.MaxAttempts and Config.BaseDelay.
	MaxAllowedAttempts  = 10
	MaxAllowedBaseDelay = time.Minute

	metadataFlavorHeader = "Metadata-Flavor"
	metadataFlavor       = "Google"
)

// CredentialProvider returns a fresh bearer credential on every call.
type CredentialProvider interface {
	// GetToken fetches a new access token. The returned token is never empty.
	GetToken(ctx context.Context) (string, error)
}

// Config holds the metadata endpoint and the retry policy.
// Zero values fall back to the Default* constants.
type Config struct {
	TokenURL string
	Scopes   []string
	// MaxAttempts is the total number of requests made, first attempt included.
	MaxAttempts int
	// BaseDelay is the wait after the first failed attempt; it doubles after each further failure.
	BaseDelay time.Duration
	// AttemptTimeout bounds a single request to the metadata server.
	AttemptTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if len(c.Scopes) == 0 {
		c.Scopes = []string{DefaultScope}
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.BaseDelay == 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.AttemptTimeout == 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}
	return c
}

func (c Config) validate() error {
	if c.MaxAttempts < 1 || c.MaxAttempts > MaxAllowedAttempts {
		return fmt.Errorf("max attempts must be between 1 and %d, got %d", MaxAllowedAttempts, c.MaxAttempts)
	}
	if c.BaseDelay < 0 || c.BaseDelay > MaxAllowedBaseDelay {
		return fmt.Errorf("base delay must be between 0 and %s, got %s", MaxAllowedBaseDelay, c.BaseDelay)
	}
	if c.AttemptTimeout < 0 {
		return fmt.Errorf("attempt timeout must not be negative, got %s", c.AttemptTimeout)
	}
	return nil
}

// Option customises a credential provider.
type Option func(*credentialProvider)

// WithHTTPClient sets the client used for each attempt.
func WithHTTPClient(client requests.HttpClient) Option {
	return func(p *credentialProvider) {
		p.httpClient = client
	}
}

// WithClock sets the clock used for backoff waits.
func WithClock(clk clock.Clock) Option {
	return func(p *credentialProvider) {
		p.clock = clk
	}
}

type credentialProvider struct {
	config     Config
	httpClient requests.HttpClient
	clock      clock.Clock
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// NewCredentialProvider creates a provider for the given configuration
func NewCredentialProvider(cfg Config, opts ...Option) (CredentialProvider, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid metadata credential config: %w", err)
	}
	p := &credentialProvider{
		config:     cfg,
		httpClient: &http.Client{},
		clock:      clock.WallClock,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GetToken runs up to MaxAttempts requests against the metadata server. Client
// errors stop the sequence at once; everything else is retried with exponential
// backoff. Each call keeps its own attempt counter.
func (p *credentialProvider) GetToken(ctx context.Context) (string, error) {
	log := logger.GetLogger(ctx)
	start := time.Now()
	defer func() {
		metrics.CredentialFetchDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		token   string
		attempt int
		lastErr error
	)
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			attempt++
			t, err := p.fetchToken(ctx, attempt)
			if err != nil {
				lastErr = err
				return err
			}
			token = t
			return nil
		},
		IsFatalError: func(err error) bool {
			return !isTransient(err)
		},
		NotifyFunc: func(err error, attempt int) {
			log.Debug("metadata: credential attempt failed",
				"attempt", attempt,
				"maxAttempts", p.config.MaxAttempts,
				"error", err)
		},
		Attempts:    p.config.MaxAttempts,
		Delay:       p.backoff(0, 1),
		BackoffFunc: p.backoff,
		Clock:       p.clock,
		Stop:        ctx.Done(),
	})
	if err == nil {
		return token, nil
	}
	if lastErr == nil {
		return "", fmt.Errorf("metadata: credential fetch did not run: %w", err)
	}

	var permanentErr *PermanentAuthError
	if errors.As(lastErr, &permanentErr) {
		log.Error("metadata: credential request rejected", "error", permanentErr)
		return "", permanentErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("metadata: credential fetch abandoned after %d attempts: %w", attempt, ctxErr)
	}
	var transientErr *TransientAuthError
	if errors.As(lastErr, &transientErr) {
		exhausted := &ExhaustedRetriesError{Attempts: attempt, Last: transientErr}
		log.Error("metadata: final error fetching access token", "attempts", attempt, "error", transientErr)
		return "", exhausted
	}
	return "", lastErr
}

// backoff returns BaseDelay * 2^(attempt-1), the wait that follows the given failed attempt.
func (p *credentialProvider) backoff(_ time.Duration, attempt int) time.Duration {
	return p.config.BaseDelay << uint(attempt-1)
}

// fetchToken performs a single request and classifies its outcome.
func (p *credentialProvider) fetchToken(ctx context.Context, attempt int) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, p.config.AttemptTimeout)
	defer cancel()

	req := &requests.HttpRequest{
		Name:   "metadata.fetchToken",
		URL:    p.config.TokenURL,
		Method: http.MethodGet,
	}
	req.SetHeader(metadataFlavorHeader, metadataFlavor).
		SetHeader("Cache-Control", "no-cache, no-store").
		SetQueryParam("scopes", strings.Join(p.config.Scopes, ","))

	var tokenResp tokenResponse
	err := requests.SendRequest(attemptCtx, p.httpClient, req).ScanResponse(&tokenResp, http.StatusOK)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("metadata.fetchToken: %w", ctx.Err())
		}
		var httpErr *requests.HttpError
		if errors.As(err, &httpErr) {
			if httpErr.IsClientError() {
				metrics.CredentialAttempts.WithLabelValues(metrics.OutcomePermanent).Inc()
				return "", &PermanentAuthError{
					StatusCode: httpErr.StatusCode,
					Status:     httpErr.Status,
					Body:       httpErr.Body,
				}
			}
			metrics.CredentialAttempts.WithLabelValues(metrics.OutcomeTransient).Inc()
			return "", &TransientAuthError{
				Attempt:    attempt,
				StatusCode: httpErr.StatusCode,
				Status:     httpErr.Status,
				Body:       httpErr.Body,
				Err:        httpErr,
			}
		}
		metrics.CredentialAttempts.WithLabelValues(metrics.OutcomeTransient).Inc()
		return "", &TransientAuthError{Attempt: attempt, Err: err}
	}

	if tokenResp.AccessToken == "" {
		metrics.CredentialAttempts.WithLabelValues(metrics.OutcomeTransient).Inc()
		return "", &TransientAuthError{Attempt: attempt, Err: errAccessTokenMissing}
	}
	metrics.CredentialAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return tokenResp.AccessToken, nil
}
