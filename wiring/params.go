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

package wiring

import (
	"log/slog"
	"time"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/agentsvc"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/metadata"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/requests"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/config"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/controllers"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/services"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	// Middleware
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger

	// Controllers
	SessionController controllers.SessionController
	ChatController    controllers.ChatController
}

// TestClients contains all mock clients needed for testing
type TestClients struct {
	AgentClient agentsvc.AgentClient
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideCredentialProvider creates the metadata server credential provider
func ProvideCredentialProvider(cfg config.Config) (metadata.CredentialProvider, error) {
	return metadata.NewCredentialProvider(metadata.Config{
		TokenURL:       cfg.Metadata.TokenURL,
		Scopes:         cfg.Metadata.Scopes,
		MaxAttempts:    cfg.Metadata.MaxAttempts,
		BaseDelay:      time.Duration(cfg.Metadata.BaseDelayMilliseconds) * time.Millisecond,
		AttemptTimeout: time.Duration(cfg.Metadata.AttemptTimeoutSeconds) * time.Second,
	})
}

// ProvideAgentClient creates the remote agent client
func ProvideAgentClient(cfg config.Config, credentials metadata.CredentialProvider) (agentsvc.AgentClient, error) {
	retryAttempts := cfg.Agent.RetryAttemptsMax
	if retryAttempts == 0 {
		retryAttempts = -1
	}
	return agentsvc.NewAgentClient(&agentsvc.Config{
		AgentURL:           cfg.Agent.URL,
		CredentialProvider: credentials,
		AuthenticateAll:    cfg.Agent.AuthEnabled,
		RetryConfig: requests.RequestRetryConfig{
			RetryAttemptsMax: retryAttempts,
			AttemptTimeout:   time.Duration(cfg.Agent.RequestTimeoutSeconds) * time.Second,
		},
	})
}

// ProvideTestAgentClient extracts the AgentClient from TestClients
func ProvideTestAgentClient(testClients TestClients) agentsvc.AgentClient {
	return testClients.AgentClient
}

func ProvideSessionStore(cfg config.Config) *services.SessionStore {
	return services.NewSessionStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
}

func ProvideRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.ChatRateLimitPerMin)
}
