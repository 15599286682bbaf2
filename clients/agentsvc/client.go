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

// Package agentsvc provides the client for the remote hosted agent.
//
//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/agent_client_fake.go . AgentClient:AgentClientMock
package agentsvc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/metadata"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/requests"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/metrics"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

// placeholderAgentURL is the value shipped in the sample .env file.
const placeholderAgentURL = "YOUR_VERTEX_AGENT_URL_HERE"

// Flow names used in request names and metrics
const (
	FlowChat       = "chat"
	FlowDocumentQA = "document_qa"
	FlowSummarize  = "summarize_session"
)

// Config contains configuration for the agent client
type Config struct {
	AgentURL string
	// CredentialProvider supplies the bearer token for authenticated flows
	CredentialProvider metadata.CredentialProvider
	// AuthenticateAll attaches the bearer token to chat and document Q&A requests too.
	// The summarizer is always authenticated.
	AuthenticateAll bool
	RetryConfig     requests.RequestRetryConfig
	// HTTPClient overrides the retrying client, mainly for tests
	HTTPClient requests.HttpClient
}

// AgentClient sends prompts to the remote agent
type AgentClient interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	DocumentQA(ctx context.Context, req DocumentQARequest) (*DocumentQAResponse, error)
	SummarizeSession(ctx context.Context, req SummarizeSessionRequest) (*SummarizeSessionResponse, error)
}

type agentClient struct {
	agentURL        string
	credentials     metadata.CredentialProvider
	authenticateAll bool
	httpClient      requests.HttpClient
}

// NewAgentClient creates a new agent client
func NewAgentClient(cfg *Config) (AgentClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("agent client config is required")
	}
	if cfg.CredentialProvider == nil {
		return nil, fmt.Errorf("credential provider is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = requests.NewRetryableHTTPClient(&http.Client{}, cfg.RetryConfig)
	}
	return &agentClient{
		agentURL:        strings.TrimSpace(cfg.AgentURL),
		credentials:     cfg.CredentialProvider,
		authenticateAll: cfg.AuthenticateAll,
		httpClient:      httpClient,
	}, nil
}

func (c *agentClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.post(ctx, FlowChat, req, c.authenticateAll, &resp); err != nil {
		return nil, err
	}
	if resp.Response == "" {
		return nil, fmt.Errorf("%w: the response from the agent was missing the 'response' field", utils.ErrAgentInvalidResponse)
	}
	return &resp, nil
}

func (c *agentClient) DocumentQA(ctx context.Context, req DocumentQARequest) (*DocumentQAResponse, error) {
	if err := utils.ValidatePDFDataURI(req.PDFDataURI); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	var resp DocumentQAResponse
	if err := c.post(ctx, FlowDocumentQA, req, c.authenticateAll, &resp); err != nil {
		return nil, err
	}
	if resp.Answer == "" {
		return nil, fmt.Errorf("%w: the response from the agent was missing the 'answer' field", utils.ErrAgentInvalidResponse)
	}
	return &resp, nil
}

func (c *agentClient) SummarizeSession(ctx context.Context, req SummarizeSessionRequest) (*SummarizeSessionResponse, error) {
	payload := summarizeQuery{Query: "Summarize this session: " + req.SessionText}
	var raw json.RawMessage
	if err := c.post(ctx, FlowSummarize, payload, true, &raw); err != nil {
		return nil, err
	}

	var out summarizeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode summary: %v", utils.ErrAgentInvalidResponse, err)
	}
	if out.Output == nil || out.Output.Text == nil {
		var dump bytes.Buffer
		if err := json.Indent(&dump, raw, "", "  "); err != nil {
			dump.Reset()
			dump.Write(raw)
		}
		return nil, fmt.Errorf("%w: the response from the agent was missing the 'output.text' field. Response: %s",
			utils.ErrAgentInvalidResponse, dump.String())
	}
	return &SummarizeSessionResponse{Summary: *out.Output.Text}, nil
}

func (c *agentClient) configured() bool {
	return c.agentURL != "" && c.agentURL != placeholderAgentURL
}

// post sends body to the agent and decodes a 200 reply into out.
func (c *agentClient) post(ctx context.Context, flow string, body any, authenticate bool, out any) (err error) {
	log := logger.GetLogger(ctx).With("flow", flow)
	start := time.Now()
	defer func() {
		metrics.ObserveAgentRequest(flow, start, err)
	}()

	if !c.configured() {
		return utils.ErrAgentNotConfigured
	}

	req := &requests.HttpRequest{
		Name:   "agent." + flow,
		URL:    c.agentURL,
		Method: http.MethodPost,
	}
	if _, err := req.SetJson(body); err != nil {
		return err
	}
	if authenticate {
		token, err := metadata.NewTokenSource(ctx, c.credentials).Token()
		if err != nil {
			return fmt.Errorf("%w: failed to obtain access token: %w", utils.ErrAgentRequestFailed, err)
		}
		req.SetHeader("Authorization", token.Type()+" "+token.AccessToken)
	}

	err = requests.SendRequest(ctx, c.httpClient, req).ScanResponse(out, http.StatusOK)
	if err != nil {
		var httpErr *requests.HttpError
		if errors.As(err, &httpErr) {
			log.Warn("agent request returned error status", "status", httpErr.StatusCode)
			return fmt.Errorf("%w: %s - %s", utils.ErrAgentRequestFailed, httpErr.Status, strings.TrimSpace(httpErr.Body))
		}
		return fmt.Errorf("%w: %w", utils.ErrAgentRequestFailed, err)
	}
	log.Debug("agent request completed", "duration", time.Since(start).String())
	return nil
}
