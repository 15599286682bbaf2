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

package controllers

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/agentsvc"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/config"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/services"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

// ChatController serves the stateless chat and document Q&A flows
type ChatController interface {
	Chat(w http.ResponseWriter, r *http.Request)
	DocumentQA(w http.ResponseWriter, r *http.Request)
}

type chatController struct {
	chatService    services.ChatService
	maxUploadBytes int64
}

// NewChatController creates a new chat controller
func NewChatController(chatService services.ChatService, cfg config.Config) ChatController {
	return &chatController{
		chatService:    chatService,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

func (c *chatController) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	if err := checkContentLength(r, c.maxUploadBytes); err != nil {
		handleChatErrors(w, err, "Invalid request body")
		return
	}
	var req agentsvc.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, c.maxUploadBytes)).Decode(&req); err != nil {
		log.Warn("Chat: failed to decode request", "error", err)
		handleChatErrors(w, bodyError(err), "Invalid request body")
		return
	}

	reply, err := c.chatService.Chat(ctx, req.Prompt)
	if err != nil {
		log.Error("Chat: agent request failed", "error", err)
		handleChatErrors(w, err, "Failed to get a response")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, agentsvc.ChatResponse{Response: reply})
}

func (c *chatController) DocumentQA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	if err := checkContentLength(r, c.maxUploadBytes); err != nil {
		handleChatErrors(w, err, "Invalid request body")
		return
	}
	var req agentsvc.DocumentQARequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, c.maxUploadBytes)).Decode(&req); err != nil {
		log.Warn("DocumentQA: failed to decode request", "error", err)
		handleChatErrors(w, bodyError(err), "Invalid request body")
		return
	}

	answer, err := c.chatService.AskDocument(ctx, req.PDFDataURI, req.Question)
	if err != nil {
		log.Error("DocumentQA: agent request failed", "error", err)
		handleChatErrors(w, err, "Failed to get an answer")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, agentsvc.DocumentQAResponse{Answer: answer})
}
