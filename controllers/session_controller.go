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
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/config"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/services"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

const (
	formFieldPrompt = "prompt"
	formFieldPDF    = "pdf"
)

// SessionController defines the interface for chat session HTTP handlers
type SessionController interface {
	ListSessions(w http.ResponseWriter, r *http.Request)
	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
	SubmitPrompt(w http.ResponseWriter, r *http.Request)
	SummarizeSession(w http.ResponseWriter, r *http.Request)
}

type sessionController struct {
	chatService    services.ChatService
	maxUploadBytes int64
}

// NewSessionController creates a new session controller
func NewSessionController(chatService services.ChatService, cfg config.Config) SessionController {
	return &sessionController{
		chatService:    chatService,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

func (c *sessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, http.StatusOK, c.chatService.ListSessions(r.Context()))
}

func (c *sessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, http.StatusCreated, c.chatService.CreateSession(r.Context()))
}

func (c *sessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	sessionID := r.PathValue(utils.PathParamSessionID)

	session, err := c.chatService.GetSession(ctx, sessionID)
	if err != nil {
		log.Warn("GetSession: failed to get session", "sessionId", sessionID, "error", err)
		handleChatErrors(w, err, "Failed to get session")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, session)
}

func (c *sessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	sessionID := r.PathValue(utils.PathParamSessionID)

	if err := c.chatService.DeleteSession(ctx, sessionID); err != nil {
		log.Warn("DeleteSession: failed to delete session", "sessionId", sessionID, "error", err)
		handleChatErrors(w, err, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *sessionController) SubmitPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	sessionID := r.PathValue(utils.PathParamSessionID)

	if err := checkContentLength(r, c.maxUploadBytes); err != nil {
		log.Warn("SubmitPrompt: request too large", "sessionId", sessionID, "contentLength", r.ContentLength)
		handleChatErrors(w, err, "Invalid request body")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadBytes)
	prompt, attachment, err := c.readPrompt(r)
	if err != nil {
		log.Warn("SubmitPrompt: failed to read request", "sessionId", sessionID, "error", err)
		handleChatErrors(w, err, "Invalid request body")
		return
	}

	resp, err := c.chatService.SubmitPrompt(ctx, sessionID, prompt, attachment)
	if err != nil {
		log.Error("SubmitPrompt: failed to submit prompt", "sessionId", sessionID, "error", err)
		handleChatErrors(w, err, "Failed to submit prompt")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *sessionController) SummarizeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	sessionID := r.PathValue(utils.PathParamSessionID)

	summary, err := c.chatService.SummarizeSession(ctx, sessionID)
	if err != nil {
		log.Error("SummarizeSession: failed to summarize session", "sessionId", sessionID, "error", err)
		handleChatErrors(w, err, "Failed to summarize session")
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, summary)
}

// readPrompt accepts either a JSON body with an optional PDF data URI or a
// multipart form with a prompt field and an optional pdf file.
func (c *sessionController) readPrompt(r *http.Request) (string, *models.Attachment, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return c.readMultipartPrompt(r)
	}

	var req models.SubmitPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", nil, bodyError(err)
	}
	if req.PDFDataURI == "" {
		return req.Prompt, nil, nil
	}
	contentType, data, err := utils.DecodeDataURI(req.PDFDataURI)
	if err != nil {
		return "", nil, err
	}
	return req.Prompt, &models.Attachment{Name: req.PDFName, ContentType: contentType, Data: data}, nil
}

func (c *sessionController) readMultipartPrompt(r *http.Request) (string, *models.Attachment, error) {
	if err := r.ParseMultipartForm(c.maxUploadBytes); err != nil {
		return "", nil, bodyError(err)
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	prompt := r.FormValue(formFieldPrompt)
	file, header, err := r.FormFile(formFieldPDF)
	if errors.Is(err, http.ErrMissingFile) {
		return prompt, nil, nil
	}
	if err != nil {
		return "", nil, bodyError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, bodyError(err)
	}
	return prompt, &models.Attachment{
		Name:        header.Filename,
		ContentType: attachmentContentType(header.Header.Get("Content-Type"), data),
		Data:        data,
	}, nil
}

// attachmentContentType trusts the declared part type unless it is missing or generic.
func attachmentContentType(declared string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
		return mediaType
	}
	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mediaType
}

// checkContentLength rejects declared bodies over limit before any of it is read.
func checkContentLength(r *http.Request, limit int64) error {
	if r.ContentLength > limit {
		return fmt.Errorf("%w: limit is %d bytes", utils.ErrPayloadTooLarge, limit)
	}
	return nil
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", utils.ErrPayloadTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %v", utils.ErrBadRequest, err)
}
