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

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/agentsvc"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

// ChatService manages chat sessions and routes prompts to the remote agent
type ChatService interface {
	CreateSession(ctx context.Context) *models.Session
	ListSessions(ctx context.Context) []*models.Session
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SubmitPrompt(ctx context.Context, sessionID string, prompt string, attachment *models.Attachment) (*models.SubmitPromptResponse, error)
	SummarizeSession(ctx context.Context, sessionID string) (*models.SummaryResponse, error)
	Chat(ctx context.Context, prompt string) (string, error)
	AskDocument(ctx context.Context, pdfDataURI string, question string) (string, error)
}

type chatService struct {
	store *SessionStore
	agent agentsvc.AgentClient
	now   func() time.Time
}

// NewChatService creates a chat service with one empty session ready for use
func NewChatService(store *SessionStore, agent agentsvc.AgentClient) ChatService {
	store.Create()
	return &chatService{
		store: store,
		agent: agent,
		now:   time.Now,
	}
}

func (s *chatService) CreateSession(ctx context.Context) *models.Session {
	session := s.store.Create()
	logger.GetLogger(ctx).Info("session created", "sessionId", session.ID)
	return session
}

func (s *chatService) ListSessions(ctx context.Context) []*models.Session {
	return s.store.List()
}

func (s *chatService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.store.Get(sessionID)
}

func (s *chatService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(sessionID); err != nil {
		return err
	}
	logger.GetLogger(ctx).Info("session deleted", "sessionId", sessionID)
	return nil
}

func (s *chatService) SubmitPrompt(ctx context.Context, sessionID string, prompt string, attachment *models.Attachment) (*models.SubmitPromptResponse, error) {
	log := logger.GetLogger(ctx).With("sessionId", sessionID)

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt must not be empty", utils.ErrInvalidInput)
	}
	if attachment != nil && attachment.ContentType != utils.MimeTypePDF {
		return nil, fmt.Errorf("%w: Please upload a PDF file.", utils.ErrUnsupportedFileType)
	}

	userMsg := models.Message{
		ID:   s.newMessageID(),
		Role: models.MessageRoleUser,
		Text: prompt,
	}
	if attachment != nil {
		userMsg.PDFName = attachment.Name
	}
	if _, err := s.store.AppendMessage(sessionID, userMsg); err != nil {
		return nil, err
	}

	reply, err := s.ask(ctx, prompt, attachment)
	if err != nil {
		log.Error("agent request failed, rolling back prompt", "messageId", userMsg.ID, "error", err)
		s.store.RemoveMessage(sessionID, userMsg.ID)
		return nil, err
	}

	aiMsg := models.Message{
		ID:   s.newMessageID() + "-ai",
		Role: models.MessageRoleAssistant,
		Text: reply,
	}
	session, err := s.store.AppendMessage(sessionID, aiMsg)
	if err != nil {
		return nil, err
	}
	log.Debug("prompt answered", "messageId", aiMsg.ID, "withDocument", attachment != nil)
	return &models.SubmitPromptResponse{Message: aiMsg, Session: session}, nil
}

// newMessageID returns "msg-<unix nanos>-<uuid>".
func (s *chatService) newMessageID() string {
	return fmt.Sprintf("msg-%d-%s", s.now().UnixNano(), uuid.NewString())
}

func (s *chatService) ask(ctx context.Context, prompt string, attachment *models.Attachment) (string, error) {
	if attachment == nil {
		return s.Chat(ctx, prompt)
	}
	return s.AskDocument(ctx, utils.EncodeDataURI(attachment.Data, attachment.ContentType), prompt)
}

func (s *chatService) SummarizeSession(ctx context.Context, sessionID string) (*models.SummaryResponse, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Messages) == 0 {
		return nil, fmt.Errorf("%w: session has no messages", utils.ErrInvalidInput)
	}

	resp, err := s.agent.SummarizeSession(ctx, agentsvc.SummarizeSessionRequest{
		SessionText: RenderTranscript(session.Messages),
	})
	if err != nil {
		return nil, err
	}
	return &models.SummaryResponse{SessionID: session.ID, Summary: resp.Summary}, nil
}

func (s *chatService) Chat(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt must not be empty", utils.ErrInvalidInput)
	}
	resp, err := s.agent.Chat(ctx, agentsvc.ChatRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (s *chatService) AskDocument(ctx context.Context, pdfDataURI string, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question must not be empty", utils.ErrInvalidInput)
	}
	resp, err := s.agent.DocumentQA(ctx, agentsvc.DocumentQARequest{
		PDFDataURI: pdfDataURI,
		Question:   question,
	})
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

// RenderTranscript formats messages as "role: text" lines.
func RenderTranscript(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Text))
	}
	return strings.Join(lines, "\n")
}
