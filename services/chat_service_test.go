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
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/agentsvc"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/clients/clientmocks"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

func newTestChatService(agent *clientmocks.AgentClientMock) *chatService {
	svc := NewChatService(NewSessionStore(time.Hour), agent).(*chatService)
	var tick int64
	var mu sync.Mutex
	svc.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick++
		return time.Unix(0, tick)
	}
	return svc
}

func TestChatService_Sessions(t *testing.T) {
	ctx := context.Background()
	svc := newTestChatService(&clientmocks.AgentClientMock{})

	sessions := svc.ListSessions(ctx)
	require.Len(t, sessions, 1)
	assert.Equal(t, "session-1", sessions[0].ID)
	assert.Equal(t, "Session 1", sessions[0].Name)
	assert.Empty(t, sessions[0].Messages)

	second := svc.CreateSession(ctx)
	third := svc.CreateSession(ctx)
	assert.Equal(t, "session-2", second.ID)
	assert.Equal(t, "Session 3", third.Name)

	ids := []string{}
	for _, s := range svc.ListSessions(ctx) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"session-1", "session-2", "session-3"}, ids)

	require.NoError(t, svc.DeleteSession(ctx, "session-2"))
	_, err := svc.GetSession(ctx, "session-2")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	assert.ErrorIs(t, svc.DeleteSession(ctx, "session-2"), utils.ErrSessionNotFound)

	// ids are never reused
	assert.Equal(t, "session-4", svc.CreateSession(ctx).ID)
}

func TestChatService_SubmitPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("chat prompt appends both messages", func(t *testing.T) {
		agent := &clientmocks.AgentClientMock{
			ChatFunc: func(ctx context.Context, req agentsvc.ChatRequest) (*agentsvc.ChatResponse, error) {
				return &agentsvc.ChatResponse{Response: "Hi! " + req.Prompt}, nil
			},
		}
		svc := newTestChatService(agent)

		resp, err := svc.SubmitPrompt(ctx, "session-1", "  hello  ", nil)

		require.NoError(t, err)
		assert.Equal(t, models.MessageRoleAssistant, resp.Message.Role)
		assert.Equal(t, "Hi! hello", resp.Message.Text)
		assert.Regexp(t, `^msg-2-[0-9a-f-]{36}-ai$`, resp.Message.ID)
		require.Len(t, resp.Session.Messages, 2)
		userMsg := resp.Session.Messages[0]
		assert.Regexp(t, `^msg-1-[0-9a-f-]{36}$`, userMsg.ID)
		assert.Equal(t, models.Message{ID: userMsg.ID, Role: models.MessageRoleUser, Text: "hello"}, userMsg)
		assert.Len(t, agent.ChatCalls(), 1)
		assert.Empty(t, agent.DocumentQACalls())
	})

	t.Run("pdf attachment goes to document Q&A", func(t *testing.T) {
		agent := &clientmocks.AgentClientMock{
			DocumentQAFunc: func(ctx context.Context, req agentsvc.DocumentQARequest) (*agentsvc.DocumentQAResponse, error) {
				return &agentsvc.DocumentQAResponse{Answer: "page 3"}, nil
			},
		}
		svc := newTestChatService(agent)

		resp, err := svc.SubmitPrompt(ctx, "session-1", "where?", &models.Attachment{
			Name:        "report.pdf",
			ContentType: utils.MimeTypePDF,
			Data:        []byte("%PDF-1.4"),
		})

		require.NoError(t, err)
		assert.Equal(t, "page 3", resp.Message.Text)
		assert.Equal(t, "report.pdf", resp.Session.Messages[0].PDFName)
		calls := agent.DocumentQACalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "where?", calls[0].Req.Question)
		assert.Equal(t, "data:application/pdf;base64,JVBERi0xLjQ=", calls[0].Req.PDFDataURI)
	})

	t.Run("rejects blank prompt", func(t *testing.T) {
		svc := newTestChatService(&clientmocks.AgentClientMock{})

		_, err := svc.SubmitPrompt(ctx, "session-1", " \n\t", nil)

		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("rejects non-pdf attachment", func(t *testing.T) {
		svc := newTestChatService(&clientmocks.AgentClientMock{})

		_, err := svc.SubmitPrompt(ctx, "session-1", "read this", &models.Attachment{
			Name:        "notes.txt",
			ContentType: "text/plain",
			Data:        []byte("hello"),
		})

		assert.ErrorIs(t, err, utils.ErrUnsupportedFileType)
		session, _ := svc.GetSession(ctx, "session-1")
		assert.Empty(t, session.Messages)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := newTestChatService(&clientmocks.AgentClientMock{})

		_, err := svc.SubmitPrompt(ctx, "session-9", "hello", nil)

		assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	})

	t.Run("agent failure rolls back the user message", func(t *testing.T) {
		agentErr := fmt.Errorf("%w: 500 Internal Server Error", utils.ErrAgentRequestFailed)
		agent := &clientmocks.AgentClientMock{
			ChatFunc: func(ctx context.Context, req agentsvc.ChatRequest) (*agentsvc.ChatResponse, error) {
				if req.Prompt == "fail" {
					return nil, agentErr
				}
				return &agentsvc.ChatResponse{Response: "ok"}, nil
			},
		}
		svc := newTestChatService(agent)
		_, err := svc.SubmitPrompt(ctx, "session-1", "first", nil)
		require.NoError(t, err)

		_, err = svc.SubmitPrompt(ctx, "session-1", "fail", nil)

		assert.True(t, errors.Is(err, utils.ErrAgentRequestFailed))
		session, _ := svc.GetSession(ctx, "session-1")
		require.Len(t, session.Messages, 2)
		assert.Equal(t, "first", session.Messages[0].Text)
		assert.Equal(t, "ok", session.Messages[1].Text)
	})
}

func TestChatService_SubmitPrompt_SameInstantPrompts(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	agent := &clientmocks.AgentClientMock{
		ChatFunc: func(ctx context.Context, req agentsvc.ChatRequest) (*agentsvc.ChatResponse, error) {
			if req.Prompt == "slow" {
				<-release
				return &agentsvc.ChatResponse{Response: "done"}, nil
			}
			return nil, fmt.Errorf("%w: agent unavailable", utils.ErrAgentRequestFailed)
		},
	}
	svc := NewChatService(NewSessionStore(time.Hour), agent).(*chatService)
	frozen := time.Unix(0, 42)
	svc.now = func() time.Time { return frozen }

	slow := make(chan error, 1)
	go func() {
		_, err := svc.SubmitPrompt(ctx, "session-1", "slow", nil)
		slow <- err
	}()
	require.Eventually(t, func() bool {
		session, err := svc.GetSession(ctx, "session-1")
		return err == nil && len(session.Messages) == 1
	}, time.Second, time.Millisecond)

	_, err := svc.SubmitPrompt(ctx, "session-1", "fails", nil)
	require.Error(t, err)
	close(release)
	require.NoError(t, <-slow)

	session, err := svc.GetSession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, "slow", session.Messages[0].Text)
	assert.Equal(t, "done", session.Messages[1].Text)
}

func TestChatService_SummarizeSession(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the transcript", func(t *testing.T) {
		agent := &clientmocks.AgentClientMock{
			ChatFunc: func(ctx context.Context, req agentsvc.ChatRequest) (*agentsvc.ChatResponse, error) {
				return &agentsvc.ChatResponse{Response: "Hello!"}, nil
			},
			SummarizeSessionFunc: func(ctx context.Context, req agentsvc.SummarizeSessionRequest) (*agentsvc.SummarizeSessionResponse, error) {
				return &agentsvc.SummarizeSessionResponse{Summary: "A greeting."}, nil
			},
		}
		svc := newTestChatService(agent)
		_, err := svc.SubmitPrompt(ctx, "session-1", "Hi", nil)
		require.NoError(t, err)

		resp, err := svc.SummarizeSession(ctx, "session-1")

		require.NoError(t, err)
		assert.Equal(t, &models.SummaryResponse{SessionID: "session-1", Summary: "A greeting."}, resp)
		calls := agent.SummarizeSessionCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "user: Hi\nassistant: Hello!", calls[0].Req.SessionText)
	})

	t.Run("empty session", func(t *testing.T) {
		agent := &clientmocks.AgentClientMock{}
		svc := newTestChatService(agent)

		_, err := svc.SummarizeSession(ctx, "session-1")

		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, agent.SummarizeSessionCalls())
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := newTestChatService(&clientmocks.AgentClientMock{})

		_, err := svc.SummarizeSession(ctx, "nope")

		assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	})
}

func TestChatService_StatelessFlows(t *testing.T) {
	ctx := context.Background()
	agent := &clientmocks.AgentClientMock{
		ChatFunc: func(ctx context.Context, req agentsvc.ChatRequest) (*agentsvc.ChatResponse, error) {
			return &agentsvc.ChatResponse{Response: "pong"}, nil
		},
		DocumentQAFunc: func(ctx context.Context, req agentsvc.DocumentQARequest) (*agentsvc.DocumentQAResponse, error) {
			return &agentsvc.DocumentQAResponse{Answer: "yes"}, nil
		},
	}
	svc := newTestChatService(agent)

	reply, err := svc.Chat(ctx, "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", reply)

	answer, err := svc.AskDocument(ctx, "data:application/pdf;base64,JVBERi0xLjQ=", "is it a pdf?")
	require.NoError(t, err)
	assert.Equal(t, "yes", answer)

	_, err = svc.Chat(ctx, "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.AskDocument(ctx, "data:application/pdf;base64,JVBERi0xLjQ=", " ")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	// sessions are untouched by stateless flows
	session, _ := svc.GetSession(ctx, "session-1")
	assert.Empty(t, session.Messages)
}

func TestSessionStore_ConcurrentAppends(t *testing.T) {
	store := NewSessionStore(0)
	session := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.AppendMessage(session.ID, models.Message{ID: fmt.Sprintf("msg-%d", i), Role: models.MessageRoleUser})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 20)

	store.RemoveMessage(session.ID, "msg-7")
	store.RemoveMessage(session.ID, "missing")
	store.RemoveMessage("session-404", "msg-1")
	got, _ = store.Get(session.ID)
	assert.Len(t, got.Messages, 19)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	session := store.Create()

	assert.Eventually(t, func() bool {
		_, err := store.Get(session.ID)
		return errors.Is(err, utils.ErrSessionNotFound)
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, store.List())
}
