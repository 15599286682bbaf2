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

package models

import "time"

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is a single turn of a chat session.
type Message struct {
	ID      string      `json:"id"`
	Role    MessageRole `json:"role"`
	Text    string      `json:"text"`
	PDFName string      `json:"pdfName,omitempty"`
}

// Session is an in-memory conversation with the remote agent.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy safe to hand out of the session store.
func (s *Session) Clone() *Session {
	c := *s
	c.Messages = append([]Message(nil), s.Messages...)
	if c.Messages == nil {
		c.Messages = []Message{}
	}
	return &c
}

// Attachment is a document uploaded together with a prompt.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// SubmitPromptRequest is the body of POST /sessions/{sessionId}/messages.
type SubmitPromptRequest struct {
	Prompt     string `json:"prompt"`
	PDFName    string `json:"pdfName,omitempty"`
	PDFDataURI string `json:"pdfDataUri,omitempty"`
}

// SubmitPromptResponse carries the assistant reply and the updated session.
type SubmitPromptResponse struct {
	Message Message  `json:"message"`
	Session *Session `json:"session"`
}

// SummaryResponse is returned by POST /sessions/{sessionId}/summary.
type SummaryResponse struct {
	SessionID string `json:"sessionId"`
	Summary   string `json:"summary"`
}
