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

package api

import (
	"net/http"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/controllers"
)

func registerSessionRoutes(mux *http.ServeMux, controller controllers.SessionController) {
	// GET /sessions - List sessions in creation order
	mux.HandleFunc("GET /sessions", controller.ListSessions)

	// POST /sessions - Start a new empty session
	mux.HandleFunc("POST /sessions", controller.CreateSession)

	// GET /sessions/{sessionId} - Get a session with its messages
	mux.HandleFunc("GET /sessions/{sessionId}", controller.GetSession)

	// DELETE /sessions/{sessionId} - Delete a session
	mux.HandleFunc("DELETE /sessions/{sessionId}", controller.DeleteSession)

	// POST /sessions/{sessionId}/messages - Send a prompt, optionally with a PDF
	mux.HandleFunc("POST /sessions/{sessionId}/messages", controller.SubmitPrompt)

	// POST /sessions/{sessionId}/summary - Summarize the conversation
	mux.HandleFunc("POST /sessions/{sessionId}/summary", controller.SummarizeSession)
}

func registerChatRoutes(mux *http.ServeMux, controller controllers.ChatController) {
	mux.HandleFunc("POST /chat", controller.Chat)
	mux.HandleFunc("POST /document-qa", controller.DocumentQA)
}
