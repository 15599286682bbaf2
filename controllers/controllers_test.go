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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

func TestHandleChatErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"session missing", fmt.Errorf("%w: session-3", utils.ErrSessionNotFound), http.StatusNotFound, `{"message":"Session not found"}`},
		{"wrong file type", utils.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, `{"message":"Please upload a PDF file."}`},
		{"too large", utils.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, `{"message":"Request body too large"}`},
		{"invalid input", fmt.Errorf("%w: prompt must not be empty", utils.ErrInvalidInput), http.StatusBadRequest, `{"message":"invalid input: prompt must not be empty"}`},
		{"agent failed", fmt.Errorf("%w: Bad Gateway - down", utils.ErrAgentRequestFailed), http.StatusBadGateway, `{"message":"AI agent request failed: agent request failed: Bad Gateway - down"}`},
		{"agent reply malformed", utils.ErrAgentInvalidResponse, http.StatusBadGateway, `{"message":"AI agent request failed: invalid agent response"}`},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, `{"message":"fallback"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handleChatErrors(rec, tt.err, "fallback")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAttachmentContentType(t *testing.T) {
	pdf := []byte("%PDF-1.7\n")

	assert.Equal(t, "application/pdf", attachmentContentType("application/pdf", pdf))
	assert.Equal(t, "application/pdf", attachmentContentType("", pdf))
	assert.Equal(t, "application/pdf", attachmentContentType("application/octet-stream", pdf))
	assert.Equal(t, "text/plain", attachmentContentType("", []byte("hello there")))
	assert.Equal(t, "image/png", attachmentContentType("image/png", pdf))
}

func TestBodyError(t *testing.T) {
	assert.ErrorIs(t, bodyError(&http.MaxBytesError{Limit: 10}), utils.ErrPayloadTooLarge)
	assert.ErrorIs(t, bodyError(errors.New("unexpected EOF")), utils.ErrBadRequest)
}
