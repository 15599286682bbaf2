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
	"net/http"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/utils"
)

const agentFailurePrefix = "AI agent request failed: "

func handleChatErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrSessionNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, utils.ErrUnsupportedFileType):
		utils.WriteErrorResponse(w, http.StatusUnsupportedMediaType, "Please upload a PDF file.")
	case errors.Is(err, utils.ErrPayloadTooLarge):
		utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, utils.ErrInvalidInput), errors.Is(err, utils.ErrBadRequest):
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, utils.ErrAgentNotConfigured):
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, agentFailurePrefix+err.Error())
	case errors.Is(err, utils.ErrAgentRequestFailed), errors.Is(err, utils.ErrAgentInvalidResponse):
		utils.WriteErrorResponse(w, http.StatusBadGateway, agentFailurePrefix+err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
