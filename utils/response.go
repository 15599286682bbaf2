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

package utils

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

const (
	PathParamSessionID = "sessionId"
)

// ErrorResponse is the body written for every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteSuccessResponse writes body as JSON with the given status.
func WriteSuccessResponse(w http.ResponseWriter, status int, body any) {
	writeJSON(w, status, body)
}

// WriteErrorResponse writes a JSON error body with the given status.
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response body", "error", err)
	}
}
