// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

import "errors"

var (
	// Resource not found errors
	ErrSessionNotFound = errors.New("session not found")

	// Request errors
	ErrBadRequest          = errors.New("bad request")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")

	// Agent errors
	ErrAgentNotConfigured   = errors.New("VERTEX_AGENT_URL environment variable not set")
	ErrAgentRequestFailed   = errors.New("agent request failed")
	ErrAgentInvalidResponse = errors.New("invalid agent response")

	// Server errors
	ErrServiceUnavailable = errors.New("service unavailable")
)
