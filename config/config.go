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

package config

// Config holds all configuration for the application
type Config struct {
	PackageVersion      string
	ServerHost          string
	ServerPort          int
	AutoMaxProcsEnabled bool
	LogLevel            string
	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// Remote agent configuration
	Agent AgentConfig

	// Metadata server credential configuration
	Metadata MetadataConfig

	// In-memory chat session configuration
	Session SessionConfig

	// ChatRateLimitPerMin caps API requests per client IP; 0 disables the limit
	ChatRateLimitPerMin int
	// MaxUploadBytes caps the size of a prompt request including its document
	MaxUploadBytes      int64
}

type AgentConfig struct {
	// URL of the hosted agent endpoint. Empty or the sample placeholder leaves the agent unconfigured.
	URL                   string
	AuthEnabled           bool
	RequestTimeoutSeconds int
	RetryAttemptsMax      int
}

type MetadataConfig struct {
	TokenURL              string
	Scopes                []string
	MaxAttempts           int
	BaseDelayMilliseconds int
	AttemptTimeoutSeconds int
}

type SessionConfig struct {
	TTLMinutes int
}
