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

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

var config *Config

func GetConfig() *Config {
	return config
}

func init() {
	loadEnvs()
}

func loadEnvs() {
	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config = readConfig(r)
	r.logAndExitIfErrorsFound()

	slog.Info("configReader: configs loaded")
}

func readConfig(r *configReader) *Config {
	cfg := &Config{}
	cfg.ServerHost = r.readOptionalString("SERVER_HOST", "")
	cfg.ServerPort = int(r.readOptionalInt64("SERVER_PORT", 9002))
	cfg.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)
	cfg.CORSAllowedOrigin = r.readOptionalString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	// Logging configuration
	cfg.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	// HTTP Server timeout configurations
	cfg.ReadTimeoutSeconds = int(r.readOptionalInt64("HTTP_READ_TIMEOUT_SECONDS", 10))
	cfg.WriteTimeoutSeconds = int(r.readOptionalInt64("HTTP_WRITE_TIMEOUT_SECONDS", 120))
	cfg.IdleTimeoutSeconds = int(r.readOptionalInt64("HTTP_IDLE_TIMEOUT_SECONDS", 60))
	cfg.MaxHeaderBytes = int(r.readOptionalInt64("HTTP_MAX_HEADER_BYTES", 65536)) // 1024 * 64

	// Use Version from ldflags or environment variable override
	cfg.PackageVersion = r.readOptionalString("SERVICE_VERSION", Version)

	cfg.Agent = AgentConfig{
		URL:                   r.readOptionalString("VERTEX_AGENT_URL", ""),
		AuthEnabled:           r.readOptionalBool("AGENT_AUTH_ENABLED", false),
		RequestTimeoutSeconds: int(r.readOptionalInt64("AGENT_REQUEST_TIMEOUT_SECONDS", 60)),
		RetryAttemptsMax:      int(r.readOptionalInt64("AGENT_RETRY_ATTEMPTS_MAX", 2)),
	}

	cfg.Metadata = MetadataConfig{
		TokenURL:              r.readOptionalString("METADATA_TOKEN_URL", "http://metadata.google.internal/computeMetadata/v1/instance/service-accounts/default/token"),
		Scopes:                r.readOptionalStringList("METADATA_SCOPES", "https://www.googleapis.com/auth/cloud-platform"),
		MaxAttempts:           int(r.readOptionalInt64("METADATA_MAX_ATTEMPTS", 3)),
		BaseDelayMilliseconds: int(r.readOptionalInt64("METADATA_BASE_DELAY_MS", 100)),
		AttemptTimeoutSeconds: int(r.readOptionalInt64("METADATA_ATTEMPT_TIMEOUT_SECONDS", 5)),
	}

	cfg.Session = SessionConfig{
		TTLMinutes: int(r.readOptionalInt64("SESSION_TTL_MINUTES", 720)),
	}
	cfg.ChatRateLimitPerMin = int(r.readOptionalInt64("CHAT_RATE_LIMIT_PER_MIN", 60))
	cfg.MaxUploadBytes = r.readOptionalInt64("MAX_UPLOAD_BYTES", 20<<20)

	// Validate HTTP server configurations
	validateHTTPServerConfigs(cfg, r)

	validateAgentConfigs(cfg, r)
	return cfg
}

func validateHTTPServerConfigs(cfg *Config, r *configReader) {
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		r.errors = append(r.errors, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort))
	}
	if cfg.ReadTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.ReadTimeoutSeconds))
	}
	if cfg.WriteTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_WRITE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.WriteTimeoutSeconds))
	}
	if cfg.ReadTimeoutSeconds >= cfg.WriteTimeoutSeconds {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS (%d) must be < HTTP_WRITE_TIMEOUT_SECONDS (%d)",
			cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds))
	}
	if cfg.IdleTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_IDLE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.IdleTimeoutSeconds))
	}
	if cfg.MaxHeaderBytes < 1024 || cfg.MaxHeaderBytes > 1048576 { // 1KB to 1MB
		r.errors = append(r.errors, fmt.Errorf("HTTP_MAX_HEADER_BYTES must be between 1024 and 1048576, got %d", cfg.MaxHeaderBytes))
	}
}

func validateAgentConfigs(cfg *Config, r *configReader) {
	if cfg.Agent.RequestTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("AGENT_REQUEST_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.Agent.RequestTimeoutSeconds))
	}
	if cfg.Metadata.MaxAttempts < 1 || cfg.Metadata.MaxAttempts > 10 {
		r.errors = append(r.errors, fmt.Errorf("METADATA_MAX_ATTEMPTS must be between 1 and 10, got %d", cfg.Metadata.MaxAttempts))
	}
	if cfg.Metadata.BaseDelayMilliseconds <= 0 || cfg.Metadata.BaseDelayMilliseconds > 60000 {
		r.errors = append(r.errors, fmt.Errorf("METADATA_BASE_DELAY_MS must be between 1 and 60000, got %d", cfg.Metadata.BaseDelayMilliseconds))
	}
	if cfg.Metadata.AttemptTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("METADATA_ATTEMPT_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.Metadata.AttemptTimeoutSeconds))
	}
	if cfg.Session.TTLMinutes < 0 {
		r.errors = append(r.errors, fmt.Errorf("SESSION_TTL_MINUTES must not be negative, got %d", cfg.Session.TTLMinutes))
	}
	if cfg.ChatRateLimitPerMin < 0 {
		r.errors = append(r.errors, fmt.Errorf("CHAT_RATE_LIMIT_PER_MIN must not be negative, got %d", cfg.ChatRateLimitPerMin))
	}
	if cfg.MaxUploadBytes <= 0 {
		r.errors = append(r.errors, fmt.Errorf("MAX_UPLOAD_BYTES must be greater than 0, got %d", cfg.MaxUploadBytes))
	}
	if cfg.Agent.URL == "" {
		slog.Warn("VERTEX_AGENT_URL is not set; agent requests will fail until it is configured")
	}
}
