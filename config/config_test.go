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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "VERTEX_AGENT_URL", "METADATA_SCOPES", "METADATA_MAX_ATTEMPTS", "AGENT_AUTH_ENABLED"} {
		t.Setenv(key, "")
	}
	r := &configReader{}

	cfg := readConfig(r)

	require.Empty(t, r.errors)
	assert.Equal(t, 9002, cfg.ServerPort)
	assert.Equal(t, "", cfg.Agent.URL)
	assert.False(t, cfg.Agent.AuthEnabled)
	assert.Equal(t, 3, cfg.Metadata.MaxAttempts)
	assert.Equal(t, 100, cfg.Metadata.BaseDelayMilliseconds)
	assert.Equal(t, []string{"https://www.googleapis.com/auth/cloud-platform"}, cfg.Metadata.Scopes)
}

func TestReadConfig_Overrides(t *testing.T) {
	t.Setenv("VERTEX_AGENT_URL", " https://agent.example/query ")
	t.Setenv("AGENT_AUTH_ENABLED", "true")
	t.Setenv("METADATA_SCOPES", "scope-a, ,scope-b")
	t.Setenv("METADATA_MAX_ATTEMPTS", "5")
	t.Setenv("CHAT_RATE_LIMIT_PER_MIN", "0")
	r := &configReader{}

	cfg := readConfig(r)

	require.Empty(t, r.errors)
	assert.Equal(t, "https://agent.example/query", cfg.Agent.URL)
	assert.True(t, cfg.Agent.AuthEnabled)
	assert.Equal(t, []string{"scope-a", "scope-b"}, cfg.Metadata.Scopes)
	assert.Equal(t, 5, cfg.Metadata.MaxAttempts)
	assert.Zero(t, cfg.ChatRateLimitPerMin)
}

func TestReadConfig_InvalidValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("AGENT_AUTH_ENABLED", "maybe")
	t.Setenv("METADATA_MAX_ATTEMPTS", "0")
	t.Setenv("HTTP_READ_TIMEOUT_SECONDS", "200")
	r := &configReader{}

	readConfig(r)

	var messages []string
	for _, err := range r.errors {
		messages = append(messages, err.Error())
	}
	assert.Contains(t, messages, `environment variable SERVER_PORT must be an integer, got "eighty"`)
	assert.Contains(t, messages, `environment variable AGENT_AUTH_ENABLED must be a boolean, got "maybe"`)
	assert.Contains(t, messages, "METADATA_MAX_ATTEMPTS must be between 1 and 10, got 0")
	assert.Contains(t, messages, "HTTP_READ_TIMEOUT_SECONDS (200) must be < HTTP_WRITE_TIMEOUT_SECONDS (120)")
}

func TestReadConfig_RetryPolicyUpperBounds(t *testing.T) {
	t.Setenv("METADATA_MAX_ATTEMPTS", "64")
	t.Setenv("METADATA_BASE_DELAY_MS", "3600000")
	r := &configReader{}

	readConfig(r)

	var messages []string
	for _, err := range r.errors {
		messages = append(messages, err.Error())
	}
	assert.Contains(t, messages, "METADATA_MAX_ATTEMPTS must be between 1 and 10, got 64")
	assert.Contains(t, messages, "METADATA_BASE_DELAY_MS must be between 1 and 60000, got 3600000")
}

func TestReadRequiredString(t *testing.T) {
	t.Setenv("SOME_REQUIRED_KEY", "")
	r := &configReader{}

	assert.Empty(t, r.readRequiredString("SOME_REQUIRED_KEY"))
	require.Len(t, r.errors, 1)
	assert.EqualError(t, r.errors[0], "environment variable SOME_REQUIRED_KEY is required")
}
