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

package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// errAccessTokenMissing is the cause recorded when the metadata server answers 200
// without a usable access_token.
var errAccessTokenMissing = errors.New("access token not found in metadata server response")

// PermanentAuthError is returned when the metadata server rejects the request with a
// 4xx status. It is never retried.
type PermanentAuthError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *PermanentAuthError) Error() string {
	return fmt.Sprintf("failed to get access token from metadata server (client error): %d %s - %s",
		e.StatusCode, e.Status, strings.TrimSpace(e.Body))
}

// TransientAuthError is a failed attempt that is worth retrying: no response, a
// non-4xx error status, or a success response without a usable token.
type TransientAuthError struct {
	Attempt int
	// StatusCode is zero when no response was received
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *TransientAuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to get access token from metadata server (server error, attempt %d): %d %s - %s",
			e.Attempt, e.StatusCode, e.Status, strings.TrimSpace(e.Body))
	}
	return fmt.Sprintf("failed to get access token from metadata server (attempt %d): %v", e.Attempt, e.Err)
}

func (e *TransientAuthError) Unwrap() error {
	return e.Err
}

// ExhaustedRetriesError is returned when every attempt failed transiently.
type ExhaustedRetriesError struct {
	Attempts int
	Last     *TransientAuthError
}

func (e *ExhaustedRetriesError) Error() string {
	msg := "unknown error"
	if e.Last != nil {
		msg = e.Last.Error()
	}
	return fmt.Sprintf("could not obtain access token after %d attempts. Original error: %s", e.Attempts, msg)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	if e.Last == nil {
		return nil
	}
	return e.Last
}

func isTransient(err error) bool {
	var transientErr *TransientAuthError
	return errors.As(err, &transientErr)
}
