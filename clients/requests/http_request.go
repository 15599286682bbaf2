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

package requests

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// HttpRequest describes an outbound request independently of net/http so it can be
// rebuilt for every attempt.
type HttpRequest struct {
	// Name identifies the request in logs, e.g. "metadata.fetchToken"
	Name    string
	URL     string
	Method  string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
}

// SetHeader sets a request header, replacing any existing value.
func (r *HttpRequest) SetHeader(key, value string) *HttpRequest {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetQueryParam sets a query parameter on the request URL.
func (r *HttpRequest) SetQueryParam(key, value string) *HttpRequest {
	if r.Query == nil {
		r.Query = make(map[string]string)
	}
	r.Query[key] = value
	return r
}

// SetJson marshals body as the JSON request payload.
func (r *HttpRequest) SetJson(body any) (*HttpRequest, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return r, fmt.Errorf("failed to marshal request body: %w", err)
	}
	r.Body = b
	r.SetHeader("Content-Type", "application/json")
	return r, nil
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", r.URL, err)
	}
	if len(r.Query) > 0 {
		q := u.Query()
		for k, v := range r.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// HttpError is returned by Result.ScanResponse when the response status does not
// match the expected one.
type HttpError struct {
	StatusCode int
	// Status is the reason phrase, e.g. "Service Unavailable"
	Status string
	Body   string
}

func (e *HttpError) Error() string {
	msg := fmt.Sprintf("%d %s", e.StatusCode, e.Status)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += " - " + body
	}
	return msg
}

// IsClientError reports whether the status is in the 4xx range.
func (e *HttpError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
