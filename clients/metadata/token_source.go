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
	"context"

	"golang.org/x/oauth2"
)

type tokenSource struct {
	ctx      context.Context
	provider CredentialProvider
}

// NewTokenSource adapts provider to oauth2.TokenSource. The tokens carry no expiry,
// so they must not be wrapped in oauth2.ReuseTokenSource.
func NewTokenSource(ctx context.Context, provider CredentialProvider) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, provider: provider}
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	accessToken, err := s.provider.GetToken(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
