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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI(t *testing.T) {
	uri := EncodeDataURI([]byte("%PDF-1.4"), MimeTypePDF)
	assert.Equal(t, "data:application/pdf;base64,JVBERi0xLjQ=", uri)

	contentType, data, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, MimeTypePDF, contentType)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestValidatePDFDataURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{name: "valid pdf", uri: "data:application/pdf;base64,JVBERi0xLjQ="},
		{name: "not a data uri", uri: "https://example.com/doc.pdf", wantErr: ErrInvalidInput},
		{name: "wrong media type", uri: "data:text/plain;base64,aGVsbG8=", wantErr: ErrUnsupportedFileType},
		{name: "empty payload", uri: "data:application/pdf;base64,", wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDFDataURI(tt.uri)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
