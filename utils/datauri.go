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
	"fmt"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

const MimeTypePDF = "application/pdf"

// EncodeDataURI returns data as a base64 data URI, e.g. "data:application/pdf;base64,JVBERi0...".
func EncodeDataURI(data []byte, mimeType string) string {
	return dataurl.New(data, mimeType).String()
}

// DecodeDataURI parses a data URI and returns its content type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("%w: not a data URI", ErrInvalidInput)
	}
	d, err := dataurl.DecodeString(uri)
	if err != nil {
		return "", nil, fmt.Errorf("%w: malformed data URI: %v", ErrInvalidInput, err)
	}
	return d.MediaType.ContentType(), d.Data, nil
}

// ValidatePDFDataURI checks that uri is a base64 encoded PDF data URI.
func ValidatePDFDataURI(uri string) error {
	contentType, data, err := DecodeDataURI(uri)
	if err != nil {
		return err
	}
	if contentType != MimeTypePDF {
		return fmt.Errorf("%w: expected %s, got %s", ErrUnsupportedFileType, MimeTypePDF, contentType)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	return nil
}
