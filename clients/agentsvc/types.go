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

package agentsvc

// ChatRequest is the payload of the plain chat flow.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// DocumentQARequest asks a question about a PDF sent inline as a base64 data URI.
type DocumentQARequest struct {
	PDFDataURI string `json:"pdfDataUri"`
	Question   string `json:"question"`
}

type DocumentQAResponse struct {
	Answer string `json:"answer"`
}

type SummarizeSessionRequest struct {
	SessionText string
}

type SummarizeSessionResponse struct {
	Summary string `json:"summary"`
}

// summarizeQuery is the wire payload of the summarizer flow.
type summarizeQuery struct {
	Query string `json:"query"`
}

type summarizeOutput struct {
	Output *struct {
		Text *string `json:"text"`
	} `json:"output"`
}
