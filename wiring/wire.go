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

//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"

	"github.com/wso2/ai-agent-management-platform/agent-chat-service/config"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/controllers"
	"github.com/wso2/ai-agent-management-platform/agent-chat-service/services"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
)

var clientProviderSet = wire.NewSet(
	ProvideCredentialProvider,
	ProvideAgentClient,
)

var testClientProviderSet = wire.NewSet(
	ProvideTestAgentClient,
)

var serviceProviderSet = wire.NewSet(
	ProvideSessionStore,
	services.NewChatService,
)

var controllerProviderSet = wire.NewSet(
	controllers.NewSessionController,
	controllers.NewChatController,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

func InitializeAppParams(cfg *config.Config) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		clientProviderSet,
		loggerProviderSet,
		serviceProviderSet,
		controllerProviderSet,
		ProvideRateLimiter, wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}

func InitializeTestAppParamsWithClientMocks(cfg *config.Config, testClients TestClients) (*AppParams, error) {
	wire.Build(
		testClientProviderSet,
		loggerProviderSet,
		serviceProviderSet,
		controllerProviderSet, configProviderSet,
		ProvideRateLimiter, wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
