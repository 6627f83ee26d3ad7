// Copyright 2026 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/azsched/internal/azsched"
	"github.com/dadrus/azsched/internal/config/parser"
	"github.com/dadrus/azsched/internal/x/errorchain"
)

// DefaultConfigFile is used if no configuration path is given. It is resolved
// relative to the working directory of the process.
const DefaultConfigFile = "config.json"

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Validator interface {
	ValidateStruct(s any) error
}

// Configuration holds the client credentials and the token endpoint used to
// acquire an access token. It must not be modified after construction.
type Configuration struct {
	ClientID       string        `koanf:"client_id"`
	ClientSecret   Secret        `koanf:"client_secret"`
	TokenEndpoint  string        `koanf:"token_endpoint"  validate:"url"`
	TimeoutSeconds uint64        `koanf:"timeout_seconds"`
	Log            LoggingConfig `koanf:"log"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	path := string(configFile)
	if len(path) == 0 {
		path = DefaultConfigFile
	}

	err := parser.New(
		parser.WithDecodeHookFunc(mapstructure.ComposeDecodeHookFunc(
			logLevelDecodeHookFunc,
			logFormatDecodeHookFunc,
		)),
		parser.WithConfigFile(path),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfigSchema),
	).Load(&result)
	if err != nil {
		return nil, err
	}

	if err = validator.ValidateStruct(&result); err != nil {
		return nil, errorchain.NewWithMessage(azsched.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
