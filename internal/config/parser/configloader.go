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

package parser

import (
	"bytes"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/azsched/internal/azsched"
	"github.com/dadrus/azsched/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

func New(opts ...Option) ConfigLoader {
	loader := &configLoader{}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// Load fills config in three layers: the values already present in config act as
// defaults, the configuration file overrides them and environment variables
// carrying the configured prefix override both.
func (c *configLoader) Load(config any) error {
	if len(c.o.configFile) == 0 {
		return errorchain.NewWithMessage(azsched.ErrArgument, "no config file specified")
	}

	rawConfig, err := os.ReadFile(c.o.configFile)
	if err != nil {
		return errorchain.NewWithMessagef(azsched.ErrConfiguration,
			"failed to read config file %s", c.o.configFile).CausedBy(err)
	}

	if c.o.validate != nil {
		if err = c.o.validate(bytes.NewReader(rawConfig)); err != nil {
			return err
		}
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	loadAndMergeConfig := func(loadConfig func() (*koanf.Koanf, error)) error {
		konf, err := loadConfig()
		if err != nil {
			return err
		}

		return parser.Load(
			confmap.Provider(konf.Raw(), ""),
			nil,
			koanf.WithMergeFunc(func(src, dest map[string]any) error {
				for key, val := range src {
					dest[key] = merge(dest[key], val)
				}

				return nil
			}))
	}

	if err = loadAndMergeConfig(func() (*koanf.Koanf, error) {
		return koanfFromJSON(c.o.configFile, rawConfig)
	}); err != nil {
		return err
	}

	if len(c.o.envPrefix) != 0 {
		if err = loadAndMergeConfig(func() (*koanf.Koanf, error) {
			return koanfFromEnv(c.o.envPrefix)
		}); err != nil {
			return err
		}
	}

	hooks := append([]mapstructure.DecodeHookFunc{jsonNumberDecodeHookFunc}, c.o.decodeHooks...)

	if err = parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
			Metadata:         nil,
			Result:           config,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return errorchain.NewWithMessage(azsched.ErrConfiguration,
			"failed to decode configuration").CausedBy(err)
	}

	return nil
}
