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
	"bytes"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dadrus/azsched/internal/azsched"
	"github.com/dadrus/azsched/internal/x/errorchain"
	"github.com/dadrus/azsched/schema"
)

const configSchemaURL = "config.schema.json"

// ValidateConfigSchema expects src to hold a JSON document and validates it against
// the embedded configuration schema. All required keys have to be present in the
// document itself, environment overrides are not taken into account.
func ValidateConfigSchema(src io.Reader) error {
	conf, err := jsonschema.UnmarshalJSON(src)
	if err != nil {
		return errorchain.NewWithMessage(azsched.ErrConfiguration,
			"failed to parse config").CausedBy(err)
	}

	compiledSchema, err := compileSchema()
	if err != nil {
		return errorchain.NewWithMessage(azsched.ErrConfiguration,
			"failed to compile JSON schema").CausedBy(err)
	}

	if err = compiledSchema.Validate(conf); err != nil {
		return errorchain.New(azsched.ErrConfiguration).CausedBy(err)
	}

	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	configSchema, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema.ConfigSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(configSchemaURL, configSchema); err != nil {
		return nil, err
	}

	return compiler.Compile(configSchemaURL)
}
