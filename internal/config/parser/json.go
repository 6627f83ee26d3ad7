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
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/azsched/internal/azsched"
	"github.com/dadrus/azsched/internal/x/errorchain"
)

// jsonParser keeps numbers as json.Number so that integers beyond 2^53 reach the
// decode hooks unchanged instead of being rounded to float64.
type jsonParser struct {
	*koanfjson.JSON
}

func (p jsonParser) Unmarshal(raw []byte) (map[string]any, error) {
	var out map[string]any

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := dec.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

func koanfFromJSON(configFile string, rawConfig []byte) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	if err := parser.Load(rawbytes.Provider(rawConfig), jsonParser{JSON: koanfjson.Parser()}); err != nil {
		return nil, errorchain.NewWithMessagef(azsched.ErrConfiguration,
			"failed to load json config from %s", configFile).CausedBy(err)
	}

	return parser, nil
}

// jsonNumberDecodeHookFunc converts json.Number values into integer fields
// without a detour over float64. Values not fitting the target type are
// rejected.
func jsonNumberDecodeHookFunc(_ reflect.Type, to reflect.Type, data any) (any, error) {
	num, ok := data.(json.Number)
	if !ok {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(num.String(), 10, to.Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(num.String(), 10, to.Bits())
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(num.String(), to.Bits())
	default:
		return data, nil
	}
}
