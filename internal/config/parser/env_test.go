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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		key      string
		expected string
	}{
		{key: "CLIENT__ID", expected: "client_id"},
		{key: "TIMEOUT__SECONDS", expected: "timeout_seconds"},
		{key: "LOG_LEVEL", expected: "log.level"},
		{key: "FOO", expected: "foo"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeKey(tc.key))
		})
	}
}

func TestKoanfFromEnv(t *testing.T) {
	// GIVEN
	t.Setenv("FOO_CLIENT__SECRET", "s3cr3t")
	t.Setenv("FOO_TIMEOUT__SECONDS", "30")
	t.Setenv("FOO_LOG_LEVEL", "debug")
	t.Setenv("BAR_LOG_LEVEL", "trace")

	// WHEN
	konf, err := koanfFromEnv("FOO_")

	// THEN
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", konf.Get("client_secret"))
	assert.Equal(t, "30", konf.Get("timeout_seconds"))
	assert.Equal(t, "debug", konf.Get("log.level"))
	assert.Equal(t, map[string]any{"level": "debug"}, konf.Get("log"))
}
