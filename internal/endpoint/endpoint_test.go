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

package endpoint

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dadrus/azsched/internal/azsched"
)

type authStrategyFunc func(ctx context.Context, req *http.Request) error

func (f authStrategyFunc) Apply(ctx context.Context, req *http.Request) error { return f(ctx, req) }

func TestEndpointCreateClient(t *testing.T) {
	t.Parallel()

	// WHEN
	client := Endpoint{URL: "http://foo.bar"}.CreateClient("foo.bar")

	// THEN
	_, ok := client.Transport.(*otelhttp.Transport)
	require.True(t, ok)
	assert.Zero(t, client.Timeout)
}

func TestEndpointCreateRequest(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	for _, tc := range []struct {
		uc       string
		endpoint Endpoint
		assert   func(t *testing.T, req *http.Request, err error)
	}{
		{
			uc:       "with defaults",
			endpoint: Endpoint{URL: "http://foo.bar"},
			assert: func(t *testing.T, req *http.Request, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "http://foo.bar", req.URL.String())
				assert.Empty(t, req.Header)
			},
		},
		{
			uc: "with method, headers and auth strategy",
			endpoint: Endpoint{
				URL:     "http://foo.bar",
				Method:  http.MethodPatch,
				Headers: map[string]string{"Accept": "application/json"},
				AuthStrategy: authStrategyFunc(func(_ context.Context, req *http.Request) error {
					req.Header.Set("X-Auth", "foo")

					return nil
				}),
			},
			assert: func(t *testing.T, req *http.Request, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, http.MethodPatch, req.Method)
				assert.Equal(t, "application/json", req.Header.Get("Accept"))
				assert.Equal(t, "foo", req.Header.Get("X-Auth"))
			},
		},
		{
			uc: "with failing auth strategy",
			endpoint: Endpoint{
				URL: "http://foo.bar",
				AuthStrategy: authStrategyFunc(func(context.Context, *http.Request) error {
					return errTest
				}),
			},
			assert: func(t *testing.T, _ *http.Request, err error) {
				t.Helper()

				require.ErrorIs(t, err, azsched.ErrInternal)
				require.ErrorIs(t, err, errTest)
				assert.Contains(t, err.Error(), "failed to authenticate request")
			},
		},
		{
			uc:       "with invalid url",
			endpoint: Endpoint{URL: "://foo.bar"},
			assert: func(t *testing.T, _ *http.Request, err error) {
				t.Helper()

				require.ErrorIs(t, err, azsched.ErrInternal)
				assert.Contains(t, err.Error(), "failed to create a request instance")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			req, err := tc.endpoint.CreateRequest(context.Background(), nil)

			// THEN
			tc.assert(t, req, err)
		})
	}
}

func TestEndpointSendRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)

		data, err := io.ReadAll(req.Body)
		require.NoError(t, err)

		switch string(data) {
		case "slow":
			time.Sleep(200 * time.Millisecond)
		case "fail":
			w.WriteHeader(http.StatusInternalServerError)
		}

		_, _ = w.Write([]byte("hi from " + string(data)))
	}))
	defer srv.Close()

	for _, tc := range []struct {
		uc       string
		endpoint Endpoint
		body     string
		timeout  time.Duration
		reader   []ResponseReader
		assert   func(t *testing.T, data []byte, err error, calls int32)
	}{
		{
			uc:       "successful with default response reader",
			endpoint: Endpoint{URL: srv.URL},
			body:     "foo",
			assert: func(t *testing.T, data []byte, err error, calls int32) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "hi from foo", string(data))
				assert.Equal(t, int32(1), calls)
			},
		},
		{
			uc:       "unexpected response code with default response reader",
			endpoint: Endpoint{URL: srv.URL},
			body:     "fail",
			assert: func(t *testing.T, _ []byte, err error, calls int32) {
				t.Helper()

				require.ErrorIs(t, err, azsched.ErrCommunication)
				assert.Contains(t, err.Error(), "unexpected response code: 500")
				assert.Equal(t, int32(1), calls)
			},
		},
		{
			uc:       "custom response reader sees every response",
			endpoint: Endpoint{URL: srv.URL},
			body:     "fail",
			reader: []ResponseReader{func(resp *http.Response) ([]byte, error) {
				assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

				return io.ReadAll(resp.Body)
			}},
			assert: func(t *testing.T, data []byte, err error, calls int32) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "hi from fail", string(data))
				assert.Equal(t, int32(1), calls)
			},
		},
		{
			uc:       "timeout",
			endpoint: Endpoint{URL: srv.URL},
			body:     "slow",
			timeout:  20 * time.Millisecond,
			assert: func(t *testing.T, _ []byte, err error, _ int32) {
				t.Helper()

				require.ErrorIs(t, err, azsched.ErrCommunicationTimeout)
			},
		},
		{
			uc:       "server not reachable",
			endpoint: Endpoint{URL: "http://127.0.0.1:1"},
			assert: func(t *testing.T, _ []byte, err error, calls int32) {
				t.Helper()

				require.ErrorIs(t, err, azsched.ErrCommunication)
				assert.Equal(t, int32(0), calls)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			calls.Store(0)

			ctx := context.Background()

			if tc.timeout != 0 {
				var cancel context.CancelFunc

				ctx, cancel = context.WithTimeout(ctx, tc.timeout)
				defer cancel()
			}

			// WHEN
			data, err := tc.endpoint.SendRequest(ctx, strings.NewReader(tc.body), tc.reader...)

			// THEN
			tc.assert(t, data, err, calls.Load())
		})
	}
}
