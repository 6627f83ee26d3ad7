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
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dadrus/azsched/internal/azsched"
	"github.com/dadrus/azsched/internal/x/errorchain"
	"github.com/dadrus/azsched/internal/x/httpx"
)

type Endpoint struct {
	URL          string
	Method       string
	AuthStrategy AuthenticationStrategy
	Headers      map[string]string
}

// CreateClient returns a client without timeout and without retries. Every call
// results in exactly one request.
func (e Endpoint) CreateClient(peerName string) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(
			httpx.NewTraceRoundTripper(http.DefaultTransport),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return fmt.Sprintf("%s %s %s @%s", r.Proto, r.Method, r.URL.Path, peerName)
			})),
	}
}

func (e Endpoint) CreateRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	logger := zerolog.Ctx(ctx)

	method := http.MethodPost
	if len(e.Method) != 0 {
		method = e.Method
	}

	logger.Debug().Str("_endpoint", e.URL).Msg("Creating request")

	req, err := http.NewRequestWithContext(ctx, method, e.URL, body)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(azsched.ErrInternal, "failed to create a request instance").
			CausedBy(err)
	}

	for headerName, headerValue := range e.Headers {
		req.Header.Set(headerName, headerValue)
	}

	if e.AuthStrategy != nil {
		logger.Debug().Msg("Authenticating request")

		if err = e.AuthStrategy.Apply(ctx, req); err != nil {
			return nil, errorchain.
				NewWithMessage(azsched.ErrInternal, "failed to authenticate request").
				CausedBy(err)
		}
	}

	return req, nil
}

// ResponseReader consumes the response. The body is closed by SendRequest
// afterwards.
type ResponseReader func(resp *http.Response) ([]byte, error)

func (e Endpoint) SendRequest(ctx context.Context, body io.Reader, reader ...ResponseReader) ([]byte, error) {
	req, err := e.CreateRequest(ctx, body)
	if err != nil {
		return nil, err
	}

	resp, err := e.CreateClient(req.URL.Hostname()).Do(req)
	if err != nil {
		var clientErr *url.Error
		if errors.As(err, &clientErr) && clientErr.Timeout() {
			return nil, errorchain.New(azsched.ErrCommunicationTimeout).CausedBy(err)
		}

		return nil, errorchain.New(azsched.ErrCommunication).CausedBy(err)
	}

	defer resp.Body.Close()

	if len(reader) != 0 {
		return reader[0](resp)
	}

	return e.readResponse(resp)
}

func (e Endpoint) readResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		rawData, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errorchain.
				NewWithMessage(azsched.ErrInternal, "failed to read response").
				CausedBy(err)
		}

		return rawData, nil
	}

	return nil, errorchain.
		NewWithMessagef(azsched.ErrCommunication, "unexpected response code: %v", resp.StatusCode)
}
