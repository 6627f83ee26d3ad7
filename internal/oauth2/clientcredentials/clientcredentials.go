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

package clientcredentials

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dadrus/azsched/internal/azsched"
	"github.com/dadrus/azsched/internal/endpoint"
	"github.com/dadrus/azsched/internal/x/errorchain"
)

// AzureManagementScope is requested if no scopes are configured.
const AzureManagementScope = "https://management.azure.com/.default"

type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Token requests an access token from the token endpoint using the client
// credentials grant and returns the value of the access_token field of the
// response.
//
// The status code of the response is not evaluated. Any JSON response without a
// string access_token field, including error responses like
// {"error":"invalid_client"}, results in an empty token and no error.
func (c *Config) Token(ctx context.Context) (string, error) {
	logger := zerolog.Ctx(ctx)

	logger.Debug().Str("_token_endpoint", c.TokenURL).Msg("Requesting new access token")

	ept := endpoint.Endpoint{
		URL:          c.TokenURL,
		Method:       http.MethodPost,
		AuthStrategy: c,
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Accept":       "application/json",
		},
	}

	data := url.Values{
		"grant_type": []string{"client_credentials"},
		"scope":      []string{c.scope()},
	}

	rawData, err := ept.SendRequest(ctx, strings.NewReader(data.Encode()), readAll)
	if err != nil {
		return "", err
	}

	var resp any
	if err = json.Unmarshal(rawData, &resp); err != nil {
		return "", errorchain.
			NewWithMessage(azsched.ErrInternal, "failed to unmarshal response").
			CausedBy(err)
	}

	token := accessToken(resp)
	if len(token) == 0 {
		logger.Warn().Msg("Token endpoint response does not contain an access token")
	}

	return token, nil
}

// Apply authenticates the token request by adding the client id and the client
// secret to the form encoded request body.
func (c *Config) Apply(_ context.Context, req *http.Request) error {
	var values url.Values

	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}

		if values, err = url.ParseQuery(string(data)); err != nil {
			return err
		}
	} else {
		values = url.Values{}
	}

	values.Set("client_id", c.ClientID)
	values.Set("client_secret", c.ClientSecret)

	body := strings.NewReader(values.Encode())
	req.Body = io.NopCloser(body)
	req.ContentLength = int64(body.Len())
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(values.Encode())), nil
	}

	return nil
}

func (c *Config) scope() string {
	if len(c.Scopes) == 0 {
		return AzureManagementScope
	}

	return strings.Join(c.Scopes, " ")
}

func readAll(resp *http.Response) ([]byte, error) {
	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorchain.NewWithMessage(azsched.ErrInternal,
			"failed to read response").CausedBy(err)
	}

	return rawData, nil
}

func accessToken(resp any) string {
	fields, ok := resp.(map[string]any)
	if !ok {
		return ""
	}

	token, _ := fields["access_token"].(string)

	return token
}
