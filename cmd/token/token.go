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

package token

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dadrus/azsched/cmd/flags"
	"github.com/dadrus/azsched/internal/config"
	"github.com/dadrus/azsched/internal/logging"
	"github.com/dadrus/azsched/internal/oauth2/clientcredentials"
	"github.com/dadrus/azsched/internal/validation"
)

// NewTokenCommand represents the "token" command.
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "token",
		Short:   "Acquires an access token for the Azure management API",
		Example: "azsched token -c config.json",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			Run(cmd)
		},
	}
}

// Run loads the configuration, requests an access token and prints the
// progress to the output of the command. Failures are printed as well and
// end the flow without an error exit code.
func Run(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Azure K8S Scheduler Starting...")
	fmt.Fprintln(out, "Reading config file...")

	conf, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(out, "Error reading config file: %v\n", err)

		return
	}

	fmt.Fprintln(out, "Config file read successfully.")
	printConfig(out, conf)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewLogger(conf.Log, cmd.ErrOrStderr())
	ctx = logger.WithContext(ctx)

	fmt.Fprintln(out, "Getting access token...")

	cc := &clientcredentials.Config{
		TokenURL:     conf.TokenEndpoint,
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret.Value(),
		Scopes:       []string{clientcredentials.AzureManagementScope},
	}

	accessToken, err := cc.Token(ctx)
	if err != nil {
		fmt.Fprintf(out, "Error getting access token: %v\n", err)

		return
	}

	fmt.Fprintf(out, "Access token: %s\n", accessToken)
}

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}

	return config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
}

func printConfig(out io.Writer, conf *config.Configuration) {
	fmt.Fprintf(out, "Client ID: %s\n", conf.ClientID)
	fmt.Fprintf(out, "Client Secret: %s\n", conf.ClientSecret)
	fmt.Fprintf(out, "Token Endpoint: %s\n", conf.TokenEndpoint)
	fmt.Fprintf(out, "Timeout Seconds: %d\n", conf.TimeoutSeconds)
}
