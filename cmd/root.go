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

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/azsched/cmd/flags"
	"github.com/dadrus/azsched/cmd/token"
)

// nolint: gochecknoglobals
var (
	Version = "master"

	// RootCmd represents the base command when called without any subcommands.
	// Without a subcommand it acquires an access token, just like "azsched token".
	RootCmd = &cobra.Command{
		Use:     "azsched",
		Short:   "Acquires an Azure management access token using client credentials",
		Version: Version,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			token.Run(cmd)
		},
	}
)

// nolint: gochecknoinits
func init() {
	flags.RegisterGlobalFlags(RootCmd)
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErr(err)
		os.Exit(-1)
	}
}
