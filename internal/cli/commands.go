/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dxmig/dxcore/migrate"
	"dirpx.dev/dxmig/dxcore/model/migration"
	"dirpx.dev/dxmig/internal/buildinfo"
)

func (a *app) guessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <FILE>",
		Short: "Print the old domain dxmig would guess for a dump",
		Long: `Prints the value of the first siteurl option found in FILE. This is the
domain "dxmig migrate" replaces when --old-domain is not given.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("guess takes exactly one <FILE>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return usagef("%v", err)
			}

			domain := migrate.GuessOldDomain(string(data))
			if domain == "" {
				return fmt.Errorf("no siteurl option found in %s", args[0])
			}
			a.log.Debug("Old domain guessed",
				zap.String("path", args[0]),
				zap.String("old_domain", migration.RedactDomain(domain)))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain)
			return err
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dxmig version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
