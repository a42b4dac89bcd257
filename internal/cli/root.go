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


// Package cli implements the dxmig command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dxmig/internal/config"
	"dirpx.dev/dxmig/internal/logger"
)

const banner = "dxmig: command line tool to migrate database dumps between domains."

const usage = `Usage: dxmig migrate <FILE> <NEW_URL>
$ dxmig migrate /home/me/wordpress-dump.sql https://another.example.com`

// loggerFactory builds the logger once flags and configuration are known.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// usageError reports a command line that cannot be acted upon. The banner
// and usage are printed after it.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app carries the state shared by all commands of one invocation.
type app struct {
	cfg       config.Config
	log       *zap.Logger
	verbose   bool
	newLogger loggerFactory
}

// Execute runs dxmig with the process arguments and exits.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, logger.New))
}

// run executes the command line args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, newLogger loggerFactory) int {
	cmd := newRootCmd(newLogger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "\n%s\n\n%s\n", banner, usage)
		}
		return 1
	}
	return 0
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{
		cfg:       config.Default(),
		log:       zap.NewNop(),
		newLogger: newLogger,
	}

	cmd := &cobra.Command{
		Use:   "dxmig",
		Short: banner,
		Long: banner + `

dxmig rewrites every occurrence of an old domain in a database dump,
including occurrences inside PHP serialized strings, whose declared lengths
are recomputed so that the dump can still be unserialized.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Verbose = true
			}
			a.cfg = cfg

			log, err := a.newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging (also "+config.EnvVerbose+")")
	cmd.AddCommand(a.migrateCmd(), a.guessCmd(), a.versionCmd())
	return cmd
}
