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
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dxmig/dxcore/migrate"
	"dirpx.dev/dxmig/dxcore/model"
	"dirpx.dev/dxmig/dxcore/model/migration"
	"dirpx.dev/dxmig/internal/buildinfo"
	"dirpx.dev/dxmig/internal/config"
	"dirpx.dev/dxmig/internal/logger"
)

type migrateOptions struct {
	oldDomain string
	output    string
	unit      string
	plan      string
	report    string
	dryRun    bool
}

func (a *app) migrateCmd() *cobra.Command {
	var opts migrateOptions

	c := &cobra.Command{
		Use:   "migrate <FILE> [NEW_URL]",
		Short: "Move a database dump to a new domain",
		Long: `Rewrites every occurrence of the old domain in FILE with NEW_URL and writes
the result next to FILE, as NAME-migrated.EXT unless --output is given.

The old domain is taken from --old-domain or, when that is not given,
guessed from the dump's siteurl option. A guess is logged; check it.

With --plan, the mappings listed in a YAML plan file are applied in order
instead, and NEW_URL and --old-domain must not be given.`,
		Example: `  dxmig migrate /home/me/wordpress-dump.sql https://another.example.com
  dxmig migrate dump.sql https://www.example.com --old-domain http://staging.example.com
  dxmig migrate dump.sql --plan plan.yaml --report yaml --dry-run`,
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return usagef("no <FILE> given")
			case len(args) > 2:
				return usagef("too many arguments: %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMigrate(cmd.OutOrStdout(), args, opts)
		},
	}

	c.Flags().StringVar(&opts.oldDomain, "old-domain", "", "Domain to replace (guessed from the dump when omitted)")
	c.Flags().StringVarP(&opts.output, "output", "o", "", "Path of the migrated dump (default NAME"+config.DefaultOutputSuffix+".EXT)")
	c.Flags().StringVar(&opts.unit, "unit", "", "Unit of serialized string lengths: bytes|runes (also "+config.EnvLengthUnit+")")
	c.Flags().StringVar(&opts.plan, "plan", "", "YAML plan file listing several old/new mappings")
	c.Flags().StringVar(&opts.report, "report", "", "Print a report instead of the summary: json|yaml")
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Do not write the migrated dump")

	c.MarkFlagsMutuallyExclusive("plan", "old-domain")
	c.MarkFlagsMutuallyExclusive("output", "dry-run")
	return c
}

func (a *app) runMigrate(w io.Writer, args []string, opts migrateOptions) error {
	input := args[0]

	switch opts.report {
	case "", "json", "yaml":
	default:
		return usagef("unknown report format %q", opts.report)
	}

	unit := a.cfg.Unit
	if opts.unit != "" {
		u, err := model.ParseLengthUnit(opts.unit)
		if err != nil {
			return usagef("--unit: %v", err)
		}
		unit = u
	}

	info, err := os.Stat(input)
	if err != nil {
		return usagef("%v", err)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	text := string(data)

	plan, guessed, err := a.buildPlan(text, args, opts)
	if err != nil {
		return err
	}
	// A plan file keeps its own unit unless --unit is given.
	if opts.unit != "" || opts.plan == "" {
		plan.Unit = unit
	}

	output := ""
	if !opts.dryRun {
		output = opts.output
		if output == "" {
			output = outputPath(input, a.cfg.OutputSuffix)
		}
		if sameFile(input, output) {
			return fmt.Errorf("refusing to overwrite %s with its migrated copy", input)
		}
	}

	for _, m := range plan.Mappings {
		a.log.Debug("Migrating",
			zap.String("old_domain", migration.RedactDomain(m.Old)),
			zap.String("new_domain", migration.RedactDomain(m.New)))
	}

	results, err := migrate.MigratePlan(text, plan)
	if err != nil {
		return err
	}
	for _, res := range results {
		a.log.Info("Migration complete", logger.ResultFields(res)...)
	}

	if output != "" {
		migrated := results[len(results)-1].ProcessedText()
		if err := os.WriteFile(output, []byte(migrated), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write migrated dump: %w", err)
		}
		a.log.Info("Migrated dump written", zap.String("path", output), zap.Int("size", len(migrated)))
	}

	if opts.report != "" {
		return writeReport(w, opts.report, migration.Report{
			Tool:       buildinfo.ToolVersion(),
			Input:      input,
			Output:     output,
			DryRun:     opts.dryRun,
			Unit:       plan.Unit,
			Guessed:    guessed,
			Migrations: summaries(results),
		})
	}
	return writeSummary(w, input, output, results)
}

// buildPlan returns the mappings to apply: those of the plan file, or the
// single mapping given on the command line. guessed reports whether the old
// domain of that mapping came from GuessOldDomain.
func (a *app) buildPlan(text string, args []string, opts migrateOptions) (plan migration.Plan, guessed bool, err error) {
	if opts.plan != "" {
		if len(args) > 1 {
			return migration.Plan{}, false, usagef("<NEW_URL> cannot be combined with --plan")
		}
		plan, err = config.LoadPlan(opts.plan)
		if err != nil {
			return migration.Plan{}, false, err
		}
		for _, m := range plan.Mappings {
			if err := validateURL(m.New); err != nil {
				return migration.Plan{}, false, fmt.Errorf("%s: %w", opts.plan, err)
			}
		}
		return plan, false, nil
	}

	if len(args) < 2 {
		return migration.Plan{}, false, usagef("no <NEW_URL> given")
	}
	newURL := args[1]
	if err := validateURL(newURL); err != nil {
		return migration.Plan{}, false, err
	}

	oldDomain := opts.oldDomain
	if oldDomain == "" {
		oldDomain = migrate.GuessOldDomain(text)
		if oldDomain == "" {
			return migration.Plan{}, false, fmt.Errorf("cannot guess the old domain of %s: no siteurl option found, use --old-domain", args[0])
		}
		guessed = true
		a.log.Warn("Old domain guessed from siteurl option; check it before using the migrated dump",
			zap.String("old_domain", migration.RedactDomain(oldDomain)))
	}

	plan = migration.Plan{Mappings: []migration.Mapping{{Old: oldDomain, New: newURL}}}
	if err := plan.Validate(); err != nil {
		return migration.Plan{}, false, err
	}
	return plan, guessed, nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func summaries(results []migration.Result) []migration.Summary {
	out := make([]migration.Summary, len(results))
	for i, res := range results {
		out[i] = res.Summary()
	}
	return out
}

func writeSummary(w io.Writer, input, output string, results []migration.Result) error {
	migrated := output
	if migrated == "" {
		migrated = "(dry run, nothing written)"
	}

	if _, err := fmt.Fprintf(w, "%s\nSUCCESS!\nOriginal file: %s\nMigrated file: %s\n", banner, input, migrated); err != nil {
		return err
	}
	for _, res := range results {
		s := res.Summary()
		if _, err := fmt.Fprintf(w, "Old URL: %s\nNew URL: %s\nSerialized count: %d\nReplaced count: %d\n",
			s.OldDomain, s.NewDomain, s.SerializedCount, s.PlainCount); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(w io.Writer, format string, report migration.Report) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = model.ToJSON(report)
	case "yaml":
		data, err = model.ToYAML(report)
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if format == "json" {
		data = append(data, '\n')
	}

	_, err = w.Write(data)
	return err
}
