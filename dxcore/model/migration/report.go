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


package migration

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxmig/dxcore/errors"
	"dirpx.dev/dxmig/dxcore/model"
	"dirpx.dev/dxmig/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

// Report records what a migration run did to one dump file.
//
// Reports are written by the command line tool and are meant to be kept
// alongside the migrated dump, so that a later run can be compared with it.
type Report struct {
	// Tool is the dxmig release that produced the report.
	Tool semver.Version `json:"tool" yaml:"tool"`

	// Input is the path of the dump that was read.
	Input string `json:"input" yaml:"input"`

	// Output is the path the rewritten dump was written to. It is empty for
	// dry runs.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// DryRun is true when nothing was written.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Unit is the unit declared lengths were recomputed in.
	Unit model.LengthUnit `json:"length_unit" yaml:"length_unit"`

	// Guessed is true when the first old domain was not given by the
	// operator but guessed from the dump.
	Guessed bool `json:"old_domain_guessed" yaml:"old_domain_guessed"`

	// Migrations holds one summary per mapping, in the order applied.
	Migrations []Summary `json:"migrations" yaml:"migrations"`
}

var _ model.Model = (*Report)(nil)

// SerializedTotal returns the number of serialized fields rewritten across
// all migrations.
func (r Report) SerializedTotal() int {
	n := 0
	for _, s := range r.Migrations {
		n += s.SerializedCount
	}
	return n
}

// PlainTotal returns the number of plain occurrences replaced across all
// migrations.
func (r Report) PlainTotal() int {
	n := 0
	for _, s := range r.Migrations {
		n += s.PlainCount
	}
	return n
}

func (r Report) String() string {
	return r.render(Summary.String)
}

func (r Report) Redacted() string {
	return r.render(Summary.Redacted)
}

func (r Report) render(summary func(Summary) string) string {
	parts := make([]string, len(r.Migrations))
	for i, s := range r.Migrations {
		parts[i] = summary(s)
	}
	return fmt.Sprintf("Report{Tool:%s, Input:%s, Output:%s, DryRun:%t, Unit:%s, Guessed:%t, Migrations:[%s]}",
		r.Tool, r.Input, r.Output, r.DryRun, r.Unit, r.Guessed, strings.Join(parts, ", "))
}

func (r Report) TypeName() string {
	return "Report"
}

func (r Report) IsZero() bool {
	return r.Tool.IsZero() && r.Input == "" && r.Output == "" && !r.DryRun &&
		r.Unit.IsZero() && !r.Guessed && len(r.Migrations) == 0
}

func (r Report) Validate() error {
	if err := r.Tool.Validate(); err != nil {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Tool", Reason: err.Error()}
	}
	if r.Input == "" {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Input", Reason: "must not be empty"}
	}
	if r.DryRun && r.Output != "" {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Output", Reason: "must be empty for a dry run", Value: r.Output}
	}
	if !r.DryRun && r.Output == "" {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Output", Reason: "must not be empty"}
	}
	if err := r.Unit.Validate(); err != nil {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Unit", Reason: err.Error()}
	}
	if len(r.Migrations) == 0 {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Migrations", Reason: "must contain at least one migration"}
	}
	if err := model.ValidateAll(r.Migrations); err != nil {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Migrations", Reason: err.Error()}
	}
	return nil
}

func (r Report) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	type report Report
	return json.Marshal(report(r))
}

func (r *Report) UnmarshalJSON(data []byte) error {
	type report Report
	if err := json.Unmarshal(data, (*report)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}

	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

func (r Report) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	type report Report
	return report(r), nil
}

func (r *Report) UnmarshalYAML(node *yaml.Node) error {
	type report Report
	if err := node.Decode((*report)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Reason: err.Error()}
	}

	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}
