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
	"gopkg.in/yaml.v3"
)

// Mapping is one old-to-new domain pair.
type Mapping struct {
	// Old is the domain to replace.
	Old string `json:"old" yaml:"old"`

	// New is the domain that replaces it.
	New string `json:"new" yaml:"new"`
}

var _ model.Model = (*Mapping)(nil)

func (m Mapping) String() string {
	return "Mapping{Old:" + m.Old + ", New:" + m.New + "}"
}

func (m Mapping) Redacted() string {
	return "Mapping{Old:" + RedactDomain(m.Old) + ", New:" + RedactDomain(m.New) + "}"
}

func (m Mapping) TypeName() string {
	return "Mapping"
}

func (m Mapping) IsZero() bool {
	return m.Old == "" && m.New == ""
}

func (m Mapping) Equal(other Mapping) bool {
	return m == other
}

// Validate requires both domains and rejects a mapping whose domains differ
// only in letter case, because old domains are matched ignoring case and the
// mapping would rewrite a domain onto itself.
func (m Mapping) Validate() error {
	switch {
	case m.Old == "":
		return &errors.ValidationError{Type: m.TypeName(), Field: "Old", Reason: "must not be empty"}
	case m.New == "":
		return &errors.ValidationError{Type: m.TypeName(), Field: "New", Reason: "must not be empty"}
	case strings.EqualFold(m.Old, m.New):
		return &errors.ValidationError{Type: m.TypeName(), Field: "New", Reason: "must differ from Old", Value: m.New}
	}
	return nil
}

func (m Mapping) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	type mapping Mapping
	return json.Marshal(mapping(m))
}

func (m *Mapping) UnmarshalJSON(data []byte) error {
	type mapping Mapping
	if err := json.Unmarshal(data, (*mapping)(m)); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Data: data, Reason: err.Error()}
	}

	if err := m.Validate(); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

func (m Mapping) MarshalYAML() (interface{}, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	type mapping Mapping
	return mapping(m), nil
}

func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	type mapping Mapping
	if err := node.Decode((*mapping)(m)); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Reason: err.Error()}
	}

	if err := m.Validate(); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

// Plan is an ordered list of mappings applied one after another to the same
// dump, each over the output of the previous one. A typical plan moves both
// the http and https forms of a site:
//
//	unit: bytes
//	mappings:
//	  - old: http://old.example.com
//	    new: https://new.example.org
//	  - old: https://old.example.com
//	    new: https://new.example.org
type Plan struct {
	// Unit is the unit declared lengths are recomputed in. Defaults to bytes.
	Unit model.LengthUnit `json:"unit" yaml:"unit"`

	// Mappings are applied in order.
	Mappings []Mapping `json:"mappings" yaml:"mappings"`
}

var _ model.Model = (*Plan)(nil)

// rawPlan mirrors Plan with unvalidated mappings, so that decoding a plan
// reports every broken mapping at once instead of stopping at the first.
type rawPlan struct {
	Unit     model.LengthUnit `json:"unit" yaml:"unit"`
	Mappings []struct {
		Old string `json:"old" yaml:"old"`
		New string `json:"new" yaml:"new"`
	} `json:"mappings" yaml:"mappings"`
}

func (r rawPlan) plan() Plan {
	p := Plan{Unit: r.Unit, Mappings: make([]Mapping, 0, len(r.Mappings))}
	for _, m := range r.Mappings {
		p.Mappings = append(p.Mappings, Mapping{Old: m.Old, New: m.New})
	}
	return p
}

func (p Plan) String() string {
	parts := make([]string, len(p.Mappings))
	for i, m := range p.Mappings {
		parts[i] = m.String()
	}
	return "Plan{Unit:" + p.Unit.String() + ", Mappings:[" + strings.Join(parts, ", ") + "]}"
}

func (p Plan) Redacted() string {
	parts := make([]string, len(p.Mappings))
	for i, m := range p.Mappings {
		parts[i] = m.Redacted()
	}
	return "Plan{Unit:" + p.Unit.String() + ", Mappings:[" + strings.Join(parts, ", ") + "]}"
}

func (p Plan) TypeName() string {
	return "Plan"
}

func (p Plan) IsZero() bool {
	return p.Unit.IsZero() && len(p.Mappings) == 0
}

// Validate requires at least one mapping and reports every invalid mapping
// together.
func (p Plan) Validate() error {
	if err := p.Unit.Validate(); err != nil {
		return &errors.ValidationError{Type: p.TypeName(), Field: "Unit", Reason: err.Error()}
	}
	if len(p.Mappings) == 0 {
		return &errors.ValidationError{Type: p.TypeName(), Field: "Mappings", Reason: "must contain at least one mapping"}
	}
	if err := model.ValidateAll(p.Mappings); err != nil {
		return &errors.ValidationError{Type: p.TypeName(), Field: "Mappings", Reason: err.Error()}
	}
	return nil
}

func (p Plan) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}

	type plan Plan
	return json.Marshal(plan(p))
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var raw rawPlan
	if err := json.Unmarshal(data, &raw); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}

	*p = raw.plan()
	if err := p.Validate(); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

func (p Plan) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}

	type plan Plan
	return plan(p), nil
}

func (p *Plan) UnmarshalYAML(node *yaml.Node) error {
	var raw rawPlan
	if err := node.Decode(&raw); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Reason: err.Error()}
	}

	*p = raw.plan()
	if err := p.Validate(); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}
