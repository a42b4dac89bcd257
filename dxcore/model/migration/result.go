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

	"dirpx.dev/dxmig/dxcore/errors"
	"dirpx.dev/dxmig/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of one migration: the rewritten dump plus the
// counters an operator needs to judge whether the right domain was moved.
type Result struct {
	// Text is the rewritten dump.
	Text string `json:"rewritten_text" yaml:"rewritten_text"`

	// OldDomain is the domain that was replaced.
	OldDomain string `json:"old_domain" yaml:"old_domain"`

	// NewDomain is the domain that replaced it.
	NewDomain string `json:"new_domain" yaml:"new_domain"`

	// Unit is the unit declared lengths were recomputed in.
	Unit model.LengthUnit `json:"length_unit" yaml:"length_unit"`

	// SerializedCount is the number of serialized string fields whose
	// content was rewritten. A field holding the domain twice counts once.
	SerializedCount int `json:"serialized_replacement_count" yaml:"serialized_replacement_count"`

	// PlainCount is the number of occurrences replaced outside serialized
	// fields.
	PlainCount int `json:"plain_replacement_count" yaml:"plain_replacement_count"`

	// LengthDelta is len(NewDomain) - len(OldDomain) measured in Unit. It is
	// reported for diagnostics only.
	LengthDelta int `json:"domain_length_delta" yaml:"domain_length_delta"`
}

var _ model.Model = (*Result)(nil)

// ProcessedText returns the rewritten dump.
func (r Result) ProcessedText() string {
	return r.Text
}

// Total returns the number of replacements made by both passes.
func (r Result) Total() int {
	return r.SerializedCount + r.PlainCount
}

// Summary returns the Result without its text.
func (r Result) Summary() Summary {
	return Summary{
		OldDomain:       r.OldDomain,
		NewDomain:       r.NewDomain,
		SerializedCount: r.SerializedCount,
		PlainCount:      r.PlainCount,
		LengthDelta:     r.LengthDelta,
	}
}

// String returns a representation with full domains; the text is shown by
// size only.
func (r Result) String() string {
	return fmt.Sprintf("Result{Text:%s, OldDomain:%s, NewDomain:%s, Unit:%s, Serialized:%d, Plain:%d, Delta:%d}",
		sizeOf(r.Text), r.OldDomain, r.NewDomain, r.Unit, r.SerializedCount, r.PlainCount, r.LengthDelta)
}

// Redacted returns a representation with passwords in domains masked.
func (r Result) Redacted() string {
	return fmt.Sprintf("Result{Text:%s, OldDomain:%s, NewDomain:%s, Unit:%s, Serialized:%d, Plain:%d, Delta:%d}",
		sizeOf(r.Text), RedactDomain(r.OldDomain), RedactDomain(r.NewDomain), r.Unit, r.SerializedCount, r.PlainCount, r.LengthDelta)
}

// TypeName returns "Result".
func (r Result) TypeName() string {
	return "Result"
}

// IsZero reports whether the Result carries nothing.
func (r Result) IsZero() bool {
	return r == Result{}
}

// Equal reports whether both results have identical fields.
func (r Result) Equal(other Result) bool {
	return r == other
}

// Validate checks domains are set, counters are non-negative, the unit is
// defined and LengthDelta agrees with the domains.
func (r Result) Validate() error {
	if err := r.Summary().validate(r.TypeName()); err != nil {
		return err
	}
	if err := r.Unit.Validate(); err != nil {
		return &errors.ValidationError{Type: r.TypeName(), Field: "Unit", Reason: err.Error()}
	}
	if want := r.Unit.Len(r.NewDomain) - r.Unit.Len(r.OldDomain); r.LengthDelta != want {
		return &errors.ValidationError{
			Type:   r.TypeName(),
			Field:  "LengthDelta",
			Reason: fmt.Sprintf("must be %d for the given domains (got %d)", want, r.LengthDelta),
			Value:  r.LengthDelta,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	type result Result
	return json.Marshal(result(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(data []byte) error {
	type result Result
	if err := json.Unmarshal(data, (*result)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}

	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	type result Result
	return result(r), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Result) UnmarshalYAML(node *yaml.Node) error {
	type result Result
	if err := node.Decode((*result)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Reason: err.Error()}
	}

	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

// Summary is a Result without the rewritten text, small enough to log and
// to store in reports.
type Summary struct {
	OldDomain       string `json:"old_domain" yaml:"old_domain"`
	NewDomain       string `json:"new_domain" yaml:"new_domain"`
	SerializedCount int    `json:"serialized_replacement_count" yaml:"serialized_replacement_count"`
	PlainCount      int    `json:"plain_replacement_count" yaml:"plain_replacement_count"`
	LengthDelta     int    `json:"domain_length_delta" yaml:"domain_length_delta"`
}

var _ model.Model = (*Summary)(nil)

func (s Summary) String() string {
	return fmt.Sprintf("Summary{OldDomain:%s, NewDomain:%s, Serialized:%d, Plain:%d, Delta:%d}",
		s.OldDomain, s.NewDomain, s.SerializedCount, s.PlainCount, s.LengthDelta)
}

func (s Summary) Redacted() string {
	return fmt.Sprintf("Summary{OldDomain:%s, NewDomain:%s, Serialized:%d, Plain:%d, Delta:%d}",
		RedactDomain(s.OldDomain), RedactDomain(s.NewDomain), s.SerializedCount, s.PlainCount, s.LengthDelta)
}

func (s Summary) TypeName() string {
	return "Summary"
}

func (s Summary) IsZero() bool {
	return s == Summary{}
}

func (s Summary) Equal(other Summary) bool {
	return s == other
}

func (s Summary) Validate() error {
	return s.validate(s.TypeName())
}

func (s Summary) validate(typeName string) error {
	switch {
	case s.OldDomain == "":
		return &errors.ValidationError{Type: typeName, Field: "OldDomain", Reason: "must not be empty"}
	case s.NewDomain == "":
		return &errors.ValidationError{Type: typeName, Field: "NewDomain", Reason: "must not be empty"}
	case s.SerializedCount < 0:
		return &errors.ValidationError{Type: typeName, Field: "SerializedCount", Reason: "must be non-negative", Value: s.SerializedCount}
	case s.PlainCount < 0:
		return &errors.ValidationError{Type: typeName, Field: "PlainCount", Reason: "must be non-negative", Value: s.PlainCount}
	}
	return nil
}

func (s Summary) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}

	type summary Summary
	return json.Marshal(summary(s))
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	type summary Summary
	if err := json.Unmarshal(data, (*summary)(s)); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: err.Error()}
	}

	if err := s.Validate(); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

func (s Summary) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}

	type summary Summary
	return summary(s), nil
}

func (s *Summary) UnmarshalYAML(node *yaml.Node) error {
	type summary Summary
	if err := node.Decode((*summary)(s)); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Reason: err.Error()}
	}

	if err := s.Validate(); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}
