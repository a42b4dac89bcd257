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

// Request asks for every occurrence of OldDomain in Haystack to be replaced
// with NewDomain.
//
// All three fields MUST be non-empty; NewRequest and Validate report the
// first empty one as an *errors.ArgumentError, which matches
// errors.ErrInvalidArgument.
type Request struct {
	// Haystack is the complete dump, already decoded as text.
	Haystack string `json:"haystack" yaml:"haystack"`

	// OldDomain is the domain to replace, usually a URL prefix such as
	// "http://old.example.com". It is matched literally and ignoring case.
	OldDomain string `json:"old_domain" yaml:"old_domain"`

	// NewDomain is inserted verbatim in place of every occurrence.
	NewDomain string `json:"new_domain" yaml:"new_domain"`
}

var _ model.Model = (*Request)(nil)

// NewRequest builds a Request and validates it.
func NewRequest(haystack, oldDomain, newDomain string) (Request, error) {
	r := Request{
		Haystack:  haystack,
		OldDomain: oldDomain,
		NewDomain: newDomain,
	}

	if err := r.Validate(); err != nil {
		return Request{}, err
	}

	return r, nil
}

// LengthDelta returns the difference between the new and old domain lengths
// in unit. It is informational; every rewritten field recomputes its own
// length.
func (r Request) LengthDelta(unit model.LengthUnit) int {
	return unit.Len(r.NewDomain) - unit.Len(r.OldDomain)
}

// String returns a representation with full domains. The haystack is shown
// by size only.
func (r Request) String() string {
	return fmt.Sprintf("Request{Haystack:%s, OldDomain:%s, NewDomain:%s}",
		sizeOf(r.Haystack), r.OldDomain, r.NewDomain)
}

// Redacted returns a representation with passwords in domains masked.
func (r Request) Redacted() string {
	return fmt.Sprintf("Request{Haystack:%s, OldDomain:%s, NewDomain:%s}",
		sizeOf(r.Haystack), RedactDomain(r.OldDomain), RedactDomain(r.NewDomain))
}

// TypeName returns "Request".
func (r Request) TypeName() string {
	return "Request"
}

// IsZero reports whether all fields are empty.
func (r Request) IsZero() bool {
	return r.Haystack == "" && r.OldDomain == "" && r.NewDomain == ""
}

// Equal reports whether both requests have identical fields.
func (r Request) Equal(other Request) bool {
	return r == other
}

// Validate reports the first empty argument, in the order haystack,
// old_domain, new_domain.
func (r Request) Validate() error {
	switch {
	case r.Haystack == "":
		return &errors.ArgumentError{Op: "migrate", Argument: "haystack", Reason: "must not be empty"}
	case r.OldDomain == "":
		return &errors.ArgumentError{Op: "migrate", Argument: "old_domain", Reason: "must not be empty"}
	case r.NewDomain == "":
		return &errors.ArgumentError{Op: "migrate", Argument: "new_domain", Reason: "must not be empty"}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Request) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	type request Request
	return json.Marshal(request(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Request) UnmarshalJSON(data []byte) error {
	type request Request
	if err := json.Unmarshal(data, (*request)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}

	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Request) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	type request Request
	return request(r), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Request) UnmarshalYAML(node *yaml.Node) error {
	type request Request
	if err := node.Decode((*request)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Reason: err.Error()}
	}

	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	return nil
}
