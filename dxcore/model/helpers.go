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


package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns every validation error
// encountered, not just the first one.
//
// Each failure is wrapped with the model's position in the slice and its type
// name, then aggregated with rxmerr.Collector. A plan listing five mappings
// with two broken entries therefore reports both entries at once, which is
// what an operator editing a plan file wants to see. Empty slices are valid.
//
// Example:
//
//	if err := ValidateAll(plan.Mappings); err != nil {
//	    return fmt.Errorf("plan rejected: %w", err)
//	}
func ValidateAll[T Value](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate validates a model and panics if validation fails.
//
// It is intended for package-level initialization and tests, where an invalid
// model is a programming error rather than a runtime condition.
func MustValidate[T Value](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns the redacted representation of a model unless unsafe is
// true, in which case it returns the full String form.
//
// Callers SHOULD pass a debug flag as unsafe so that full representations
// only reach logs when an operator explicitly asked for them.
func SafeString[T Value](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates a model and marshals it to JSON.
func ToJSON[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates a model and marshals it to YAML.
func ToYAML[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// m is a pointer to a Model value type, for example &plan. If FromJSON
// returns an error, the state of *m is undefined and MUST NOT be
// used.
func FromJSON[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// Plan files are loaded through FromYAML so that a plan with missing domains
// is rejected when it is read rather than halfway through a migration.
func FromYAML[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
