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


// Package model defines the contracts shared by every dxmig value type that
// crosses a boundary: migration requests, results, plans, reports and the
// enum-like settings that configure them.
//
// A dxmig model validates itself, round-trips through JSON and YAML, renders
// itself safely for logs, names its own type and reports whether it is
// empty. These five concerns are expressed as the small interfaces below and
// combined into Model. Types implementing Model can be used with the generic
// helpers in this package (ValidateAll, ToJSON, ToYAML, FromJSON, FromYAML,
// SafeString, MustValidate).
//
// Redaction matters more than usual here: a Result carries the whole
// rewritten dump, which can be hundreds of megabytes and contain user data.
// Redacted representations MUST therefore omit dump contents and show only
// domains and counters.
//
// Unless explicitly documented otherwise, model values are immutable value
// types and are safe for concurrent reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for dxmig
// value types.
//
// Implementations MUST satisfy all embedded interfaces and SHOULD add a
// compile-time assertion next to the type declaration:
//
//	var _ model.Model = (*Request)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Value is the part of Model that a value type implements with value
// receivers. Unmarshal methods need pointer receivers, so a slice of Mapping
// satisfies Value while only *Mapping satisfies Model. The generic helpers
// accept Value wherever they do not decode.
type Value interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST check every required field and return nil if and only if the
// instance is fully valid. When validation fails, the returned error SHOULD be
// a *errors.ValidationError (or *errors.ArgumentError for operation inputs)
// naming the offending field, so that callers can report exactly which value
// is missing.
//
// Validate MUST be fast and deterministic, MUST NOT mutate the receiver and
// MUST NOT have side effects such as logging.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Marshal methods MUST call Validate first and refuse to encode invalid
// values. Unmarshal methods MUST call Validate after decoding and return the
// validation failure wrapped in an *errors.UnmarshalError.
//
// Implementations SHOULD use the local type alias pattern to avoid infinite
// recursion:
//
//	func (m Mapping) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type mapping Mapping
//	    return json.Marshal(mapping(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations.
//
// Redacted returns a representation suitable for production logs. It MUST
// NOT include dump contents. String MAY include everything and is intended
// for tests and local debugging only.
type Loggable interface {
	// Redacted returns a log-safe representation of the instance.
	Redacted() string

	// String returns a complete, human-readable representation.
	String() string
}

// Identifiable defines the contract for types that report their own name.
//
// TypeName returns the unqualified Go type name (for example, "Request") and
// is used in error messages produced by the generic helpers.
type Identifiable interface {
	// TypeName returns the name of the type without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// IsZero MUST return true if and only if the instance carries no meaningful
// data. It MUST NOT allocate and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is empty.
	IsZero() bool
}

// Comparable defines the optional contract for types that can be compared
// for equality.
//
// Equal MUST be reflexive, symmetric and transitive, and MUST compare all
// semantically significant fields.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to other.
	Equal(other T) bool
}
