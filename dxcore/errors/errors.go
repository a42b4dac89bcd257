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

// Package errors provides the error value carriers shared by every dxmig
// package.
//
// The types here are deliberately small and carry stable messages so that
// they can be surfaced to operators verbatim. Callers recognize them with
// errors.As; the argument failure kind can additionally be matched with
// errors.Is against ErrInvalidArgument.
//
// # Error Types
//
//   - ArgumentError
//     Returned when an operation is invoked with an empty or otherwise
//     unusable argument (for example, an empty dump or an empty domain).
//     No partial output is ever produced alongside it.
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails, such as
//     a length unit read from a flag or an environment variable.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling JSON or YAML into a model fails.
//
//   - ValidationError
//     Returned by Validate() methods of model types.
//
// There is deliberately no error for "nothing to replace": a dump without
// any occurrence of the old domain is a normal, zero-count outcome.
package errors

import (
	stderrors "errors"
	"strconv"
)

// ErrInvalidArgument is the sentinel every *ArgumentError matches via
// errors.Is.
var ErrInvalidArgument = stderrors.New("dxmig: invalid argument")

// ArgumentError is returned when a required argument is empty or absent.
//
// Op names the operation that rejected the call (for example, "migrate"),
// Argument names the offending parameter (for example, "old_domain") and
// Reason says what is wrong with it.
//
// # Example
//
//	if oldDomain == "" {
//	    // "dxmig: migrate: invalid argument old_domain: must not be empty"
//	    return &errors.ArgumentError{
//	        Op:       "migrate",
//	        Argument: "old_domain",
//	        Reason:   "must not be empty",
//	    }
//	}
type ArgumentError struct {
	// Op is the operation that rejected the argument.
	Op string

	// Argument is the name of the missing or invalid argument.
	Argument string

	// Reason is a short, human-readable explanation.
	Reason string
}

// Error implements the error interface for ArgumentError.
//
// The error message format is:
//
//	"dxmig: {Op}: invalid argument {Argument}: {Reason}"
//	"dxmig: invalid argument {Argument}: {Reason}" (when Op is empty)
func (e *ArgumentError) Error() string {
	if e.Op == "" {
		return "dxmig: invalid argument " + e.Argument + ": " + e.Reason
	}
	return "dxmig: " + e.Op + ": invalid argument " + e.Argument + ": " + e.Reason
}

// Is reports whether target is ErrInvalidArgument, so callers can classify
// the failure without a type assertion.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "LengthUnit"),
// and Value contains the exact string that could not be interpreted.
//
// # Example
//
//	func ParseLengthUnit(s string) (LengthUnit, error) {
//	    switch s {
//	    case "bytes":
//	        return Bytes, nil
//	    default:
//	        // "dxmig: invalid LengthUnit value: <value>"
//	        return 0, &errors.ParseError{Type: "LengthUnit", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxmig: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxmig: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// numeric cast that produced an undefined enum value.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxmig: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxmig: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the original
// raw payload and Reason describes what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations; plan files can carry production domains.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxmig: cannot unmarshal {Type}: {Reason}"
//
// The Data field is not included in the formatted message.
func (e *UnmarshalError) Error() string {
	return "dxmig: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Request", "Mapping"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation and Value
// optionally contains the problematic value.
//
// # Example
//
//	func (m Mapping) Validate() error {
//	    if m.Old == "" {
//	        return &errors.ValidationError{
//	            Type:   "Mapping",
//	            Field:  "Old",
//	            Reason: "must not be empty",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxmig: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxmig: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxmig: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxmig: invalid " + e.Type + ": " + e.Reason
}
