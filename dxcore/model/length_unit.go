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
	"unicode/utf8"

	"dirpx.dev/dxmig/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// LengthUnit selects how the declared length of a rewritten serialized string
// is counted.
//
// The serialized-string idiom stores the length of its content in front of
// it: s:<length>:"<content>";. For ASCII domains every unit agrees, but a
// domain containing multi-byte characters (for example an IDN written in
// Unicode rather than punycode) has more bytes than characters. The unit MUST
// match what the consumer of the dump reads back, or every rewritten field
// becomes unparsable.
type LengthUnit int

const (
	// Bytes counts the UTF-8 encoded length of the content.
	//
	// This is what PHP's unserialize expects and is the default: the zero
	// value of LengthUnit is Bytes.
	Bytes LengthUnit = iota

	// Runes counts Unicode code points.
	//
	// Use Runes only for consumers that count characters instead of bytes.
	Runes
)

var _ Model = (*LengthUnit)(nil)

// String constants for LengthUnit values used in flags, environment
// variables and plan files.
const (
	BytesStr = "bytes"
	RunesStr = "runes"
)

// String returns the canonical string representation of the LengthUnit:
//
//	Bytes -> "bytes"
//	Runes -> "runes"
//
// Undefined values render as "unknown".
func (u LengthUnit) String() string {
	switch u {
	case Bytes:
		return BytesStr
	case Runes:
		return RunesStr
	default:
		return "unknown"
	}
}

// ParseLengthUnit converts a textual representation into a LengthUnit.
//
// A few common spellings are accepted:
//
//	"bytes", "byte", "Bytes", "BYTES"                         -> Bytes
//	"runes", "rune", "chars", "characters", "Runes", "RUNES"  -> Runes
//
// Any other input yields a *errors.ParseError.
func ParseLengthUnit(str string) (LengthUnit, error) {
	switch str {
	case BytesStr, "byte", "Bytes", "BYTES":
		return Bytes, nil
	case RunesStr, "rune", "chars", "characters", "Runes", "RUNES":
		return Runes, nil
	default:
		return Bytes, &errors.ParseError{Type: "LengthUnit", Value: str}
	}
}

// Valid reports whether the LengthUnit value is one of the defined constants.
func (u LengthUnit) Valid() bool {
	return u == Bytes || u == Runes
}

// Len returns the length of s measured in this unit.
//
// Undefined units fall back to Bytes; callers that accept units from
// untrusted input SHOULD call Validate first.
func (u LengthUnit) Len(s string) int {
	if u == Runes {
		return utf8.RuneCountInString(s)
	}
	return len(s)
}

// MarshalJSON implements json.Marshaler for LengthUnit.
func (u LengthUnit) MarshalJSON() ([]byte, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "LengthUnit", Value: int(u)}
	}
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for LengthUnit.
//
// Both string ("bytes", "runes" and the variants accepted by
// ParseLengthUnit) and numeric (0, 1) representations are accepted.
func (u *LengthUnit) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "LengthUnit", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "LengthUnit", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseLengthUnit(str)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "LengthUnit", Data: data, Reason: err.Error()}
	}
	*u = LengthUnit(i)
	if !u.Valid() {
		return &errors.UnmarshalError{Type: "LengthUnit", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for LengthUnit.
func (u LengthUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "LengthUnit", Value: int(u)}
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for LengthUnit, which
// lets the unit be bound directly to environment variables and flags.
func (u *LengthUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseLengthUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// TypeName returns "LengthUnit".
func (u LengthUnit) TypeName() string {
	return "LengthUnit"
}

// Redacted returns the same representation as String; units are not
// sensitive.
func (u LengthUnit) Redacted() string {
	return u.String()
}

// IsZero reports whether the unit is Bytes, the zero value. Bytes is a valid
// unit, so IsZero returning true is not an error condition.
func (u LengthUnit) IsZero() bool {
	return u == Bytes
}

// Equal reports whether two units are the same constant.
func (u LengthUnit) Equal(other LengthUnit) bool {
	return u == other
}

// Validate returns a *errors.MarshalError for undefined values.
func (u LengthUnit) Validate() error {
	if !u.Valid() {
		return &errors.MarshalError{Type: "LengthUnit", Value: int(u)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for LengthUnit.
func (u LengthUnit) MarshalYAML() (any, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "LengthUnit", Value: int(u)}
	}
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for LengthUnit.
func (u *LengthUnit) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "LengthUnit", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseLengthUnit(str)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
