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


package model_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"dirpx.dev/dxmig/dxcore/errors"
	"dirpx.dev/dxmig/dxcore/model"
	"gopkg.in/yaml.v3"
)

func TestLengthUnit_String(t *testing.T) {
	tests := []struct {
		name string
		unit model.LengthUnit
		want string
	}{
		{"bytes", model.Bytes, "bytes"},
		{"runes", model.Runes, "runes"},
		{"unknown", model.LengthUnit(7), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLengthUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    model.LengthUnit
		wantErr bool
	}{
		{"bytes", model.Bytes, false},
		{"byte", model.Bytes, false},
		{"BYTES", model.Bytes, false},
		{"runes", model.Runes, false},
		{"chars", model.Runes, false},
		{"characters", model.Runes, false},
		{"Runes", model.Runes, false},
		{"", model.Bytes, true},
		{"words", model.Bytes, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseLengthUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLengthUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) {
					t.Errorf("ParseLengthUnit(%q) error type = %T, want *errors.ParseError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLengthUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLengthUnit_Len(t *testing.T) {
	tests := []struct {
		name string
		unit model.LengthUnit
		s    string
		want int
	}{
		{"ascii bytes", model.Bytes, "https://new.example.org", 23},
		{"ascii runes", model.Runes, "https://new.example.org", 23},
		{"multibyte bytes", model.Bytes, "https://bücher.example", 23},
		{"multibyte runes", model.Runes, "https://bücher.example", 22},
		{"empty", model.Runes, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Len(tt.s); got != tt.want {
				t.Errorf("Len(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestLengthUnit_Validate(t *testing.T) {
	if err := model.Bytes.Validate(); err != nil {
		t.Errorf("Bytes.Validate() = %v", err)
	}
	if err := model.Runes.Validate(); err != nil {
		t.Errorf("Runes.Validate() = %v", err)
	}
	if err := model.LengthUnit(-1).Validate(); err == nil {
		t.Error("LengthUnit(-1).Validate() = nil, want error")
	}
}

func TestLengthUnit_JSON(t *testing.T) {
	data, err := json.Marshal(model.Runes)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"runes"` {
		t.Errorf("Marshal() = %s, want \"runes\"", data)
	}

	tests := []struct {
		name    string
		input   string
		want    model.LengthUnit
		wantErr bool
	}{
		{"string", `"bytes"`, model.Bytes, false},
		{"variant", `"chars"`, model.Runes, false},
		{"numeric", `1`, model.Runes, false},
		{"invalid numeric", `5`, model.Bytes, true},
		{"invalid string", `"words"`, model.Bytes, true},
		{"wrong type", `true`, model.Bytes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u model.LengthUnit
			err := json.Unmarshal([]byte(tt.input), &u)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && u != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, u, tt.want)
			}
		})
	}

	if _, err := json.Marshal(model.LengthUnit(9)); err == nil {
		t.Error("Marshal(LengthUnit(9)) should fail")
	}
}

func TestLengthUnit_YAML(t *testing.T) {
	type holder struct {
		Unit model.LengthUnit `yaml:"unit"`
	}

	data, err := yaml.Marshal(holder{Unit: model.Runes})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "unit: runes\n" {
		t.Errorf("Marshal() = %q, want %q", data, "unit: runes\n")
	}

	var h holder
	if err := yaml.Unmarshal([]byte("unit: bytes\n"), &h); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if h.Unit != model.Bytes {
		t.Errorf("Unmarshal() = %v, want bytes", h.Unit)
	}

	if err := yaml.Unmarshal([]byte("unit: lines\n"), &h); err == nil {
		t.Error("Unmarshal(lines) should fail")
	}
}

func TestLengthUnit_Text(t *testing.T) {
	var u model.LengthUnit
	if err := u.UnmarshalText([]byte("runes")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if u != model.Runes {
		t.Errorf("UnmarshalText() = %v, want runes", u)
	}

	text, err := model.Bytes.MarshalText()
	if err != nil || string(text) != "bytes" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}

func TestLengthUnit_IsZero(t *testing.T) {
	if !model.Bytes.IsZero() {
		t.Error("Bytes.IsZero() = false, want true")
	}
	if model.Runes.IsZero() {
		t.Error("Runes.IsZero() = true, want false")
	}
	if model.Runes.TypeName() != "LengthUnit" {
		t.Errorf("TypeName() = %q", model.Runes.TypeName())
	}
}
