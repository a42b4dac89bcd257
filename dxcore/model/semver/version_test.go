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


package semver_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxmig/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

func TestVersion_String(t *testing.T) {
	tests := []struct {
		name    string
		version semver.Version
		want    string
	}{
		{"simple_version", semver.Version{Major: 1, Minor: 2, Patch: 3}, "1.2.3"},
		{"with_prerelease", semver.Version{Major: 1, Prerelease: "alpha.1"}, "1.0.0-alpha.1"},
		{"with_metadata", semver.Version{Major: 2, Metadata: "build.123"}, "2.0.0+build.123"},
		{"with_both", semver.Version{Major: 1, Prerelease: "rc.1", Metadata: "exp.sha.5114f85"}, "1.0.0-rc.1+exp.sha.5114f85"},
		{"zero_version", semver.Version{}, "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    semver.Version
		wantErr bool
	}{
		{"simple_version", "1.2.3", semver.Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"v_prefix", "v1.1.0", semver.Version{Major: 1, Minor: 1}, false},
		{"prerelease", "1.0.0-rc.1", semver.Version{Major: 1, Prerelease: "rc.1"}, false},
		{"metadata", "1.0.0+abc.def", semver.Version{Major: 1, Metadata: "abc.def"}, false},
		{"dev_is_invalid", "dev", semver.Version{}, true},
		{"missing_patch", "1.2", semver.Version{}, true},
		{"empty", "", semver.Version{}, true},
		{"leading_zero", "01.2.3", semver.Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := semver.ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		version semver.Version
		wantErr bool
	}{
		{"valid", semver.Version{Major: 1}, false},
		{"zero", semver.Version{}, false},
		{"negative", semver.Version{Major: -1}, true},
		{"bad_prerelease", semver.Version{Major: 1, Prerelease: "rc..1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.version.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0+a", "1.0.0+b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, _ := semver.ParseVersion(tt.a)
			b, _ := semver.ParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := a.Equal(b); got != (tt.want == 0) {
				t.Errorf("Equal() = %v, want %v", got, tt.want == 0)
			}
		})
	}
}

func TestVersion_Compatible(t *testing.T) {
	a := semver.Version{Major: 1, Minor: 1}
	if !a.Compatible(semver.Version{Major: 1, Minor: 4, Patch: 2}) {
		t.Error("1.1.0 should be compatible with 1.4.2")
	}
	if a.Compatible(semver.Version{Major: 2}) {
		t.Error("1.1.0 should not be compatible with 2.0.0")
	}
}

func TestVersion_JSON(t *testing.T) {
	v := semver.Version{Major: 1, Minor: 1, Patch: 0, Prerelease: "rc.2"}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"1.1.0-rc.2"` {
		t.Errorf("Marshal() = %s", data)
	}

	var got semver.Version
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != v {
		t.Errorf("Unmarshal() = %+v, want %+v", got, v)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &got); err == nil {
		t.Error("Unmarshal(nope) should fail")
	}
	if err := json.Unmarshal([]byte(`12`), &got); err == nil {
		t.Error("Unmarshal(12) should fail")
	}
}

func TestVersion_YAML(t *testing.T) {
	type holder struct {
		Tool semver.Version `yaml:"tool"`
	}

	data, err := yaml.Marshal(holder{Tool: semver.Version{Major: 1, Minor: 1}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "tool: 1.1.0\n" {
		t.Errorf("Marshal() = %q", data)
	}

	var h holder
	if err := yaml.Unmarshal([]byte("tool: v2.3.4\n"), &h); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if h.Tool != (semver.Version{Major: 2, Minor: 3, Patch: 4}) {
		t.Errorf("Unmarshal() = %+v", h.Tool)
	}
}
