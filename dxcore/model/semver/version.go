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


// Package semver provides the semantic version value type dxmig uses to stamp
// its own release into migration reports.
//
// Reports outlive the binary that wrote them: an operator comparing two
// reports of the same dump needs to know whether both were produced by a
// release with the same rewrite rules. Version wraps github.com/blang/semver/v4
// for parsing and precedence and implements the model.Model contract so that
// it can be embedded in JSON and YAML reports.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxmig/dxcore/errors"
	"dirpx.dev/dxmig/dxcore/model"
	bsemver "github.com/blang/semver/v4"

	"gopkg.in/yaml.v3"
)

// Version is a SemVer 2.0.0 version: MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA].
//
// A Major increment means a release changed rewrite semantics (for example,
// how the declared length is counted) so that dumps migrated by different
// Major versions are not guaranteed to be byte-identical.
type Version struct {
	// Major is the first component of the version.
	Major int

	// Minor is the second component of the version.
	Minor int

	// Patch is the third component of the version.
	Patch int

	// Prerelease is an optional dot-separated pre-release identifier such as
	// "rc.1". A version with a Prerelease has lower precedence than the same
	// version without one.
	Prerelease string

	// Metadata is optional build metadata such as a commit hash. It is
	// ignored for precedence.
	Metadata string
}

var _ model.Model = (*Version)(nil)

// ParseVersion parses a version string. A leading "v" is accepted and
// stripped, since release tags are usually written that way.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(s, "v")

	bv, err := bsemver.Parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}

	return fromBlangSemver(bv), nil
}

// String renders the version without a "v" prefix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Redacted returns the same representation as String.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

func (v Version) toBlangSemver() (bsemver.Version, error) {
	bv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("failed to convert to blang/semver: %w", err)
	}
	return bv, nil
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   strings.Join(bv.Build, "."),
	}
}

// Validate checks the numeric components are non-negative and that the
// version as a whole is well-formed SemVer.
func (v Version) Validate() error {
	// blang/semver uses uint64, so negative components must be caught here.
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return &dxerrors.ValidationError{
			Type:   v.TypeName(),
			Reason: fmt.Sprintf("components must be non-negative, got %d.%d.%d", v.Major, v.Minor, v.Patch),
		}
	}

	if _, err := v.toBlangSemver(); err != nil {
		return &dxerrors.ValidationError{
			Type:   v.TypeName(),
			Reason: err.Error(),
			Value:  v.String(),
		}
	}

	return nil
}

// IsZero reports whether the version is 0.0.0 without prerelease or
// metadata.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 && v.Prerelease == "" && v.Metadata == ""
}

// Compare returns -1, 0 or +1 depending on SemVer precedence. Invalid
// versions compare as equal to everything; callers SHOULD validate first.
func (v Version) Compare(other Version) int {
	bv, err := v.toBlangSemver()
	if err != nil {
		return 0
	}
	bother, err := other.toBlangSemver()
	if err != nil {
		return 0
	}
	return bv.Compare(bother)
}

// Equal reports whether both versions have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compatible reports whether two versions share the same Major component,
// meaning dumps migrated by either produce the same rewrite.
func (v Version) Compatible(other Version) bool {
	return v.Major == other.Major
}

// MarshalJSON encodes the version as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string through ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}

	*v = parsed
	return nil
}

// MarshalYAML encodes the version as a YAML scalar.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar through ParseVersion.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(value.Value), Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(value.Value), Reason: err.Error()}
	}

	*v = parsed
	return nil
}
