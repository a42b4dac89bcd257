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


package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/dxmig/dxcore/model/semver"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
	Version, Commit, Date = version, commit, date
}

func TestToolVersion(t *testing.T) {
	cases := []struct {
		stamped string
		want    semver.Version
	}{
		{"0.1.0-dev", semver.Version{Minor: 1, Prerelease: "dev"}},
		{"v1.4.2", semver.Version{Major: 1, Minor: 4, Patch: 2}},
		{"2.0.0+abc123", semver.Version{Major: 2, Metadata: "abc123"}},
		{"nightly", semver.Version{Prerelease: "unknown"}},
		{"", semver.Version{Prerelease: "unknown"}},
	}
	for _, c := range cases {
		t.Run(c.stamped, func(t *testing.T) {
			stamp(t, c.stamped, "none", "unknown")
			got := ToolVersion()
			assert.True(t, got.Equal(c.want), "ToolVersion() = %s, want %s", got, c.want)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestString(t *testing.T) {
	stamp(t, "v1.2.3", "a1b2c3d", "2026-10-17")
	assert.Equal(t, "dxmig 1.2.3 (commit a1b2c3d, built 2026-10-17)", String())
}
