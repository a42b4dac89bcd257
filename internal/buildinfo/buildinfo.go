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


// Package buildinfo holds the release information stamped into the binary at
// link time:
//
//	go build -ldflags "-X dirpx.dev/dxmig/internal/buildinfo.Version=1.2.0 \
//	    -X dirpx.dev/dxmig/internal/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X dirpx.dev/dxmig/internal/buildinfo.Date=$(date -u +%Y-%m-%d)"
package buildinfo

import (
	"fmt"

	"dirpx.dev/dxmig/dxcore/model/semver"
)

var (
	// Version is the release version, with or without a leading "v".
	Version = "0.1.0-dev"

	// Commit is the short hash of the commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)

// unknownVersion is reported when Version was stamped with something that
// is not a semantic version.
var unknownVersion = semver.Version{Prerelease: "unknown"}

// ToolVersion returns Version parsed as a semantic version, or 0.0.0-unknown
// when it does not parse.
func ToolVersion() semver.Version {
	v, err := semver.ParseVersion(Version)
	if err != nil {
		return unknownVersion
	}
	return v
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("dxmig %s (commit %s, built %s)", ToolVersion(), Commit, Date)
}
