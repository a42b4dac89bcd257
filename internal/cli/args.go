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


package cli

import (
	"net"
	"net/url"
	"path/filepath"
	"strings"
	"unicode"
)

// validateURL checks that raw is an absolute http, https or ftp URL, or a
// scheme-relative one, naming a public host. Loopback, private and
// link-local addresses are rejected, as are single-label hosts such as
// "localhost": a dump migrated to them is not reachable by its visitors.
func validateURL(raw string) error {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return usagef("<NEW_URL> is invalid: %q", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return usagef("<NEW_URL> is invalid: %s", raw)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
	case "":
		if !strings.HasPrefix(raw, "//") {
			return usagef("<NEW_URL> is invalid: %s: missing scheme", raw)
		}
	default:
		return usagef("<NEW_URL> is invalid: %s: unsupported scheme %q", raw, u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return usagef("<NEW_URL> is invalid: %s: missing host", raw)
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return usagef("<NEW_URL> is invalid: %s: %s is not a public address", raw, host)
		}
		return nil
	}

	labels := strings.Split(strings.TrimSuffix(host, "."), ".")
	tld := labels[len(labels)-1]
	if len(labels) < 2 || !isTopLevelDomain(tld) {
		return usagef("<NEW_URL> is invalid: %s: %s is not a fully qualified host", raw, host)
	}
	return nil
}

func isTopLevelDomain(label string) bool {
	if len([]rune(label)) < 2 {
		return false
	}
	for _, r := range label {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// outputPath names the migrated file next to input by inserting suffix
// before the extension: dump.sql -> dump-migrated.sql.
func outputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	if ext == filepath.Base(input) {
		ext = ""
	}
	return strings.TrimSuffix(input, ext) + suffix + ext
}
