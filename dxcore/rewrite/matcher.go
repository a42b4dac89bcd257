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


package rewrite

import (
	"regexp"
	"strings"
)

// metaChars lists the characters Escape prefixes with a backslash.
const metaChars = `\/.*+?|()[]{}^$`

// Escape returns s with every pattern metacharacter preceded by a backslash,
// so that the result can be embedded in a regular expression and matches s
// literally.
//
// Escape is applied exactly once to a raw domain. It is not idempotent:
// escaping an already escaped string escapes the backslashes again.
func Escape(s string) string {
	if !strings.ContainsAny(s, metaChars) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(metaChars, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Matcher finds a domain in text, ignoring case.
//
// A Matcher is immutable once built and is safe for concurrent use.
type Matcher struct {
	domain string
	re     *regexp.Regexp
}

// NewMatcher builds a Matcher for the literal domain. An empty domain
// matches nothing.
//
// A domain that is not valid UTF-8 cannot be case-folded; it is matched
// byte for byte instead.
func NewMatcher(domain string) *Matcher {
	m := &Matcher{domain: domain}
	if domain == "" {
		return m
	}
	if re, err := regexp.Compile("(?i)" + Escape(domain)); err == nil {
		m.re = re
	}
	return m
}

// Domain returns the literal domain the Matcher was built for.
func (m *Matcher) Domain() string {
	return m.domain
}

// Contains reports whether s contains the domain in any letter case.
func (m *Matcher) Contains(s string) bool {
	switch {
	case m.domain == "":
		return false
	case m.re == nil:
		return strings.Contains(s, m.domain)
	default:
		return m.re.MatchString(s)
	}
}

// ReplaceAll replaces every occurrence of the domain in s, in any letter
// case, with repl and returns the new text along with the number of
// occurrences replaced. repl is inserted literally; "$1" in repl is not
// expanded.
func (m *Matcher) ReplaceAll(s, repl string) (string, int) {
	locs := m.find(s)
	if len(locs) == 0 {
		return s, 0
	}

	var b strings.Builder
	if n := len(s) + len(locs)*(len(repl)-len(m.domain)); n > 0 {
		b.Grow(n)
	}
	prev := 0
	for _, loc := range locs {
		b.WriteString(s[prev:loc[0]])
		b.WriteString(repl)
		prev = loc[1]
	}
	b.WriteString(s[prev:])

	return b.String(), len(locs)
}

// find returns the non-overlapping [start, end) offsets of every occurrence,
// left to right.
func (m *Matcher) find(s string) [][]int {
	switch {
	case m.domain == "":
		return nil
	case m.re != nil:
		return m.re.FindAllStringIndex(s, -1)
	}

	var locs [][]int
	for off := 0; ; {
		i := strings.Index(s[off:], m.domain)
		if i < 0 {
			return locs
		}
		start := off + i
		off = start + len(m.domain)
		locs = append(locs, []int{start, off})
	}
}
