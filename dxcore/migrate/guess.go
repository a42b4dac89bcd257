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


package migrate

import "regexp"

// siteURLPattern matches a quoted "siteurl" key followed, after some
// non-quote separator, by a quoted value. In a WordPress dump this is the
// row ('siteurl','http://example.com','yes') of the options table.
var siteURLPattern = regexp.MustCompile(`['"]siteurl['"][^'"]+['"]([^'"]+)['"]`)

// GuessOldDomain returns the value stored under the first "siteurl" key in
// text, or "" when there is none.
//
// The guess is a pattern match, not a parse. It can return an unrelated
// value from a dump that merely mentions siteurl, and it misses dumps that
// store the option differently. Callers MUST treat the result as a
// suggestion to confirm, never as the authoritative old domain.
func GuessOldDomain(text string) string {
	m := siteURLPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
