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

// SplitLines splits s into lines and line breaks.
//
// The line breaks "\r\n", "\n\r", "\n" and "\r" are recognized (two-byte
// sequences first) and each one is returned as its own element, so that
// strings.Join(SplitLines(s), "") == s for every input. Empty lines between
// consecutive breaks are not materialized.
func SplitLines(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\n' && c != '\r' {
			i++
			continue
		}

		if start < i {
			parts = append(parts, s[start:i])
		}

		n := 1
		if i+1 < len(s) && (s[i+1] == '\n' || s[i+1] == '\r') && s[i+1] != c {
			n = 2
		}
		parts = append(parts, s[i:i+n])
		i += n
		start = i
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// isLineBreak reports whether part is one of the separators SplitLines
// emits.
func isLineBreak(part string) bool {
	switch part {
	case "\n", "\r", "\r\n", "\n\r":
		return true
	}
	return false
}
