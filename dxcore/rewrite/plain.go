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

// Plain replaces every occurrence of the matcher's domain in text with
// newDomain, ignoring case, and returns the number of occurrences replaced.
//
// Plain knows nothing about lines or serialized fields. Run it after
// Serialized: once Plain has rewritten a domain, Serialized can no longer
// find it and the enclosing field keeps its stale length.
func Plain(text string, m *Matcher, newDomain string) (string, int) {
	return m.ReplaceAll(text, newDomain)
}
