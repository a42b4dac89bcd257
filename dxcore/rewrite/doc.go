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


// Package rewrite implements the text transforms behind a domain migration of
// a database dump that mixes plain SQL with PHP-style serialized values.
//
// Plain occurrences of a domain can be substituted directly. Occurrences
// inside a serialized string cannot: the idiom
//
//	s:<length>:"<content>";
//
// stores the length of its content, so changing the content without fixing
// the prefix leaves a value that unserialize rejects. This package provides
// the pieces to do both safely:
//
//   - Escape turns a literal domain into a pattern that matches only itself.
//   - Matcher finds a domain case-insensitively and replaces it literally.
//   - SplitLines cuts text into lines, keeping every line break as its own
//     element so that joining the pieces restores the input byte for byte.
//   - NextField is a small finite scanner that recognizes one serialized
//     string field at a time within a single line.
//   - Serialized rewrites domains inside serialized fields and recomputes
//     their declared length.
//   - Plain rewrites every remaining occurrence.
//
// Scanning is line-scoped on purpose. A serialized value whose content
// contains a line break is not recognized and is left to Plain, which will
// rewrite the domain but cannot repair that value's length. This is not a
// parser for the serialization format: nested arrays, objects, integers and
// malformed fields are neither validated nor rejected.
//
// Every function in this package is pure. Nothing here logs, touches the
// filesystem or keeps state between calls, so concurrent use with different
// inputs needs no synchronization.
package rewrite
