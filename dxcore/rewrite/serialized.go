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
	"strconv"
	"strings"

	"dirpx.dev/dxmig/dxcore/model"
)

// Field is one serialized string field, s:<length>:<opener><content><closer>,
// recognized on a single line.
//
// Fields are transient: NextField produces them while scanning a line and
// Serialized turns them into replacement text immediately.
type Field struct {
	// Start and End are the byte offsets of the field within the scanned
	// line; End is exclusive.
	Start, End int

	// Declared is the length written in the field. It is -1 when the digits
	// do not fit in an int. Declared is never trusted: the field's extent is
	// found by its closer, not by its declared length.
	Declared int

	// Opener is `"`, `'`, `\"` or `\'`. The backslash forms appear in dumps
	// that were escaped for a shell or an SQL string literal.
	Opener string

	// Content is the text between opener and closer.
	Content string

	// Closer is the opener followed by a semicolon.
	Closer string
}

// Encode renders the field with content and a declared length recomputed
// from content in the given unit.
func (f Field) Encode(content string, unit model.LengthUnit) string {
	return "s:" + strconv.Itoa(unit.Len(content)) + ":" + f.Opener + content + f.Closer
}

// NextField returns the first serialized string field in line that starts at
// or after byte offset from.
//
// The scanner recognizes a lowercase "s:", one or more decimal digits, a
// colon and an opener. The content runs to the first occurrence of the
// matching closer: the same quote, escaped the same way, followed by ";".
// Content is therefore matched non-greedily, and a field whose closer does
// not appear on the line is not a field. When a candidate fails, scanning
// resumes one byte after where it began, so candidates can overlap
// ("ss:3:..." is found at the second "s").
func NextField(line string, from int) (Field, bool) {
	for from < len(line) {
		i := strings.Index(line[from:], "s:")
		if i < 0 {
			return Field{}, false
		}
		start := from + i
		if f, ok := fieldAt(line, start); ok {
			return f, true
		}
		from = start + 1
	}
	return Field{}, false
}

// fieldAt tries to recognize a field whose "s:" begins at start.
func fieldAt(line string, start int) (Field, bool) {
	pos := start + len("s:")

	digits := pos
	for pos < len(line) && line[pos] >= '0' && line[pos] <= '9' {
		pos++
	}
	if pos == digits || pos >= len(line) || line[pos] != ':' {
		return Field{}, false
	}
	declared, err := strconv.Atoi(line[digits:pos])
	if err != nil {
		declared = -1
	}
	pos++

	opener, ok := openerAt(line, pos)
	if !ok {
		return Field{}, false
	}
	pos += len(opener)

	closer := opener + ";"
	n := strings.Index(line[pos:], closer)
	if n < 0 {
		return Field{}, false
	}

	return Field{
		Start:    start,
		End:      pos + n + len(closer),
		Declared: declared,
		Opener:   opener,
		Content:  line[pos : pos+n],
		Closer:   closer,
	}, true
}

func openerAt(line string, pos int) (string, bool) {
	if pos >= len(line) {
		return "", false
	}
	switch line[pos] {
	case '"', '\'':
		return line[pos : pos+1], true
	case '\\':
		if pos+1 < len(line) && (line[pos+1] == '"' || line[pos+1] == '\'') {
			return line[pos : pos+2], true
		}
	}
	return "", false
}

// Serialized rewrites every occurrence of the matcher's domain inside the
// content of serialized string fields and recomputes each rewritten field's
// declared length in unit.
//
// Text is processed one line at a time, top to bottom and left to right.
// Fields whose content does not contain the domain are copied unchanged,
// declared length included, even when that length is wrong. The returned
// count is the number of fields rewritten, not the number of occurrences.
func Serialized(text string, m *Matcher, newDomain string, unit model.LengthUnit) (string, int) {
	parts := SplitLines(text)
	count := 0
	for i, part := range parts {
		if isLineBreak(part) {
			continue
		}
		var n int
		parts[i], n = serializedLine(part, m, newDomain, unit)
		count += n
	}
	return strings.Join(parts, ""), count
}

func serializedLine(line string, m *Matcher, newDomain string, unit model.LengthUnit) (string, int) {
	var b strings.Builder
	count, prev := 0, 0
	for from := 0; ; {
		f, ok := NextField(line, from)
		if !ok {
			break
		}
		from = f.End

		if !m.Contains(f.Content) {
			continue
		}
		content, _ := m.ReplaceAll(f.Content, newDomain)

		if count == 0 {
			b.Grow(len(line))
		}
		b.WriteString(line[prev:f.Start])
		b.WriteString(f.Encode(content, unit))
		prev = f.End
		count++
	}
	if count == 0 {
		return line, 0
	}
	b.WriteString(line[prev:])
	return b.String(), count
}
