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


package rewrite_test

import (
	"reflect"
	"strings"
	"testing"

	"dirpx.dev/dxmig/dxcore/rewrite"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line", "abc", []string{"abc"}},
		{"lf", "a\nb", []string{"a", "\n", "b"}},
		{"cr", "a\rb", []string{"a", "\r", "b"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"lfcr", "a\n\rb", []string{"a", "\n\r", "b"}},
		{"double lf", "a\n\nb", []string{"a", "\n", "\n", "b"}},
		{"trailing break", "a\n", []string{"a", "\n"}},
		{"leading break", "\nb", []string{"\n", "b"}},
		{"crlf crlf", "\r\n\r\n", []string{"\r\n", "\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewrite.SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLines_JoinRestoresInput(t *testing.T) {
	inputs := []string{
		"",
		"no breaks",
		"INSERT INTO t VALUES (1);\nINSERT INTO t VALUES (2);\n",
		"mixed\r\nline\rbreaks\n\rand\n\nblank",
		"\n\r\n\r\r\n",
	}

	for _, in := range inputs {
		if got := strings.Join(rewrite.SplitLines(in), ""); got != in {
			t.Errorf("Join(SplitLines(%q)) = %q", in, got)
		}
	}
}
