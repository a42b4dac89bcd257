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


package migrate_test

import (
	"testing"

	"dirpx.dev/dxmig/dxcore/migrate"
)

func TestGuessOldDomain(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "options row",
			text: "INSERT INTO `wp_options` VALUES (1,'siteurl','http://guessed.example.com','yes'),(2,'home','http://guessed.example.com','yes');",
			want: "http://guessed.example.com",
		},
		{
			name: "spaced row",
			text: "(1, 'siteurl', 'https://guessed.example.com/blog', 'yes')",
			want: "https://guessed.example.com/blog",
		},
		{
			name: "double quotes",
			text: `{"siteurl": "http://guessed.example.com"}`,
			want: "http://guessed.example.com",
		},
		{
			name: "first marker wins",
			text: "'siteurl','http://first.example.com'\n'siteurl','http://second.example.com'",
			want: "http://first.example.com",
		},
		{
			name: "empty value",
			text: "(1,'siteurl','','yes')",
			want: "",
		},
		{
			name: "no marker",
			text: "INSERT INTO posts VALUES (1,'http://old.example.com');",
			want: "",
		},
		{
			name: "unquoted key",
			text: "siteurl = 'http://guessed.example.com'",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := migrate.GuessOldDomain(tt.text); got != tt.want {
				t.Errorf("GuessOldDomain() = %q, want %q", got, tt.want)
			}
		})
	}
}
