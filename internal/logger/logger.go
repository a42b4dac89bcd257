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


// Package logger builds the zap logger used by the dxmig command line tool.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/dxmig/dxcore/model/migration"
)

// New returns a JSON logger writing to stderr at info level, or at debug
// level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ResultFields renders the counters of a migration as log fields. Passwords
// embedded in domains are masked.
func ResultFields(res migration.Result) []zap.Field {
	s := res.Summary()
	return []zap.Field{
		zap.String("old_domain", migration.RedactDomain(s.OldDomain)),
		zap.String("new_domain", migration.RedactDomain(s.NewDomain)),
		zap.Stringer("length_unit", res.Unit),
		zap.Int("serialized_count", s.SerializedCount),
		zap.Int("replaced_count", s.PlainCount),
		zap.Int("char_diff", s.LengthDelta),
	}
}

