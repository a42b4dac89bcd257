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


// Package migrate moves a database dump from one domain to another.
//
// Migrate runs the two rewrite passes in their required order: serialized
// string fields first, so that their declared lengths can be recomputed
// while the old domain is still intact, then every remaining plain
// occurrence. MigratePlan chains several such migrations over one dump.
// GuessOldDomain offers a default old domain for dumps of sites that store
// it under a "siteurl" option.
//
// Like package rewrite, this package is pure: it returns counts instead of
// logging, and concurrent calls with different inputs are safe.
package migrate

import (
	"dirpx.dev/dxmig/dxcore/errors"
	"dirpx.dev/dxmig/dxcore/model"
	"dirpx.dev/dxmig/dxcore/model/migration"
	"dirpx.dev/dxmig/dxcore/rewrite"
)

// Options tunes a migration. The zero value is ready to use.
type Options struct {
	// Unit is the unit declared lengths of rewritten serialized fields are
	// recomputed in. The default, model.Bytes, matches PHP's strlen.
	Unit model.LengthUnit
}

// Migrate replaces oldDomain with newDomain throughout haystack using the
// default Options.
//
// An empty argument is reported as an *errors.ArgumentError naming it, which
// matches errors.ErrInvalidArgument. No occurrence of oldDomain is not an
// error: the Result simply carries zero counts and the unchanged text.
func Migrate(haystack, oldDomain, newDomain string) (migration.Result, error) {
	return MigrateRequest(migration.Request{
		Haystack:  haystack,
		OldDomain: oldDomain,
		NewDomain: newDomain,
	}, Options{})
}

// MigrateRequest performs the migration described by req.
func MigrateRequest(req migration.Request, opts Options) (migration.Result, error) {
	if err := req.Validate(); err != nil {
		return migration.Result{}, err
	}
	if err := opts.Unit.Validate(); err != nil {
		return migration.Result{}, &errors.ArgumentError{Op: "migrate", Argument: "unit", Reason: err.Error()}
	}

	delta := req.LengthDelta(opts.Unit)
	m := rewrite.NewMatcher(req.OldDomain)

	text, serialized := rewrite.Serialized(req.Haystack, m, req.NewDomain, opts.Unit)
	text, plain := rewrite.Plain(text, m, req.NewDomain)

	return migration.Result{
		Text:            text,
		OldDomain:       req.OldDomain,
		NewDomain:       req.NewDomain,
		Unit:            opts.Unit,
		SerializedCount: serialized,
		PlainCount:      plain,
		LengthDelta:     delta,
	}, nil
}

// MigratePlan applies every mapping of plan in order, each one to the text
// produced by the previous one, and returns one Result per mapping. The
// rewritten dump is the Text of the last Result.
//
// The plan is validated as a whole before anything is rewritten; a plan with
// several broken mappings is rejected with all of them listed.
func MigratePlan(haystack string, plan migration.Plan) ([]migration.Result, error) {
	if haystack == "" {
		return nil, &errors.ArgumentError{Op: "migrate", Argument: "haystack", Reason: "must not be empty"}
	}
	if err := plan.Validate(); err != nil {
		return nil, &errors.ArgumentError{Op: "migrate", Argument: "plan", Reason: err.Error()}
	}

	results := make([]migration.Result, 0, len(plan.Mappings))
	text := haystack
	for _, mapping := range plan.Mappings {
		res, err := MigrateRequest(migration.Request{
			Haystack:  text,
			OldDomain: mapping.Old,
			NewDomain: mapping.New,
		}, Options{Unit: plan.Unit})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		text = res.Text
	}

	return results, nil
}
