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


// Package config resolves dxmig settings from the environment and from plan
// files.
//
// A .env file in the working directory is loaded first, without overriding
// variables that are already set. Command line flags are applied on top by
// the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dirpx.dev/dxmig/dxcore/model"
	"dirpx.dev/dxmig/dxcore/model/migration"
)

const (
	EnvLengthUnit   = "DXMIG_LENGTH_UNIT"
	EnvVerbose      = "DXMIG_VERBOSE"
	EnvOutputSuffix = "DXMIG_OUTPUT_SUFFIX"

	// DefaultOutputSuffix is inserted between the name and the extension of
	// the input file to name the migrated file: dump.sql -> dump-migrated.sql.
	DefaultOutputSuffix = "-migrated"
)

type Config struct {
	// Unit is the unit declared lengths are recomputed in.
	Unit model.LengthUnit

	// Verbose enables debug logging.
	Verbose bool

	// OutputSuffix names the migrated file next to its input.
	OutputSuffix string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Unit:         model.Bytes,
		OutputSuffix: DefaultOutputSuffix,
	}
}

// Load reads .env, if present, and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the DXMIG_* environment variables. Unset or
// blank variables keep their default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvLengthUnit)); v != "" {
		unit, err := model.ParseLengthUnit(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLengthUnit, err)
		}
		cfg.Unit = unit
	}

	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}

	if v := strings.TrimSpace(os.Getenv(EnvOutputSuffix)); v != "" {
		if strings.ContainsAny(v, `/\`) {
			return Config{}, fmt.Errorf("%s: %q must not contain a path separator", EnvOutputSuffix, v)
		}
		cfg.OutputSuffix = v
	}

	return cfg, nil
}

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (migration.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return migration.Plan{}, fmt.Errorf("read plan: %w", err)
	}

	var plan migration.Plan
	if err := model.FromYAML(data, &plan); err != nil {
		return migration.Plan{}, fmt.Errorf("plan %s: %w", path, err)
	}
	return plan, nil
}
