// Copyright (c) the Flowscope authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the engine configuration: exploration budgets, worker
// pool sizing, logging verbosity and the closed sanitizer table. Configs are
// loaded from yaml files; every knob has a default and is opaque to
// correctness.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

var (
	// The global config file
	configFile string
)

// SetGlobalConfig sets the global config filename
func SetGlobalConfig(filename string) {
	configFile = filename
}

// LoadGlobal loads the config file that has been set by SetGlobalConfig
func LoadGlobal() (*Config, error) {
	return Load(configFile)
}

// Config is the engine configuration. Fields absent from the yaml file keep
// their defaults from NewDefault.
type Config struct {
	Options `yaml:",inline"`

	sourceFile string

	// Sanitizers is the closed, versioned table of recognized sanitizer
	// callees. Recognition is an exact match on the callee name captured by
	// extraction, never a substring or pattern match.
	Sanitizers []SanitizerSpec `yaml:"sanitizers"`
}

// SanitizerSpec declares one recognized sanitizer.
type SanitizerSpec struct {
	// Callee is the qualified callee name as extraction records it.
	Callee string `yaml:"callee"`

	// Neutralizes lists the sink categories this sanitizer protects
	// against. Empty means it neutralizes taint for every category.
	Neutralizes []string `yaml:"neutralizes"`
}

// Options are the scalar knobs.
type Options struct {
	// MaxBlocksPerSource bounds the number of basic blocks one source's
	// search may visit. Exceeding it ends the search as a flagged partial
	// result, never an error.
	MaxBlocksPerSource int `yaml:"max-blocks-per-source"`

	// GlobalBlockCeiling bounds the total blocks visited across the run.
	// Once reached, no further source tasks are scheduled; completed
	// findings are preserved.
	GlobalBlockCeiling int `yaml:"global-block-ceiling"`

	// MaxCallDepth bounds interprocedural descent within one search.
	MaxCallDepth int `yaml:"max-call-depth"`

	// Workers sizes the propagation worker pool. Zero or negative means
	// NumCPU-1.
	Workers int `yaml:"workers"`

	// LogLevel controls the verbosity of the engine.
	LogLevel int `yaml:"log-level"`

	// SilenceWarn suppresses warnings.
	SilenceWarn bool `yaml:"silence-warn"`
}

// NewDefault returns a config with every knob at its default.
func NewDefault() *Config {
	return &Config{
		Options: Options{
			MaxBlocksPerSource: DefaultMaxBlocksPerSource,
			GlobalBlockCeiling: DefaultGlobalBlockCeiling,
			MaxCallDepth:       DefaultMaxCallDepth,
			Workers:            0,
			LogLevel:           int(InfoLevel),
			SilenceWarn:        false,
		},
	}
}

// Load reads a configuration from a yaml file.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", filename, err)
	}
	cfg.sourceFile = filename

	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	if cfg.MaxBlocksPerSource <= 0 {
		cfg.MaxBlocksPerSource = DefaultMaxBlocksPerSource
	}
	if cfg.GlobalBlockCeiling <= 0 {
		cfg.GlobalBlockCeiling = DefaultGlobalBlockCeiling
	}
	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = DefaultMaxCallDepth
	}
	for i, s := range cfg.Sanitizers {
		if s.Callee == "" {
			return nil, fmt.Errorf("sanitizer entry %d in %s has no callee", i, filename)
		}
	}
	return cfg, nil
}

// NumWorkers resolves the worker-pool size, defaulting to NumCPU-1 with a
// floor of one.
func (c *Config) NumWorkers() int {
	n := c.Workers
	if n <= 0 {
		n = runtime.NumCPU() - 1
	}
	if n < 1 {
		n = 1
	}
	return n
}

// SourceFile returns the file this config was loaded from, or "" for a
// default config.
func (c *Config) SourceFile() string {
	return c.sourceFile
}
