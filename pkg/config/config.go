// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Defaults for the packaged application layout.
const (
	DefaultMainScript    = "src/.vite/build/main.js"
	DefaultAssetsDir     = "src/webview/assets"
	DefaultBundlePattern = "index-*.js"
	DefaultFlag          = "enable_i18n"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config describes where the build output lives and how to patch it.
// MainScript and AssetsDir are relative to Root.
type Config struct {
	Root          string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	MainScript    string `json:"main_script,omitempty" yaml:"main_script,omitempty" hcl:"main_script,optional"`
	AssetsDir     string `json:"assets_dir,omitempty" yaml:"assets_dir,omitempty" hcl:"assets_dir,optional"`
	BundlePattern string `json:"bundle_pattern,omitempty" yaml:"bundle_pattern,omitempty" hcl:"bundle_pattern,optional"`
	Flag          string `json:"flag,omitempty" yaml:"flag,omitempty" hcl:"flag,optional"`
	RulesFile     string `json:"rules_file,omitempty" yaml:"rules_file,omitempty" hcl:"rules_file,optional"`
	DryRun        bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Backup        bool   `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	AtomicWrites  bool   `json:"atomic_writes,omitempty" yaml:"atomic_writes,omitempty" hcl:"atomic_writes,optional"`
}

// 🏭 Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// 🎯 Load loads the configuration from a file. Relative root and rules_file
// values are resolved against the directory holding the file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	base := filepath.Dir(path)
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(base, cfg.Root)
	}
	if cfg.Root == "" {
		cfg.Root = base
	}
	if cfg.RulesFile != "" && !filepath.IsAbs(cfg.RulesFile) {
		cfg.RulesFile = filepath.Join(base, cfg.RulesFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate fills defaults and checks that the target paths stay inside Root
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.MainScript == "" {
		cfg.MainScript = DefaultMainScript
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DefaultAssetsDir
	}
	if cfg.BundlePattern == "" {
		cfg.BundlePattern = DefaultBundlePattern
	}
	if cfg.Flag == "" {
		cfg.Flag = DefaultFlag
	}

	cfg.Root = filepath.Clean(cfg.Root)
	cfg.MainScript = filepath.Clean(cfg.MainScript)
	cfg.AssetsDir = filepath.Clean(cfg.AssetsDir)

	if !filepath.IsLocal(cfg.MainScript) {
		return errors.Errorf("main_script must be a relative path inside root: %s", cfg.MainScript)
	}
	if !filepath.IsLocal(cfg.AssetsDir) {
		return errors.Errorf("assets_dir must be a relative path inside root: %s", cfg.AssetsDir)
	}
	if !doublestar.ValidatePattern(cfg.BundlePattern) {
		return errors.Errorf("invalid bundle_pattern: %s", cfg.BundlePattern)
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: %s [%s], %s", cfg.Root, cfg.AssetsDir, cfg.BundlePattern, cfg.MainScript)
}
