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

package rules

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/i18npatch/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a rule table. YAML and JSON are both accepted.
//
//	rules:
//	  - from: 'label:"Settings…"'
//	    to: 'label:"设置…"'
type File struct {
	Rules []text.ReplacementRule `yaml:"rules"`
}

// Parse decodes and validates a rule table
func Parse(data []byte) ([]text.ReplacementRule, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, errors.Errorf("parsing rules: %w", err)
	}

	if len(f.Rules) == 0 {
		return nil, errors.Errorf("rules file has no rules")
	}

	if err := text.NewLocalizer().ValidateRules(f.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return f.Rules, nil
}

// Load reads a rule table from path
func Load(ctx context.Context, path string) ([]text.ReplacementRule, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading rules file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rules file: %w", err)
	}

	return Parse(data)
}

// Resolve returns the table from path, or the built-in table when path is empty
func Resolve(ctx context.Context, path string) ([]text.ReplacementRule, error) {
	if path == "" {
		return ChineseMenu(), nil
	}
	return Load(ctx, path)
}
