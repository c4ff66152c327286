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

package text

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/i18npatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ReplacementRule defines a single exact-literal replacement
type ReplacementRule struct {
	// From is the literal to replace
	From string `json:"from" yaml:"from" hcl:"from"`

	// To is the replacement literal
	To string `json:"to" yaml:"to" hcl:"to"`
}

// ReplacementResult contains the results of a localization pass
type ReplacementResult struct {
	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string

	// Outcome holds replacement counts and stale-rule warnings
	Outcome status.Outcome
}

// Localizer applies an ordered rule table to a script
type Localizer struct{}

// NewLocalizer creates a new Localizer
func NewLocalizer() *Localizer {
	return &Localizer{}
}

// StaleRuleWarning is the warning recorded for a rule whose From and To are
// both missing from the content.
func StaleRuleWarning(rule ReplacementRule) string {
	return "replacement target not found: " + rule.From
}

// Localize applies rules in order against the evolving content. Every rule
// either replaces all occurrences of From, counts as already applied when only
// To is present, or records a warning when neither is present.
// The context carries the logger only; a run is never cut short.
func (l *Localizer) Localize(ctx context.Context, content string, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	result := &ReplacementResult{
		OriginalContent: content,
	}

	current := content
	for i, rule := range rules {
		// Skip empty rules
		if rule.From == "" {
			continue
		}

		next, n := replace(current, rule)
		switch {
		case n > 0:
			result.Outcome.Add(n)
			logger.Debug().Int("rule", i).Str("from", rule.From).Int("count", n).Msg("replaced")
		case strings.Contains(current, rule.To):
			result.Outcome.AlreadyApplied++
			logger.Debug().Int("rule", i).Str("to", rule.To).Msg("already applied")
		default:
			result.Outcome.Warn(StaleRuleWarning(rule))
		}

		current = next
	}

	result.ModifiedContent = current
	return result, nil
}

// replace swaps every occurrence of rule.From. When To wraps From, occurrences
// that are already part of a To are left alone so the rule stays idempotent.
func replace(content string, rule ReplacementRule) (string, int) {
	if rule.To == "" || !strings.Contains(rule.To, rule.From) || !strings.Contains(content, rule.To) {
		return strings.ReplaceAll(content, rule.From, rule.To), strings.Count(content, rule.From)
	}

	parts := strings.Split(content, rule.To)
	n := 0
	for i, part := range parts {
		n += strings.Count(part, rule.From)
		parts[i] = strings.ReplaceAll(part, rule.From, rule.To)
	}
	return strings.Join(parts, rule.To), n
}

// ValidateRules checks that every rule has a From literal and that no rule
// would match text written by an earlier rule.
func (l *Localizer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.From == "" {
			return errors.Errorf("rule %d: from is required", i)
		}
		for j := 0; j < i; j++ {
			earlier := rules[j]
			if earlier.To == "" || !strings.Contains(earlier.To, rule.From) {
				continue
			}
			if earlier.From == rule.From && earlier.To == rule.To {
				return errors.Errorf("rule %d: duplicates rule %d", i, j)
			}
			return errors.Errorf("rule %d: %q would re-match the output of rule %d", i, rule.From, j)
		}
	}
	return nil
}
