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

package status

import (
	"fmt"
)

// OutcomeFormatter defines how step outcomes are rendered for the summary
type OutcomeFormatter interface {
	// FormatOutcome formats the summary line of a finished step
	FormatOutcome(step string, o Outcome) string

	// FormatSkipped formats the summary line of a step that could not run
	FormatSkipped(step, reason string) string
}

// DefaultOutcomeFormatter provides a default implementation of OutcomeFormatter
type DefaultOutcomeFormatter struct{}

// NewDefaultOutcomeFormatter creates a new DefaultOutcomeFormatter
func NewDefaultOutcomeFormatter() *DefaultOutcomeFormatter {
	return &DefaultOutcomeFormatter{}
}

// FormatOutcome formats replacement, already-applied and warning counts
func (f *DefaultOutcomeFormatter) FormatOutcome(step string, o Outcome) string {
	return fmt.Sprintf("%s: %d replaced, %d already applied, %d warnings",
		step, o.Replaced, o.AlreadyApplied, len(o.Warnings))
}

func (f *DefaultOutcomeFormatter) FormatSkipped(step, reason string) string {
	if reason == "" {
		return fmt.Sprintf("%s: skipped", step)
	}
	return fmt.Sprintf("%s: skipped (%s)", step, reason)
}
