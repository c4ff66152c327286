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

package operation

import (
	"github.com/walteh/i18npatch/pkg/status"
)

// Step names used in reports and console output
const (
	StepFlag     = "flag"
	StepLocalize = "localize"
)

// 📋 StepReport describes what one step did
type StepReport struct {
	Step    string         // StepFlag or StepLocalize
	Target  string         // patched path, relative to the root
	Skipped bool           // the target could not be found or read
	Reason  string         // why the step was skipped
	Written bool           // the target was rewritten
	Outcome status.Outcome // counts and warnings
}

// 📋 Report is the result of a full run
type Report struct {
	Flag     StepReport
	Localize StepReport
}

// Steps returns the step reports in run order
func (r *Report) Steps() []StepReport {
	return []StepReport{r.Flag, r.Localize}
}

// Warnings returns every warning raised during the run
func (r *Report) Warnings() []string {
	var warnings []string
	for _, s := range r.Steps() {
		warnings = append(warnings, s.Outcome.Warnings...)
	}
	return warnings
}
