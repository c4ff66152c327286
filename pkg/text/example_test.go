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

package text_test

import (
	"context"
	"fmt"

	"github.com/walteh/i18npatch/pkg/text"
)

func ExampleLocalizer_Localize() {
	rules := []text.ReplacementRule{
		{From: `label:"Back"`, To: `label:"后退"`},
		{From: `label:"Forward"`, To: `label:"前进"`},
		{From: `label:"Hosts"`, To: `label:"主机"`},
	}

	content := `[{label:"Back"},{label:"前进"}]`

	result, err := text.NewLocalizer().Localize(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Replaced: %d\n", result.Outcome.Replaced)
	fmt.Printf("Already applied: %d\n", result.Outcome.AlreadyApplied)
	fmt.Printf("Warnings: %v\n", result.Outcome.Warnings)

	// Output:
	// Modified: [{label:"后退"},{label:"前进"}]
	// Replaced: 1
	// Already applied: 1
	// Warnings: [replacement target not found: label:"Hosts"]
}

func ExampleLocalizer_ValidateRules() {
	rules := []text.ReplacementRule{
		{From: "foo", To: "bar"},
		{To: "qux"},
	}

	err := text.NewLocalizer().ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: from is required
}
