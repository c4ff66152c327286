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

package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/i18npatch/cmd/i18npatch/opts"
	"github.com/walteh/i18npatch/pkg/rules"
	"github.com/walteh/i18npatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const maxLiteralWidth = 48

// NewRulesCmd creates the rules command
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active replacement rules",
		Long: `Rules prints the replacement table used for the main-process script,
in the order the rules are applied. The table comes from rules_file when
one is configured and is the built-in zh-CN table otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := rules.Resolve(cmd.Context(), o.Config.RulesFile)
			if err != nil {
				return errors.Errorf("loading rules: %w", err)
			}

			if err := pterm.DefaultTable.
				WithHasHeader().
				WithWriter(cmd.OutOrStdout()).
				WithData(RulesTable(table)).
				Render(); err != nil {
				return errors.Errorf("rendering rules: %w", err)
			}
			return nil
		},
	}
}

// RulesTable lays the rules out as table rows, header first
func RulesTable(table []text.ReplacementRule) [][]string {
	data := [][]string{{"#", "from", "to"}}
	for i, r := range table {
		data = append(data, []string{
			fmt.Sprint(i + 1),
			runewidth.Truncate(r.From, maxLiteralWidth, "…"),
			runewidth.Truncate(r.To, maxLiteralWidth, "…"),
		})
	}
	return data
}
