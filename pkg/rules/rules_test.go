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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/i18npatch/pkg/text"
)

func TestChineseMenu_Valid(t *testing.T) {
	table := ChineseMenu()
	require.Len(t, table, 39)
	require.NoError(t, text.NewLocalizer().ValidateRules(table))

	table[0].To = "mutated"
	assert.Equal(t, `label:"设置…"`, ChineseMenu()[0].To, "each call should return a fresh table")
}

// Every source literal present before the pass is gone afterwards (outside of
// wrapping targets) and its target literal is present.
func TestChineseMenu_Completeness(t *testing.T) {
	table := ChineseMenu()

	var b strings.Builder
	b.WriteString("Menu.buildFromTemplate([")
	for _, r := range table {
		b.WriteString("{" + r.From + "},")
	}
	b.WriteString("])")

	result, err := text.NewLocalizer().Localize(context.Background(), b.String(), table)
	require.NoError(t, err)
	assert.Empty(t, result.Outcome.Warnings)
	assert.Equal(t, len(table), result.Outcome.Replaced)

	out := result.ModifiedContent
	for _, r := range table {
		assert.Contains(t, out, r.To, "target of %q should be present", r.From)
		if strings.Contains(r.To, r.From) {
			assert.Equal(t, strings.Count(out, r.To), strings.Count(out, r.From), "%q should only remain inside its target", r.From)
			continue
		}
		assert.NotContains(t, out, r.From)
	}

	again, err := text.NewLocalizer().Localize(context.Background(), out, table)
	require.NoError(t, err)
	assert.Equal(t, out, again.ModifiedContent)
	assert.Equal(t, 0, again.Outcome.Replaced)
	assert.Equal(t, len(table), again.Outcome.AlreadyApplied)
}

func TestChineseMenu_SettingsRuleWarning(t *testing.T) {
	content := `console.log("unrelated")`

	result, err := text.NewLocalizer().Localize(context.Background(), content, ChineseMenu()[:1])
	require.NoError(t, err)

	assert.Equal(t, []string{`replacement target not found: label:"Settings…"`}, result.Outcome.Warnings)
	assert.Equal(t, content, result.ModifiedContent)
	assert.False(t, result.Outcome.Changed)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		want      []text.ReplacementRule
		wantError string
	}{
		{
			name: "yaml",
			data: `
rules:
  - from: 'label:"Back"'
    to: 'label:"Zurück"'
  - from: 'label:"Forward"'
    to: 'label:"Vorwärts"'
`,
			want: []text.ReplacementRule{
				{From: `label:"Back"`, To: `label:"Zurück"`},
				{From: `label:"Forward"`, To: `label:"Vorwärts"`},
			},
		},
		{
			name: "json",
			data: `{"rules":[{"from":"label:\"Back\"","to":"label:\"后退\""}]}`,
			want: []text.ReplacementRule{
				{From: `label:"Back"`, To: `label:"后退"`},
			},
		},
		{
			name:      "unknown_field",
			data:      "rules:\n  - from: a\n    too: b\n",
			wantError: "parsing rules",
		},
		{
			name:      "no_rules",
			data:      "rules: []\n",
			wantError: "rules file has no rules",
		},
		{
			name:      "invalid_rule",
			data:      "rules:\n  - to: b\n",
			wantError: "from is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	got, err := Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, ChineseMenu(), got)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - from: a\n    to: b\n"), 0644))

	got, err = Resolve(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []text.ReplacementRule{{From: "a", To: "b"}}, got)

	_, err = Resolve(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading rules file")
}
