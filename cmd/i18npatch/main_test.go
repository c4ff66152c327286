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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		setup       func(t *testing.T, root string) []string
		errContains string
		validate    func(t *testing.T, root, out string)
	}{
		{
			name: "patches_build_output",
			setup: func(t *testing.T, root string) []string {
				writeFile(t, filepath.Join(root, "src/webview/assets/index-9f8e.js"), `x=o?.get("enable_i18n",!1)`)
				writeFile(t, filepath.Join(root, "src/.vite/build/main.js"), `{label:"Settings…"},{role:"fileMenu"}`)
				return []string{"--root", root}
			},
			validate: func(t *testing.T, root, out string) {
				bundle, err := os.ReadFile(filepath.Join(root, "src/webview/assets/index-9f8e.js"))
				require.NoError(t, err)
				assert.Equal(t, `x=!0`, string(bundle))

				main, err := os.ReadFile(filepath.Join(root, "src/.vite/build/main.js"))
				require.NoError(t, err)
				assert.Equal(t, `{label:"设置…"},{label:"文件",role:"fileMenu"}`, string(main))

				assert.Contains(t, out, "i18npatch • patching build output in "+root)
				assert.Contains(t, out, "✅ forced enable_i18n on: index-9f8e.js (1 replaced)")
				assert.Contains(t, out, "✅ main menu localized: 2 replaced")
			},
		},
		{
			name: "missing_output_still_succeeds",
			setup: func(t *testing.T, root string) []string {
				return []string{"patch", "--root", root}
			},
			validate: func(t *testing.T, root, out string) {
				assert.Contains(t, out, "⚠️  renderer bundle not found")
				assert.Contains(t, out, "⚠️  main script not found")
			},
		},
		{
			name: "dry_run_leaves_files",
			setup: func(t *testing.T, root string) []string {
				writeFile(t, filepath.Join(root, "src/.vite/build/main.js"), `{label:"Back"}`)
				return []string{"--root", root, "--dry-run"}
			},
			validate: func(t *testing.T, root, out string) {
				main, err := os.ReadFile(filepath.Join(root, "src/.vite/build/main.js"))
				require.NoError(t, err)
				assert.Equal(t, `{label:"Back"}`, string(main))
				assert.Contains(t, out, "dry run")
			},
		},
		{
			name: "config_file",
			setup: func(t *testing.T, root string) []string {
				writeFile(t, filepath.Join(root, "out/main.js"), `{label:"Back"}`)
				writeFile(t, filepath.Join(root, "rules.yaml"), "rules:\n  - from: 'label:\"Back\"'\n    to: 'label:\"Zurück\"'\n")
				writeFile(t, filepath.Join(root, "i18npatch.yaml"), "main_script: out/main.js\nrules_file: rules.yaml\n")
				return []string{"--config", filepath.Join(root, "i18npatch.yaml")}
			},
			validate: func(t *testing.T, root, out string) {
				main, err := os.ReadFile(filepath.Join(root, "out/main.js"))
				require.NoError(t, err)
				assert.Equal(t, `{label:"Zurück"}`, string(main))
			},
		},
		{
			name: "bad_config_fails",
			setup: func(t *testing.T, root string) []string {
				writeFile(t, filepath.Join(root, "i18npatch.yaml"), "destination: nope\n")
				return []string{"--config", filepath.Join(root, "i18npatch.yaml")}
			},
			errContains: "loading config",
		},
		{
			name: "rules_command",
			setup: func(t *testing.T, root string) []string {
				return []string{"rules", "--root", root}
			},
			validate: func(t *testing.T, root, out string) {
				assert.Contains(t, out, `label:"Settings…"`)
				assert.Contains(t, out, `label:"设置…"`)
				assert.Contains(t, out, `{label:"帮助",role:"help",submenu:[`)
			},
		},
		{
			name: "version_command",
			setup: func(t *testing.T, root string) []string {
				return []string{"version"}
			},
			validate: func(t *testing.T, root, out string) {
				assert.Contains(t, out, "i18npatch version info")
			},
		},
		{
			name: "rejects_arguments",
			setup: func(t *testing.T, root string) []string {
				return []string{"--root", root, "extra"}
			},
			errContains: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			args := tt.setup(t, root)

			out, err := execute(t, args...)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			tt.validate(t, root, out)
		})
	}
}

func TestReportError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	buf := &bytes.Buffer{}
	reportError(buf, errors.New("loading config: bad key"))

	assert.Equal(t, "❌ loading config: bad key\n", buf.String())
}
