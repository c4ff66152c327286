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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Successf("replaced %d", 3)
			},
			wantLogs: []string{
				"ℹ️  info test",
				"✅ replaced 3",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("patching build output")
			},
			wantLogs: []string{
				"i18npatch • patching build output",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerMirrorsToZerolog(t *testing.T) {
	zbuf := &bytes.Buffer{}
	logger := New(&bytes.Buffer{}, zerolog.New(zbuf))

	logger.Warning("main.js not found")

	assert.Contains(t, zbuf.String(), `"level":"warn"`)
	assert.Contains(t, zbuf.String(), `"message":"main.js not found"`)
}

func TestLoggerContext(t *testing.T) {
	logger := Discard()

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")
	assert.NotNil(t, zerolog.Ctx(ctx), "zerolog logger should travel with the context")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	line := func(symbol, path string, pathCells int, step, status string) string {
		return symbol + " " + path + strings.Repeat(" ", nameWidth-pathCells) + " " +
			step + strings.Repeat(" ", stepWidth-len(step)) + " " + status
	}

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "modified_file",
			op: FileOperation{
				Path:         "main.js",
				Step:         "localize",
				Status:       "2 replaced",
				IsModified:   true,
				Replacements: 2,
			},
			want: line("⟳", "main.js", 7, "localize", "2 replaced"),
		},
		{
			name: "dry_run_file",
			op: FileOperation{
				Path:       "index-abc.js",
				Step:       "flag",
				Status:     "would write",
				IsModified: true,
				DryRun:     true,
			},
			want: line("~", "index-abc.js", 12, "flag", "would write"),
		},
		{
			name: "skipped_file",
			op: FileOperation{
				Path:      "main.js",
				Step:      "localize",
				Status:    "missing",
				IsSkipped: true,
			},
			want: line("✗", "main.js", 7, "localize", "missing"),
		},
		{
			name: "unchanged_wide_name",
			op: FileOperation{
				Path:   "设置.js",
				Step:   "localize",
				Status: "no change",
			},
			want: line("•", "设置.js", 7, "localize", "no change"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			logger.LogFileOperation(context.Background(), tt.op)

			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()), "formatted output should match")
		})
	}
}
