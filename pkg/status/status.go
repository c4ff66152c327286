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
	"context"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is the result of one patching step
type Outcome struct {
	Replaced       int      // occurrences replaced in this run
	AlreadyApplied int      // rules (or flag reads) found already patched
	Changed        bool     // Replaced > 0
	Warnings       []string // stale rules and other non-fatal problems
}

// Warn appends a warning to the outcome
func (o *Outcome) Warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}

// Add records n replacements
func (o *Outcome) Add(n int) {
	o.Replaced += n
	o.Changed = o.Replaced > 0
}

// 💾 FileManager handles all target file access, relative to a project root
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
	BackupFile(ctx context.Context, path string) error
	Filesystem() billy.Filesystem
}

// 🔧 Options configures how a Manager writes
type Options struct {
	Atomic bool // write through a temp file and rename
}

// 🔧 Manager implements FileManager on top of a billy filesystem
type Manager struct {
	fs     billy.Filesystem
	atomic bool
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a new file manager
func New(fs billy.Filesystem, opts Options) *Manager {
	return &Manager{
		fs:     fs,
		atomic: opts.Atomic,
	}
}

func (m *Manager) Filesystem() billy.Filesystem {
	return m.fs
}

func (m *Manager) ReadFile(ctx context.Context, p string) ([]byte, error) {
	content, err := util.ReadFile(m.fs, p)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile replaces the file content, keeping its permissions. Without the
// atomic option the file is truncated and rewritten in place.
func (m *Manager) WriteFile(ctx context.Context, p string, content []byte) error {
	perm := os.FileMode(0644)
	if fi, err := m.fs.Stat(p); err == nil {
		perm = fi.Mode().Perm()
	}

	zerolog.Ctx(ctx).Debug().Str("path", p).Int("bytes", len(content)).Bool("atomic", m.atomic).Msg("writing file")

	if m.atomic {
		return m.writeFileAtomic(p, content, perm)
	}

	if err := util.WriteFile(m.fs, p, content, perm); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

func (m *Manager) writeFileAtomic(p string, content []byte, perm os.FileMode) error {
	tempPath := p + ".tmp"

	if err := util.WriteFile(m.fs, tempPath, content, perm); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := m.fs.Rename(tempPath, p); err != nil {
		_ = m.fs.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) FileExists(ctx context.Context, p string) (bool, error) {
	_, err := m.fs.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// BackupFile copies path to path.bak. An existing backup is left alone so it
// always holds the unpatched build output.
func (m *Manager) BackupFile(ctx context.Context, p string) error {
	backupPath := p + ".bak"

	if ok, err := m.FileExists(ctx, backupPath); err != nil {
		return err
	} else if ok {
		zerolog.Ctx(ctx).Debug().Str("path", backupPath).Msg("backup already exists")
		return nil
	}

	content, err := m.ReadFile(ctx, p)
	if err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	if err := util.WriteFile(m.fs, backupPath, content, 0644); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	return nil
}
