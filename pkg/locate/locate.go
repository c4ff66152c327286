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

// Package locate finds the renderer bundle among the files a build emitted.
package locate

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern matches hashed entry chunks such as index-3f9a1c.js.
const DefaultPattern = "index-*.js"

// 📦 Candidate is a file in the assets directory that matches the pattern
type Candidate struct {
	Name string // base name
	Path string // path relative to the filesystem root
	Size int64  // size in bytes
}

// 🔍 Locator selects the bundle to patch
type Locator struct {
	fs      billy.Filesystem
	pattern string
}

// 🏭 NewLocator creates a locator matching base names against a doublestar pattern
func NewLocator(fs billy.Filesystem, pattern string) (*Locator, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid bundle pattern %q", pattern)
	}
	return &Locator{fs: fs, pattern: pattern}, nil
}

// Pattern returns the pattern the locator matches against
func (l *Locator) Pattern() string {
	return l.pattern
}

// Candidates lists the matching regular files in dir in listing order,
// following symbolic links. A missing directory yields no candidates.
func (l *Locator) Candidates(ctx context.Context, dir string) ([]Candidate, error) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("assets directory does not exist")
			return nil, nil
		}
		return nil, errors.Errorf("listing assets directory: %w", err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		ok, err := doublestar.Match(l.pattern, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching %s: %w", entry.Name(), err)
		}
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			// sized by the file the link points at
			info, err = l.fs.Stat(path)
			if err != nil {
				zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping unresolvable link")
				continue
			}
		}
		if !info.Mode().IsRegular() {
			continue
		}

		candidates = append(candidates, Candidate{
			Name: entry.Name(),
			Path: path,
			Size: info.Size(),
		})
	}

	return candidates, nil
}

// Locate returns the bundle to patch, or nil when the directory is missing or
// has no matching file. With several matches the largest file wins and the
// first one listed wins a tie; the entry chunk is assumed to be the largest.
func (l *Locator) Locate(ctx context.Context, dir string) (*Candidate, error) {
	candidates, err := l.Candidates(ctx, dir)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	pick := Select(candidates)

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Int("candidates", len(candidates)).
		Str("selected", pick.Name).
		Int64("size", pick.Size).
		Msg("located renderer bundle")

	return pick, nil
}

// Select applies the size tie-break to an ordered candidate list. It returns
// nil for an empty list.
func Select(candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Size > candidates[best].Size {
			best = i
		}
	}
	c := candidates[best]
	return &c
}
