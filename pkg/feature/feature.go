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

// Package feature forces feature-flag reads in a minified bundle to a fixed value.
package feature

import (
	"fmt"
	"regexp"

	"github.com/walteh/i18npatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DefaultFlag is the flag that gates the language picker.
const DefaultFlag = "enable_i18n"

// Forced replaces every recognised flag read; minified `true`.
const Forced = "!0"

// 📊 Result carries the rewritten content and per-shape counts
type Result struct {
	Content   string
	ForcedOff int // reads that defaulted to !1
	ForcedOn  int // reads that defaulted to !0
	Outcome   status.Outcome
}

// 🔧 Forcer rewrites `<ident>?.get("<flag>",!1)` and `<ident>?.get("<flag>",!0)`
type Forcer struct {
	flag  string
	isOff *regexp.Regexp
	isOn  *regexp.Regexp
}

// 🏭 NewForcer creates a forcer for the given flag name
func NewForcer(flag string) (*Forcer, error) {
	if flag == "" {
		return nil, errors.Errorf("flag name is required")
	}
	return &Forcer{
		flag:  flag,
		isOff: readPattern(flag, "!1"),
		isOn:  readPattern(flag, "!0"),
	}, nil
}

// readPattern matches a read whose owner is a whole JavaScript identifier,
// `$` included, so that no fragment of the identifier is left behind.
func readPattern(flag, def string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`[\w$]+\?\.get\(%s,%s\)`,
		regexp.QuoteMeta(`"`+flag+`"`), regexp.QuoteMeta(def)))
}

// Flag returns the flag name the forcer matches
func (f *Forcer) Flag() string {
	return f.flag
}

// Force replaces every read of the flag with the forced literal. Content with
// no read left is returned unchanged with a zero count.
//
// A read used as another read's default only matches once the inner one is
// forced, so passes repeat until nothing matches. Every pass shortens the
// content, which bounds the loop.
func (f *Forcer) Force(content string) *Result {
	res := &Result{Content: content}

	for {
		on := len(f.isOn.FindAllStringIndex(res.Content, -1))
		res.Content = f.isOn.ReplaceAllLiteralString(res.Content, Forced)

		off := len(f.isOff.FindAllStringIndex(res.Content, -1))
		res.Content = f.isOff.ReplaceAllLiteralString(res.Content, Forced)

		if on+off == 0 {
			break
		}
		res.ForcedOn += on
		res.ForcedOff += off
	}

	res.Outcome.Add(res.ForcedOn + res.ForcedOff)
	return res
}
