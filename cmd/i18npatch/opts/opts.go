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

package opts

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/i18npatch/pkg/config"
	"github.com/walteh/i18npatch/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Root       string
	DryRun     bool
	Debug      bool

	Config *config.Config
}

// Init loads the configuration and builds the logger once flags are parsed
func (o *RootOpts) Init(ctx context.Context, console io.Writer) (context.Context, error) {
	level := zerolog.Disabled
	if o.Debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	ctx = log.NewContext(ctx, log.New(console, zlog))

	cfg := config.Default()
	if o.ConfigFile != "" {
		var err error
		cfg, err = config.Load(ctx, o.ConfigFile)
		if err != nil {
			return ctx, errors.Errorf("loading config: %w", err)
		}
	}

	if o.Root != "" {
		cfg.Root = o.Root
		if err := cfg.Validate(); err != nil {
			return ctx, errors.Errorf("validating config: %w", err)
		}
	}
	if o.DryRun {
		cfg.DryRun = true
	}

	o.Config = cfg
	return ctx, nil
}
