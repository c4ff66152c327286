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
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/walteh/i18npatch/pkg/config"
	"github.com/walteh/i18npatch/pkg/feature"
	"github.com/walteh/i18npatch/pkg/locate"
	"github.com/walteh/i18npatch/pkg/log"
	"github.com/walteh/i18npatch/pkg/rules"
	"github.com/walteh/i18npatch/pkg/status"
	"github.com/walteh/i18npatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains everything a Patcher needs
type Options struct {
	// Config holds target paths and write behaviour
	Config *config.Config
	// Files reads and writes targets relative to Config.Root
	Files status.FileManager
	// Rules is the ordered localization table
	Rules []text.ReplacementRule
	// Logger receives console output; nothing is printed when nil
	Logger *log.Logger
}

// 🎮 Patcher runs the flag and localization steps
type Patcher struct {
	cfg       *config.Config
	files     status.FileManager
	rules     []text.ReplacementRule
	logger    *log.Logger
	locator   *locate.Locator
	forcer    *feature.Forcer
	localizer *text.Localizer
	formatter status.OutcomeFormatter
}

// 🏭 New creates a patcher with the given options
func New(opts Options) (*Patcher, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}

	localizer := text.NewLocalizer()
	if err := localizer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	locator, err := locate.NewLocator(opts.Files.Filesystem(), opts.Config.BundlePattern)
	if err != nil {
		return nil, errors.Errorf("creating locator: %w", err)
	}

	forcer, err := feature.NewForcer(opts.Config.Flag)
	if err != nil {
		return nil, errors.Errorf("creating flag forcer: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return &Patcher{
		cfg:       opts.Config,
		files:     opts.Files,
		rules:     opts.Rules,
		logger:    logger,
		locator:   locator,
		forcer:    forcer,
		localizer: localizer,
		formatter: status.NewDefaultOutcomeFormatter(),
	}, nil
}

// 🏭 NewFromConfig creates a patcher on the real filesystem under cfg.Root,
// using the rules file named in cfg or the built-in table.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Patcher, error) {
	table, err := rules.Resolve(ctx, cfg.RulesFile)
	if err != nil {
		return nil, errors.Errorf("loading rules: %w", err)
	}

	files := status.New(osfs.New(cfg.Root), status.Options{Atomic: cfg.AtomicWrites})

	return New(Options{
		Config: cfg,
		Files:  files,
		Rules:  table,
		Logger: logger,
	})
}

// 🏃 Run forces the flag in the renderer bundle, then localizes the main
// script. The second step runs whatever happened in the first.
func (p *Patcher) Run(ctx context.Context) *Report {
	zerolog.Ctx(ctx).Debug().Str("config", p.cfg.String()).Int("rules", len(p.rules)).Msg("starting patch run")

	report := &Report{
		Flag:     p.forceFlag(ctx),
		Localize: p.localize(ctx),
	}

	p.summarize(report)
	return report
}

func (p *Patcher) forceFlag(ctx context.Context) StepReport {
	rep := StepReport{Step: StepFlag}

	bundle, err := p.locator.Locate(ctx, p.cfg.AssetsDir)
	if err != nil {
		return p.skip(rep, fmt.Sprintf("locating renderer bundle: %v", err))
	}
	if bundle == nil {
		return p.skip(rep, fmt.Sprintf("renderer bundle not found (%s)",
			filepath.Join(p.cfg.AssetsDir, p.locator.Pattern())))
	}
	rep.Target = bundle.Path

	content, err := p.files.ReadFile(ctx, bundle.Path)
	if err != nil {
		return p.skip(rep, fmt.Sprintf("reading %s: %v", bundle.Path, err))
	}

	res := p.forcer.Force(string(content))
	rep.Outcome = res.Outcome

	zerolog.Ctx(ctx).Debug().
		Str("bundle", bundle.Path).
		Int("forced_off", res.ForcedOff).
		Int("forced_on", res.ForcedOn).
		Msg("scanned renderer bundle")

	if !res.Outcome.Changed {
		p.logger.Infof("no %s pattern found in %s (already patched?)", p.forcer.Flag(), bundle.Name)
		p.logFile(ctx, rep, "no change")
		return rep
	}

	if err := p.persist(ctx, &rep, string(content), res.Content); err != nil || !rep.Written {
		return rep
	}

	p.logger.Successf("forced %s on: %s (%d replaced)", p.forcer.Flag(), bundle.Name, res.Outcome.Replaced)
	return rep
}

func (p *Patcher) localize(ctx context.Context) StepReport {
	rep := StepReport{Step: StepLocalize, Target: p.cfg.MainScript}

	exists, err := p.files.FileExists(ctx, p.cfg.MainScript)
	if err != nil {
		return p.skip(rep, fmt.Sprintf("checking %s: %v", p.cfg.MainScript, err))
	}
	if !exists {
		return p.skip(rep, fmt.Sprintf("main script not found (%s)", p.cfg.MainScript))
	}

	content, err := p.files.ReadFile(ctx, p.cfg.MainScript)
	if err != nil {
		return p.skip(rep, fmt.Sprintf("reading %s: %v", p.cfg.MainScript, err))
	}

	res, err := p.localizer.Localize(ctx, string(content), p.rules)
	if err != nil {
		return p.skip(rep, fmt.Sprintf("localizing %s: %v", p.cfg.MainScript, err))
	}
	rep.Outcome = res.Outcome

	for _, w := range res.Outcome.Warnings {
		p.logger.Warning(w)
	}

	if !res.Outcome.Changed {
		p.logger.Info("main script already localized or no rule matched")
		p.logFile(ctx, rep, "no change")
		return rep
	}

	if err := p.persist(ctx, &rep, res.OriginalContent, res.ModifiedContent); err != nil || !rep.Written {
		return rep
	}

	p.logger.Successf("main menu localized: %d replaced", res.Outcome.Replaced)
	return rep
}

// persist writes modified back to rep.Target when it differs from original.
// Failures are recorded as warnings on rep.
func (p *Patcher) persist(ctx context.Context, rep *StepReport, original, modified string) error {
	if modified == original {
		p.logFile(ctx, *rep, "no change")
		return nil
	}

	if p.cfg.DryRun {
		p.logger.Infof("dry run: %s not written (%d replacements pending)", rep.Target, rep.Outcome.Replaced)
		p.logFile(ctx, *rep, "dry run")
		return nil
	}

	if p.cfg.Backup {
		if err := p.files.BackupFile(ctx, rep.Target); err != nil {
			msg := fmt.Sprintf("backing up %s: %v", rep.Target, err)
			rep.Outcome.Warn(msg)
			p.logger.Warning(msg)
			return err
		}
	}

	if err := p.files.WriteFile(ctx, rep.Target, []byte(modified)); err != nil {
		msg := fmt.Sprintf("writing %s: %v", rep.Target, err)
		rep.Outcome.Warn(msg)
		p.logger.Warning(msg)
		return err
	}

	rep.Written = true
	p.logFile(ctx, *rep, fmt.Sprintf("%d replaced", rep.Outcome.Replaced))
	return nil
}

func (p *Patcher) skip(rep StepReport, reason string) StepReport {
	rep.Skipped = true
	rep.Reason = reason
	rep.Outcome.Warn(reason)
	p.logger.Warning(reason)
	return rep
}

func (p *Patcher) logFile(ctx context.Context, rep StepReport, statusText string) {
	p.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         rep.Target,
		Step:         rep.Step,
		Status:       statusText,
		IsModified:   rep.Outcome.Changed,
		IsSkipped:    rep.Skipped,
		DryRun:       p.cfg.DryRun,
		Replacements: rep.Outcome.Replaced,
	})
}

func (p *Patcher) summarize(report *Report) {
	p.logger.LogNewline()
	for _, s := range report.Steps() {
		if s.Skipped {
			p.logger.Info(p.formatter.FormatSkipped(s.Step, s.Reason))
			continue
		}
		p.logger.Info(p.formatter.FormatOutcome(s.Step, s.Outcome))
	}
}
