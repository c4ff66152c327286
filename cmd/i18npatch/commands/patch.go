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
	"github.com/spf13/cobra"
	"github.com/walteh/i18npatch/cmd/i18npatch/opts"
	"github.com/walteh/i18npatch/pkg/log"
	"github.com/walteh/i18npatch/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RunPatch runs the full patch. Warnings never fail the command; only a
// patcher that cannot be built does.
func RunPatch(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	p, err := operation.NewFromConfig(ctx, o.Config, logger)
	if err != nil {
		return errors.Errorf("creating patcher: %w", err)
	}

	logger.Header("patching build output in " + o.Config.Root)
	p.Run(ctx)

	return nil
}

// NewPatchCmd creates the patch command
func NewPatchCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "patch",
		Short: "Force-enable i18n and localize the main menu",
		Long: `Patch rewrites the build output in place.
It will:
1. Find the largest renderer bundle matching the bundle pattern
2. Force every enable_i18n flag read to true
3. Replace the English menu strings in the main-process script
4. Print a summary for each step`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunPatch(cmd, o)
		},
	}
}
