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
	"github.com/spf13/cobra"
	"github.com/walteh/i18npatch/cmd/i18npatch/commands"
	"github.com/walteh/i18npatch/cmd/i18npatch/opts"
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (yaml, json or hcl)")
	cmd.PersistentFlags().StringVarP(&o.Root, "root", "r", "", "project root holding the build output")
	cmd.PersistentFlags().BoolVarP(&o.DryRun, "dry-run", "n", false, "report changes without writing")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// newRootCmd creates the root command. Without a subcommand it runs the patch.
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "i18npatch",
		Short: "Patch a packaged desktop build for Chinese localization",
		Long: `i18npatch runs after the application is bundled. It force-enables the
i18n feature flag in the renderer bundle and replaces the English menu
strings of the main-process script with Chinese ones. Running it again on
patched output changes nothing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := o.Init(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunPatch(cmd, o)
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewPatchCmd(o),
		commands.NewRulesCmd(o),
		commands.NewVersionCmd(),
	)

	return rootCmd
}
