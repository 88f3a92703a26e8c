/*
Zaparoo Stream
Copyright (c) 2026 The Zaparoo Project Contributors.
SPDX-License-Identifier: GPL-3.0-or-later

This file is part of Zaparoo Stream.

Zaparoo Stream is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Zaparoo Stream is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Zaparoo Stream.  If not, see <http://www.gnu.org/licenses/>.
*/


package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-stream/pkg/config"
	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the full command tree around rt.
func NewRootCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Stream Steam games through Sunshine",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd)
		},
	}

	cmd.SetIn(rt.In)
	cmd.SetOut(rt.Out)

	cmd.AddCommand(newLaunchCommand(rt))
	cmd.AddCommand(newPrelaunchCommand(rt))
	cmd.AddCommand(newTeardownCommand(rt))
	cmd.AddCommand(newSettingsSyncCommand(rt))
	cmd.AddCommand(newLibraryCommand(rt))
	cmd.AddCommand(newExportCommand(rt))
	cmd.AddCommand(newMenuCommand(rt))

	return cmd
}

// logName is the log file name for a command, e.g. "settings-sync-load".
func logName(cmd *cobra.Command) string {
	path := strings.Fields(cmd.CommandPath())
	if len(path) > 1 {
		path = path[1:]
	}
	return strings.Join(path, "-")
}

func (rt *Runtime) setup(cmd *cobra.Command) error {
	if rt.Logging {
		if err := helpers.InitLogging(rt.Dirs.Data, logName(cmd), nil); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	cfg, err := rt.config()
	if err != nil {
		return err
	}

	if rt.Logging {
		level := zerolog.InfoLevel
		if cfg.DebugLogging() {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("command", cmd.CommandPath()).
		Str("version", config.AppVersion).
		Msg("starting")
	return nil
}

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, rt *Runtime, args []string) int {
	root := NewRootCommand(rt)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Msg("command cancelled")
	} else {
		log.Error().Err(err).Msg("command failed")
	}
	_, _ = fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	return 1
}
