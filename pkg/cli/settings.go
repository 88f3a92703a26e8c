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
	"fmt"

	"github.com/ZaparooProject/zaparoo-stream/pkg/settingssync"
	"github.com/spf13/cobra"
)

type settingsFlags struct {
	gameID       string
	settingsPath string
}

func newSettingsSyncCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings-sync",
		Short: "Keep a separate copy of a game's settings per streaming client",
		Long: `Sunshine runs load before a stream and save after it. The client is
identified by the SUNSHINE_CLIENT_WIDTH, SUNSHINE_CLIENT_HEIGHT and
SUNSHINE_CLIENT_FPS variables Sunshine sets for prep commands.`,
	}

	cmd.AddCommand(newSettingsActionCommand(rt, "load",
		"Swap in the saved settings for the current client",
		(*settingssync.Engine).Load))
	cmd.AddCommand(newSettingsActionCommand(rt, "save",
		"Save the live settings for the current client",
		(*settingssync.Engine).Save))

	return cmd
}

func newSettingsActionCommand(
	rt *Runtime,
	use, short string,
	action func(*settingssync.Engine, string, settingssync.Signature, string) error,
) *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if flags.gameID == "" || flags.settingsPath == "" {
				return fmt.Errorf("%w: --game and --settings are both required", ErrMissingFlag)
			}

			sig, err := settingssync.SignatureFromEnv(rt.LookupEnv)
			if err != nil {
				return fmt.Errorf("failed to identify client: %w", err)
			}

			engine := settingssync.NewEngine(rt.Fs, rt.Cfg.SettingsCachePath(rt.Dirs.Data))
			if err := action(engine, flags.gameID, sig, flags.settingsPath); err != nil {
				return fmt.Errorf("settings %s failed: %w", use, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.gameID, "game", "g", "", "Steam id of the game")
	cmd.Flags().StringVarP(&flags.settingsPath, "settings", "s", "", "path of the game's settings file")

	return cmd
}
