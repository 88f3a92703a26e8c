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

	"github.com/ZaparooProject/zaparoo-stream/pkg/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLaunchCommand(rt *Runtime) *cobra.Command {
	var req session.Request

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Start a game through Big Picture and wait until it's closed",
		Long: `Start Steam and Big Picture if needed, run the game and block until it
exits. Without a game id, Big Picture itself is streamed until it's closed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := rt.host()
			if err != nil {
				return err
			}

			m := session.NewMachine(
				host, rt.Procs, rt.Windows,
				session.OptionsFromConfig(rt.Cfg),
				withClock(rt),
			)
			s, err := m.Run(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("launch failed: %w", err)
			}
			log.Info().Str("session", s.ID.String()).Msg("session finished")
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.GameID, "game", "g", "", "Steam id of the game to run")
	cmd.Flags().StringVarP(&req.ProcessName, "process", "p", "", "process to watch instead of Steam's running app")

	return cmd
}

func newPrelaunchCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "prelaunch",
		Short: "Make sure Steam and Big Picture are up before a stream starts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := rt.host()
			if err != nil {
				return err
			}

			m := session.NewMachine(
				host, rt.Procs, rt.Windows,
				session.OptionsFromConfig(rt.Cfg),
				withClock(rt),
			)
			if _, err := m.PrepareHost(cmd.Context()); err != nil {
				return fmt.Errorf("prelaunch failed: %w", err)
			}
			return nil
		},
	}
}

func newTeardownCommand(rt *Runtime) *cobra.Command {
	var detached bool

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "End the running game and return Steam to the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if detached {
				return session.Detach(cmd.Context(), rt.Cmd, rt.Exe, "teardown")
			}

			host, err := rt.host()
			if err != nil {
				return err
			}

			t := session.NewTeardown(
				host, rt.Procs, rt.Windows,
				session.TeardownOptionsFromConfig(rt.Cfg),
				withClock(rt),
			)
			if err := t.Run(cmd.Context()); err != nil {
				return fmt.Errorf("teardown failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&detached, "detached", false, "run the teardown in a background process")

	return cmd
}
