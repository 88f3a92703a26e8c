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
	"strconv"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library/reconcile"
	"github.com/spf13/cobra"
)

// parseNumber reads a 1-based game number as shown by the list commands.
func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a game number", ErrInvalidChoice, s)
	}
	return n, nil
}

func (rt *Runtime) printGames(games []library.Game) {
	for i, g := range games {
		rt.printf("%d.\t%s\n", i+1, g)
	}
}

func (rt *Runtime) listGames(store *library.Store) {
	games := store.Games()
	rt.printf("There are %d games in the library:\n", len(games))
	rt.printGames(games)
}

func (rt *Runtime) listExclusions(store *library.Store) {
	games := store.Exclusions()
	rt.printf("There are %d games removed from the library:\n", len(games))
	rt.printGames(games)
}

func (rt *Runtime) syncLibrary(store *library.Store, decider reconcile.Decider) error {
	sys, err := rt.steam()
	if err != nil {
		return err
	}

	games, err := rt.Scan(sys)
	if err != nil {
		return fmt.Errorf("failed to list installed games: %w", err)
	}
	rt.printf("Found %d installed games.\n", len(games))

	report, err := reconcile.NewEngine(store, decider).Reconcile(games)
	if err != nil {
		return fmt.Errorf("failed to update library: %w", err)
	}

	for _, g := range report.Added {
		rt.printf("Added %s\n", g)
	}
	for _, g := range report.Updated {
		rt.printf("Updated %s\n", g)
	}
	c := report.Counts()
	rt.printf("Added %d, updated %d, removed %d and forgot %d games. %d removed games were skipped.\n",
		c.Added, c.Updated, c.Removed, c.Purged, c.Skipped)
	return nil
}

func (rt *Runtime) removeGame(store *library.Store, n int) error {
	g, err := store.Remove(n - 1)
	if err != nil {
		return fmt.Errorf("failed to remove game: %w", err)
	}
	rt.printf("Removed %s from library.\n", g)
	return nil
}

func (rt *Runtime) restoreGame(store *library.Store, n int) error {
	g, err := store.Restore(n - 1)
	if err != nil {
		return fmt.Errorf("failed to restore game: %w", err)
	}
	rt.printf("Added %s back to library.\n", g)
	return nil
}

func (rt *Runtime) setProcessName(store *library.Store, n int, name string) error {
	if err := store.SetProcessName(n-1, name); err != nil {
		return fmt.Errorf("failed to set process name: %w", err)
	}
	rt.printf("Process name of game %d set to %s.\n", n, name)
	return nil
}

func (rt *Runtime) setSettingsPath(store *library.Store, n int, path string) error {
	if err := store.SetSettingsPath(n-1, path); err != nil {
		return fmt.Errorf("failed to set settings file: %w", err)
	}
	if path == "" {
		rt.printf("Settings sync disabled for game %d.\n", n)
	} else {
		rt.printf("Settings file of game %d set to %s.\n", n, path)
	}
	return nil
}

// storeCommand wraps a library action that needs the opened store.
func storeCommand(rt *Runtime, fn func(store *library.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		store, err := rt.openStore()
		if err != nil {
			return err
		}
		return fn(store, args)
	}
}

// numberedCommand wraps a library action on the game number in args[0].
func numberedCommand(
	rt *Runtime,
	fn func(store *library.Store, n int, args []string) error,
) func(*cobra.Command, []string) error {
	return storeCommand(rt, func(store *library.Store, args []string) error {
		n, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		return fn(store, n, args[1:])
	})
}

func newLibraryCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the games exposed to Sunshine",
	}

	var keepAll bool
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Update the library from the installed Steam games",
		Args:  cobra.NoArgs,
		RunE: storeCommand(rt, func(store *library.Store, _ []string) error {
			decider := reconcile.KeepAll
			if !keepAll {
				decider = rt.prompter().Decider()
			}
			return rt.syncLibrary(store, decider)
		}),
	}
	syncCmd.Flags().BoolVar(&keepAll, "keep-all", false, "keep uninstalled games without asking")

	cmd.AddCommand(
		syncCmd,
		&cobra.Command{
			Use:   "list",
			Short: "List the games in the library",
			Args:  cobra.NoArgs,
			RunE: storeCommand(rt, func(store *library.Store, _ []string) error {
				rt.listGames(store)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "excluded",
			Short: "List the games removed from the library",
			Args:  cobra.NoArgs,
			RunE: storeCommand(rt, func(store *library.Store, _ []string) error {
				rt.listExclusions(store)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "remove <number>",
			Short: "Remove a game from the library",
			Args:  cobra.ExactArgs(1),
			RunE: numberedCommand(rt, func(store *library.Store, n int, _ []string) error {
				return rt.removeGame(store, n)
			}),
		},
		&cobra.Command{
			Use:   "restore <number>",
			Short: "Return a removed game to the library",
			Args:  cobra.ExactArgs(1),
			RunE: numberedCommand(rt, func(store *library.Store, n int, _ []string) error {
				return rt.restoreGame(store, n)
			}),
		},
		&cobra.Command{
			Use:   "set-process <number> <process>",
			Short: "Set the process watched for a non-Steam game",
			Args:  cobra.ExactArgs(2),
			RunE: numberedCommand(rt, func(store *library.Store, n int, args []string) error {
				return rt.setProcessName(store, n, args[0])
			}),
		},
		&cobra.Command{
			Use:   "set-settings <number> [path]",
			Short: "Set the settings file synced per client, or clear it",
			Args:  cobra.RangeArgs(1, 2),
			RunE: numberedCommand(rt, func(store *library.Store, n int, args []string) error {
				path := ""
				if len(args) > 0 {
					path = args[0]
				}
				return rt.setSettingsPath(store, n, path)
			}),
		},
	)

	return cmd
}
