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
	"errors"
	"io"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errQuit = errors.New("quit")

type menuItem struct {
	run   func(store *library.Store) error
	label string
}

func (rt *Runtime) menuItems() []menuItem {
	p := rt.prompter()

	askNumber := func(prompt string) (int, error) {
		return p.Number(prompt + ": ")
	}

	return []menuItem{
		{label: "List loaded games", run: func(store *library.Store) error {
			rt.listGames(store)
			return nil
		}},
		{label: "Update library from Steam", run: func(store *library.Store) error {
			return rt.syncLibrary(store, p.Decider())
		}},
		{label: "Remove loaded game from library", run: func(store *library.Store) error {
			rt.listGames(store)
			n, err := askNumber("Input the number of the game to remove")
			if err != nil {
				return err
			}
			return rt.removeGame(store, n)
		}},
		{label: "Return removed game to library", run: func(store *library.Store) error {
			rt.listExclusions(store)
			n, err := askNumber("Input the number of the game to add back to library")
			if err != nil {
				return err
			}
			return rt.restoreGame(store, n)
		}},
		{label: "Set process name of a non-Steam game", run: func(store *library.Store) error {
			rt.listGames(store)
			n, err := askNumber("Input the number of the game")
			if err != nil {
				return err
			}
			name, err := p.Ask("Input the process name to track run status: ")
			if err != nil {
				return err
			}
			return rt.setProcessName(store, n, name)
		}},
		{label: "Set settings file of a game", run: func(store *library.Store) error {
			rt.listGames(store)
			n, err := askNumber("Input the number of the game")
			if err != nil {
				return err
			}
			path, err := p.Ask("Input the path of the settings file (press enter to disable settings sync): ")
			if err != nil {
				return err
			}
			return rt.setSettingsPath(store, n, path)
		}},
		{label: "Write games to shortcuts", run: func(store *library.Store) error {
			dir, err := p.AskDefault("Input the directory to save the shortcuts to", rt.Cfg.ShortcutsPath(rt.Dirs.Data))
			if err != nil {
				return err
			}
			return rt.exportShortcuts(store, dir, false)
		}},
		{label: "Write games to batch script shortcuts", run: func(store *library.Store) error {
			dir, err := p.AskDefault(
				"Input the directory to save the batch shortcuts to",
				rt.Cfg.ShortcutsPath(rt.Dirs.Data),
			)
			if err != nil {
				return err
			}
			return rt.exportShortcuts(store, dir, true)
		}},
		{label: "Write games to Sunshine config", run: func(store *library.Store) error {
			path, err := p.AskDefault("Input the path to write the config to", rt.Cfg.SunshineAppsPath())
			if err != nil {
				return err
			}
			return rt.exportSunshine(store, path, rt.confirmOverwrite(path))
		}},
		{label: "Quit", run: func(*library.Store) error {
			return errQuit
		}},
	}
}

// runMenu loops over the menu until the user quits or input ends. A failed
// action is reported and the loop carries on.
func (rt *Runtime) runMenu(store *library.Store) error {
	items := rt.menuItems()
	p := rt.prompter()

	for {
		rt.println()
		for i, item := range items {
			rt.printf("%d. %s\n", i+1, item.label)
		}
		rt.println()

		choice, err := p.Number("Please select a menu action (number): ")
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			rt.printf("Error: %v\n", err)
			continue
		case choice < 1 || choice > len(items):
			rt.printf("Error: %d is not a menu action.\n", choice)
			continue
		}

		err = items[choice-1].run(store)
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			log.Error().Err(err).Str("action", items[choice-1].label).Msg("menu action failed")
			rt.printf("Error: %v\n", err)
		}
	}
}

func newMenuCommand(rt *Runtime) *cobra.Command {
	var skipSync bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the library interactively",
		Args:  cobra.NoArgs,
		RunE: storeCommand(rt, func(store *library.Store, _ []string) error {
			if !skipSync {
				rt.println("Updating library from Steam...")
				if err := rt.syncLibrary(store, rt.prompter().Decider()); err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					log.Error().Err(err).Msg("library update failed")
					rt.printf("Error: %v\n", err)
				}
			}
			return rt.runMenu(store)
		}),
	}

	cmd.Flags().BoolVar(&skipSync, "no-sync", false, "skip updating the library from Steam on start")

	return cmd
}
