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

	"github.com/ZaparooProject/zaparoo-stream/pkg/art"
	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/ZaparooProject/zaparoo-stream/pkg/shortcuts"
	"github.com/ZaparooProject/zaparoo-stream/pkg/sunshine"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (rt *Runtime) sunshineOptions() sunshine.Options {
	opts := sunshine.Options{
		Exe:          rt.Exe,
		PathEnv:      rt.Cfg.SunshinePathEnv(),
		StaticArtDir: rt.Cfg.StaticArtPath(rt.Dirs.Data),
		Elevated:     rt.Cfg.SunshineElevatedHooks(),
	}

	sys, err := rt.steam()
	if err != nil {
		log.Warn().Err(err).Msg("writing Sunshine config without cover art")
		return opts
	}
	opts.Art = art.NewResolver(rt.Fs, sys.GridDir, sys.LibraryCacheDir, rt.Cfg.ArtCachePath(rt.Dirs.Cache))
	return opts
}

// exportSunshine writes the Sunshine apps config to path. An existing file
// is only replaced when overwrite agrees.
func (rt *Runtime) exportSunshine(store *library.Store, path string, overwrite func() (bool, error)) error {
	exists, err := helpers.IsFile(rt.Fs, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		ok, err := overwrite()
		if err != nil {
			return err
		}
		if !ok {
			rt.println("Didn't write Sunshine config.")
			return nil
		}
	}

	rt.println("Writing Sunshine config...")
	cfg := sunshine.Build(store.Games(), rt.sunshineOptions())
	if err := sunshine.Write(rt.Fs, path, cfg); err != nil {
		return fmt.Errorf("failed to write Sunshine config: %w", err)
	}
	rt.printf("Saved Sunshine config to %s. You may need to restart Sunshine for the changes to go into effect.\n",
		path)
	return nil
}

func (rt *Runtime) exportShortcuts(store *library.Store, dir string, batch bool) error {
	var (
		paths []string
		err   error
	)
	if batch {
		rt.println("Creating batch shortcuts...")
		paths, err = shortcuts.WriteBatch(rt.Fs, dir, rt.Exe, store.Games())
	} else {
		rt.println("Creating shortcuts...")
		paths, err = shortcuts.WriteLinks(dir, rt.Exe, store.Games())
	}
	if err != nil {
		return fmt.Errorf("failed to write shortcuts: %w", err)
	}
	rt.printf("Created %d shortcuts in %s.\n", len(paths), dir)
	return nil
}

func (rt *Runtime) confirmOverwrite(path string) func() (bool, error) {
	return func() (bool, error) {
		return rt.prompter().YesNo(fmt.Sprintf("Config file %s already exists. Do you want to overwrite it?", path))
	}
}

func newExportCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library out for other programs",
	}

	var (
		path  string
		force bool
	)
	sunshineCmd := &cobra.Command{
		Use:   "sunshine",
		Short: "Write the Sunshine apps config",
		Args:  cobra.NoArgs,
		RunE: storeCommand(rt, func(store *library.Store, _ []string) error {
			if path == "" {
				path = rt.Cfg.SunshineAppsPath()
			}
			overwrite := rt.confirmOverwrite(path)
			if force {
				overwrite = func() (bool, error) { return true, nil }
			}
			return rt.exportSunshine(store, path, overwrite)
		}),
	}
	sunshineCmd.Flags().StringVar(&path, "path", "", "apps.json to write, defaults to the configured path")
	sunshineCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config without asking")

	var (
		dir   string
		batch bool
	)
	shortcutsCmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Write a launch shortcut per game",
		Args:  cobra.NoArgs,
		RunE: storeCommand(rt, func(store *library.Store, _ []string) error {
			if dir == "" {
				dir = rt.Cfg.ShortcutsPath(rt.Dirs.Data)
			}
			return rt.exportShortcuts(store, dir, batch)
		}),
	}
	shortcutsCmd.Flags().StringVar(&dir, "dir", "", "directory to write to, defaults to the configured path")
	shortcutsCmd.Flags().BoolVar(&batch, "batch", false, "write batch scripts instead of shell links")

	cmd.AddCommand(sunshineCmd, shortcutsCmd)

	return cmd
}
