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

// Package sunshine projects the game library onto Sunshine's apps.json.
package sunshine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	DesktopName    = "Desktop"
	BigPictureName = "Steam Big Picture"
	desktopImage   = "desktop.png"
	bigPictureArt  = "steam-big-picture.png"
)

type PrepCmd struct {
	Do       string `json:"do"`
	Undo     string `json:"undo"`
	Elevated string `json:"elevated"`
}

type App struct {
	Name      string    `json:"name"`
	Cmd       string    `json:"cmd,omitempty"`
	PrepCmd   []PrepCmd `json:"prep-cmd,omitempty"`
	ImagePath string    `json:"image-path"`
}

type Config struct {
	Env  map[string]string `json:"env"`
	Apps []App             `json:"apps"`
}

// CoverArt resolves the image Sunshine shows for a game.
type CoverArt interface {
	CoverArt(g library.Game) (string, error)
}

type Options struct {
	Art CoverArt
	// Exe is the launcher binary Sunshine runs.
	Exe          string
	PathEnv      string
	StaticArtDir string
	// Elevated runs the hooks as administrator, needed to end games
	// started by an elevated Steam.
	Elevated bool
}

// Build creates the Sunshine config for games: a Desktop entry, a Big
// Picture entry and one entry per game, in library order.
func Build(games []library.Game, opts Options) Config {
	cfg := Config{
		Env: map[string]string{},
		Apps: []App{
			{Name: DesktopName, ImagePath: desktopImage},
			{
				Name:      BigPictureName,
				Cmd:       helpers.CommandLine(opts.Exe, "launch"),
				PrepCmd:   []PrepCmd{sessionHooks(opts)},
				ImagePath: filepath.Join(opts.StaticArtDir, bigPictureArt),
			},
		},
	}
	if opts.PathEnv != "" {
		cfg.Env["PATH"] = opts.PathEnv
	}

	for _, g := range games {
		cfg.Apps = append(cfg.Apps, gameApp(g, opts))
	}
	return cfg
}

// gameApp builds a game's entry. Sunshine runs prep "do" commands in order
// and "undo" commands in reverse, so settings are saved before teardown
// kills the game.
func gameApp(g library.Game, opts Options) App {
	prep := []PrepCmd{sessionHooks(opts)}
	if g.SettingsPath != "" {
		flags := []string{"-g=" + g.ID, "-s=" + g.SettingsPath}
		prep = append(prep, PrepCmd{
			Do:       helpers.CommandLine(opts.Exe, append([]string{"settings-sync", "load"}, flags...)...),
			Undo:     helpers.CommandLine(opts.Exe, append([]string{"settings-sync", "save"}, flags...)...),
			Elevated: strconv.FormatBool(opts.Elevated),
		})
	}

	image := ""
	if opts.Art != nil {
		var err error
		image, err = opts.Art.CoverArt(g)
		if err != nil {
			log.Warn().Err(err).Str("game", g.String()).Msg("skipping cover art")
			image = ""
		}
	}

	return App{
		Name:      g.Name,
		Cmd:       helpers.CommandLine(opts.Exe, append([]string{"launch"}, g.LauncherArgs()...)...),
		PrepCmd:   prep,
		ImagePath: image,
	}
}

func sessionHooks(opts Options) PrepCmd {
	return PrepCmd{
		Do:       helpers.CommandLine(opts.Exe, "prelaunch"),
		Undo:     helpers.CommandLine(opts.Exe, "teardown", "--detached"),
		Elevated: strconv.FormatBool(opts.Elevated),
	}
}

// Encode renders cfg as 4-space indented JSON without HTML escaping.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode sunshine config: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the config file at path.
func Write(fs afero.Fs, path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create sunshine config dir: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sunshine config: %w", err)
	}
	log.Info().Str("path", path).Int("apps", len(cfg.Apps)).Msg("wrote sunshine config")
	return nil
}
