//go:build !windows

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

package steam

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// SteamAppsDir finds the steamapps directory of an install, checking both
// lowercase and mixed-case spellings.
func SteamAppsDir(fs afero.Fs, installDir string) string {
	for _, candidate := range []string{"steamapps", "SteamApps"} {
		path := filepath.Join(installDir, candidate)
		if ok, _ := afero.DirExists(fs, path); ok {
			return path
		}
	}
	return filepath.Join(installDir, "steamapps")
}

// scanNative walks every library in libraryfolders.vdf and reads each
// appmanifest_*.acf it holds.
func (s *Scanner) scanNative() ([]library.Game, error) {
	m, err := parseTextVDF(s.fs, filepath.Join(SteamAppsDir(s.fs, s.sys.InstallDir), "libraryfolders.vdf"))
	if err != nil {
		return nil, err
	}

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		return nil, errors.New("libraryfolders.vdf: libraryfolders is not a map")
	}

	var games []library.Game
	seen := make(map[string]bool)
	for l, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			log.Debug().Msgf("library %s is not a map", l)
			continue
		}
		libraryPath, ok := ls["path"].(string)
		if !ok {
			log.Warn().Msgf("library %s path is not a string", l)
			continue
		}
		found, err := s.scanManifests(filepath.Join(libraryPath, "steamapps"))
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", l, err)
		}
		for _, g := range found {
			if seen[g.ID] {
				continue
			}
			seen[g.ID] = true
			games = append(games, g)
		}
	}
	return games, nil
}

// scanManifests fails when the library folder itself can't be listed, e.g.
// an unmounted drive. A single unparseable manifest is only skipped.
func (s *Scanner) scanManifests(dir string) ([]library.Game, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("error listing steamapps folder %s: %w", dir, err)
	}

	var games []library.Game
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "appmanifest_") {
			continue
		}
		mf := filepath.Join(dir, e.Name())
		am, err := parseTextVDF(s.fs, mf)
		if err != nil {
			log.Warn().Err(err).Msg("skipping manifest")
			continue
		}
		appState, ok := am["appstate"].(map[string]any)
		if !ok {
			log.Warn().Msgf("appstate is not a map in manifest: %s", mf)
			continue
		}
		appID, _ := appState["appid"].(string)
		name, _ := appState["name"].(string)
		g, err := library.NewNativeGame(appID, name)
		if err != nil {
			log.Warn().Err(err).Str("manifest", mf).Msg("skipping manifest")
			continue
		}
		games = append(games, g)
	}
	return games, nil
}
