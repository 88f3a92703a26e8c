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
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FlatpakSteamID is the Flatpak app ID for Steam.
const FlatpakSteamID = "com.valvesoftware.Steam"

// defaultExePath returns the launcher on PATH, the install dir holds the
// runtime rather than a directly runnable binary.
func defaultExePath(string) string {
	return "steam"
}

// candidateDirs lists the common Steam install locations for a home dir.
func candidateDirs(home string) []string {
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam"),
		filepath.Join(home, "snap", "steam", "common", ".steam", "steam"),
	}
}

func detect(fs afero.Fs) detected {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get user home directory")
		return detected{}
	}
	return detectIn(fs, home)
}

func detectIn(fs afero.Fs, home string) detected {
	for _, dir := range candidateDirs(home) {
		if ok, _ := afero.DirExists(fs, dir); ok {
			log.Debug().Str("path", dir).Msg("found Steam installation")
			return detected{installDir: dir}
		}
	}
	return detected{}
}
