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

// Package steam resolves the local Steam installation, drives the Steam
// client through its steam:// URL handler and scans installed games.
package steam

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	OpenBigPictureURL  = "steam://open/bigpicture"
	CloseBigPictureURL = "steam://close/bigpicture"
	runGameURLPrefix   = "steam://rungameid/"
)

var (
	ErrSteamNotFound = errors.New("steam installation not found")
	ErrNoActiveUser  = errors.New("no active steam user")
	ErrInvalidGameID = errors.New("invalid steam game id")
)

// SystemContext holds the resolved locations of the Steam installation.
// It's resolved once per command and passed explicitly.
type SystemContext struct {
	InstallDir      string
	ExePath         string
	ActiveUser      string
	UserConfigDir   string
	LibraryCacheDir string
	GridDir         string
}

// Overrides are user-configured values which take priority over detection.
type Overrides struct {
	InstallDir string
	User       string
}

// detected is what the platform lookup could find on its own.
type detected struct {
	installDir string
	exePath    string
	user       string
}

// NewSystemContext derives the Steam data directories from an install dir
// and account id. The user specific dirs are left empty without a user.
func NewSystemContext(installDir, exePath, user string) SystemContext {
	sys := SystemContext{
		InstallDir:      installDir,
		ExePath:         exePath,
		ActiveUser:      user,
		LibraryCacheDir: filepath.Join(installDir, "appcache", "librarycache"),
	}
	if user != "" {
		sys.UserConfigDir = filepath.Join(installDir, "userdata", user, "config")
		sys.GridDir = filepath.Join(sys.UserConfigDir, "grid")
	}
	return sys
}

// ShortcutsPath returns the active user's shortcuts.vdf path.
func (s SystemContext) ShortcutsPath() string {
	if s.UserConfigDir == "" {
		return ""
	}
	return filepath.Join(s.UserConfigDir, "shortcuts.vdf")
}

// ResolveSystemContext locates Steam. Overrides are applied first, then the
// platform lookup (registry on Windows, well known paths elsewhere), then
// loginusers.vdf for the active user.
func ResolveSystemContext(fs afero.Fs, o Overrides) (SystemContext, error) {
	d := detect(fs)

	installDir := d.installDir
	exePath := d.exePath
	if o.InstallDir != "" {
		if ok, _ := afero.DirExists(fs, o.InstallDir); !ok {
			log.Warn().Str("path", o.InstallDir).Msg("configured Steam directory not found")
		}
		installDir = o.InstallDir
		exePath = ""
	}
	if installDir == "" {
		return SystemContext{}, ErrSteamNotFound
	}
	if exePath == "" {
		exePath = defaultExePath(installDir)
	}

	user := o.User
	if user == "" {
		user = d.user
	}
	if user == "" {
		var err error
		user, err = MostRecentUser(fs, filepath.Join(installDir, "config", "loginusers.vdf"))
		if err != nil {
			log.Warn().Err(err).Msg("could not determine active Steam user")
		}
	}

	sys := NewSystemContext(installDir, exePath, user)
	log.Debug().
		Str("installDir", sys.InstallDir).
		Str("exe", sys.ExePath).
		Str("user", sys.ActiveUser).
		Msg("resolved Steam context")
	return sys, nil
}

// RunGameURL builds the steam:// URL which launches a game id.
func RunGameURL(id string) (string, error) {
	if !isNumeric(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGameID, id)
	}
	return runGameURLPrefix + id, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
