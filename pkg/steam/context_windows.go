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
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows/registry"
)

const (
	steamRegistryPath  = `SOFTWARE\Valve\Steam`
	activeProcessPath  = steamRegistryPath + `\ActiveProcess`
	steamAppsRegistry  = steamRegistryPath + `\Apps`
	defaultExeBasename = "steam.exe"
)

func defaultExePath(installDir string) string {
	return filepath.Join(installDir, defaultExeBasename)
}

func readString(root registry.Key, path, name string) string {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = key.Close() }()
	v, _, err := key.GetStringValue(name)
	if err != nil {
		return ""
	}
	return v
}

func readInteger(root registry.Key, path, name string) (uint64, bool) {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return 0, false
	}
	defer func() { _ = key.Close() }()
	v, _, err := key.GetIntegerValue(name)
	if err != nil {
		return 0, false
	}
	return v, true
}

// detect reads the install dir, exe and active user the Steam client
// writes to HKCU, falling back to the installer's HKLM entries.
func detect(_ afero.Fs) detected {
	d := detected{
		installDir: filepath.Clean(readString(registry.CURRENT_USER, steamRegistryPath, "SteamPath")),
		exePath:    readString(registry.CURRENT_USER, steamRegistryPath, "SteamExe"),
	}
	if d.installDir == "." {
		d.installDir = ""
	}
	if d.installDir == "" {
		for _, path := range []string{`SOFTWARE\Wow6432Node\Valve\Steam`, steamRegistryPath} {
			if dir := readString(registry.LOCAL_MACHINE, path, "InstallPath"); dir != "" {
				log.Debug().Str("path", dir).Msg("found Steam in HKLM")
				d.installDir = dir
				break
			}
		}
	}
	if d.exePath != "" {
		d.exePath = filepath.Clean(d.exePath)
	}
	if user, ok := readInteger(registry.CURRENT_USER, activeProcessPath, "ActiveUser"); ok && user != 0 {
		d.user = strconv.FormatUint(user, 10)
	}
	return d
}
