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

package config

import "path/filepath"

// Paths overrides where app files live. Relative values resolve against the
// data directory, empty values use the defaults.
type Paths struct {
	Library       string `toml:"library,omitempty"`
	SettingsCache string `toml:"settings_cache,omitempty"`
	ArtCache      string `toml:"art_cache,omitempty"`
	StaticArt     string `toml:"static_art,omitempty"`
	Shortcuts     string `toml:"shortcuts,omitempty"`
}

func resolvePath(dataDir, override, def string) string {
	switch {
	case override == "":
		return filepath.Join(dataDir, def)
	case filepath.IsAbs(override):
		return override
	default:
		return filepath.Join(dataDir, override)
	}
}

func (c *Instance) LibraryPath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Paths.Library, LibraryFile)
}

func (c *Instance) SettingsCachePath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Paths.SettingsCache, SettingsCacheDir)
}

func (c *Instance) ArtCachePath(cacheDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(cacheDir, c.vals.Paths.ArtCache, ArtCacheDir)
}

func (c *Instance) StaticArtPath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Paths.StaticArt, StaticArtDir)
}

func (c *Instance) ShortcutsPath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Paths.Shortcuts, ShortcutsDir)
}
