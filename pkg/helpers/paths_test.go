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

package helpers

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZaparooProject/zaparoo-stream/pkg/config"
	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestResolveDirs_HomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)

	dirs := ResolveDirs()
	assert.Equal(t, Dirs{Config: home, Data: home, Cache: home}, dirs)
}

func TestResolveDirs_Platform(t *testing.T) {
	t.Setenv(config.HomeEnv, "")

	dirs := ResolveDirs()
	if runtime.GOOS == "windows" {
		assert.Equal(t, ExeDir(), dirs.Config)
		assert.Equal(t, dirs.Config, dirs.Data)
		return
	}
	assert.Equal(t, filepath.Join(xdg.ConfigHome, config.AppName), dirs.Config)
	assert.Equal(t, filepath.Join(xdg.DataHome, config.AppName), dirs.Data)
	assert.Equal(t, filepath.Join(xdg.CacheHome, config.AppName), dirs.Cache)
}
