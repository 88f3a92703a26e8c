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


package shortcuts_test

import (
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/ZaparooProject/zaparoo-stream/pkg/shortcuts"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGames(t *testing.T) []library.Game {
	t.Helper()

	native, err := library.NewNativeGame("440", "Team Fortress 2")
	require.NoError(t, err)
	shortcut, err := library.NewShortcutGame("12345678901234567", "Retro: Arch", "2874238", "retroarch.exe")
	require.NoError(t, err)

	return []library.Game{native, shortcut}
}

func TestWriteBatch(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	dir := filepath.Join("data", "shortcuts")
	exe := filepath.Join("Program Files", "zaparoo-stream.exe")

	paths, err := shortcuts.WriteBatch(fs, dir, exe, testGames(t))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "Team Fortress 2.bat"), paths[0])
	assert.Equal(t, filepath.Join(dir, "Retro_ Arch.bat"), paths[1])

	data, err := afero.ReadFile(fs, paths[0])
	require.NoError(t, err)
	assert.Equal(t, `"`+exe+`" launch -g=440`+"\r\n", string(data))

	data, err = afero.ReadFile(fs, paths[1])
	require.NoError(t, err)
	assert.Equal(t, `"`+exe+`" launch -g=12345678901234567 -p=retroarch.exe`+"\r\n", string(data))
}

func TestWriteBatch_Overwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	games := testGames(t)[:1]
	path := filepath.Join("out", shortcuts.BatchFileName(games[0]))
	require.NoError(t, afero.WriteFile(fs, path, []byte("stale"), 0o644))

	_, err := shortcuts.WriteBatch(fs, "out", "zs", games)
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "zs launch -g=440\r\n", string(data))
}

func TestWriteBatch_ReadOnly(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := shortcuts.WriteBatch(fs, "out", "zs", testGames(t))
	require.Error(t, err)
}

func TestFileNames(t *testing.T) {
	t.Parallel()

	g := testGames(t)[1]
	assert.Equal(t, "Retro_ Arch.bat", shortcuts.BatchFileName(g))
	assert.Equal(t, "Retro_ Arch.lnk", shortcuts.LinkFileName(g))
}
