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

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNative(t *testing.T, id, name string) Game {
	t.Helper()
	g, err := NewNativeGame(id, name)
	require.NoError(t, err)
	return g
}

func mustShortcut(t *testing.T, id, name, alt, proc string) Game {
	t.Helper()
	g, err := NewShortcutGame(id, name, alt, proc)
	require.NoError(t, err)
	return g
}

func names(games []Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

func TestNew_SortsAndRejectsDuplicates(t *testing.T) {
	t.Parallel()

	lib, err := New([]Game{
		mustNative(t, "2", "Zelda"),
		mustNative(t, "1", "Alpha"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Zelda"}, names(lib.Games()))

	_, err = New([]Game{mustNative(t, "1", "A"), mustNative(t, "1", "B")}, nil)
	require.ErrorIs(t, err, ErrDuplicateGame)

	_, err = New([]Game{mustNative(t, "1", "A")}, []Game{mustNative(t, "1", "A")})
	require.ErrorIs(t, err, ErrDuplicateGame)

	_, err = New([]Game{{ID: "1"}}, nil)
	require.ErrorIs(t, err, ErrInvalidGame)
}

func TestLibrary_AddDropsExclusion(t *testing.T) {
	t.Parallel()

	foo := mustNative(t, "100", "Foo")
	lib, err := New(nil, []Game{foo})
	require.NoError(t, err)

	require.NoError(t, lib.Add(foo))
	assert.True(t, lib.Contains(foo))
	assert.False(t, lib.IsExcluded(foo))

	require.ErrorIs(t, lib.Add(foo), ErrDuplicateGame)
}

func TestLibrary_RemoveRestorePurge(t *testing.T) {
	t.Parallel()

	lib, err := New([]Game{
		mustNative(t, "1", "A"),
		mustShortcut(t, "2", "B", "20", "b.exe"),
	}, nil)
	require.NoError(t, err)

	removed, err := lib.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Name)
	assert.Equal(t, []string{"A"}, names(lib.Games()))
	assert.Equal(t, []string{"B"}, names(lib.Exclusions()))

	restored, err := lib.Restore(0)
	require.NoError(t, err)
	assert.Equal(t, removed, restored)
	assert.Empty(t, lib.Exclusions())
	assert.Len(t, lib.Games(), 2)

	_, err = lib.Remove(0)
	require.NoError(t, err)
	purged, err := lib.Purge(0)
	require.NoError(t, err)
	assert.Equal(t, "A", purged.Name)
	assert.Empty(t, lib.Exclusions())
	assert.Equal(t, []string{"B"}, names(lib.Games()))
}

func TestLibrary_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	lib, err := New([]Game{mustNative(t, "1", "A")}, nil)
	require.NoError(t, err)

	_, err = lib.Remove(1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = lib.Remove(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = lib.Restore(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = lib.Purge(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorIs(t, lib.Rename(3, "x"), ErrIndexOutOfRange)
}

func TestLibrary_Updates(t *testing.T) {
	t.Parallel()

	lib, err := New([]Game{
		mustNative(t, "1", "A"),
		mustShortcut(t, "2", "B", "20", "b.exe"),
	}, nil)
	require.NoError(t, err)

	require.NoError(t, lib.Rename(0, "Z"))
	assert.Equal(t, []string{"Z", "B"}, names(lib.Games()), "rename keeps position")

	require.NoError(t, lib.SetProcessName(1, "c.exe"))
	assert.Equal(t, "c.exe", lib.Games()[1].ProcessName)

	require.ErrorIs(t, lib.SetProcessName(0, "x.exe"), ErrInvalidGame,
		"native games cannot carry a process name")
	require.ErrorIs(t, lib.Rename(0, ""), ErrInvalidGame)

	require.NoError(t, lib.SetSettingsPath(0, `C:\cfg.ini`))
	assert.Equal(t, `C:\cfg.ini`, lib.Games()[0].SettingsPath)

	lib.Sort()
	assert.Equal(t, []string{"B", "Z"}, names(lib.Games()))
}

func TestLibrary_KindViews(t *testing.T) {
	t.Parallel()

	lib, err := New([]Game{
		mustNative(t, "1", "A"),
		mustShortcut(t, "2", "B", "20", "b.exe"),
		mustNative(t, "3", "C"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, names(lib.NativeGames()))
	assert.Equal(t, []string{"B"}, names(lib.ShortcutGames()))
}

func TestLibrary_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	lib, err := New([]Game{mustNative(t, "1", "A")}, nil)
	require.NoError(t, err)

	clone := lib.Clone()
	require.NoError(t, clone.Rename(0, "B"))
	assert.Equal(t, "A", lib.Games()[0].Name)
}
