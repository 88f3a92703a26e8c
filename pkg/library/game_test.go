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

func TestNewShortcutGame_RequiresBothFields(t *testing.T) {
	t.Parallel()

	_, err := NewShortcutGame("1", "Foo", "", "foo.exe")
	require.ErrorIs(t, err, ErrInvalidGame)

	_, err = NewShortcutGame("1", "Foo", "99", "")
	require.ErrorIs(t, err, ErrInvalidGame)

	g, err := NewShortcutGame("1", "Foo", "99", "foo.exe")
	require.NoError(t, err)
	assert.True(t, g.IsShortcut())
}

func TestGame_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		game    Game
		wantErr bool
	}{
		{name: "native", game: Game{Kind: KindNative, ID: "100", Name: "Foo"}},
		{name: "missing_id", game: Game{Kind: KindNative, Name: "Foo"}, wantErr: true},
		{name: "blank_name", game: Game{Kind: KindNative, ID: "1", Name: "  "}, wantErr: true},
		{
			name:    "native_with_process",
			game:    Game{Kind: KindNative, ID: "1", Name: "Foo", AltID: "2", ProcessName: "foo.exe"},
			wantErr: true,
		},
		{
			name:    "shortcut_without_alt",
			game:    Game{Kind: KindShortcut, ID: "1", Name: "Foo"},
			wantErr: true,
		},
		{name: "unknown_kind", game: Game{Kind: Kind(7), ID: "1", Name: "Foo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.game.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGame)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGame_Equal(t *testing.T) {
	t.Parallel()

	a := Game{ID: "100", Name: "A"}
	b := Game{ID: "100", Name: "B"}
	assert.True(t, a.Equal(b), "same primary id")

	c := Game{ID: "1", AltID: "55", ProcessName: "x.exe"}
	d := Game{ID: "2", AltID: "55", ProcessName: "y.exe"}
	assert.True(t, c.Equal(d), "same alt id")

	e := Game{ID: "3"}
	f := Game{ID: "4"}
	assert.False(t, e.Equal(f), "empty alt ids never match")
}

func TestGame_LauncherArgs(t *testing.T) {
	t.Parallel()

	native := Game{ID: "730", Name: "CS2"}
	assert.Equal(t, []string{"-g=730"}, native.LauncherArgs())

	shortcut := Game{ID: "123", Name: "RA", AltID: "9", ProcessName: "retroarch.exe"}
	assert.Equal(t, []string{"-g=123", "-p=retroarch.exe"}, shortcut.LauncherArgs())
}

func TestGame_SanitizedName(t *testing.T) {
	t.Parallel()

	g := Game{Name: "Half-Life: Alyx / VR?"}
	assert.Equal(t, "Half-Life_ Alyx _ VR_", g.SanitizedName())

	g = Game{Name: "Ōkami HD"}
	assert.Equal(t, "Ōkami HD", g.SanitizedName())
}

func TestGame_ArtID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "730", Game{ID: "730"}.ArtID())
	assert.Equal(t, "55", Game{ID: "1", AltID: "55"}.ArtID())
}

func TestGame_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Foo (ID=1)", Game{ID: "1", Name: "Foo"}.String())
	assert.Equal(t,
		"Bar (ID=2, Process name = bar.exe) *Non-Steam",
		Game{ID: "2", Name: "Bar", AltID: "3", ProcessName: "bar.exe"}.String())
}
