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
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func gameGen(prefix string, i int) *rapid.Generator[Game] {
	return rapid.Custom(func(t *rapid.T) Game {
		name := rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 :'-]{0,20}`).Draw(t, "name")
		id := prefix + strconv.Itoa(i)
		if rapid.Bool().Draw(t, "shortcut") {
			proc := rapid.StringMatching(`[a-z]{1,8}\.exe`).Draw(t, "proc")
			return Game{Kind: KindShortcut, ID: id, Name: name, AltID: "alt-" + id, ProcessName: proc}
		}
		g := Game{Kind: KindNative, ID: id, Name: name}
		if rapid.Bool().Draw(t, "settings") {
			g.SettingsPath = `C:\Users\me\AppData\` + name + `.ini`
		}
		return g
	})
}

func libraryGen() *rapid.Generator[*Library] {
	return rapid.Custom(func(t *rapid.T) *Library {
		nGames := rapid.IntRange(0, 8).Draw(t, "games")
		nExcl := rapid.IntRange(0, 4).Draw(t, "exclusions")
		games := make([]Game, 0, nGames)
		for i := range nGames {
			games = append(games, gameGen("g", i).Draw(t, "game"))
		}
		exclusions := make([]Game, 0, nExcl)
		for i := range nExcl {
			exclusions = append(exclusions, gameGen("x", i).Draw(t, "exclusion"))
		}
		lib, err := New(games, exclusions)
		if err != nil {
			t.Fatalf("generator produced invalid library: %v", err)
		}
		return lib
	})
}

// TestPropertyEqualDefinition verifies Equal matches id or shared alt id.
func TestPropertyEqualDefinition(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SampledFrom([]string{"1", "2", "3"})
		alts := rapid.SampledFrom([]string{"", "a", "b"})
		a := Game{ID: ids.Draw(t, "aid"), AltID: alts.Draw(t, "aalt")}
		b := Game{ID: ids.Draw(t, "bid"), AltID: alts.Draw(t, "balt")}

		want := a.ID == b.ID || (a.AltID != "" && b.AltID != "" && a.AltID == b.AltID)
		if a.Equal(b) != want {
			t.Fatalf("Equal(%+v, %+v) = %v, want %v", a, b, a.Equal(b), want)
		}
		if a.Equal(b) != b.Equal(a) {
			t.Fatalf("Equal not symmetric for %+v, %+v", a, b)
		}
	})
}

// TestPropertyRecordRoundTrip verifies decode(encode(lib)) == lib.
func TestPropertyRecordRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		lib := libraryGen().Draw(t, "library")

		data, err := Encode(lib)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		require.Equal(t, lib.Games(), got.Games())
		require.Equal(t, lib.Exclusions(), got.Exclusions())
	})
}

// TestPropertyLegacyRecordRoundTrip verifies the non_steam_games key decodes
// to the same library.
func TestPropertyLegacyRecordRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		lib := libraryGen().Draw(t, "library")
		rec := ToRecord(lib)

		data, err := json.Marshal(map[string]any{
			"non_steam_games": rec.Games,
			"exclusions":      rec.Exclusions,
		})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		require.Equal(t, lib.Games(), got.Games())
		require.Equal(t, lib.Exclusions(), got.Exclusions())
	})
}
