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
	"cmp"
	"fmt"
	"slices"
)

// Library is an ordered set of games plus an ordered set of exclusions,
// games the user removed that must not be re-added automatically. Both
// lists are sorted by name and a game is never in both.
type Library struct {
	games      []Game
	exclusions []Game
}

// New builds a library from existing lists, validating every game and the
// library invariants.
func New(games, exclusions []Game) (*Library, error) {
	lib := &Library{}
	for _, g := range games {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if lib.IndexOf(g) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGame, g)
		}
		lib.games = append(lib.games, g)
	}
	for _, g := range exclusions {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if lib.IndexOf(g) >= 0 {
			return nil, fmt.Errorf("%w: %s is both in the library and excluded", ErrDuplicateGame, g)
		}
		if lib.ExclusionIndexOf(g) >= 0 {
			return nil, fmt.Errorf("%w: %s excluded twice", ErrDuplicateGame, g)
		}
		lib.exclusions = append(lib.exclusions, g)
	}
	lib.Sort()
	return lib, nil
}

func sortGames(games []Game) {
	slices.SortStableFunc(games, func(a, b Game) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

func indexOf(games []Game, g Game) int {
	return slices.IndexFunc(games, g.Equal)
}

// Games returns a copy of the library's games.
func (l *Library) Games() []Game {
	return slices.Clone(l.games)
}

// Exclusions returns a copy of the excluded games.
func (l *Library) Exclusions() []Game {
	return slices.Clone(l.exclusions)
}

// NativeGames returns the Steam games in the library.
func (l *Library) NativeGames() []Game {
	var out []Game
	for _, g := range l.games {
		if !g.IsShortcut() {
			out = append(out, g)
		}
	}
	return out
}

// ShortcutGames returns the non-Steam games in the library.
func (l *Library) ShortcutGames() []Game {
	var out []Game
	for _, g := range l.games {
		if g.IsShortcut() {
			out = append(out, g)
		}
	}
	return out
}

// IndexOf returns the index of the library game equal to g, or -1.
func (l *Library) IndexOf(g Game) int {
	return indexOf(l.games, g)
}

// ExclusionIndexOf returns the index of the exclusion equal to g, or -1.
func (l *Library) ExclusionIndexOf(g Game) int {
	return indexOf(l.exclusions, g)
}

// Contains reports whether g is in the library.
func (l *Library) Contains(g Game) bool {
	return l.IndexOf(g) >= 0
}

// IsExcluded reports whether g is in the exclusions.
func (l *Library) IsExcluded(g Game) bool {
	return l.ExclusionIndexOf(g) >= 0
}

// Add inserts a game. An exclusion matching the game is dropped, since
// adding it is an explicit request to have it back.
func (l *Library) Add(g Game) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if l.Contains(g) {
		return fmt.Errorf("%w: %s", ErrDuplicateGame, g)
	}
	if i := l.ExclusionIndexOf(g); i >= 0 {
		l.exclusions = slices.Delete(l.exclusions, i, i+1)
	}
	l.games = append(l.games, g)
	sortGames(l.games)
	return nil
}

// Remove moves the game at index i to the exclusions.
func (l *Library) Remove(i int) (Game, error) {
	if i < 0 || i >= len(l.games) {
		return Game{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i+1)
	}
	g := l.games[i]
	l.games = slices.Delete(l.games, i, i+1)
	l.exclusions = append(l.exclusions, g)
	sortGames(l.exclusions)
	return g, nil
}

// Restore moves the exclusion at index i back into the library.
func (l *Library) Restore(i int) (Game, error) {
	if i < 0 || i >= len(l.exclusions) {
		return Game{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i+1)
	}
	g := l.exclusions[i]
	l.exclusions = slices.Delete(l.exclusions, i, i+1)
	l.games = append(l.games, g)
	sortGames(l.games)
	return g, nil
}

// Purge permanently deletes the exclusion at index i.
func (l *Library) Purge(i int) (Game, error) {
	if i < 0 || i >= len(l.exclusions) {
		return Game{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i+1)
	}
	g := l.exclusions[i]
	l.exclusions = slices.Delete(l.exclusions, i, i+1)
	return g, nil
}

// Rename changes the display name of the game at index i. The list is not
// re-sorted so indexes stay stable during a batch of updates; call Sort
// when done.
func (l *Library) Rename(i int, name string) error {
	return l.update(i, func(g *Game) { g.Name = name })
}

// SetProcessName changes the tracked process of the shortcut at index i.
func (l *Library) SetProcessName(i int, name string) error {
	return l.update(i, func(g *Game) { g.ProcessName = name })
}

// SetSettingsPath sets or clears the settings file synced for the game at
// index i.
func (l *Library) SetSettingsPath(i int, path string) error {
	return l.update(i, func(g *Game) { g.SettingsPath = path })
}

func (l *Library) update(i int, fn func(g *Game)) error {
	if i < 0 || i >= len(l.games) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i+1)
	}
	g := l.games[i]
	fn(&g)
	if err := g.Validate(); err != nil {
		return err
	}
	l.games[i] = g
	return nil
}

// Sort orders both lists by name.
func (l *Library) Sort() {
	sortGames(l.games)
	sortGames(l.exclusions)
}

// Clone returns a deep copy of the library.
func (l *Library) Clone() *Library {
	return &Library{games: l.Games(), exclusions: l.Exclusions()}
}
