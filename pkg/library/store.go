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
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Store owns the single in-memory library of a run and writes the whole
// record back to disk after every mutation.
type Store struct {
	fs   afero.Fs
	lib  *Library
	path string
}

// Open loads the library record at path. A missing file yields an empty
// library; a file that exists but can't be decoded is an error, so a bad
// record is never silently replaced by an empty one.
func Open(fsys afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fsys, path: path}

	data, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", path).Msg("no library record found, starting empty")
		s.lib = &Library{}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrCorruptLibraryRecord, path, err)
	}

	lib, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", path, err)
	}
	s.lib = lib

	log.Debug().
		Str("path", path).
		Int("games", len(lib.games)).
		Int("exclusions", len(lib.exclusions)).
		Msg("loaded library record")
	return s, nil
}

// Path is the location of the library record.
func (s *Store) Path() string {
	return s.path
}

// Library returns a copy of the current library.
func (s *Store) Library() *Library {
	return s.lib.Clone()
}

// Games returns a copy of the library's games.
func (s *Store) Games() []Game {
	return s.lib.Games()
}

// Exclusions returns a copy of the excluded games.
func (s *Store) Exclusions() []Game {
	return s.lib.Exclusions()
}

// Save writes the full library record.
func (s *Store) Save() error {
	data, err := Encode(s.lib)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write library %s: %w", s.path, err)
	}
	log.Debug().Str("path", s.path).Msg("saved library record")
	return nil
}

// Add inserts a game and persists.
func (s *Store) Add(g Game) error {
	if err := s.lib.Add(g); err != nil {
		return err
	}
	return s.Save()
}

// Remove moves the game at index i to the exclusions and persists.
func (s *Store) Remove(i int) (Game, error) {
	g, err := s.lib.Remove(i)
	if err != nil {
		return Game{}, err
	}
	return g, s.Save()
}

// Restore moves the exclusion at index i back to the library and persists.
func (s *Store) Restore(i int) (Game, error) {
	g, err := s.lib.Restore(i)
	if err != nil {
		return Game{}, err
	}
	return g, s.Save()
}

// Purge deletes the exclusion at index i and persists.
func (s *Store) Purge(i int) (Game, error) {
	g, err := s.lib.Purge(i)
	if err != nil {
		return Game{}, err
	}
	return g, s.Save()
}

// Rename changes a game's display name and persists.
func (s *Store) Rename(i int, name string) error {
	if err := s.lib.Rename(i, name); err != nil {
		return err
	}
	return s.Save()
}

// SetProcessName changes a shortcut's tracked process and persists.
func (s *Store) SetProcessName(i int, name string) error {
	if err := s.lib.SetProcessName(i, name); err != nil {
		return err
	}
	return s.Save()
}

// SetSettingsPath changes a game's synced settings file and persists.
func (s *Store) SetSettingsPath(i int, path string) error {
	if err := s.lib.SetSettingsPath(i, path); err != nil {
		return err
	}
	return s.Save()
}

// Sort re-sorts both lists by name and persists.
func (s *Store) Sort() error {
	s.lib.Sort()
	return s.Save()
}

// IndexOf returns the index of the library game equal to g, or -1.
func (s *Store) IndexOf(g Game) int {
	return s.lib.IndexOf(g)
}

// ExclusionIndexOf returns the index of the exclusion equal to g, or -1.
func (s *Store) ExclusionIndexOf(g Game) int {
	return s.lib.ExclusionIndexOf(g)
}
