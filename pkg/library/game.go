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

// Package library holds the set of games exposed to Sunshine, the set of
// games the user removed, and the durable JSON record both are kept in.
package library

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidGame          = errors.New("invalid game")
	ErrDuplicateGame        = errors.New("game already in library")
	ErrIndexOutOfRange      = errors.New("game number does not exist")
	ErrCorruptLibraryRecord = errors.New("library record is corrupt")
)

// Kind discriminates games Steam tracks natively from shortcuts to
// external executables.
type Kind int

const (
	// KindNative is an installed Steam app, identified by its app id.
	KindNative Kind = iota
	// KindShortcut is a non-Steam shortcut. Steam doesn't report these as
	// running, so they carry a process name to watch instead.
	KindShortcut
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "steam"
	case KindShortcut:
		return "non-steam"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var unsafeNameRe = regexp.MustCompile(`[^\p{L}\p{N}_. -]`)

// Game is a launchable entry in the library.
type Game struct {
	ID           string
	Name         string
	AltID        string
	ProcessName  string
	SettingsPath string
	Kind         Kind
}

// NewNativeGame returns a validated Steam game.
func NewNativeGame(id, name string) (Game, error) {
	g := Game{Kind: KindNative, ID: id, Name: name}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

// NewShortcutGame returns a validated non-Steam shortcut game. id is the
// id Steam launches the shortcut with, altID is the shortcut's own app id.
func NewShortcutGame(id, name, altID, processName string) (Game, error) {
	g := Game{Kind: KindShortcut, ID: id, Name: name, AltID: altID, ProcessName: processName}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

// Validate checks the identity fields. A shortcut must have both an alt id
// and a process name, a native game must have neither.
func (g Game) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidGame)
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: missing name for id %s", ErrInvalidGame, g.ID)
	}
	if (g.AltID == "") != (g.ProcessName == "") {
		return fmt.Errorf("%w: alt id and process name must be set together (id %s)", ErrInvalidGame, g.ID)
	}
	switch g.Kind {
	case KindNative:
		if g.AltID != "" {
			return fmt.Errorf("%w: steam game %s has shortcut fields", ErrInvalidGame, g.ID)
		}
	case KindShortcut:
		if g.AltID == "" {
			return fmt.Errorf("%w: non-steam game %s has no alt id", ErrInvalidGame, g.ID)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidGame, int(g.Kind))
	}
	return nil
}

// Equal reports whether both values refer to the same game: primary ids
// match, or both have the same alt id.
func (g Game) Equal(o Game) bool {
	return g.ID == o.ID || (g.AltID != "" && g.AltID == o.AltID)
}

// IsShortcut reports whether the game is a non-Steam shortcut.
func (g Game) IsShortcut() bool {
	return g.Kind == KindShortcut
}

// ArtID is the id Steam files the game's artwork under.
func (g Game) ArtID() string {
	if g.AltID != "" {
		return g.AltID
	}
	return g.ID
}

// LauncherArgs are the launch command flags selecting this game.
func (g Game) LauncherArgs() []string {
	args := []string{"-g=" + g.ID}
	if g.ProcessName != "" {
		args = append(args, "-p="+g.ProcessName)
	}
	return args
}

// SanitizedName is the game name made safe for use as a file name.
func (g Game) SanitizedName() string {
	return unsafeNameRe.ReplaceAllString(g.Name, "_")
}

func (g Game) String() string {
	if g.ProcessName != "" {
		return fmt.Sprintf("%s (ID=%s, Process name = %s) *Non-Steam", g.Name, g.ID, g.ProcessName)
	}
	return fmt.Sprintf("%s (ID=%s)", g.Name, g.ID)
}
