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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ZaparooProject/zaparoo-stream/internal/vdfbinary"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrScanFailed = errors.New("steam library scan failed")

// Scanner lists the games currently known to Steam.
type Scanner struct {
	fs  afero.Fs
	sys SystemContext
}

func NewScanner(fs afero.Fs, sys SystemContext) *Scanner {
	return &Scanner{fs: fs, sys: sys}
}

// Scan returns installed Steam games followed by the active user's
// non-Steam shortcuts. Unreadable sources fail the whole scan so a partial
// result is never mistaken for removed games.
func (s *Scanner) Scan() ([]library.Game, error) {
	native, err := s.scanNative()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}
	shortcuts, err := s.ScanShortcuts()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}
	log.Info().
		Int("steam", len(native)).
		Int("nonSteam", len(shortcuts)).
		Msg("scanned Steam library")
	return append(native, shortcuts...), nil
}

// ScanShortcuts reads the active user's shortcuts.vdf. A user without the
// file simply has no shortcuts.
func (s *Scanner) ScanShortcuts() ([]library.Game, error) {
	path := s.sys.ShortcutsPath()
	if path == "" {
		return nil, ErrNoActiveUser
	}

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", path).Msg("no shortcuts.vdf for user")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading shortcuts.vdf: %w", err)
	}

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing shortcuts.vdf: %w", err)
	}

	games := make([]library.Game, 0, len(shortcuts))
	for _, sc := range shortcuts {
		g, err := library.NewShortcutGame(
			sc.RunGameID(),
			sc.AppName,
			strconv.FormatUint(uint64(sc.AppID), 10),
			sc.ProcessName(),
		)
		if err != nil {
			log.Warn().Err(err).Str("name", sc.AppName).Msg("skipping shortcut")
			continue
		}
		games = append(games, g)
	}
	return games, nil
}
