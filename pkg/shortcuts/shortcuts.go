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


// Package shortcuts writes per-game launch shortcuts, either as batch
// files or as Windows shell links.
package shortcuts

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrUnsupported = errors.New("shell links are not supported on this platform")

// LaunchCommand is the subcommand every shortcut runs.
const LaunchCommand = "launch"

// BatchFileName is the file a game's batch shortcut is written to.
func BatchFileName(g library.Game) string {
	return g.SanitizedName() + ".bat"
}

// LinkFileName is the file a game's shell link is written to.
func LinkFileName(g library.Game) string {
	return g.SanitizedName() + ".lnk"
}

func launchArgs(g library.Game) []string {
	return append([]string{LaunchCommand}, g.LauncherArgs()...)
}

// WriteBatch writes one batch file per game into dir and returns the
// written paths. Existing files are overwritten.
func WriteBatch(fs afero.Fs, dir, exe string, games []library.Game) ([]string, error) {
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create shortcuts directory: %w", err)
	}

	written := make([]string, 0, len(games))
	for _, g := range games {
		path := filepath.Join(dir, BatchFileName(g))
		line := helpers.CommandLine(exe, launchArgs(g)...) + "\r\n"
		if err := afero.WriteFile(fs, path, []byte(line), 0o644); err != nil {
			return written, fmt.Errorf("failed to write shortcut for %s: %w", g.Name, err)
		}
		log.Debug().Str("path", path).Str("game", g.ID).Msg("wrote batch shortcut")
		written = append(written, path)
	}

	return written, nil
}
