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
	"fmt"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

// scanNative lists HKCU\Software\Valve\Steam\Apps, where the client keeps
// a subkey per app it knows about with an Installed flag.
func (*Scanner) scanNative() ([]library.Game, error) {
	root, err := registry.OpenKey(registry.CURRENT_USER, steamAppsRegistry, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, fmt.Errorf("open Steam apps registry key: %w", err)
	}
	defer func() { _ = root.Close() }()

	ids, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("list Steam apps: %w", err)
	}

	var games []library.Game
	for _, id := range ids {
		name := readString(registry.CURRENT_USER, steamAppsRegistry+`\`+id, "Name")
		installed, ok := readInteger(registry.CURRENT_USER, steamAppsRegistry+`\`+id, "Installed")
		if name == "" || !ok {
			log.Debug().Str("id", id).Msg("app has no name or installed flag, skipping")
			continue
		}
		if installed == 0 {
			log.Debug().Str("id", id).Str("name", name).Msg("app isn't installed, skipping")
			continue
		}
		g, err := library.NewNativeGame(id, name)
		if err != nil {
			log.Warn().Err(err).Str("id", id).Msg("skipping app")
			continue
		}
		games = append(games, g)
	}
	return games, nil
}
