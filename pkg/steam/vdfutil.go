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
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/spf13/afero"
)

// steamID64Base is the offset between a 64-bit SteamID and the 32-bit
// account id used for userdata directory names.
const steamID64Base = 76561197960265728

// normalizeVDFKeys recursively lowercases all keys in a map[string]any tree.
// Valve's VDF format is case-insensitive, but Go maps use exact string matching.
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

func parseTextVDF(fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := decodeTextVDF(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func decodeTextVDF(r io.Reader) (map[string]any, error) {
	m, err := vdf.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("vdf: %w", err)
	}
	return normalizeVDFKeys(m), nil
}

// MostRecentUser reads loginusers.vdf and returns the account id of the
// user flagged MostRecent. A file with a single user returns that user.
func MostRecentUser(fs afero.Fs, path string) (string, error) {
	m, err := parseTextVDF(fs, path)
	if err != nil {
		return "", err
	}
	return mostRecentUser(m)
}

func mostRecentUser(m map[string]any) (string, error) {
	users, ok := m["users"].(map[string]any)
	if !ok || len(users) == 0 {
		return "", ErrNoActiveUser
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	chosen := ""
	for _, id := range ids {
		u, ok := users[id].(map[string]any)
		if !ok {
			continue
		}
		if recent, _ := u["mostrecent"].(string); recent == "1" {
			chosen = id
			break
		}
	}
	if chosen == "" {
		if len(ids) != 1 {
			return "", ErrNoActiveUser
		}
		chosen = ids[0]
	}

	id64, err := strconv.ParseUint(chosen, 10, 64)
	if err != nil || id64 < steamID64Base {
		return "", fmt.Errorf("%w: bad steam id %q", ErrNoActiveUser, chosen)
	}
	return strconv.FormatUint(id64-steamID64Base, 10), nil
}
