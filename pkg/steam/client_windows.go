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
	"context"
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// RunningAppID returns the app id Steam reports as running, or "" when
// no game is running.
func (*Client) RunningAppID(context.Context) (string, error) {
	id, ok := readInteger(registry.CURRENT_USER, steamRegistryPath, "RunningAppID")
	if !ok || id == 0 {
		return "", nil
	}
	return strconv.FormatUint(id, 10), nil
}

// PID returns the process id of the Steam client, or 0 when it isn't running.
func (*Client) PID(context.Context) (int32, error) {
	pid, ok := readInteger(registry.CURRENT_USER, activeProcessPath, "pid")
	if !ok {
		return 0, nil
	}
	return int32(pid), nil //nolint:gosec // pids fit in a DWORD
}
