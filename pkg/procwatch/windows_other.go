//go:build !windows

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

package procwatch

// DesktopWindows has no window system to talk to outside Windows. Nothing
// is ever visible, so session waits end in their timeout errors.
type DesktopWindows struct{}

func NewWindows() *DesktopWindows {
	return &DesktopWindows{}
}

func (*DesktopWindows) Visible(WindowSpec) (bool, error) {
	return false, nil
}

func (*DesktopWindows) Close(WindowSpec) error {
	return ErrUnsupported
}
