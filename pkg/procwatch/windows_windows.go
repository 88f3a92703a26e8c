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

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const wmClose = 0x0010

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW     = user32.NewProc("FindWindowW")
	procIsWindowVisible = user32.NewProc("IsWindowVisible")
	procPostMessageW    = user32.NewProc("PostMessageW")
)

// DesktopWindows drives top level windows through user32.
type DesktopWindows struct{}

func NewWindows() *DesktopWindows {
	return &DesktopWindows{}
}

func findWindow(spec WindowSpec) (uintptr, error) {
	classPtr, err := windows.UTF16PtrFromString(spec.Class)
	if err != nil {
		return 0, fmt.Errorf("invalid window class %q: %w", spec.Class, err)
	}
	titlePtr, err := windows.UTF16PtrFromString(spec.Title)
	if err != nil {
		return 0, fmt.Errorf("invalid window title %q: %w", spec.Title, err)
	}
	hwnd, _, _ := procFindWindowW.Call(
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
	)
	return hwnd, nil
}

func (*DesktopWindows) Visible(spec WindowSpec) (bool, error) {
	hwnd, err := findWindow(spec)
	if err != nil || hwnd == 0 {
		return false, err
	}
	visible, _, _ := procIsWindowVisible.Call(hwnd)
	return visible != 0, nil
}

// Close posts WM_CLOSE to the window. A missing window is not an error.
func (*DesktopWindows) Close(spec WindowSpec) error {
	hwnd, err := findWindow(spec)
	if err != nil || hwnd == 0 {
		return err
	}
	ok, _, callErr := procPostMessageW.Call(hwnd, wmClose, 0, 0)
	if ok == 0 {
		return fmt.Errorf("failed to close window %s: %w", spec, callErr)
	}
	return nil
}
