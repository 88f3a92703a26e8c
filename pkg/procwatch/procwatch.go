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

// Package procwatch answers the questions a streaming session asks the
// OS: is a process running, which processes did it spawn, is a window up.
// It can also kill process trees and close windows.
package procwatch

import (
	"context"
	"errors"
	"strings"
)

// ErrUnsupported is returned where the platform has no window API to
// drive.
var ErrUnsupported = errors.New("not supported on this platform")

type Process struct {
	Name string
	PID  int32
}

type Processes interface {
	// Running reports whether any process has the given executable name.
	Running(ctx context.Context, name string) (bool, error)
	// Children lists the direct children of pid.
	Children(ctx context.Context, pid int32) ([]Process, error)
	// TerminateTree terminates pid and every descendant, deepest first.
	TerminateTree(ctx context.Context, pid int32) error
}

// WindowSpec finds a top level window by class and title.
type WindowSpec struct {
	Class string
	Title string
}

func (w WindowSpec) String() string {
	return w.Class + `/"` + w.Title + `"`
}

type Windows interface {
	Visible(spec WindowSpec) (bool, error)
	Close(spec WindowSpec) error
}

// SameName compares executable names the way the host OS does.
func SameName(a, b string) bool {
	if caseInsensitiveNames {
		return strings.EqualFold(a, b)
	}
	return a == b
}
