//go:build windows

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


package shortcuts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/rs/zerolog/log"
)

// normal window
const showNormal = 1

// WriteLinks creates one .lnk file per game in dir through WScript.Shell
// and returns the written paths.
func WriteLinks(dir, exe string, games []library.Game) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create shortcuts directory: %w", err)
	}

	// COM apartments are per thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		// S_FALSE: already initialized on this thread
		if !errors.As(err, &oleErr) || oleErr.Code() != 1 {
			return nil, fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return nil, fmt.Errorf("failed to create shell object: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("failed to query shell interface: %w", err)
	}
	defer shell.Release()

	written := make([]string, 0, len(games))
	for _, g := range games {
		path := filepath.Join(dir, LinkFileName(g))
		if err := writeLink(shell, path, exe, g); err != nil {
			return written, fmt.Errorf("failed to write shortcut for %s: %w", g.Name, err)
		}
		log.Debug().Str("path", path).Str("game", g.ID).Msg("wrote shell link")
		written = append(written, path)
	}

	return written, nil
}

func writeLink(shell *ole.IDispatch, path, exe string, g library.Game) error {
	raw, err := oleutil.CallMethod(shell, "CreateShortcut", path)
	if err != nil {
		return fmt.Errorf("CreateShortcut: %w", err)
	}
	link := raw.ToIDispatch()
	defer link.Release()

	props := []struct {
		value any
		name  string
	}{
		{name: "TargetPath", value: exe},
		{name: "Arguments", value: linkArguments(g)},
		{name: "WorkingDirectory", value: filepath.Dir(exe)},
		{name: "WindowStyle", value: showNormal},
	}
	for _, p := range props {
		if _, err := oleutil.PutProperty(link, p.name, p.value); err != nil {
			return fmt.Errorf("set %s: %w", p.name, err)
		}
	}

	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func linkArguments(g library.Game) string {
	args := launchArgs(g)
	for i, a := range args {
		args[i] = helpers.QuoteArg(a)
	}
	return strings.Join(args, " ")
}
