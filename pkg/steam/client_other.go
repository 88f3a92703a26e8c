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

package steam

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// appIDRegex matches "AppId=XXXXX" in process command line.
var appIDRegex = regexp.MustCompile(`AppId=(\d+)`)

// procEntry is a numeric /proc directory with its comm and cmdline.
type procEntry struct {
	comm    string
	cmdline string
	pid     int32
}

func (c *Client) scanProc(ctx context.Context, visit func(procEntry) bool) error {
	entries, err := afero.ReadDir(c.procFS, c.procPath)
	if err != nil {
		return fmt.Errorf("read proc dir: %w", err)
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("proc scan: %w", err)
		}
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.ParseInt(entry.Name(), 10, 32)
		if err != nil {
			continue
		}
		dir := filepath.Join(c.procPath, entry.Name())
		comm, err := afero.ReadFile(c.procFS, filepath.Join(dir, "comm"))
		if err != nil {
			continue
		}
		cmdline, _ := afero.ReadFile(c.procFS, filepath.Join(dir, "cmdline"))
		e := procEntry{
			pid:     int32(pid),
			comm:    strings.TrimSpace(string(comm)),
			cmdline: string(cmdline),
		}
		if visit(e) {
			return nil
		}
	}
	return nil
}

// RunningAppID returns the app id of the game Steam's reaper process is
// supervising, or "" when no game is running.
func (c *Client) RunningAppID(ctx context.Context) (string, error) {
	id := ""
	err := c.scanProc(ctx, func(e procEntry) bool {
		if e.comm != "reaper" {
			return false
		}
		appID, ok := parseAppIDFromCmdline(e.cmdline)
		if !ok || !strings.Contains(e.cmdline, "SteamLaunch") {
			return false
		}
		id = appID
		return true
	})
	return id, err
}

// PID returns the process id of the Steam client, or 0 when it isn't running.
func (c *Client) PID(ctx context.Context) (int32, error) {
	name := c.ExeName()
	var pid int32
	err := c.scanProc(ctx, func(e procEntry) bool {
		if e.comm != name {
			return false
		}
		pid = e.pid
		return true
	})
	return pid, err
}

// parseAppIDFromCmdline extracts AppId=XXXXX from a process command line.
func parseAppIDFromCmdline(cmdline string) (string, bool) {
	cmdline = strings.ReplaceAll(cmdline, "\x00", " ")
	matches := appIDRegex.FindStringSubmatch(cmdline)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}
