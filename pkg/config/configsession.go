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

package config

import "time"

const (
	DefaultStartupTimeout       = 15 * time.Second
	DefaultLaunchTimeout        = 15 * time.Second
	DefaultPollInterval         = 250 * time.Millisecond
	DefaultHostSettle           = 500 * time.Millisecond
	DefaultFrontEndSettle       = time.Second
	DefaultPrelaunchStablePolls = 6

	DefaultTeardownGrace = time.Second
	DefaultWindowWait    = 10 * time.Second
	DefaultCloseTimeout  = 10 * time.Second
	DefaultClosePoll     = 500 * time.Millisecond
	DefaultClosedPolls   = 8

	DefaultSunshinePathEnv = `$(PATH);$(ProgramFiles(x86))\Steam`
)

// DefaultKeepProcesses are Steam helpers left alone when tearing down the
// client's process tree. Killing them makes Steam reopen its window.
var DefaultKeepProcesses = []string{"steamwebhelper.exe", "GameOverlayUI.exe"}

// Session timings are stored in milliseconds so the file stays readable.
type Session struct {
	StartupTimeoutMs    int64 `toml:"startup_timeout_ms"`
	LaunchTimeoutMs     int64 `toml:"launch_timeout_ms"`
	PollIntervalMs      int64 `toml:"poll_interval_ms"`
	HostSettleMs        int64 `toml:"host_settle_ms"`
	FrontEndSettleMs    int64 `toml:"front_end_settle_ms"`
	PrelaunchStablePoll int   `toml:"prelaunch_stable_polls"`
}

type Teardown struct {
	KeepProcesses  []string `toml:"keep_processes,multiline"`
	GraceMs        int64    `toml:"grace_ms"`
	WindowWaitMs   int64    `toml:"window_wait_ms"`
	CloseTimeoutMs int64    `toml:"close_timeout_ms"`
	ClosePollMs    int64    `toml:"close_poll_ms"`
	ClosedPolls    int      `toml:"closed_polls"`
}

func msOr(ms int64, def time.Duration) time.Duration {
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func intOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (c *Instance) StartupTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Session.StartupTimeoutMs, DefaultStartupTimeout)
}

func (c *Instance) LaunchTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Session.LaunchTimeoutMs, DefaultLaunchTimeout)
}

func (c *Instance) PollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Session.PollIntervalMs, DefaultPollInterval)
}

func (c *Instance) HostSettle() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Session.HostSettleMs, DefaultHostSettle)
}

func (c *Instance) FrontEndSettle() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Session.FrontEndSettleMs, DefaultFrontEndSettle)
}

func (c *Instance) PrelaunchStablePolls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return intOr(c.vals.Session.PrelaunchStablePoll, DefaultPrelaunchStablePolls)
}

func (c *Instance) TeardownGrace() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Teardown.GraceMs, DefaultTeardownGrace)
}

func (c *Instance) TeardownWindowWait() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Teardown.WindowWaitMs, DefaultWindowWait)
}

func (c *Instance) TeardownCloseTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Teardown.CloseTimeoutMs, DefaultCloseTimeout)
}

func (c *Instance) TeardownClosePoll() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return msOr(c.vals.Teardown.ClosePollMs, DefaultClosePoll)
}

func (c *Instance) TeardownClosedPolls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return intOr(c.vals.Teardown.ClosedPolls, DefaultClosedPolls)
}

func (c *Instance) TeardownKeepProcesses() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.vals.Teardown.KeepProcesses))
	copy(out, c.vals.Teardown.KeepProcesses)
	return out
}
