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

package session

import (
	"time"

	"github.com/ZaparooProject/zaparoo-stream/pkg/config"
	"github.com/ZaparooProject/zaparoo-stream/pkg/procwatch"
)

var (
	// HostWindow is the regular Steam client window.
	HostWindow = procwatch.WindowSpec{Class: "SDL_app", Title: "Steam"}
	// FrontEndWindow is the Big Picture window.
	FrontEndWindow = procwatch.WindowSpec{Class: "SDL_app", Title: "Steam Big Picture Mode"}
)

// Options are the machine's timings and window lookups.
type Options struct {
	HostWindow     procwatch.WindowSpec
	FrontEndWindow procwatch.WindowSpec
	StartupTimeout time.Duration
	LaunchTimeout  time.Duration
	PollInterval   time.Duration
	HostSettle     time.Duration
	FrontEndSettle time.Duration
	// FrontEndStablePolls is how many consecutive visible polls count as
	// Big Picture being open for a launch.
	FrontEndStablePolls int
	// PrelaunchStablePolls is the same for PrepareHost. Big Picture
	// sometimes closes and reopens right after starting.
	PrelaunchStablePolls int
}

func DefaultOptions() Options {
	return Options{
		HostWindow:           HostWindow,
		FrontEndWindow:       FrontEndWindow,
		StartupTimeout:       config.DefaultStartupTimeout,
		LaunchTimeout:        config.DefaultLaunchTimeout,
		PollInterval:         config.DefaultPollInterval,
		HostSettle:           config.DefaultHostSettle,
		FrontEndSettle:       config.DefaultFrontEndSettle,
		FrontEndStablePolls:  1,
		PrelaunchStablePolls: config.DefaultPrelaunchStablePolls,
	}
}

func OptionsFromConfig(cfg *config.Instance) Options {
	opts := DefaultOptions()
	opts.StartupTimeout = cfg.StartupTimeout()
	opts.LaunchTimeout = cfg.LaunchTimeout()
	opts.PollInterval = cfg.PollInterval()
	opts.HostSettle = cfg.HostSettle()
	opts.FrontEndSettle = cfg.FrontEndSettle()
	opts.PrelaunchStablePolls = cfg.PrelaunchStablePolls()
	return opts
}

type TeardownOptions struct {
	HostWindow    procwatch.WindowSpec
	KeepProcesses []string
	Grace         time.Duration
	PollInterval  time.Duration
	WindowWait    time.Duration
	CloseTimeout  time.Duration
	ClosePoll     time.Duration
	ClosedPolls   int
}

func DefaultTeardownOptions() TeardownOptions {
	return TeardownOptions{
		HostWindow:    HostWindow,
		KeepProcesses: append([]string(nil), config.DefaultKeepProcesses...),
		Grace:         config.DefaultTeardownGrace,
		PollInterval:  config.DefaultPollInterval,
		WindowWait:    config.DefaultWindowWait,
		CloseTimeout:  config.DefaultCloseTimeout,
		ClosePoll:     config.DefaultClosePoll,
		ClosedPolls:   config.DefaultClosedPolls,
	}
}

func TeardownOptionsFromConfig(cfg *config.Instance) TeardownOptions {
	opts := DefaultTeardownOptions()
	opts.KeepProcesses = cfg.TeardownKeepProcesses()
	opts.Grace = cfg.TeardownGrace()
	opts.PollInterval = cfg.PollInterval()
	opts.WindowWait = cfg.TeardownWindowWait()
	opts.CloseTimeout = cfg.TeardownCloseTimeout()
	opts.ClosePoll = cfg.TeardownClosePoll()
	opts.ClosedPolls = cfg.TeardownClosedPolls()
	return opts
}
