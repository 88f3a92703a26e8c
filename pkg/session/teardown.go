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
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-stream/pkg/procwatch"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Teardown stops whatever a stream left running on the host: the game,
// Big Picture and the Steam window which reappears when Big Picture closes.
type Teardown struct {
	host    Host
	procs   procwatch.Processes
	windows procwatch.Windows
	clock   clockwork.Clock
	opts    TeardownOptions
}

func NewTeardown(
	host Host,
	procs procwatch.Processes,
	windows procwatch.Windows,
	opts TeardownOptions,
	options ...Option,
) *Teardown {
	return &Teardown{
		host:    host,
		procs:   procs,
		windows: windows,
		clock:   applyOptions(options).clock,
		opts:    opts,
	}
}

// Run performs the teardown. Failing steps are logged and skipped, only a
// cancelled context stops it early.
func (t *Teardown) Run(ctx context.Context) error {
	log.Info().Msg("teardown running in normal mode")

	// give the stream time to end before Big Picture goes away, and the
	// game a chance to exit on its own
	if err := sleep(ctx, t.clock, t.opts.Grace); err != nil {
		return err
	}

	t.killGames(ctx)

	log.Info().Msg("closing Steam Big Picture mode")
	if err := t.host.CloseFrontEnd(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to close Big Picture")
	}

	log.Info().Msg("waiting for regular Steam window to open")
	_, err := pollUntil(ctx, t.clock, t.opts.PollInterval, t.opts.WindowWait, func() (bool, error) {
		return t.hostWindowVisible(), nil
	})
	if err != nil {
		return err
	}

	if err := t.closeHostWindow(ctx); err != nil {
		return err
	}
	log.Info().Msg("teardown finished")
	return nil
}

// killGames terminates every process tree under the Steam client except
// its own helpers. There's no other way to find the game without knowing
// its process name.
func (t *Teardown) killGames(ctx context.Context) {
	pid, err := t.host.PID(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read Steam pid")
		return
	}
	if pid == 0 {
		log.Debug().Msg("Steam isn't running, nothing to terminate")
		return
	}

	children, err := t.procs.Children(ctx, pid)
	if err != nil {
		log.Warn().Err(err).Int32("pid", pid).Msg("failed to list Steam child processes")
		return
	}
	for _, child := range children {
		if t.keep(child.Name) {
			continue
		}
		log.Info().
			Int32("pid", child.PID).
			Str("name", child.Name).
			Msg("killing process and all of its children")
		if err := t.procs.TerminateTree(ctx, child.PID); err != nil {
			log.Warn().Err(err).Int32("pid", child.PID).Msg("failed to terminate process tree")
		}
	}
}

func (t *Teardown) keep(name string) bool {
	for _, k := range t.opts.KeepProcesses {
		if procwatch.SameName(k, name) {
			return true
		}
	}
	return false
}

func (t *Teardown) hostWindowVisible() bool {
	visible, err := t.windows.Visible(t.opts.HostWindow)
	if err != nil {
		log.Debug().Err(err).Msg("failed to check Steam window")
		return false
	}
	return visible
}

// closeHostWindow keeps sending close requests until the window has been
// seen closed on ClosedPolls consecutive polls, or CloseTimeout passes.
// Steam reopens the window a few times while Big Picture shuts down.
func (t *Teardown) closeHostWindow(ctx context.Context) error {
	log.Info().Msg("attempting to close regular Steam window")
	start := t.clock.Now()
	closed := 0
	for closed < t.opts.ClosedPolls && t.clock.Since(start) < t.opts.CloseTimeout {
		if t.hostWindowVisible() {
			closed = 0
		} else {
			closed++
		}
		err := t.windows.Close(t.opts.HostWindow)
		if errors.Is(err, procwatch.ErrUnsupported) {
			log.Debug().Msg("window close unsupported, skipping")
			return nil
		} else if err != nil {
			log.Debug().Err(err).Msg("failed to send close to Steam window")
		}
		if err := sleep(ctx, t.clock, t.opts.ClosePoll); err != nil {
			return err
		}
	}
	if closed < t.opts.ClosedPolls {
		log.Warn().Int("closedPolls", closed).Msg("gave up closing Steam window")
		return nil
	}
	log.Info().Msg("closed regular Steam window")
	return nil
}

// Detach re-runs exe with args as a background process and returns
// without waiting, so Sunshine isn't blocked on teardown.
func Detach(ctx context.Context, cmd command.Executor, exe string, args ...string) error {
	log.Info().Str("exe", exe).Strs("args", args).Msg("teardown running in detached mode")
	opts := command.StartOptions{Detached: true, HideWindow: true}
	if err := cmd.StartWithOptions(ctx, opts, exe, args...); err != nil {
		return fmt.Errorf("failed to spawn background teardown: %w", err)
	}
	log.Info().Msg("spawned background process to do actual teardown")
	return nil
}
