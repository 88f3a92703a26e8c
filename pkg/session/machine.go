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
	"fmt"

	"github.com/ZaparooProject/zaparoo-stream/pkg/procwatch"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Machine runs sessions. It is not safe for concurrent use, one session
// runs per process.
type Machine struct {
	host    Host
	procs   procwatch.Processes
	windows procwatch.Windows
	clock   clockwork.Clock
	opts    Options
}

type settings struct {
	clock clockwork.Clock
}

// Option configures a Machine or Teardown.
type Option func(*settings)

// WithClock replaces the real clock, used by tests.
func WithClock(clock clockwork.Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

func applyOptions(options []Option) settings {
	s := settings{clock: clockwork.NewRealClock()}
	for _, o := range options {
		o(&s)
	}
	return s
}

func NewMachine(
	host Host,
	procs procwatch.Processes,
	windows procwatch.Windows,
	opts Options,
	options ...Option,
) *Machine {
	return &Machine{
		host:    host,
		procs:   procs,
		windows: windows,
		opts:    opts,
		clock:   applyOptions(options).clock,
	}
}

func (m *Machine) transition(s *Session, to State) {
	t := Transition{From: s.State, To: to, At: m.clock.Now()}
	s.Transitions = append(s.Transitions, t)
	s.State = to
	log.Info().
		Str("session", s.ID.String()).
		Str("gameId", s.GameID).
		Str("processName", s.ProcessName).
		Stringer("from", t.From).
		Stringer("to", t.To).
		Msg("session transition")
}

func (m *Machine) fail(s *Session, err error) error {
	log.Error().
		Err(err).
		Str("session", s.ID.String()).
		Str("gameId", s.GameID).
		Stringer("state", s.State).
		Msg("session failed")
	return err
}

// Run streams req to completion: the session ends in TornDown once the
// game quits, or once Big Picture closes when no game was requested. Big
// Picture is left open after a game quits, closing it is up to teardown.
func (m *Machine) Run(ctx context.Context, req Request) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s := newSession(req)
	log.Info().
		Str("session", s.ID.String()).
		Str("gameId", req.GameID).
		Str("processName", req.ProcessName).
		Msg("starting session")

	if err := m.bringUp(ctx, s, m.opts.FrontEndStablePolls); err != nil {
		return s, m.fail(s, err)
	}
	if err := sleep(ctx, m.clock, m.opts.FrontEndSettle); err != nil {
		return s, m.fail(s, err)
	}

	if req.GameID == "" {
		log.Info().Msg("waiting for Big Picture to close")
		_, err := pollUntil(ctx, m.clock, m.opts.PollInterval, 0, func() (bool, error) {
			visible, err := m.windows.Visible(m.opts.FrontEndWindow)
			return !visible, err
		})
		if err != nil {
			return s, m.fail(s, fmt.Errorf("failed waiting for Big Picture to close: %w", err))
		}
		m.transition(s, TornDown)
		return s, nil
	}

	if err := m.host.RunGame(ctx, req.GameID); err != nil {
		return s, m.fail(s, err)
	}
	running := func() (bool, error) { return m.isRunning(ctx, req) }
	started, err := pollUntil(ctx, m.clock, m.opts.PollInterval, m.opts.LaunchTimeout, running)
	if err != nil {
		return s, m.fail(s, fmt.Errorf("failed checking game state: %w", err))
	}
	if !started {
		return s, m.fail(s, fmt.Errorf("%w: waited %s", ErrLaunchTimeout, m.opts.LaunchTimeout))
	}
	m.transition(s, Running)

	m.transition(s, AwaitingQuit)
	_, err = pollUntil(ctx, m.clock, m.opts.PollInterval, 0, func() (bool, error) {
		ok, err := running()
		return !ok, err
	})
	if err != nil {
		return s, m.fail(s, fmt.Errorf("failed checking game state: %w", err))
	}
	m.transition(s, TornDown)
	return s, nil
}

// PrepareHost only brings the client up with Big Picture open, for use
// before a stream starts. The session is left in AwaitingLaunch.
func (m *Machine) PrepareHost(ctx context.Context) (*Session, error) {
	s := newSession(Request{})
	if err := m.bringUp(ctx, s, m.opts.PrelaunchStablePolls); err != nil {
		return s, m.fail(s, err)
	}
	return s, nil
}

// bringUp covers Idle through AwaitingLaunch. Big Picture counts as open
// after stablePolls consecutive visible polls.
func (m *Machine) bringUp(ctx context.Context, s *Session, stablePolls int) error {
	m.transition(s, AwaitingHostReady)
	if err := m.ensureHost(ctx); err != nil {
		return err
	}

	if err := m.host.OpenFrontEnd(ctx); err != nil {
		return err
	}
	visibleCount := 0
	open, err := pollUntil(ctx, m.clock, m.opts.PollInterval, m.opts.StartupTimeout, func() (bool, error) {
		visible, err := m.windows.Visible(m.opts.FrontEndWindow)
		if err != nil {
			return false, err
		}
		if visible {
			visibleCount++
		} else {
			visibleCount = 0
		}
		return visibleCount >= stablePolls, nil
	})
	if err != nil {
		return fmt.Errorf("failed waiting for Big Picture: %w", err)
	}
	if !open {
		return fmt.Errorf("%w: Big Picture didn't open within %s", ErrStartupTimeout, m.opts.StartupTimeout)
	}
	log.Info().Msg("opened Steam Big Picture mode")
	m.transition(s, AwaitingLaunch)
	return nil
}

// ensureHost starts the client if it isn't running and waits for its
// window, which only shows once startup has finished.
func (m *Machine) ensureHost(ctx context.Context) error {
	exe := m.host.ExeName()
	running, err := m.procs.Running(ctx, exe)
	if err != nil {
		return fmt.Errorf("failed to check for %s: %w", exe, err)
	}
	if running {
		return nil
	}

	log.Info().Str("exe", exe).Msg("launching Steam, since it was not already running")
	if err := m.host.Start(ctx); err != nil {
		return err
	}
	up, err := pollUntil(ctx, m.clock, m.opts.PollInterval, m.opts.StartupTimeout, func() (bool, error) {
		return m.windows.Visible(m.opts.HostWindow)
	})
	if err != nil {
		return fmt.Errorf("failed waiting for Steam window: %w", err)
	}
	if !up {
		return fmt.Errorf("%w: Steam window didn't show within %s", ErrStartupTimeout, m.opts.StartupTimeout)
	}
	log.Info().Msg("started Steam")
	return sleep(ctx, m.clock, m.opts.HostSettle)
}

// isRunning tracks the named process when there is one, otherwise the id
// Steam reports as running.
func (m *Machine) isRunning(ctx context.Context, req Request) (bool, error) {
	if req.ProcessName != "" {
		ok, err := m.procs.Running(ctx, req.ProcessName)
		if err != nil {
			return false, fmt.Errorf("failed to check for %s: %w", req.ProcessName, err)
		}
		return ok, nil
	}
	id, err := m.host.RunningAppID(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read running app id: %w", err)
	}
	return id == req.GameID, nil
}
