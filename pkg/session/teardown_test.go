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

package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-stream/pkg/procwatch"
	"github.com/ZaparooProject/zaparoo-stream/pkg/session"
	"github.com/ZaparooProject/zaparoo-stream/pkg/testing/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type teardownEnv struct {
	host     *mocks.MockHost
	procs    *mocks.MockProcesses
	windows  *mocks.MockWindows
	clock    *clockwork.FakeClock
	teardown *session.Teardown
}

func newTeardownEnv() *teardownEnv {
	env := &teardownEnv{
		host:    &mocks.MockHost{},
		procs:   &mocks.MockProcesses{},
		windows: &mocks.MockWindows{},
		clock:   clockwork.NewFakeClock(),
	}
	env.teardown = session.NewTeardown(env.host, env.procs, env.windows,
		session.DefaultTeardownOptions(), session.WithClock(env.clock))
	return env
}

func (env *teardownEnv) run(ctx context.Context) error {
	return runDriven(env.clock, func() error {
		return env.teardown.Run(ctx)
	})
}

func TestTeardown_Run(t *testing.T) {
	t.Parallel()

	env := newTeardownEnv()
	env.host.On("PID", mock.Anything).Return(int32(100), nil).Once()
	env.procs.On("Children", mock.Anything, int32(100)).Return([]procwatch.Process{
		{Name: "steamwebhelper.exe", PID: 101},
		{Name: "game.exe", PID: 102},
		{Name: "GameOverlayUI.exe", PID: 103},
	}, nil).Once()
	env.procs.On("TerminateTree", mock.Anything, int32(102)).Return(nil).Once()
	env.host.On("CloseFrontEnd", mock.Anything).Return(nil).Once()
	// window shows up on the second poll, then closes after two attempts
	env.windows.On("Visible", session.HostWindow).Return(false, nil).Once()
	env.windows.On("Visible", session.HostWindow).Return(true, nil).Times(3)
	env.windows.On("Visible", session.HostWindow).Return(false, nil)
	env.windows.On("Close", session.HostWindow).Return(nil)

	start := env.clock.Now()
	require.NoError(t, env.run(context.Background()))

	env.host.AssertExpectations(t)
	env.procs.AssertExpectations(t)
	env.procs.AssertNotCalled(t, "TerminateTree", mock.Anything, int32(101))
	env.procs.AssertNotCalled(t, "TerminateTree", mock.Anything, int32(103))
	env.windows.AssertNumberOfCalls(t, "Close", 10)
	env.windows.AssertNumberOfCalls(t, "Visible", 12)
	assert.Less(t, env.clock.Since(start), 10*session.DefaultTeardownOptions().Grace)
}

func TestTeardown_Run_GivesUpOnStubbornWindow(t *testing.T) {
	t.Parallel()

	env := newTeardownEnv()
	env.host.On("PID", mock.Anything).Return(int32(100), nil)
	env.procs.On("Children", mock.Anything, int32(100)).Return([]procwatch.Process(nil), nil)
	env.host.On("CloseFrontEnd", mock.Anything).Return(nil)
	env.windows.On("Visible", session.HostWindow).Return(true, nil)
	env.windows.On("Close", session.HostWindow).Return(nil)

	require.NoError(t, env.run(context.Background()))

	// one close every 500ms for the whole 10s
	env.windows.AssertNumberOfCalls(t, "Close", 20)
}

func TestTeardown_Run_SteamNotRunning(t *testing.T) {
	t.Parallel()

	env := newTeardownEnv()
	env.host.On("PID", mock.Anything).Return(int32(0), nil)
	env.host.On("CloseFrontEnd", mock.Anything).Return(errors.New("steam not running"))
	env.windows.On("Visible", session.HostWindow).Return(false, nil)
	env.windows.On("Close", session.HostWindow).Return(procwatch.ErrUnsupported)

	require.NoError(t, env.run(context.Background()))

	env.procs.AssertNotCalled(t, "Children", mock.Anything, mock.Anything)
	env.host.AssertCalled(t, "CloseFrontEnd", mock.Anything)
	env.windows.AssertNumberOfCalls(t, "Close", 1)
}

func TestTeardown_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := newTeardownEnv()

	// nothing advances the clock, the grace period can only end by cancel
	err := env.teardown.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	env.host.AssertNotCalled(t, "PID", mock.Anything)
}

func TestDetach(t *testing.T) {
	t.Parallel()

	t.Run("spawns_background_teardown", func(t *testing.T) {
		t.Parallel()

		cmd := &mocks.MockCommandExecutor{}
		cmd.On("StartWithOptions", mock.Anything,
			command.StartOptions{Detached: true, HideWindow: true},
			"/opt/zaparoo-stream", []string{"teardown"}).Return(nil).Once()

		require.NoError(t, session.Detach(context.Background(), cmd, "/opt/zaparoo-stream", "teardown"))
		cmd.AssertExpectations(t)
	})

	t.Run("wraps_spawn_error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		cmd := &mocks.MockCommandExecutor{}
		cmd.On("StartWithOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom)

		err := session.Detach(context.Background(), cmd, "/opt/zaparoo-stream", "teardown")
		require.ErrorIs(t, err, boom)
	})
}
