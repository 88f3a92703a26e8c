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

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_RunningSelf(t *testing.T) {
	t.Parallel()

	exe, err := os.Executable()
	require.NoError(t, err)

	sys := NewSystem()
	running, err := sys.Running(context.Background(), filepath.Base(exe))
	require.NoError(t, err)
	assert.True(t, running)

	running, err = sys.Running(context.Background(), "definitely-not-running-zs")
	require.NoError(t, err)
	assert.False(t, running)
}

func TestSystem_ChildrenAndTerminateTree(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	// sh stays the parent of sleep because of the trailing wait
	cmd := exec.Command("sh", "-c", "sleep 30 & wait")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() { _ = cmd.Process.Kill() })

	sys := NewSystem()
	pid := int32(cmd.Process.Pid) //nolint:gosec // test pid

	var children []Process
	require.Eventually(t, func() bool {
		var err error
		children, err = sys.Children(ctx, pid)
		return err == nil && len(children) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "sleep", children[0].Name)
	childPid := children[0].PID

	require.NoError(t, sys.TerminateTree(ctx, pid))

	// sh may exit cleanly once sleep is gone, so only reap it here
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("process tree was not terminated")
	}

	require.Eventually(t, func() bool {
		return !alive(ctx, pid) && !alive(ctx, childPid)
	}, 5*time.Second, 20*time.Millisecond)
}

// alive treats an unreaped zombie as gone, since the orphaned child is
// reaped by whatever init the test runs under.
func alive(ctx context.Context, pid int32) bool {
	exists, err := process.PidExistsWithContext(ctx, pid)
	if err != nil || !exists {
		return false
	}
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return false
	}
	status, err := p.StatusWithContext(ctx)
	if err != nil {
		return false
	}
	for _, st := range status {
		if st == process.Zombie {
			return false
		}
	}
	return true
}

func TestSystem_ChildrenNone(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	children, err := NewSystem().Children(context.Background(), int32(cmd.Process.Pid)) //nolint:gosec // test pid
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestDesktopWindows_Unsupported(t *testing.T) {
	t.Parallel()

	w := NewWindows()
	visible, err := w.Visible(WindowSpec{Class: "SDL_app", Title: "Steam"})
	require.NoError(t, err)
	assert.False(t, visible)
	require.ErrorIs(t, w.Close(WindowSpec{}), ErrUnsupported)
}

func TestSameName(t *testing.T) {
	t.Parallel()

	assert.True(t, SameName("steam", "steam"))
	assert.False(t, SameName("steam", "Steam"))
}
