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
	"testing"

	testhelpers "github.com/ZaparooProject/zaparoo-stream/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcClient(t *testing.T, procs map[string]any) *Client {
	t.Helper()
	h := testhelpers.NewMemoryFS()
	require.NoError(t, h.CreateDirectoryStructure(map[string]any{"/proc": procs}))
	return NewClient(NewSystemContext("/steam", "steam", "42"), WithProcFS(h.Fs, "/proc"))
}

func TestClient_RunningAppID(t *testing.T) {
	t.Parallel()

	t.Run("reads_reaper_app_id", func(t *testing.T) {
		t.Parallel()

		c := newProcClient(t, map[string]any{
			"100": map[string]any{"comm": "steam\n", "cmdline": "/usr/bin/steam\x00"},
			"200": map[string]any{
				"comm": "reaper\n",
				"cmdline": "/home/deck/.local/share/Steam/ubuntu12_32/reaper\x00SteamLaunch\x00" +
					"AppId=348550\x00--\x00/games/BatmanAK.exe",
			},
			"self": map[string]any{"comm": "reaper\n"},
		})

		id, err := c.RunningAppID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "348550", id)
	})

	t.Run("ignores_reaper_without_steamlaunch", func(t *testing.T) {
		t.Parallel()

		c := newProcClient(t, map[string]any{
			"200": map[string]any{"comm": "reaper\n", "cmdline": "reaper\x00AppId=1\x00"},
		})

		id, err := c.RunningAppID(context.Background())
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		t.Parallel()

		c := newProcClient(t, map[string]any{
			"200": map[string]any{"comm": "reaper\n", "cmdline": "reaper\x00SteamLaunch\x00AppId=1\x00"},
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.RunningAppID(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_PID(t *testing.T) {
	t.Parallel()

	t.Run("finds_steam_process", func(t *testing.T) {
		t.Parallel()

		c := newProcClient(t, map[string]any{
			"100":  map[string]any{"comm": "bash\n"},
			"4242": map[string]any{"comm": "steam\n", "cmdline": "/usr/bin/steam\x00"},
		})

		pid, err := c.PID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(4242), pid)
	})

	t.Run("not_running", func(t *testing.T) {
		t.Parallel()

		c := newProcClient(t, map[string]any{"100": map[string]any{"comm": "bash\n"}})

		pid, err := c.PID(context.Background())
		require.NoError(t, err)
		assert.Zero(t, pid)
	})

	t.Run("missing_proc_dir", func(t *testing.T) {
		t.Parallel()

		c := NewClient(NewSystemContext("/steam", "steam", ""),
			WithProcFS(testhelpers.NewMemoryFS().Fs, "/proc"))

		_, err := c.PID(context.Background())
		require.Error(t, err)
	})
}
