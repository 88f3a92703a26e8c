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

package settingssync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Signature
		width   int
		height  int
		fps     int
		wantErr bool
	}{
		{name: "1080p60", width: 1920, height: 1080, fps: 60, want: "1920x1080x60"},
		{name: "steam_deck", width: 1280, height: 800, fps: 90, want: "1280x800x90"},
		{name: "zero_width", width: 0, height: 800, fps: 90, wantErr: true},
		{name: "negative_fps", width: 1280, height: 800, fps: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ClientSignature(tt.width, tt.height, tt.fps)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSignature)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientSignature_Distinct(t *testing.T) {
	t.Parallel()

	a, err := ClientSignature(1, 23, 4)
	require.NoError(t, err)
	b, err := ClientSignature(12, 3, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestSignatureFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("all_set", func(t *testing.T) {
		t.Parallel()
		sig, err := SignatureFromEnv(envLookup(map[string]string{
			EnvClientWidth:  "2560",
			EnvClientHeight: "1440",
			EnvClientFPS:    "120",
		}))
		require.NoError(t, err)
		assert.Equal(t, Signature("2560x1440x120"), sig)
	})

	t.Run("missing_fps", func(t *testing.T) {
		t.Parallel()
		_, err := SignatureFromEnv(envLookup(map[string]string{
			EnvClientWidth:  "2560",
			EnvClientHeight: "1440",
		}))
		require.ErrorIs(t, err, ErrInvalidSignature)
		assert.Contains(t, err.Error(), EnvClientFPS)
	})

	t.Run("not_a_number", func(t *testing.T) {
		t.Parallel()
		_, err := SignatureFromEnv(envLookup(map[string]string{
			EnvClientWidth:  "wide",
			EnvClientHeight: "1440",
			EnvClientFPS:    "60",
		}))
		require.ErrorIs(t, err, ErrInvalidSignature)
	})
}
