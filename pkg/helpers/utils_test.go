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

package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/settings.ini", []byte("quality=high"), 0o640))
	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, fs.Chtimes("/src/settings.ini", modTime, modTime))
	require.NoError(t, fs.MkdirAll("/dst", 0o750))

	require.NoError(t, CopyFile(fs, "/src/settings.ini", "/dst/settings.ini"))

	data, err := afero.ReadFile(fs, "/dst/settings.ini")
	require.NoError(t, err)
	assert.Equal(t, "quality=high", string(data))

	info, err := fs.Stat("/dst/settings.ini")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	assert.True(t, modTime.Equal(info.ModTime()))
}

func TestCopyFile_Truncates(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a", []byte("short"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/b", []byte("a much longer file"), 0o600))

	require.NoError(t, CopyFile(fs, "/a", "/b"))

	data, err := afero.ReadFile(fs, "/b")
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()

	err := CopyFile(afero.NewMemMapFs(), "/missing", "/dst")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open source file")
}

func TestIsFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dir/file", []byte("x"), 0o600))

	ok, err := IsFile(fs, "/dir/file")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsFile(fs, "/dir")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	ok, err = IsFile(fs, filepath.Join("/dir", "nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommandLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		exe  string
		args []string
		want string
	}{
		{name: "plain", exe: `C:\zs.exe`, args: []string{"launch", "-g=440"}, want: `C:\zs.exe launch -g=440`},
		{
			name: "spaces",
			exe:  `C:\Program Files\zs.exe`,
			args: []string{"-p=My Game.exe"},
			want: `"C:\Program Files\zs.exe" "-p=My Game.exe"`,
		},
		{name: "empty_arg", exe: "zs", args: []string{""}, want: `zs ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CommandLine(tt.exe, tt.args...))
		})
	}
}
