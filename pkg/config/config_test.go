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

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tempDir, CfgFile)) //nolint:gosec // test file path is controlled
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, fmt.Sprintf("config_schema = %d", SchemaVersion))
	assert.Contains(t, content, "startup_timeout_ms = 15000")
	assert.Contains(t, content, "steamwebhelper.exe")
	assert.NotContains(t, content, "[paths]", "empty path overrides are omitted")

	assert.Equal(t, DefaultStartupTimeout, cfg.StartupTimeout())
	assert.Equal(t, DefaultKeepProcesses, cfg.TeardownKeepProcesses())
}

func TestLoad_PreservesDefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, CfgFile)

	minimalConfig := fmt.Sprintf("config_schema = %d\n", SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(minimalConfig), 0o600))

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     BaseDefaults,
		defaults: BaseDefaults,
	}
	require.NoError(t, cfg.Load())

	assert.True(t, cfg.SunshineElevatedHooks(), "elevated hooks should retain default true")
	assert.Equal(t, DefaultSunshinePathEnv, cfg.SunshinePathEnv())
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval())
	assert.Equal(t, DefaultClosedPolls, cfg.TeardownClosedPolls())
	assert.Equal(t, DefaultKeepProcesses, cfg.TeardownKeepProcesses())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, CfgFile)

	configContent := fmt.Sprintf(`config_schema = %d
debug_logging = true

[steam]
install_dir = 'D:\Steam'

[sunshine]
elevated_hooks = false

[session]
launch_timeout_ms = 30000
poll_interval_ms = 100

[teardown]
keep_processes = ["steamwebhelper.exe"]
closed_polls = 4
`, SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o600))

	cfg := &Instance{
		cfgPath:  cfgPath,
		vals:     BaseDefaults,
		defaults: BaseDefaults,
	}
	require.NoError(t, cfg.Load())

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, `D:\Steam`, cfg.SteamInstallDir())
	assert.False(t, cfg.SunshineElevatedHooks())
	assert.Equal(t, 30*time.Second, cfg.LaunchTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, DefaultStartupTimeout, cfg.StartupTimeout(), "untouched values keep defaults")
	assert.Equal(t, []string{"steamwebhelper.exe"}, cfg.TeardownKeepProcesses())
	assert.Equal(t, 4, cfg.TeardownClosedPolls())

	assert.Equal(t, []string{"steamwebhelper.exe", "GameOverlayUI.exe"}, DefaultKeepProcesses,
		"loading must not write through to the shared defaults")
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

	cfg := &Instance{cfgPath: cfgPath, defaults: BaseDefaults}
	require.ErrorIs(t, cfg.Load(), ErrSchemaMismatch)
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("[session\n"), 0o600))

	cfg := &Instance{cfgPath: cfgPath, defaults: BaseDefaults}
	err := cfg.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoad_ReloadCycle(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)
	assert.False(t, cfg.DebugLogging())

	cfg.SetDebugLogging(true)
	cfg.SetSunshineAppsPath(`E:\sunshine\apps.json`)
	require.NoError(t, cfg.Save())
	require.NoError(t, cfg.Load())

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, `E:\sunshine\apps.json`, cfg.SunshineAppsPath())
	assert.Equal(t, DefaultLaunchTimeout, cfg.LaunchTimeout())
}

func TestDurations_NonPositiveFallBack(t *testing.T) {
	t.Parallel()

	cfg := &Instance{vals: Values{
		Session:  Session{StartupTimeoutMs: -5},
		Teardown: Teardown{ClosedPolls: 0},
	}}
	assert.Equal(t, DefaultStartupTimeout, cfg.StartupTimeout())
	assert.Equal(t, DefaultClosedPolls, cfg.TeardownClosedPolls())
	assert.Equal(t, DefaultPrelaunchStablePolls, cfg.PrelaunchStablePolls())
}

func TestPaths(t *testing.T) {
	t.Parallel()

	dataDir := filepath.Join("srv", "data")
	absArt := filepath.Join(t.TempDir(), "art")

	cfg := &Instance{vals: Values{Paths: Paths{
		Library:   "library.json",
		StaticArt: absArt,
	}}}

	assert.Equal(t, filepath.Join(dataDir, "library.json"), cfg.LibraryPath(dataDir), "relative override")
	assert.Equal(t, absArt, cfg.StaticArtPath(dataDir), "absolute override")
	assert.Equal(t, filepath.Join(dataDir, SettingsCacheDir), cfg.SettingsCachePath(dataDir), "default")
	assert.Equal(t, filepath.Join(dataDir, ShortcutsDir), cfg.ShortcutsPath(dataDir))
	assert.Equal(t, filepath.Join(dataDir, ArtCacheDir), cfg.ArtCachePath(dataDir))
}

func TestNewConfig_EnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom", "stream.toml")
	t.Setenv(CfgEnv, cfgPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, cfg.Path())

	_, err = os.Stat(cfgPath)
	require.NoError(t, err)
}
