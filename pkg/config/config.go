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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "ZAPAROO_STREAM_CFG"
	HomeEnv       = "ZAPAROO_STREAM_HOME"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Steam        Steam    `toml:"steam"`
	Sunshine     Sunshine `toml:"sunshine"`
	Paths        Paths    `toml:"paths,omitempty"`
	Session      Session  `toml:"session"`
	Teardown     Teardown `toml:"teardown"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

type Steam struct {
	// InstallDir overrides the detected Steam install directory.
	InstallDir string `toml:"install_dir,omitempty"`
	// User pins which logged in account's userdata is used.
	User string `toml:"user,omitempty"`
}

type Sunshine struct {
	AppsPath      string `toml:"apps_path,omitempty"`
	PathEnv       string `toml:"path_env"`
	ElevatedHooks bool   `toml:"elevated_hooks"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Sunshine: Sunshine{
		PathEnv:       DefaultSunshinePathEnv,
		ElevatedHooks: true,
	},
	Session: Session{
		StartupTimeoutMs:    DefaultStartupTimeout.Milliseconds(),
		LaunchTimeoutMs:     DefaultLaunchTimeout.Milliseconds(),
		PollIntervalMs:      DefaultPollInterval.Milliseconds(),
		HostSettleMs:        DefaultHostSettle.Milliseconds(),
		FrontEndSettleMs:    DefaultFrontEndSettle.Milliseconds(),
		PrelaunchStablePoll: DefaultPrelaunchStablePolls,
	},
	Teardown: Teardown{
		GraceMs:        DefaultTeardownGrace.Milliseconds(),
		WindowWaitMs:   DefaultWindowWait.Milliseconds(),
		CloseTimeoutMs: DefaultCloseTimeout.Milliseconds(),
		ClosePollMs:    DefaultClosePoll.Milliseconds(),
		ClosedPolls:    DefaultClosedPolls,
		KeepProcesses:  DefaultKeepProcesses,
	},
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	newVals.Teardown.KeepProcesses = nil
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if newVals.Teardown.KeepProcesses == nil {
		newVals.Teardown.KeepProcesses = c.defaults.Teardown.KeepProcesses
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

func (c *Instance) SteamInstallDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.InstallDir
}

func (c *Instance) SteamUser() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.User
}

func (c *Instance) SunshineAppsPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Sunshine.AppsPath != "" {
		return c.vals.Sunshine.AppsPath
	}
	return DefaultSunshineAppsPath
}

func (c *Instance) SetSunshineAppsPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Sunshine.AppsPath = path
}

func (c *Instance) SunshinePathEnv() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sunshine.PathEnv
}

func (c *Instance) SunshineElevatedHooks() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sunshine.ElevatedHooks
}
