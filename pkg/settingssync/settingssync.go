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

// Package settingssync keeps one copy of a game's settings file per
// streaming client. Load swaps the client's copy in before a session and
// save stores it and puts the original file back afterwards.
package settingssync

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const BackupSuffix = ".bak"

var (
	ErrMissingSettingsFile      = errors.New("settings file not found")
	ErrBackupVerificationFailed = errors.New("settings backup missing after copy")
	ErrInvalidGameID            = errors.New("invalid game id")
)

type Engine struct {
	fs       afero.Fs
	cacheDir string
}

func NewEngine(fs afero.Fs, cacheDir string) *Engine {
	return &Engine{fs: fs, cacheDir: cacheDir}
}

// BackupPath is the sibling file the live settings are parked in while a
// client's copy is swapped in.
func BackupPath(settingsPath string) string {
	return settingsPath + BackupSuffix
}

// CachePath is where the copy for gameID and sig is kept.
func (e *Engine) CachePath(gameID string, sig Signature, settingsPath string) string {
	return filepath.Join(e.cacheDir, gameID, string(sig), filepath.Base(settingsPath))
}

func checkKey(gameID string, sig Signature) error {
	if gameID == "" || gameID == "." || gameID == ".." || strings.ContainsAny(gameID, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidGameID, gameID)
	}
	if sig == "" || strings.ContainsAny(string(sig), `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidSignature, sig)
	}
	return nil
}

func (e *Engine) requireSettings(settingsPath string) error {
	ok, err := helpers.IsFile(e.fs, settingsPath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingSettingsFile, settingsPath)
	}
	return nil
}

// Save stores the live settings under the client's key, then puts the
// backup taken by Load back in place and removes it.
func (e *Engine) Save(gameID string, sig Signature, settingsPath string) error {
	if err := checkKey(gameID, sig); err != nil {
		return err
	}
	if err := e.requireSettings(settingsPath); err != nil {
		return err
	}

	savePath := e.CachePath(gameID, sig, settingsPath)
	log.Info().
		Str("game", gameID).
		Str("client", string(sig)).
		Str("path", savePath).
		Msg("saving game settings")

	if err := e.fs.MkdirAll(filepath.Dir(savePath), 0o750); err != nil {
		return fmt.Errorf("failed to create settings cache directory: %w", err)
	}
	if err := helpers.CopyFile(e.fs, settingsPath, savePath); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if err := e.restoreBackup(settingsPath); err != nil {
		return err
	}
	return e.deleteBackup(settingsPath)
}

// Load backs up the live settings and replaces them with the client's
// saved copy. Without a saved copy the live file is left as is.
func (e *Engine) Load(gameID string, sig Signature, settingsPath string) error {
	if err := checkKey(gameID, sig); err != nil {
		return err
	}
	if err := e.requireSettings(settingsPath); err != nil {
		return err
	}

	if err := e.backup(settingsPath); err != nil {
		return err
	}

	savePath := e.CachePath(gameID, sig, settingsPath)
	ok, err := helpers.IsFile(e.fs, savePath)
	if err != nil {
		return err
	}
	if !ok {
		log.Info().
			Str("game", gameID).
			Str("client", string(sig)).
			Msg("no saved settings for client, nothing to load")
		return nil
	}

	if err := helpers.CopyFile(e.fs, savePath, settingsPath); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	log.Info().
		Str("game", gameID).
		Str("client", string(sig)).
		Str("path", savePath).
		Msg("loaded game settings")
	return nil
}

func (e *Engine) backup(settingsPath string) error {
	backupPath := BackupPath(settingsPath)
	log.Debug().Str("path", backupPath).Msg("backing up settings file")

	if err := helpers.CopyFile(e.fs, settingsPath, backupPath); err != nil {
		return fmt.Errorf("failed to back up settings: %w", err)
	}
	ok, err := helpers.IsFile(e.fs, backupPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackupVerificationFailed, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrBackupVerificationFailed, backupPath)
	}
	return nil
}

func (e *Engine) restoreBackup(settingsPath string) error {
	backupPath := BackupPath(settingsPath)
	ok, err := helpers.IsFile(e.fs, backupPath)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("path", backupPath).Msg("no settings backup found, nothing to restore")
		return nil
	}
	if err := helpers.CopyFile(e.fs, backupPath, settingsPath); err != nil {
		return fmt.Errorf("failed to restore settings backup: %w", err)
	}
	log.Debug().Str("path", backupPath).Msg("restored settings backup")
	return nil
}

func (e *Engine) deleteBackup(settingsPath string) error {
	backupPath := BackupPath(settingsPath)
	ok, err := helpers.IsFile(e.fs, backupPath)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := e.fs.Remove(backupPath); err != nil {
		return fmt.Errorf("failed to delete settings backup: %w", err)
	}
	return nil
}
