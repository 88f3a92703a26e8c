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


// Package cli is the command line surface: the session hooks Sunshine
// runs, library management, config export and the interactive menu.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/zaparoo-stream/pkg/config"
	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/ZaparooProject/zaparoo-stream/pkg/procwatch"
	"github.com/ZaparooProject/zaparoo-stream/pkg/session"
	"github.com/ZaparooProject/zaparoo-stream/pkg/steam"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

var ErrMissingFlag = errors.New("missing required flag")

// Runtime is everything the commands need from the outside world.
type Runtime struct {
	Fs        afero.Fs
	Cfg       *config.Instance
	In        io.Reader
	Out       io.Writer
	LookupEnv func(string) (string, bool)
	Cmd       command.Executor
	Procs     procwatch.Processes
	Windows   procwatch.Windows
	Clock     clockwork.Clock

	// ResolveSteam locates the Steam installation.
	ResolveSteam func(cfg *config.Instance) (steam.SystemContext, error)
	// NewHost returns the client a session drives.
	NewHost func(sys steam.SystemContext) session.Host
	// Scan lists the installed games.
	Scan func(sys steam.SystemContext) ([]library.Game, error)

	Dirs helpers.Dirs
	// Exe is this binary, the target of generated hooks and shortcuts.
	Exe string
	// Logging sends logs to the per-command rotated file.
	Logging bool

	prompt *Prompter
}

// NewRuntime returns a Runtime backed by the real system.
func NewRuntime(dirs helpers.Dirs) *Runtime {
	fs := afero.NewOsFs()
	cmd := &command.RealExecutor{}

	exe, err := os.Executable()
	if err != nil {
		exe = config.AppName
	}

	return &Runtime{
		Fs:        fs,
		In:        os.Stdin,
		Out:       os.Stdout,
		LookupEnv: os.LookupEnv,
		Cmd:       cmd,
		Procs:     procwatch.NewSystem(),
		Windows:   procwatch.NewWindows(),
		Clock:     clockwork.NewRealClock(),
		ResolveSteam: func(cfg *config.Instance) (steam.SystemContext, error) {
			//nolint:wrapcheck // wrapped by caller
			return steam.ResolveSystemContext(fs, steam.Overrides{
				InstallDir: cfg.SteamInstallDir(),
				User:       cfg.SteamUser(),
			})
		},
		NewHost: func(sys steam.SystemContext) session.Host {
			return steam.NewClient(sys, steam.WithExecutor(cmd))
		},
		Scan: func(sys steam.SystemContext) ([]library.Game, error) {
			//nolint:wrapcheck // wrapped by caller
			return steam.NewScanner(fs, sys).Scan()
		},
		Dirs:    dirs,
		Exe:     exe,
		Logging: true,
	}
}

func (rt *Runtime) config() (*config.Instance, error) {
	if rt.Cfg != nil {
		return rt.Cfg, nil
	}
	cfg, err := config.NewConfig(rt.Dirs.Config, config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	rt.Cfg = cfg
	return cfg, nil
}

func (rt *Runtime) steam() (steam.SystemContext, error) {
	sys, err := rt.ResolveSteam(rt.Cfg)
	if err != nil {
		return steam.SystemContext{}, fmt.Errorf("failed to locate Steam: %w", err)
	}
	return sys, nil
}

func (rt *Runtime) host() (session.Host, error) {
	sys, err := rt.steam()
	if err != nil {
		return nil, err
	}
	return rt.NewHost(sys), nil
}

func (rt *Runtime) openStore() (*library.Store, error) {
	store, err := library.Open(rt.Fs, rt.Cfg.LibraryPath(rt.Dirs.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return store, nil
}

// prompter is shared by every question of a run, so buffered input isn't
// lost between them.
func (rt *Runtime) prompter() *Prompter {
	if rt.prompt == nil {
		rt.prompt = NewPrompter(rt.In, rt.Out)
	}
	return rt.prompt
}

func (rt *Runtime) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(rt.Out, format, a...)
}

func (rt *Runtime) println(a ...any) {
	_, _ = fmt.Fprintln(rt.Out, a...)
}

func withClock(rt *Runtime) session.Option {
	return session.WithClock(rt.Clock)
}
