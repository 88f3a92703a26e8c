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
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-stream/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Client issues commands to the Steam client and reads its runtime state.
type Client struct {
	cmd      command.Executor
	procFS   afero.Fs
	sys      SystemContext
	procPath string
}

// Option configures a Client.
type Option func(*Client)

// WithExecutor replaces the command executor, used by tests.
func WithExecutor(cmd command.Executor) Option {
	return func(c *Client) {
		c.cmd = cmd
	}
}

// WithProcFS reads process state from fs rooted at path instead of /proc.
// Only used on platforms without the Steam registry keys.
func WithProcFS(fs afero.Fs, path string) Option {
	return func(c *Client) {
		c.procFS = fs
		c.procPath = path
	}
}

// NewClient creates a Steam client for a resolved system context.
func NewClient(sys SystemContext, opts ...Option) *Client {
	c := &Client{
		sys:      sys,
		cmd:      &command.RealExecutor{},
		procFS:   afero.NewOsFs(),
		procPath: "/proc",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// System returns the context the client was created with.
func (c *Client) System() SystemContext {
	return c.sys
}

// ExeName is the process name of the Steam client.
func (c *Client) ExeName() string {
	return filepath.Base(c.sys.ExePath)
}

// Start launches the Steam client detached from this process.
func (c *Client) Start(ctx context.Context) error {
	log.Info().Str("exe", c.sys.ExePath).Msg("starting Steam")
	err := c.cmd.StartWithOptions(ctx, command.StartOptions{Detached: true}, c.sys.ExePath)
	if err != nil {
		return fmt.Errorf("failed to start Steam: %w", err)
	}
	return nil
}

// OpenFrontEnd asks Steam to open Big Picture mode.
func (c *Client) OpenFrontEnd(ctx context.Context) error {
	return c.open(ctx, OpenBigPictureURL)
}

// CloseFrontEnd asks Steam to close Big Picture mode.
func (c *Client) CloseFrontEnd(ctx context.Context) error {
	return c.open(ctx, CloseBigPictureURL)
}

// RunGame asks Steam to launch a game by its app id or shortcut id.
func (c *Client) RunGame(ctx context.Context, id string) error {
	url, err := RunGameURL(id)
	if err != nil {
		return err
	}
	return c.open(ctx, url)
}

// open hands a steam:// URL to the Steam executable, which forwards it to
// the running client and exits.
func (c *Client) open(ctx context.Context, url string) error {
	log.Debug().Str("exe", c.sys.ExePath).Str("url", url).Msg("sending Steam command")
	opts := command.StartOptions{HideWindow: true, Detached: true}
	if err := c.cmd.StartWithOptions(ctx, opts, c.sys.ExePath, url); err != nil {
		return fmt.Errorf("failed to send %s to Steam: %w", url, err)
	}
	return nil
}
