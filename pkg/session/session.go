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

// Package session runs a single streaming session against the Steam
// client: bring the client up, open Big Picture, launch a game and wait
// for it to quit. It also holds the teardown run after a stream ends.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStartupTimeout = errors.New("timed out waiting for Steam to start")
	ErrLaunchTimeout  = errors.New("timed out waiting for game to start")
	ErrInvalidRequest = errors.New("invalid session request")
)

type State int

const (
	Idle State = iota
	AwaitingHostReady
	AwaitingLaunch
	Running
	AwaitingQuit
	TornDown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingHostReady:
		return "awaiting host ready"
	case AwaitingLaunch:
		return "awaiting launch"
	case Running:
		return "running"
	case AwaitingQuit:
		return "awaiting quit"
	case TornDown:
		return "torn down"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Host is the streaming host client a session drives.
type Host interface {
	// ExeName is the client's process name.
	ExeName() string
	Start(ctx context.Context) error
	OpenFrontEnd(ctx context.Context) error
	CloseFrontEnd(ctx context.Context) error
	RunGame(ctx context.Context, id string) error
	// RunningAppID is the id the client reports as running, "" if none.
	RunningAppID(ctx context.Context) (string, error)
	// PID is the client's process id, 0 if it isn't running.
	PID(ctx context.Context) (int32, error)
}

// Request selects what a session launches. An empty GameID streams Big
// Picture itself until it's closed. ProcessName tracks games Steam can't
// report as running, such as non-Steam shortcuts.
type Request struct {
	GameID      string
	ProcessName string
}

func (r Request) Validate() error {
	if r.ProcessName != "" && r.GameID == "" {
		return fmt.Errorf("%w: a process name requires a game id", ErrInvalidRequest)
	}
	return nil
}

type Transition struct {
	At   time.Time
	From State
	To   State
}

// Session is the in-memory record of one run. It's never persisted, every
// transition is logged instead.
type Session struct {
	GameID      string
	ProcessName string
	Transitions []Transition
	State       State
	ID          uuid.UUID
}

func newSession(req Request) *Session {
	return &Session{
		ID:          uuid.New(),
		GameID:      req.GameID,
		ProcessName: req.ProcessName,
		State:       Idle,
	}
}
