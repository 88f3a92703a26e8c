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
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// System is the live process table, read through gopsutil.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (*System) Running(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}
	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			// exited between listing and lookup, or access denied
			continue
		}
		if SameName(pname, name) {
			return true, nil
		}
	}
	return false, nil
}

func (*System) Children(ctx context.Context, pid int32) ([]Process, error) {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to find process %d: %w", pid, err)
	}
	children, err := proc.ChildrenWithContext(ctx)
	if errors.Is(err, process.ErrorNoChildren) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list children of %d: %w", pid, err)
	}

	out := make([]Process, 0, len(children))
	for _, child := range children {
		name, err := child.NameWithContext(ctx)
		if err != nil {
			log.Debug().Err(err).Int32("pid", child.Pid).Msg("skipping child without name")
			continue
		}
		out = append(out, Process{PID: child.Pid, Name: name})
	}
	return out, nil
}

func (*System) TerminateTree(ctx context.Context, pid int32) error {
	procs := getProcessTree(ctx, pid)
	if len(procs) == 0 {
		return fmt.Errorf("failed to find process %d", pid)
	}
	terminateProcessTree(ctx, procs)
	return nil
}

// getProcessTree returns the process and all its descendants.
// Descendants are ordered before their parents for proper termination order.
func getProcessTree(ctx context.Context, pid int32) []*process.Process {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil
	}

	descendants := getAllDescendants(ctx, proc)
	result := make([]*process.Process, 0, len(descendants)+1)
	result = append(result, descendants...)
	result = append(result, proc)
	return result
}

// getAllDescendants recursively finds all descendant processes (depth-first).
func getAllDescendants(ctx context.Context, proc *process.Process) []*process.Process {
	children, err := proc.ChildrenWithContext(ctx)
	if err != nil || len(children) == 0 {
		return nil
	}
	descendants := make([]*process.Process, 0, len(children))
	for _, child := range children {
		descendants = append(descendants, getAllDescendants(ctx, child)...)
		descendants = append(descendants, child)
	}
	return descendants
}

func terminateProcessTree(ctx context.Context, procs []*process.Process) {
	for _, proc := range procs {
		name, _ := proc.NameWithContext(ctx)
		if err := proc.TerminateWithContext(ctx); err != nil {
			log.Debug().Err(err).Int32("pid", proc.Pid).Str("name", name).Msg("failed to terminate process")
		} else {
			log.Info().Int32("pid", proc.Pid).Str("name", name).Msg("terminated process")
		}
	}
}
