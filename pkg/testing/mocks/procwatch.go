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

package mocks

import (
	"context"

	"github.com/ZaparooProject/zaparoo-stream/pkg/procwatch"
	"github.com/stretchr/testify/mock"
)

// MockProcesses is a testify mock for procwatch.Processes.
type MockProcesses struct {
	mock.Mock
}

var _ procwatch.Processes = (*MockProcesses)(nil)

func (m *MockProcesses) Running(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Bool(0), args.Error(1)
}

func (m *MockProcesses) Children(ctx context.Context, pid int32) ([]procwatch.Process, error) {
	args := m.Called(ctx, pid)
	procs, _ := args.Get(0).([]procwatch.Process)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return procs, args.Error(1)
}

func (m *MockProcesses) TerminateTree(ctx context.Context, pid int32) error {
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return m.Called(ctx, pid).Error(0)
}

// MockWindows is a testify mock for procwatch.Windows.
type MockWindows struct {
	mock.Mock
}

var _ procwatch.Windows = (*MockWindows)(nil)

func (m *MockWindows) Visible(spec procwatch.WindowSpec) (bool, error) {
	args := m.Called(spec)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Bool(0), args.Error(1)
}

func (m *MockWindows) Close(spec procwatch.WindowSpec) error {
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return m.Called(spec).Error(0)
}
