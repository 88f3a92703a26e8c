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

	"github.com/stretchr/testify/mock"
)

// MockHost is a testify mock of the Steam client as seen by a session.
type MockHost struct {
	mock.Mock
}

func (m *MockHost) ExeName() string {
	return m.Called().String(0)
}

func (m *MockHost) Start(ctx context.Context) error {
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return m.Called(ctx).Error(0)
}

func (m *MockHost) OpenFrontEnd(ctx context.Context) error {
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return m.Called(ctx).Error(0)
}

func (m *MockHost) CloseFrontEnd(ctx context.Context) error {
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return m.Called(ctx).Error(0)
}

func (m *MockHost) RunGame(ctx context.Context, id string) error {
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return m.Called(ctx, id).Error(0)
}

func (m *MockHost) RunningAppID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.String(0), args.Error(1)
}

func (m *MockHost) PID(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	pid, _ := args.Get(0).(int32)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return pid, args.Error(1)
}
