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

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// sleep waits d on clock, returning early if ctx is done.
func sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := clock.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait interrupted: %w", ctx.Err())
	case <-t.Chan():
		return nil
	}
}

// pollUntil checks cond every interval until it returns true. With a
// positive timeout it gives up once the timeout has passed and returns
// false, a zero timeout polls forever.
func pollUntil(
	ctx context.Context,
	clock clockwork.Clock,
	interval, timeout time.Duration,
	cond func() (bool, error),
) (bool, error) {
	start := clock.Now()
	for {
		ok, err := cond()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if timeout > 0 && clock.Since(start) > timeout {
			return false, nil
		}
		if err := sleep(ctx, clock, interval); err != nil {
			return false, err
		}
	}
}
