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

package settingssync

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	EnvClientWidth  = "SUNSHINE_CLIENT_WIDTH"
	EnvClientHeight = "SUNSHINE_CLIENT_HEIGHT"
	EnvClientFPS    = "SUNSHINE_CLIENT_FPS"
)

var ErrInvalidSignature = errors.New("invalid client signature")

// Signature identifies a streaming client by the display mode it asked
// for, e.g. 1920x1080x60.
type Signature string

func ClientSignature(width, height, fps int) (Signature, error) {
	if width <= 0 || height <= 0 || fps <= 0 {
		return "", fmt.Errorf("%w: %dx%dx%d", ErrInvalidSignature, width, height, fps)
	}
	return Signature(fmt.Sprintf("%dx%dx%d", width, height, fps)), nil
}

// SignatureFromEnv builds the signature from the variables Sunshine sets
// for prep commands. lookup is usually os.LookupEnv.
func SignatureFromEnv(lookup func(string) (string, bool)) (Signature, error) {
	var vals [3]int
	for i, key := range []string{EnvClientWidth, EnvClientHeight, EnvClientFPS} {
		raw, ok := lookup(key)
		if !ok {
			return "", fmt.Errorf("%w: %s is not set", ErrInvalidSignature, key)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "", fmt.Errorf("%w: %s=%q: %w", ErrInvalidSignature, key, raw, err)
		}
		vals[i] = n
	}
	return ClientSignature(vals[0], vals[1], vals[2])
}
