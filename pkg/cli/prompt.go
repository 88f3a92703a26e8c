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


package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library/reconcile"
)

var ErrInvalidChoice = errors.New("invalid choice")

// Prompter reads answers to questions line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints prompt and returns the trimmed answer. io.EOF is returned
// once input runs out with nothing left to read.
func (p *Prompter) Ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		//nolint:wrapcheck // io.EOF is checked by callers
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskDefault is Ask, returning def for an empty answer.
func (p *Prompter) AskDefault(prompt, def string) (string, error) {
	answer, err := p.Ask(fmt.Sprintf("%s (press enter to use the default of %s): ", prompt, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// YesNo asks until the answer is y or n.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		answer, err := p.Ask(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		_, _ = fmt.Fprintln(p.out, `Error: Input must be "y" or "n". Try again.`)
	}
}

// Number asks for a whole number.
func (p *Prompter) Number(prompt string) (int, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidChoice, answer)
	}
	return n, nil
}

// Decider asks the user how to resolve each reconciliation conflict.
func (p *Prompter) Decider() reconcile.Decider {
	return reconcile.DeciderFunc(func(c reconcile.Conflict) (reconcile.Disposition, error) {
		var question string
		switch c.Kind {
		case reconcile.StaleGame:
			question = fmt.Sprintf("%s is no longer installed. Remove it from the library?", c.Game)
		case reconcile.StaleExclusion:
			question = fmt.Sprintf("Removed game %s is no longer installed. Forget it?", c.Game)
		default:
			return reconcile.Keep, fmt.Errorf("%w: unknown conflict %s", ErrInvalidChoice, c.Kind)
		}

		drop, err := p.YesNo(question)
		if err != nil {
			return reconcile.Keep, err
		}
		if drop {
			return reconcile.Drop, nil
		}
		return reconcile.Keep, nil
	})
}
