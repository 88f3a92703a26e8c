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

// Package reconcile merges a freshly scanned game list into the library.
// Additions and renames are applied directly. Entries that disappeared from
// the scan are never dropped silently: a Decider is asked what to do with
// each of them.
package reconcile

import (
	"fmt"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
)

type ConflictKind int

const (
	// StaleGame is a library game missing from the scan.
	StaleGame ConflictKind = iota
	// StaleExclusion is an excluded game missing from the scan.
	StaleExclusion
)

func (k ConflictKind) String() string {
	switch k {
	case StaleGame:
		return "stale game"
	case StaleExclusion:
		return "stale exclusion"
	default:
		return fmt.Sprintf("conflict(%d)", int(k))
	}
}

type Disposition int

const (
	// Keep leaves the entry where it is.
	Keep Disposition = iota
	// Drop moves a stale game to the exclusions, or deletes a stale
	// exclusion for good.
	Drop
)

type Conflict struct {
	Game library.Game
	Kind ConflictKind
}

// Decider resolves a conflict found during reconciliation. Returning an
// error aborts the run; changes already made stay persisted.
type Decider interface {
	Decide(c Conflict) (Disposition, error)
}

type DeciderFunc func(c Conflict) (Disposition, error)

func (f DeciderFunc) Decide(c Conflict) (Disposition, error) {
	return f(c)
}

// KeepAll answers Keep to every conflict.
var KeepAll Decider = DeciderFunc(func(Conflict) (Disposition, error) {
	return Keep, nil
})

type Report struct {
	Added   []library.Game
	Updated []library.Game
	Removed []library.Game
	Purged  []library.Game
	Skipped []library.Game
}

type Counts struct {
	Added   int
	Updated int
	Removed int
	Purged  int
	Skipped int
}

func (r Report) Counts() Counts {
	return Counts{
		Added:   len(r.Added),
		Updated: len(r.Updated),
		Removed: len(r.Removed),
		Purged:  len(r.Purged),
		Skipped: len(r.Skipped),
	}
}

// Changed reports whether the run mutated the library.
func (r Report) Changed() bool {
	c := r.Counts()
	return c.Added+c.Updated+c.Removed+c.Purged > 0
}

type Engine struct {
	store   *library.Store
	decider Decider
}

func NewEngine(store *library.Store, decider Decider) *Engine {
	if decider == nil {
		decider = KeepAll
	}
	return &Engine{store: store, decider: decider}
}

func containsGame(games []library.Game, g library.Game) bool {
	for _, other := range games {
		if other.Equal(g) {
			return true
		}
	}
	return false
}

// Reconcile brings the library in line with live, the full list of games
// currently known to the host. Every change is written through the store
// as it happens.
func (e *Engine) Reconcile(live []library.Game) (Report, error) {
	var report Report

	for _, g := range live {
		if err := e.merge(g, &report); err != nil {
			return report, err
		}
	}

	// snapshot first so games excluded below aren't offered for purging in
	// the same run
	exclusions := e.store.Exclusions()

	for _, g := range e.store.Games() {
		if containsGame(live, g) {
			continue
		}
		removed, err := e.resolveStaleGame(g)
		if err != nil {
			return report, err
		}
		if removed {
			report.Removed = append(report.Removed, g)
		}
	}

	for _, g := range exclusions {
		if containsGame(live, g) {
			continue
		}
		purged, err := e.resolveStaleExclusion(g)
		if err != nil {
			return report, err
		}
		if purged {
			report.Purged = append(report.Purged, g)
		}
	}

	if err := e.store.Sort(); err != nil {
		return report, fmt.Errorf("failed to save sorted library: %w", err)
	}

	c := report.Counts()
	log.Info().
		Int("added", c.Added).
		Int("updated", c.Updated).
		Int("removed", c.Removed).
		Int("purged", c.Purged).
		Int("skipped", c.Skipped).
		Msg("library reconciled")
	return report, nil
}

func (e *Engine) merge(g library.Game, report *Report) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("scanned game rejected: %w", err)
	}

	if i := e.store.IndexOf(g); i >= 0 {
		current := e.store.Games()[i]
		if current.Name == g.Name {
			return nil
		}
		log.Info().
			Str("id", current.ID).
			Str("old", current.Name).
			Str("new", g.Name).
			Msg("updating game name to match scan")
		if err := e.store.Rename(i, g.Name); err != nil {
			return fmt.Errorf("failed to rename %s: %w", current, err)
		}
		current.Name = g.Name
		report.Updated = append(report.Updated, current)
		return nil
	}

	if e.store.ExclusionIndexOf(g) >= 0 {
		log.Debug().Str("game", g.String()).Msg("skipping excluded game")
		report.Skipped = append(report.Skipped, g)
		return nil
	}

	if err := e.store.Add(g); err != nil {
		return fmt.Errorf("failed to add %s: %w", g, err)
	}
	log.Info().Str("game", g.String()).Msg("added game to library")
	report.Added = append(report.Added, g)
	return nil
}

func (e *Engine) resolveStaleGame(g library.Game) (bool, error) {
	d, err := e.decider.Decide(Conflict{Kind: StaleGame, Game: g})
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", g, err)
	}
	if d != Drop {
		log.Info().Str("game", g.String()).Msg("kept game missing from scan")
		return false, nil
	}
	i := e.store.IndexOf(g)
	if i < 0 {
		return false, nil
	}
	if _, err := e.store.Remove(i); err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", g, err)
	}
	log.Info().Str("game", g.String()).Msg("moved game missing from scan to exclusions")
	return true, nil
}

func (e *Engine) resolveStaleExclusion(g library.Game) (bool, error) {
	d, err := e.decider.Decide(Conflict{Kind: StaleExclusion, Game: g})
	if err != nil {
		return false, fmt.Errorf("failed to resolve exclusion %s: %w", g, err)
	}
	if d != Drop {
		return false, nil
	}
	i := e.store.ExclusionIndexOf(g)
	if i < 0 {
		return false, nil
	}
	if _, err := e.store.Purge(i); err != nil {
		return false, fmt.Errorf("failed to purge exclusion %s: %w", g, err)
	}
	log.Info().Str("game", g.String()).Msg("purged exclusion missing from scan")
	return true, nil
}
