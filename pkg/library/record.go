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

package library

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GameRecord is the persisted form of a Game.
type GameRecord struct {
	ID           string `json:"id"                      validate:"required"`
	Name         string `json:"name"                    validate:"required"`
	AltID        string `json:"alt_id,omitempty"        validate:"required_with=ProcessName"`
	ProcessName  string `json:"process_name,omitempty"  validate:"required_with=AltID"`
	SettingsPath string `json:"settings_path,omitempty"`
}

// Record is the persisted form of a Library.
type Record struct {
	Games      []GameRecord `json:"games"      validate:"dive"`
	Exclusions []GameRecord `json:"exclusions" validate:"dive"`
}

// UnmarshalJSON accepts the older layout where only non-Steam games were
// stored, under "non_steam_games". "games" wins when both are present.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Games      *[]GameRecord `json:"games"`
		Legacy     *[]GameRecord `json:"non_steam_games"`
		Exclusions []GameRecord  `json:"exclusions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck // wrapped by Decode
	}
	switch {
	case raw.Games != nil:
		r.Games = *raw.Games
	case raw.Legacy != nil:
		r.Games = *raw.Legacy
	default:
		r.Games = nil
	}
	r.Exclusions = raw.Exclusions
	return nil
}

var recordValidator = validator.New(validator.WithRequiredStructEnabled())

func toRecord(g Game) GameRecord {
	return GameRecord{
		ID:           g.ID,
		Name:         g.Name,
		AltID:        g.AltID,
		ProcessName:  g.ProcessName,
		SettingsPath: g.SettingsPath,
	}
}

func fromRecord(r GameRecord) Game {
	kind := KindNative
	if r.AltID != "" {
		kind = KindShortcut
	}
	return Game{
		Kind:         kind,
		ID:           r.ID,
		Name:         r.Name,
		AltID:        r.AltID,
		ProcessName:  r.ProcessName,
		SettingsPath: r.SettingsPath,
	}
}

// ToRecord converts a library to its persisted form.
func ToRecord(l *Library) Record {
	rec := Record{
		Games:      make([]GameRecord, 0, len(l.games)),
		Exclusions: make([]GameRecord, 0, len(l.exclusions)),
	}
	for _, g := range l.games {
		rec.Games = append(rec.Games, toRecord(g))
	}
	for _, g := range l.exclusions {
		rec.Exclusions = append(rec.Exclusions, toRecord(g))
	}
	return rec
}

// FromRecord validates a record and converts it to a library.
func FromRecord(rec Record) (*Library, error) {
	if err := recordValidator.Struct(rec); err != nil {
		return nil, fmt.Errorf("invalid record: %w", err)
	}
	games := make([]Game, 0, len(rec.Games))
	for _, r := range rec.Games {
		games = append(games, fromRecord(r))
	}
	exclusions := make([]Game, 0, len(rec.Exclusions))
	for _, r := range rec.Exclusions {
		exclusions = append(exclusions, fromRecord(r))
	}
	return New(games, exclusions)
}

// Encode serializes a library as indented JSON.
func Encode(l *Library) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(ToRecord(l)); err != nil {
		return nil, fmt.Errorf("failed to encode library: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a library record. Any failure is reported as
// ErrCorruptLibraryRecord.
func Decode(data []byte) (*Library, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptLibraryRecord, err)
	}
	lib, err := FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptLibraryRecord, err)
	}
	return lib, nil
}
