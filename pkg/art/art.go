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

// Package art finds a game's portrait cover art in the Steam client's
// caches and converts it to PNG, the only format Sunshine displays.
package art

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZaparooProject/zaparoo-stream/pkg/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

var ErrConvert = errors.New("failed to convert cover art")

// Resolver looks up cover art. GridDir holds the user's custom artwork,
// LibraryCacheDir the artwork Steam downloaded and CacheDir receives
// converted images.
type Resolver struct {
	fs              afero.Fs
	gridDir         string
	libraryCacheDir string
	cacheDir        string
}

func NewResolver(fs afero.Fs, gridDir, libraryCacheDir, cacheDir string) *Resolver {
	return &Resolver{
		fs:              fs,
		gridDir:         gridDir,
		libraryCacheDir: libraryCacheDir,
		cacheDir:        cacheDir,
	}
}

// CoverArt returns the path of a PNG cover for g, or "" when Steam has no
// artwork for it. Custom grid art wins over the library cache.
func (r *Resolver) CoverArt(g library.Game) (string, error) {
	id := g.ArtID()
	candidates := []struct {
		dir  string
		stem string
	}{
		{dir: r.gridDir, stem: id + "p"},
		{dir: r.libraryCacheDir, stem: id + "_library_600x900"},
		{dir: filepath.Join(r.libraryCacheDir, id), stem: "library_600x900"},
	}

	for _, c := range candidates {
		if c.dir == "" {
			continue
		}
		match := r.find(c.dir, c.stem)
		if match == "" {
			continue
		}
		if strings.EqualFold(filepath.Ext(match), ".png") {
			return match, nil
		}
		return r.toPNG(match, id)
	}

	log.Debug().Str("game", g.String()).Msg("no cover art found")
	return "", nil
}

// find returns the file in dir named stem plus any extension, preferring
// a PNG when there are several.
func (r *Resolver) find(dir, stem string) string {
	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Debug().Err(err).Str("dir", dir).Msg("error listing art dir")
		}
		return ""
	}

	var matches []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.TrimSuffix(name, filepath.Ext(name)) != stem {
			continue
		}
		matches = append(matches, name)
	}
	if len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	for _, m := range matches {
		if strings.EqualFold(filepath.Ext(m), ".png") {
			return filepath.Join(dir, m)
		}
	}
	return filepath.Join(dir, matches[0])
}

// toPNG converts src into the cache dir. A cached copy at least as new as
// src is reused. The art id is part of the name since the library cache's
// nested layout uses the same file name for every game.
func (r *Resolver) toPNG(src, id string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if !strings.HasPrefix(stem, id) {
		stem = id + "_" + stem
	}
	dst := filepath.Join(r.cacheDir, stem+".png")

	srcInfo, err := r.fs.Stat(src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConvert, err)
	}
	if dstInfo, err := r.fs.Stat(dst); err == nil && !dstInfo.ModTime().Before(srcInfo.ModTime()) {
		return dst, nil
	}

	if err := Convert(r.fs, src, dst); err != nil {
		return "", err
	}
	log.Info().Str("src", src).Str("dst", dst).Msg("converted cover art to png")
	return dst, nil
}

// Convert decodes any supported image at src and writes it to dst as PNG.
func Convert(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConvert, err)
	}
	defer func() { _ = in.Close() }()

	img, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrConvert, src, err)
	}
	log.Debug().Str("src", src).Str("format", format).Msg("decoded cover art")

	if err := fs.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrConvert, err)
	}
	out, err := fs.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConvert, err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		_ = fs.Remove(dst)
		return fmt.Errorf("%w: encode %s: %w", ErrConvert, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return nil
}
