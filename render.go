// seehuhn.de/go/boxdraw - procedural glyphs for terminal cells
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package boxdraw renders box-drawing characters, block elements, shades,
// powerline separators and related symbols as pixel masks, sized to fit a
// terminal cell exactly.
//
// Fonts draw these characters inconsistently, which leaves gaps between
// adjacent cells.  The glyphs produced here are computed from geometric
// rules instead, so that lines and blocks join up pixel-perfectly.
//
// Every call is independent of all others.  Concurrent calls are safe,
// provided each uses its own buffer and the [config.Config] is not modified
// while in use.
package boxdraw

//go:generate go run ./testcases/export -o testdata/sheet.png

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/boxdraw/config"
)

// Errors returned by [RenderBoxChar].
var (
	ErrInvalidCell    = errors.New("cell size must be positive")
	ErrInvalidDPI     = errors.New("resolution must be finite and positive")
	ErrBufferTooSmall = errors.New("buffer too small")
)

// BufferSize returns the number of bytes needed by [RenderBoxChar] for a
// cell of the given size.  The first width*height bytes hold the glyph,
// the rest is used as scratch space for antialiasing.
func BufferSize(width, height int) int {
	return (1 + SupersampleFactor*SupersampleFactor) * width * height
}

// RenderBoxChar draws the glyph for r into buf.
//
// On success, the first width*height bytes of buf hold the glyph in
// row-major order, one byte per pixel, where 0 is background and 255 is
// full coverage.  The remainder of buf is overwritten with unspecified
// data.  If cfg is nil, [config.Default] is used.
//
// Code points without a glyph definition are rendered as a blank cell; a
// warning is logged but no error is returned.  Use [Supported] to check
// for a definition.
func RenderBoxChar(cfg *config.Config, r rune, buf []byte, width, height int, dpiX, dpiY float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidCell)
	}
	if !validDPI(dpiX) || !validDPI(dpiY) {
		return fmt.Errorf("%gx%g dpi: %w", dpiX, dpiY, ErrInvalidDPI)
	}
	if need := BufferSize(width, height); len(buf) < need {
		return fmt.Errorf("have %d bytes, need %d: %w", len(buf), need, ErrBufferTooSmall)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	n := width * height
	out := &canvas{
		mask:   buf[:n],
		width:  width,
		height: height,
		factor: 1,
		dpiX:   dpiX,
		dpiY:   dpiY,
		cfg:    cfg,
	}
	ss := &canvas{
		mask:   buf[n:BufferSize(width, height)],
		width:  width * SupersampleFactor,
		height: height * SupersampleFactor,
		factor: SupersampleFactor,
		dpiX:   dpiX,
		dpiY:   dpiY,
		cfg:    cfg,
	}
	defer out.release()
	defer ss.release()

	out.fill(0)

	g, ok := glyphs[r]
	if !ok {
		Logger().Warn("no glyph definition, rendering blank cell",
			"rune", fmt.Sprintf("U+%04X", r),
			"name", runenames.Name(r))
		return nil
	}

	switch g.mode {
	case direct:
		g.draw(out)
	case supersampled:
		ss.fill(0)
		g.draw(ss)
		downsample(ss, out)
	case shadedCorner:
		// The antialiased shape becomes a mask for a checkerboard.
		ss.fill(0)
		g.draw(ss)
		downsample(ss, out)
		shape := ss.mask[:n]
		copy(shape, out.mask)
		out.fill(0)
		out.shade(shadePattern{xnum: 12})
		out.applyMask(shape)
	}
	return nil
}

func validDPI(dpi float64) bool {
	return dpi > 0 && !math.IsInf(dpi, 0)
}
