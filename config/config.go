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

// Package config holds the settings that influence how box-drawing and
// decoration glyphs are rendered.
//
// A [Config] value is treated as read-only once it has been handed to a
// renderer.  Code that needs to change settings at run time should build a
// new value and swap it in, for example using a [Watcher].
package config

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// NumLevels is the number of entries in the line weight table.
const NumLevels = 4

// UndercurlStyle selects the shape of curly underlines.
type UndercurlStyle uint8

// Bits of [UndercurlStyle].  The zero value is a thin, sparse wave.
const (
	UndercurlDense UndercurlStyle = 1 << iota
	UndercurlThick
)

func (s UndercurlStyle) String() string {
	weight, density := "thin", "sparse"
	if s&UndercurlThick != 0 {
		weight = "thick"
	}
	if s&UndercurlDense != 0 {
		density = "dense"
	}
	return weight + "-" + density
}

// Config describes the rendering parameters for synthetic glyphs.
type Config struct {
	// BoxDrawingScale gives the line thickness, in points, for each line
	// weight level.  Level 0 is a hairline, level 1 the normal weight and
	// level 3 the heavy weight used by box-drawing characters.
	BoxDrawingScale [NumLevels]float64

	// UndercurlStyle selects the frequency and thickness of curly underlines.
	UndercurlStyle UndercurlStyle

	// CursorBeamThickness is the width of the beam cursor, in points.
	CursorBeamThickness float64

	// CursorUnderlineThickness is the height of the underline cursor, in points.
	CursorUnderlineThickness float64

	// CurveStamp is the brush shape used when rasterising curves.
	// LineCapSquare stamps a square of the line thickness at every sample,
	// LineCapRound stamps a disc.
	CurveStamp graphics.LineCapStyle
}

// Default returns the settings used when no configuration is given.
func Default() *Config {
	return &Config{
		BoxDrawingScale:          [NumLevels]float64{0.001, 1, 1.5, 2},
		UndercurlStyle:           0,
		CursorBeamThickness:      1.5,
		CursorUnderlineThickness: 2.0,
		CurveStamp:               graphics.LineCapSquare,
	}
}

// LineWeight returns the line thickness in points for the given level.
// Levels outside the table are clamped to the nearest entry.
func (c *Config) LineWeight(level int) float64 {
	level = max(0, min(level, NumLevels-1))
	return c.BoxDrawingScale[level]
}

// Errors returned by [Config.Validate].
var (
	ErrNegativeScale    = errors.New("line weight must be finite and non-negative")
	ErrNotIncreasing    = errors.New("line weights must not decrease with level")
	ErrCursorThickness  = errors.New("cursor thickness must be finite and positive")
	ErrUnsupportedStamp = errors.New("unsupported curve stamp")
)

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	for i, v := range c.BoxDrawingScale {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("box_drawing_scale[%d]=%g: %w", i, v, ErrNegativeScale)
		}
		if i > 0 && v < c.BoxDrawingScale[i-1] {
			return fmt.Errorf("box_drawing_scale[%d]=%g: %w", i, v, ErrNotIncreasing)
		}
	}
	for _, v := range []float64{c.CursorBeamThickness, c.CursorUnderlineThickness} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%g: %w", v, ErrCursorThickness)
		}
	}
	switch c.CurveStamp {
	case graphics.LineCapSquare, graphics.LineCapRound:
	default:
		return fmt.Errorf("%s: %w", c.CurveStamp, ErrUnsupportedStamp)
	}
	return nil
}
