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

// Package testcases lists glyphs to render for tests and proof sheets.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultDPI is used for test cases which do not specify a resolution.
const DefaultDPI = 96

// TestCase defines a single glyph rendering.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Rune   rune
	Width  int // cell width in pixels
	Height int // cell height in pixels
	DPIX   float64
	DPIY   float64

	// Outline, if set, is the exact shape the glyph approximates, in the
	// coordinates of the supersampled canvas.  CTM maps these coordinates
	// to cell pixels.
	Outline *path.Data
	CTM     matrix.Matrix
}

// DPI returns the resolution of the test case.
func (tc TestCase) DPI() (x, y float64) {
	x, y = tc.DPIX, tc.DPIY
	if x == 0 {
		x = DefaultDPI
	}
	if y == 0 {
		y = DefaultDPI
	}
	return x, y
}

// factor is the supersampling factor of the renderer.
const factor = 4

// sampleCTM maps the supersampled canvas to cell pixels.  Sample (x, y)
// is the centre of its sub-pixel.
var sampleCTM = matrix.Matrix{
	1.0 / factor, 0,
	0, 1.0 / factor,
	0.5 / factor, 0.5 / factor,
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon returns the closed polygon through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, v := range pts[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

// cell returns a test case without an outline.
func cell(name string, r rune, w, h int) TestCase {
	return TestCase{Name: name, Rune: r, Width: w, Height: h}
}
