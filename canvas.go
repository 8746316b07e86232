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

package boxdraw

import (
	"math"
	"slices"

	"seehuhn.de/go/boxdraw/config"
)

// Edge flags.  Corners are combinations of two edges.
type edge uint8

const (
	edgeTop edge = 1 << iota
	edgeLeft
	edgeBottom
	edgeRight
)

const (
	topLeft     = edgeTop | edgeLeft
	topRight    = edgeTop | edgeRight
	bottomLeft  = edgeBottom | edgeLeft
	bottomRight = edgeBottom | edgeRight
)

// Line weight levels used by the box-drawing characters.
const (
	thin = 1
	fat  = 3
)

// Range is a half-open pixel interval [Start, End).
type Range struct {
	Start, End int
}

// Limit gives the vertical extent of a filled region in one column.
// A pixel at row y is inside iff Lower <= y <= Upper.
type Limit struct {
	Upper, Lower float64
}

// Point is an integer pixel position.
type Point struct {
	X, Y int32
}

// key packs the point into a single comparable value.
func (p Point) key() uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}

// canvas is a mask buffer together with the scratch state needed to draw a
// single glyph.  The mask is borrowed from the caller.
type canvas struct {
	mask          []byte
	width, height int
	factor        int // supersampling factor, 1 for the output canvas
	dpiX, dpiY    float64
	cfg           *config.Config

	holes  []Range
	limits []Limit
}

// fill sets every pixel to v.
func (c *canvas) fill(v byte) {
	m := c.mask[:c.width*c.height]
	for i := range m {
		m[i] = v
	}
}

// release drops the scratch lists.
func (c *canvas) release() {
	c.holes = nil
	c.limits = nil
}

// thickness returns the width in pixels of a line at the given level.
// Horizontal thickness (the extent along x) uses the horizontal DPI.
// The size is rounded up, so that a 1pt line at 96 dpi is 2 pixels thick.
func (c *canvas) thickness(level int, horizontal bool) int {
	dpi := c.dpiY
	if horizontal {
		dpi = c.dpiX
	}
	px := int(math.Ceil(c.cfg.LineWeight(level) * dpi / 72))
	return c.factor * max(1, px)
}

// halfWidth returns the horizontal midpoint, aligned to output pixels.
func (c *canvas) halfWidth() int {
	return c.factor * (c.width / 2 / c.factor)
}

// halfHeight returns the vertical midpoint, aligned to output pixels.
func (c *canvas) halfHeight() int {
	return c.factor * (c.height / 2 / c.factor)
}

// set writes v to the pixel (x, y) if it lies on the canvas.
func (c *canvas) set(x, y int, v byte) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.mask[y*c.width+x] = v
}

// fillRect sets all pixels in [x1, x2) × [y1, y2) to 255,
// clipped to the canvas.
func (c *canvas) fillRect(x1, y1, x2, y2 int) {
	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, c.width)
	y2 = min(y2, c.height)
	if x1 >= x2 {
		return
	}
	for y := y1; y < y2; y++ {
		row := c.mask[y*c.width:]
		for x := x1; x < x2; x++ {
			row[x] = 255
		}
	}
}

// clearRect sets all pixels in [x1, x2) × [y1, y2) to 0.
func (c *canvas) clearRect(x1, y1, x2, y2 int) {
	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, c.width)
	y2 = min(y2, c.height)
	for y := y1; y < y2; y++ {
		row := c.mask[y*c.width:]
		for x := x1; x < x2; x++ {
			row[x] = 0
		}
	}
}

// sub is saturating subtraction.
func sub(a, b int) int {
	return max(a-b, 0)
}

// plus is saturating 8-bit addition.
func plus(a, b byte) byte {
	s := a + b
	if s < a {
		return 255
	}
	return s
}

// grow makes room for needed elements.  Capacity grows to
// max(initial, 2*cap, needed).
func grow[S ~[]E, E any](s S, initial, needed int) S {
	if needed <= cap(s) {
		return s
	}
	n := max(initial, 2*cap(s), needed)
	return slices.Grow(s, n-len(s))
}

func (c *canvas) appendHole(r Range) {
	c.holes = grow(c.holes, c.width, len(c.holes)+1)
	c.holes = append(c.holes, r)
}

func (c *canvas) appendLimit(l Limit) {
	c.limits = grow(c.limits, c.width, len(c.limits)+1)
	c.limits = append(c.limits, l)
}

// setLimits replaces the limit list with one entry per column.
func (c *canvas) setLimits(f func(x int) Limit) {
	c.limits = grow(c.limits[:0], c.width, c.width)[:c.width]
	for x := range c.limits {
		c.limits[x] = f(x)
	}
}

// drawHLine draws a horizontal line over [x1, x2), centred on row y.
// The line is shifted down rather than cut where it would leave the top.
func (c *canvas) drawHLine(x1, x2, y, level int) {
	if y < 0 {
		return
	}
	sz := c.thickness(level, false)
	start := sub(y, sz/2)
	c.fillRect(x1, start, x2, start+sz)
}

// drawVLine draws a vertical line over [y1, y2), centred on column x.
func (c *canvas) drawVLine(y1, y2, x, level int) {
	if x < 0 {
		return
	}
	sz := c.thickness(level, true)
	start := sub(x, sz/2)
	c.fillRect(start, y1, start+sz, y2)
}

// fillRegion fills every pixel selected by the column limits.  If inverted
// is set, the pixels outside the limits are filled instead.  Columns
// without a limit are left untouched.
func (c *canvas) fillRegion(inverted bool) {
	n := min(c.width, len(c.limits))
	for y := range c.height {
		fy := float64(y)
		row := c.mask[y*c.width:]
		for x := range n {
			l := c.limits[x]
			inside := l.Lower <= fy && fy <= l.Upper
			if inside != inverted {
				row[x] = 255
			}
		}
	}
}

// StraightLine is the line y = M*x + C.
type StraightLine struct {
	M, C float64
}

// lineFromPoints returns the line through two points.
// The points must have different x coordinates.
func lineFromPoints(x1, y1, x2, y2 float64) StraightLine {
	m := (y2 - y1) / (x2 - x1)
	return StraightLine{M: m, C: y1 - m*x1}
}

// Y evaluates the line at x.
func (l StraightLine) Y(x float64) float64 {
	return l.M*x + l.C
}

// thickLine draws a line of the given pixel thickness from p1 to p2.
// For each column a vertical band is filled, which is only accurate for
// slopes of magnitude at most one.
func (c *canvas) thickLine(th int, p1, p2 Point) {
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	delta, extra := th/2, th%2
	if p1.X == p2.X {
		y1, y2 := int(min(p1.Y, p2.Y)), int(max(p1.Y, p2.Y))
		x := int(p1.X)
		c.fillRect(x, y1-delta, x+1, y2+delta+extra)
		return
	}
	l := lineFromPoints(float64(p1.X), float64(p1.Y), float64(p2.X), float64(p2.Y))
	for x := max(int(p1.X), 0); x < c.width && x < int(p2.X)+1; x++ {
		y := int(l.Y(float64(x)))
		c.fillRect(x, y-delta, x+1, y+delta+extra)
	}
}
