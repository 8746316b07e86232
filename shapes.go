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

import "seehuhn.de/go/geom/vec"

// triangle fills the powerline arrow pointing away from the left (or right)
// edge.  If inverted is set, the area outside the arrow is filled.
func (c *canvas) triangle(left, inverted bool) {
	x1, x2 := 0.0, float64(c.width-1)
	if !left {
		x1, x2 = x2, x1
	}
	midY := float64(c.height / 2)
	upper := lineFromPoints(x1, 0, x2, midY)
	lower := lineFromPoints(x1, float64(c.height-1), x2, midY)
	c.setLimits(func(x int) Limit {
		fx := float64(x)
		return Limit{Upper: lower.Y(fx), Lower: upper.Y(fx)}
	})
	c.fillRegion(inverted)
}

// filledD fills a half disc attached to the left (or right) edge.
func (c *canvas) filledD(left bool) {
	draw := func(c *canvas) {
		cx := findBezierForD(c.width, c.height)
		c.limits = c.limits[:0]
		c.bezierLimits(dCurve(cx, c.height))
		c.fillRegion(false)
	}
	if left {
		draw(c)
	} else {
		c.mirrored(draw)
	}
}

// roundedSeparator draws the outline of a half disc.
func (c *canvas) roundedSeparator(level int, left bool) {
	draw := func(c *canvas) {
		gap := c.thickness(level, true)
		cx := findBezierForD(sub(c.width, gap), c.height)
		c.drawCurve(level, dCurve(cx, c.height))
	}
	if left {
		draw(c)
	} else {
		c.mirrored(draw)
	}
}

// halfCrossLine draws a line from one corner to the middle of the
// opposite edge.
func (c *canvas) halfCrossLine(level int, corner edge) {
	w1 := int32(sub(c.width, 1))
	h1 := int32(sub(c.height, 1))
	my := h1 / 2
	var p1, p2 Point
	switch corner {
	case topLeft:
		p2 = Point{X: w1, Y: my}
	case bottomLeft:
		p1 = Point{X: w1, Y: my}
		p2 = Point{Y: h1}
	case topRight:
		p1 = Point{X: w1}
		p2 = Point{Y: my}
	case bottomRight:
		p1 = Point{Y: my}
		p2 = Point{X: w1, Y: h1}
	}
	c.thickLine(c.thickness(level, true), p1, p2)
}

// crossLine draws a diagonal across the cell.  The left diagonal runs
// from the top left to the bottom right corner.
func (c *canvas) crossLine(level int, left bool) {
	w1 := int32(sub(c.width, 1))
	h1 := int32(sub(c.height, 1))
	p1, p2 := Point{}, Point{X: w1, Y: h1}
	if !left {
		p1, p2 = Point{X: w1}, Point{Y: h1}
	}
	c.thickLine(c.thickness(level, true), p1, p2)
}

// cornerTriangle fills the half of the cell on the given corner's side
// of a diagonal.
func (c *canvas) cornerTriangle(corner edge) {
	w1 := float64(sub(c.width, 1))
	h1 := float64(sub(c.height, 1))
	var diag StraightLine
	if corner == topRight || corner == bottomLeft {
		diag = lineFromPoints(0, 0, w1, h1)
	} else {
		diag = lineFromPoints(w1, 0, 0, h1)
	}
	top := corner&edgeTop != 0
	c.setLimits(func(x int) Limit {
		d := diag.Y(float64(x))
		if top {
			return Limit{Upper: d, Lower: 0}
		}
		return Limit{Upper: h1, Lower: d}
	})
	c.fillRegion(false)
}

// frame draws lines along the given edges of the cell.
func (c *canvas) frame(level int, edges edge) {
	h := c.thickness(level, true)
	v := c.thickness(level, false)
	if edges&edgeTop != 0 {
		c.fillRect(0, 0, c.width, h+1)
	}
	if edges&edgeBottom != 0 {
		c.fillRect(0, c.height-h-1, c.width, c.height)
	}
	if edges&edgeLeft != 0 {
		c.fillRect(0, 0, v+1, c.height)
	}
	if edges&edgeRight != 0 {
		c.fillRect(c.width-v-1, 0, c.width, c.height)
	}
}

// segment is the position of a cell within a progress bar.
type segment uint8

const (
	segmentLeft segment = iota
	segmentMiddle
	segmentRight
)

func (c *canvas) progressBar(which segment, filled bool) {
	const edges = edgeTop | edgeBottom
	switch which {
	case segmentLeft:
		c.frame(thin, edgeLeft|edges)
	case segmentMiddle:
		c.frame(thin, edges)
	case segmentRight:
		c.frame(thin, edgeRight|edges)
	}
	if !filled {
		return
	}

	const gapFactor = 3
	h := c.thickness(thin, true)
	v := c.thickness(thin, false)
	y1, y2 := gapFactor*h, sub(c.height, gapFactor*h)
	x1, x2 := 0, c.width
	switch which {
	case segmentLeft:
		x1 = gapFactor * v
	case segmentRight:
		x2 = sub(c.width, gapFactor*v)
	}
	c.fillRect(x1, y1, x2, y2)
}

// spinner draws an arc of the largest circle which fits into the cell.
// Angles are in degrees, clockwise from the positive x axis.
func (c *canvas) spinner(level int, startDeg, endDeg float64) {
	w, h := c.width/2, c.height/2
	radius := sub(min(w, h), c.thickness(level, true)/2)
	origin := vec.Vec2{X: float64(w), Y: float64(h)}
	c.drawCurve(level, newCircle(origin, float64(radius), startDeg, endDeg))
}

// drawCircle sets all pixels of a centred disc to 255, or to 0 if invert
// is set.  The radius is scale times the half cell size, reduced by gap/2.
func (c *canvas) drawCircle(scale, gap float64, invert bool) {
	w, h := c.width/2, c.height/2
	radius := float64(int(scale*float64(min(w, h)) - gap/2))
	var v byte = 255
	if invert {
		v = 0
	}
	limit := radius * radius
	for y := range c.height {
		dy := float64(y - h)
		for x := range c.width {
			dx := float64(x - w)
			if dx*dx+dy*dy <= limit {
				c.mask[y*c.width+x] = v
			}
		}
	}
}

func (c *canvas) fishEye(level int) {
	w, h := c.width/2, c.height/2
	radius := sub(min(w, h), c.thickness(level, true)/2)
	origin := vec.Vec2{X: float64(w), Y: float64(h)}
	c.drawCurve(level, newCircle(origin, float64(radius), 0, 360))
	gap := sub(radius, radius/10)
	c.drawCircle(1, float64(gap), false)
}

// midLines draws lines connecting the midpoints of adjacent edges.
// Each corner names the two edges to connect.
func (c *canvas) midLines(level int, corners ...edge) {
	midX, midY := int32(c.width/2), int32(c.height/2)
	w1, h1 := int32(sub(c.width, 1)), int32(sub(c.height, 1))
	l := Point{X: 0, Y: midY}
	t := Point{X: midX, Y: 0}
	r := Point{X: w1, Y: midY}
	b := Point{X: midX, Y: h1}
	th := c.thickness(level, true)
	for _, which := range corners {
		switch which {
		case topLeft:
			c.thickLine(th, l, t)
		case topRight:
			c.thickLine(th, r, t)
		case bottomLeft:
			c.thickLine(th, l, b)
		case bottomRight:
			c.thickLine(th, r, b)
		}
	}
}

// smoothMosaic fills the part of the cell below (lower) or above a line.
// The line end points are given as fractions of the cell size.
func (c *canvas) smoothMosaic(lower bool, ax, ay, bx, by float64) {
	w1 := float64(sub(c.width, 1))
	h1 := float64(sub(c.height, 1))
	l := lineFromPoints(ax*w1, ay*h1, bx*w1, by*h1)
	for y := range c.height {
		fy := float64(y)
		row := c.mask[y*c.width:]
		for x := range c.width {
			e := l.Y(float64(x))
			if (lower && fy >= e) || (!lower && fy <= e) {
				row[x] = 255
			}
		}
	}
}

// halfTriangle fills a triangle with its base on the given edge and its
// apex in the centre of the cell.  The right half of the cell is the mirror
// image of the left half.
func (c *canvas) halfTriangle(which edge, inverted bool) {
	w1 := float64(sub(c.width, 1))
	h1 := float64(sub(c.height, 1))
	mx, my := w1/2, h1/2
	upper := lineFromPoints(0, 0, mx, my)
	lower := lineFromPoints(0, h1, mx, my)
	fold := func(x int) float64 {
		fx := float64(x)
		if fx > mx {
			return w1 - fx
		}
		return fx
	}
	switch which {
	case edgeLeft:
		c.setLimits(func(x int) Limit {
			fx := float64(x)
			return Limit{Upper: lower.Y(fx), Lower: upper.Y(fx)}
		})
	case edgeRight:
		c.setLimits(func(x int) Limit {
			fx := w1 - float64(x)
			return Limit{Upper: lower.Y(fx), Lower: upper.Y(fx)}
		})
	case edgeTop:
		c.setLimits(func(x int) Limit {
			return Limit{Upper: upper.Y(fold(x)), Lower: 0}
		})
	case edgeBottom:
		c.setLimits(func(x int) Limit {
			return Limit{Upper: h1, Lower: lower.Y(fold(x))}
		})
	}
	c.fillRegion(inverted)
}

// roundedCorner draws one quadrant of a rounded rectangle.
func (c *canvas) roundedCorner(level int, which edge) {
	c.drawCurve(level, c.rectircle(which))
}

// commit draws a node of a version control graph: a disc, filled or
// hollow, with lines to the given edges.
func (c *canvas) commit(lines edge, solid bool) {
	const level = thin
	const scale = 0.9
	hw, hh := c.halfWidth(), c.halfHeight()
	if lines&edgeRight != 0 {
		c.drawHLine(hw, c.width, hh, level)
	}
	if lines&edgeLeft != 0 {
		c.drawHLine(0, hw, hh, level)
	}
	if lines&edgeTop != 0 {
		c.drawVLine(0, hh, hw, level)
	}
	if lines&edgeBottom != 0 {
		c.drawVLine(hh, c.height, hw, level)
	}
	c.drawCircle(scale, 0, false)
	if !solid {
		c.drawCircle(scale, float64(c.thickness(level, true)), true)
	}
}

// crossShade draws a hatch pattern of parallel diagonal lines.
func (c *canvas) crossShade(rotate bool) {
	const numLines = 7
	th := max(c.factor, c.width/numLines)
	delta := 2 * th
	y1, y2 := int32(0), int32(c.height)
	if rotate {
		y1, y2 = y2, y1
	}
	w := int32(c.width)
	for x := int32(0); x < w; x += int32(delta) {
		c.thickLine(th, Point{X: x, Y: y1}, Point{X: w + x, Y: y2})
		c.thickLine(th, Point{X: -x, Y: y1}, Point{X: w - x, Y: y2})
	}
}

