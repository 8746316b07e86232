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

// holeFactor is the ratio of the cell size to the size of a dash gap.
const holeFactor = 8

// getHoles splits [0, sz) into num dashes separated by holes of size
// holeSz, starting and ending with half a hole.  The holes are stored in
// c.holes.
func (c *canvas) getHoles(sz, holeSz, num int) {
	c.holes = c.holes[:0]
	block := max(1, sub(sz, (num+1)*holeSz)/(num+1))
	pos := -(holeSz / 2)
	for pos < sz {
		left := max(pos, 0)
		right := min(sz, pos+holeSz)
		if right > left {
			c.appendHole(Range{Start: left, End: right})
		}
		pos = right + block
	}
}

func (c *canvas) addHHoles(level, num int) {
	lineSz := c.thickness(level, false)
	start := sub(c.halfHeight(), lineSz/2)
	c.getHoles(c.width, c.width/holeFactor, num)
	for _, h := range c.holes {
		c.clearRect(h.Start, 0, h.End, start+lineSz)
	}
}

func (c *canvas) addVHoles(level, num int) {
	lineSz := c.thickness(level, true)
	start := sub(c.halfWidth(), lineSz/2)
	c.getHoles(c.height, c.height/holeFactor, num)
	for _, h := range c.holes {
		c.clearRect(start, h.Start, start+lineSz, h.End)
	}
}

// halfHLine draws the left or right half of the horizontal centre line,
// extended by extend pixels towards the other half.
func (c *canvas) halfHLine(level int, right bool, extend int) {
	hw := c.halfWidth()
	x1, x2 := 0, hw+extend
	if right {
		x1, x2 = sub(hw, extend), c.width
	}
	c.drawHLine(x1, x2, c.halfHeight(), level)
}

// halfVLine draws the top or bottom half of the vertical centre line.
func (c *canvas) halfVLine(level int, bottom bool, extend int) {
	hh := c.halfHeight()
	y1, y2 := 0, hh+extend
	if bottom {
		y1, y2 = sub(hh, extend), c.height
	}
	c.drawVLine(y1, y2, c.halfWidth(), level)
}

func (c *canvas) hline(level int) {
	c.halfHLine(level, false, 0)
	c.halfHLine(level, true, 0)
}

func (c *canvas) vline(level int) {
	c.halfVLine(level, false, 0)
	c.halfVLine(level, true, 0)
}

func (c *canvas) hholes(level, num int) {
	c.hline(level)
	c.addHHoles(level, num)
}

func (c *canvas) vholes(level, num int) {
	c.vline(level)
	c.addVHoles(level, num)
}

// halfDHLine draws one half of a double horizontal line.  The edge flags
// select which of the two lines are drawn.  The rows of the two lines are
// returned.
func (c *canvas) halfDHLine(level int, right bool, which edge) (top, bottom int) {
	x1, x2 := 0, c.width/2
	if right {
		x1, x2 = c.width/2, c.width
	}
	gap := c.thickness(level+1, false)
	top, bottom = c.height/2-gap, c.height/2+gap
	if which&edgeTop != 0 {
		c.drawHLine(x1, x2, top, level)
	}
	if which&edgeBottom != 0 {
		c.drawHLine(x1, x2, bottom, level)
	}
	return top, bottom
}

// halfDVLine draws one half of a double vertical line.
func (c *canvas) halfDVLine(level int, bottom bool, which edge) (left, right int) {
	y1, y2 := 0, c.height/2
	if bottom {
		y1, y2 = c.height/2, c.height
	}
	gap := c.thickness(level+1, true)
	left, right = c.width/2-gap, c.width/2+gap
	if which&edgeLeft != 0 {
		c.drawVLine(y1, y2, left, level)
	}
	if which&edgeRight != 0 {
		c.drawVLine(y1, y2, right, level)
	}
	return left, right
}

func (c *canvas) dhline(level int, which edge) {
	c.halfDHLine(level, false, which)
	c.halfDHLine(level, true, which)
}

func (c *canvas) dvline(level int, which edge) {
	c.halfDVLine(level, false, which)
	c.halfDVLine(level, true, which)
}

// innerCorner draws the inner lines of a double-line corner.  The corner
// names the quadrant the lines extend into.
func (c *canvas) innerCorner(level int, corner edge) {
	hgap := c.thickness(level+1, true)
	vgap := c.thickness(level+1, false)
	vthick := c.thickness(level, true) / 2

	x1, x2, y1, y2 := 0, c.width, 0, c.height
	xd, yd := 1, 1
	if corner&edgeLeft != 0 {
		x2 = sub(c.width/2+vthick+1, hgap)
		xd = -1
	} else {
		x1 = sub(c.width/2+hgap, vthick)
	}
	if corner&edgeTop != 0 {
		y2 = sub(c.height/2, vgap)
		yd = -1
	} else {
		y1 = c.height/2 + vgap
	}
	c.drawHLine(x1, x2, c.height/2+yd*vgap, level)
	c.drawVLine(y1, y2, c.width/2+xd*hgap, level)
}

// doubleCorner draws a corner made of two parallel lines, as in ╔.
// The corner names the quadrant the lines extend into.
func (c *canvas) doubleCorner(level int, corner edge) {
	c.innerCorner(level, corner)

	hgap := c.thickness(level+1, true)
	vgap := c.thickness(level+1, false)
	vthick := c.thickness(level, true) / 2
	hthick := c.thickness(level, false) / 2

	// the outer lines lie on the opposite side of the centre lines
	x, y := c.width/2+hgap, c.height/2+vgap
	if corner&edgeRight != 0 {
		x = c.width/2 - hgap
	}
	if corner&edgeBottom != 0 {
		y = c.height/2 - vgap
	}

	x1, x2 := 0, x+vthick+1
	if corner&edgeRight != 0 {
		x1, x2 = sub(x, vthick), c.width
	}
	y1, y2 := 0, y+hthick+1
	if corner&edgeBottom != 0 {
		y1, y2 = sub(y, hthick), c.height
	}
	c.drawHLine(x1, x2, y, level)
	c.drawVLine(y1, y2, x, level)
}

// corner draws a single-line corner with separate weights for the
// horizontal and vertical arms.  The corner names the quadrant the arms
// extend into.
func (c *canvas) corner(hlevel, vlevel int, which edge) {
	c.halfHLine(hlevel, which&edgeRight != 0, c.thickness(vlevel, true)/2)
	c.halfVLine(vlevel, which&edgeBottom != 0, 0)
}

// arms gives the weight of the left, right, up and down arms of a
// junction.  A weight of zero omits the arm.
type arms [4]int

func (c *canvas) junction(a arms) {
	if a[0] > 0 {
		c.halfHLine(a[0], false, 0)
	}
	if a[1] > 0 {
		c.halfHLine(a[1], true, 0)
	}
	if a[2] > 0 {
		c.halfVLine(a[2], false, 0)
	}
	if a[3] > 0 {
		c.halfVLine(a[3], true, 0)
	}
}

// crossArms lists the weights of the crossings U+253C to U+254B.
var crossArms = [16]arms{
	{thin, thin, thin, thin}, {fat, thin, thin, thin}, {thin, fat, thin, thin},
	{fat, fat, thin, thin}, {thin, thin, fat, thin}, {thin, thin, thin, fat},
	{thin, thin, fat, fat}, {fat, thin, fat, thin}, {thin, fat, fat, thin},
	{fat, thin, thin, fat}, {thin, fat, thin, fat}, {fat, fat, fat, thin},
	{fat, fat, thin, fat}, {fat, thin, fat, fat}, {thin, fat, fat, fat},
	{fat, fat, fat, fat},
}

// teeArms lists the weights of the T junctions U+251C to U+253B.
var teeArms = [32]arms{
	// ├ family: no left arm
	{0, thin, thin, thin}, {0, fat, thin, thin}, {0, thin, fat, thin}, {0, thin, thin, fat},
	{0, thin, fat, fat}, {0, fat, fat, thin}, {0, fat, thin, fat}, {0, fat, fat, fat},
	// ┤ family: no right arm
	{thin, 0, thin, thin}, {fat, 0, thin, thin}, {thin, 0, fat, thin}, {thin, 0, thin, fat},
	{thin, 0, fat, fat}, {fat, 0, fat, thin}, {fat, 0, thin, fat}, {fat, 0, fat, fat},
	// ┬ family: no up arm
	{thin, thin, 0, thin}, {fat, thin, 0, thin}, {thin, fat, 0, thin}, {fat, fat, 0, thin},
	{thin, thin, 0, fat}, {fat, thin, 0, fat}, {thin, fat, 0, fat}, {fat, fat, 0, fat},
	// ┴ family: no down arm
	{thin, thin, thin, 0}, {fat, thin, thin, 0}, {thin, fat, thin, 0}, {fat, fat, thin, 0},
	{thin, thin, fat, 0}, {fat, thin, fat, 0}, {thin, fat, fat, 0}, {fat, fat, fat, 0},
}

// fadingSegments splits [0, total) into num dashes which get shorter
// towards the fade edge.
func fadingSegments(total, num int, fade edge) []Range {
	if num <= 0 {
		return nil
	}
	step := total / num
	d1, dir := 0, 1
	if fade == edgeLeft || fade == edgeTop {
		d1, dir = total, -1
	}
	res := make([]Range, num)
	for i := range num {
		sz := step * (num - i) / (num + 1)
		if step > 2 && sz >= step-1 {
			sz = step - 2
		}
		d2 := max(d1+dir*sz, 0)
		res[i] = Range{Start: min(d1, d2), End: max(d1, d2)}
		d1 += step * dir
	}
	return res
}

func (c *canvas) fadingHLine(level, num int, fade edge) {
	y := c.height / 2
	for _, r := range fadingSegments(c.width, num, fade) {
		c.drawHLine(r.Start, r.End, y, level)
	}
}

func (c *canvas) fadingVLine(level, num int, fade edge) {
	x := c.width / 2
	for _, r := range fadingSegments(c.height, num, fade) {
		c.drawVLine(r.Start, r.End, x, level)
	}
}
