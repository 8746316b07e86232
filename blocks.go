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

import "math"

// eightRange returns the pixel span of the given eighth of [0, size).
// Pixels left over by the division are handed out to the inner eighths
// first, so that the outermost bars keep their nominal size.
func eightRange(size, which int) Range {
	th := max(1, size/8)
	block := 8 * th
	if block == size {
		return Range{Start: th * which, End: th * (which + 1)}
	}
	if block > size {
		start := min(which*th, sub(size, th))
		return Range{Start: start, End: start + th}
	}

	var sizes [8]int
	for i := range sizes {
		sizes[i] = th
	}
	extra := size - block
	for _, i := range [8]int{3, 4, 2, 5, 6, 1, 7, 0} {
		if extra == 0 {
			break
		}
		sizes[i]++
		extra--
	}
	pos := 0
	for _, s := range sizes[:which] {
		pos += s
	}
	return Range{Start: pos, End: pos + sizes[which]}
}

// eightBar fills one eighth of the cell.  Horizontal bars are counted from
// the top, vertical bars from the left.
func (c *canvas) eightBar(which int, horizontal bool) {
	if horizontal {
		r := eightRange(c.height, which)
		c.fillRect(0, r.Start, c.width, r.End)
	} else {
		r := eightRange(c.width, which)
		c.fillRect(r.Start, 0, r.End, c.height)
	}
}

func (c *canvas) eightBlock(horizontal bool, which ...int) {
	for _, w := range which {
		c.eightBar(w, horizontal)
	}
}

// quad fills one quadrant of the cell.
func (c *canvas) quad(which edge) {
	x1, x2 := 0, c.width/2
	if which&edgeRight != 0 {
		x1, x2 = c.width/2, c.width
	}
	y1, y2 := 0, c.height/2
	if which&edgeBottom != 0 {
		y1, y2 = c.height/2, c.height
	}
	c.fillRect(x1, y1, x2, y2)
}

func (c *canvas) quads(which ...edge) {
	for _, w := range which {
		c.quad(w)
	}
}

// shadePattern describes a checkerboard shading.
type shadePattern struct {
	light     bool // leave every other row empty
	invert    bool // swap filled and empty squares
	fillBlank bool // fill the half of the cell not covered by the pattern
	whichHalf edge // restrict the pattern to one half of the cell
	xnum      int  // number of squares across
	ynum      int  // number of squares down, 0 for square cells
}

// seam returns the intensity of an extra row or column next to square k.
func (s shadePattern) seam(k int) byte {
	switch {
	case s.light && s.invert:
		if isOdd(k) {
			return 255
		}
		return 70
	case s.light:
		if isOdd(k) {
			return 0
		}
		return 70
	case isOdd(k) == s.invert:
		return 120
	default:
		return 30
	}
}

// shade draws a checkerboard.  Space which is not a multiple of the
// square size is spread over the pattern as extra rows and columns of
// intermediate intensity.
func (c *canvas) shade(s shadePattern) {
	sqW := max(1, c.width/s.xnum)
	sqH := sqW
	if s.ynum > 0 {
		sqH = max(1, c.height/s.ynum)
	}
	numRows := c.height / sqH
	numCols := c.width / sqW

	// keep the parity of the pattern
	if numCols > 1 && isOdd(numCols) != isOdd(s.xnum) {
		numCols--
	}
	if numRows > 1 && isOdd(numRows) != isOdd(s.ynum) {
		numRows--
	}
	if numRows == 0 || numCols == 0 {
		return
	}

	extW := float64(sub(c.width, sqW*numCols)) / float64(numCols)
	extH := float64(sub(c.height, sqH*numRows)) / float64(numRows)

	rows := Range{End: numRows}
	cols := Range{End: numCols}
	// half patterns stretch over half the cell, so that two of them
	// combine without a gap
	switch s.whichHalf {
	case edgeTop:
		rows.End /= 2
		extH *= 2
	case edgeBottom:
		rows.Start = numRows / 2
		extH *= 2
	case edgeLeft:
		cols.End /= 2
		extW *= 2
	case edgeRight:
		cols.Start = numCols / 2
		extW *= 2
	}

	ey, drawnRows := 0, 0
	for r := rows.Start; r < rows.End; r++ {
		oldEY := ey
		ey = int(math.Ceil(float64(drawnRows) * extH))
		extraRow := ey != oldEY
		drawnRows++

		ex, drawnCols := 0, 0
		for col := cols.Start; col < cols.End; col++ {
			oldEX := ex
			ex = int(math.Ceil(float64(drawnCols) * extW))
			extraCol := ex != oldEX
			drawnCols++

			if extraRow {
				y := r*sqH + oldEY
				for xc := range sqW {
					c.set(col*sqW+xc+ex, y, s.seam(col))
				}
			}
			if extraCol {
				x := col*sqW + oldEX
				for yr := range sqH {
					c.set(x, r*sqH+yr+ey, s.seam(r))
				}
			}
			if extraRow && extraCol {
				c.set(col*sqW+oldEX, r*sqH+oldEY, 50)
			}

			blank := s.invert != (isOdd(r) != isOdd(col) || (s.light && isOdd(r)))
			if !blank {
				x0, y0 := col*sqW+ex, r*sqH+ey
				c.fillRect(x0, y0, x0+sqW, y0+sqH)
			}
		}
	}

	if !s.fillBlank {
		return
	}
	cr := Range{End: c.width}
	rr := Range{End: c.height}
	switch s.whichHalf {
	case edgeBottom:
		rr.End = c.height / 2
	case edgeTop:
		rr.Start = sub(c.height/2, 1)
	case edgeRight:
		cr.End = c.width / 2
	case edgeLeft:
		cr.Start = sub(c.width/2, 1)
	}
	c.fillRect(cr.Start, rr.Start, cr.End, rr.End)
}

// isOdd reports whether n is odd.
func isOdd(n int) bool {
	return n&1 != 0
}
