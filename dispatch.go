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
	"iter"
	"maps"
	"slices"
)

// mode selects the canvas a glyph is drawn on.
type mode uint8

const (
	// direct glyphs are drawn on the output canvas.
	direct mode = iota

	// supersampled glyphs are drawn on the magnified canvas and then
	// reduced to the output resolution.
	supersampled

	// shadedCorner glyphs are drawn supersampled and the result is used
	// as a mask over a checkerboard shade.
	shadedCorner
)

// glyph is an entry of the glyph table.
type glyph struct {
	mode mode
	draw func(c *canvas)
}

// glyphs maps each supported code point to its drawing routine.
var glyphs = buildGlyphs()

// Supported reports whether r has a glyph definition.
func Supported(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

// Glyphs iterates over all supported code points in increasing order.
func Glyphs() iter.Seq[rune] {
	return slices.Values(slices.Sorted(maps.Keys(glyphs)))
}

func buildGlyphs() map[rune]glyph {
	g := make(map[rune]glyph, 512)
	d := func(r rune, f func(c *canvas)) { g[r] = glyph{mode: direct, draw: f} }
	s := func(r rune, f func(c *canvas)) { g[r] = glyph{mode: supersampled, draw: f} }

	d('█', func(c *canvas) { c.fill(255) })

	// straight and dashed lines
	d('─', func(c *canvas) { c.hline(thin) })
	d('━', func(c *canvas) { c.hline(fat) })
	d('│', func(c *canvas) { c.vline(thin) })
	d('┃', func(c *canvas) { c.vline(fat) })
	d('\uf5d0', func(c *canvas) { c.hline(thin) })
	d('\uf5d1', func(c *canvas) { c.vline(thin) })
	for _, h := range []struct {
		hr, vr     rune
		level, num int
	}{
		{'╌', '╎', thin, 1}, {'╍', '╏', fat, 1},
		{'┄', '┆', thin, 2}, {'┅', '┇', fat, 2},
		{'┈', '┊', thin, 3}, {'┉', '┋', fat, 3},
	} {
		d(h.hr, func(c *canvas) { c.hholes(h.level, h.num) })
		d(h.vr, func(c *canvas) { c.vholes(h.level, h.num) })
	}

	// half lines
	d('╴', func(c *canvas) { c.halfHLine(thin, false, 0) })
	d('╵', func(c *canvas) { c.halfVLine(thin, false, 0) })
	d('╶', func(c *canvas) { c.halfHLine(thin, true, 0) })
	d('╷', func(c *canvas) { c.halfVLine(thin, true, 0) })
	d('╸', func(c *canvas) { c.halfHLine(fat, false, 0) })
	d('╹', func(c *canvas) { c.halfVLine(fat, false, 0) })
	d('╺', func(c *canvas) { c.halfHLine(fat, true, 0) })
	d('╻', func(c *canvas) { c.halfVLine(fat, true, 0) })
	d('╾', func(c *canvas) { c.halfHLine(fat, false, 0); c.halfHLine(thin, true, 0) })
	d('╼', func(c *canvas) { c.halfHLine(thin, false, 0); c.halfHLine(fat, true, 0) })
	d('╿', func(c *canvas) { c.halfVLine(fat, false, 0); c.halfVLine(thin, true, 0) })
	d('╽', func(c *canvas) { c.halfVLine(thin, false, 0); c.halfVLine(fat, true, 0) })

	// fading lines
	d('\uf5d2', func(c *canvas) { c.fadingHLine(thin, 4, edgeRight) })
	d('\uf5d3', func(c *canvas) { c.fadingHLine(thin, 4, edgeLeft) })
	d('\uf5d4', func(c *canvas) { c.fadingVLine(thin, 5, edgeBottom) })
	d('\uf5d5', func(c *canvas) { c.fadingVLine(thin, 5, edgeTop) })

	// corners, T junctions and crossings
	for _, q := range []struct {
		r     rune
		which edge
	}{
		{'┌', bottomRight}, {'┐', bottomLeft}, {'└', topRight}, {'┘', topLeft},
	} {
		d(q.r, func(c *canvas) { c.corner(thin, thin, q.which) })
		d(q.r+1, func(c *canvas) { c.corner(fat, thin, q.which) })
		d(q.r+2, func(c *canvas) { c.corner(thin, fat, q.which) })
		d(q.r+3, func(c *canvas) { c.corner(fat, fat, q.which) })
	}
	for i, a := range teeArms {
		d('├'+rune(i), func(c *canvas) { c.junction(a) })
	}
	for i, a := range crossArms {
		d('┼'+rune(i), func(c *canvas) { c.junction(a) })
	}

	// double lines
	d('═', func(c *canvas) { c.dhline(thin, edgeTop|edgeBottom) })
	d('║', func(c *canvas) { c.dvline(thin, edgeLeft|edgeRight) })
	d('╞', func(c *canvas) { c.vline(thin); c.halfDHLine(thin, true, edgeTop|edgeBottom) })
	d('╡', func(c *canvas) { c.vline(thin); c.halfDHLine(thin, false, edgeTop|edgeBottom) })
	d('╥', func(c *canvas) { c.hline(thin); c.halfDVLine(thin, true, edgeLeft|edgeRight) })
	d('╨', func(c *canvas) { c.hline(thin); c.halfDVLine(thin, false, edgeLeft|edgeRight) })
	d('╪', func(c *canvas) { c.vline(thin); c.dhline(thin, edgeTop|edgeBottom) })
	d('╫', func(c *canvas) { c.hline(thin); c.dvline(thin, edgeLeft|edgeRight) })
	d('╬', func(c *canvas) {
		c.innerCorner(thin, topLeft)
		c.innerCorner(thin, topRight)
		c.innerCorner(thin, bottomLeft)
		c.innerCorner(thin, bottomRight)
	})
	d('╠', func(c *canvas) {
		c.innerCorner(thin, topRight)
		c.innerCorner(thin, bottomRight)
		c.dvline(thin, edgeLeft)
	})
	d('╣', func(c *canvas) {
		c.innerCorner(thin, topLeft)
		c.innerCorner(thin, bottomLeft)
		c.dvline(thin, edgeRight)
	})
	d('╦', func(c *canvas) {
		c.innerCorner(thin, bottomLeft)
		c.innerCorner(thin, bottomRight)
		c.dhline(thin, edgeTop)
	})
	d('╩', func(c *canvas) {
		c.innerCorner(thin, topLeft)
		c.innerCorner(thin, topRight)
		c.dhline(thin, edgeBottom)
	})
	d('╔', func(c *canvas) { c.doubleCorner(thin, bottomRight) })
	d('╗', func(c *canvas) { c.doubleCorner(thin, bottomLeft) })
	d('╚', func(c *canvas) { c.doubleCorner(thin, topRight) })
	d('╝', func(c *canvas) { c.doubleCorner(thin, topLeft) })

	// rounded corners
	for _, rc := range []struct {
		r     rune
		which edge
	}{
		{'╭', topLeft}, {'╮', topRight}, {'╰', bottomLeft}, {'╯', bottomRight},
		{'\uf5d6', topLeft}, {'\uf5d7', topRight}, {'\uf5d8', bottomLeft}, {'\uf5d9', bottomRight},
	} {
		s(rc.r, func(c *canvas) { c.roundedCorner(thin, rc.which) })
	}
	for _, rc := range []struct {
		r       rune
		line    byte // 'h', 'v' or 0
		corners []edge
	}{
		{'\uf5da', 'v', []edge{bottomLeft}},
		{'\uf5db', 'v', []edge{topLeft}},
		{'\uf5dc', 0, []edge{bottomLeft, topLeft}},
		{'\uf5dd', 'v', []edge{bottomRight}},
		{'\uf5de', 'v', []edge{topRight}},
		{'\uf5df', 0, []edge{topRight, bottomRight}},
		{'\uf5e0', 'h', []edge{topRight}},
		{'\uf5e1', 'h', []edge{topLeft}},
		{'\uf5e2', 0, []edge{topLeft, topRight}},
		{'\uf5e3', 'h', []edge{bottomRight}},
		{'\uf5e4', 'h', []edge{bottomLeft}},
		{'\uf5e5', 0, []edge{bottomLeft, bottomRight}},
		{'\uf5e6', 'v', []edge{bottomLeft, bottomRight}},
		{'\uf5e7', 'v', []edge{topLeft, topRight}},
		{'\uf5e8', 'h', []edge{topRight, bottomRight}},
		{'\uf5e9', 'h', []edge{bottomLeft, topLeft}},
		{'\uf5ea', 'v', []edge{topLeft, bottomRight}},
		{'\uf5eb', 'v', []edge{topRight, bottomLeft}},
		{'\uf5ec', 'h', []edge{topLeft, bottomRight}},
		{'\uf5ed', 'h', []edge{topRight, bottomLeft}},
	} {
		s(rc.r, func(c *canvas) {
			switch rc.line {
			case 'h':
				c.hline(thin)
			case 'v':
				c.vline(thin)
			}
			for _, which := range rc.corners {
				c.roundedCorner(thin, which)
			}
		})
	}

	// commit graph nodes: solid and hollow
	for i, lines := range []edge{
		0, edgeRight, edgeLeft, edgeLeft | edgeRight,
		edgeBottom, edgeTop, edgeBottom | edgeTop, edgeRight | edgeBottom,
		edgeLeft | edgeBottom, edgeRight | edgeTop, edgeLeft | edgeTop,
		edgeTop | edgeBottom | edgeRight, edgeTop | edgeBottom | edgeLeft,
		edgeLeft | edgeRight | edgeBottom, edgeLeft | edgeRight | edgeTop,
		edgeLeft | edgeRight | edgeTop | edgeBottom,
	} {
		r := '\uf5ee' + rune(2*i)
		s(r, func(c *canvas) { c.commit(lines, true) })
		s(r+1, func(c *canvas) { c.commit(lines, false) })
	}

	// powerline separators
	s('\ue0b0', func(c *canvas) { c.triangle(true, false) })
	s('\ue0d7', func(c *canvas) { c.triangle(true, true) })
	s('\ue0b1', func(c *canvas) {
		c.halfCrossLine(thin, topLeft)
		c.halfCrossLine(thin, bottomLeft)
	})
	s('\ue0b2', func(c *canvas) { c.triangle(false, false) })
	s('\ue0d6', func(c *canvas) { c.triangle(false, true) })
	s('\ue0b3', func(c *canvas) {
		c.halfCrossLine(thin, topRight)
		c.halfCrossLine(thin, bottomRight)
	})
	for _, r := range []rune{'\ue0b4', '◗'} {
		s(r, func(c *canvas) { c.filledD(true) })
	}
	for _, r := range []rune{'\ue0b6', '◖'} {
		s(r, func(c *canvas) { c.filledD(false) })
	}
	s('\ue0b5', func(c *canvas) { c.roundedSeparator(thin, true) })
	s('\ue0b7', func(c *canvas) { c.roundedSeparator(thin, false) })

	// diagonals
	for _, r := range []rune{'\ue0b9', '\ue0bf', '╲'} {
		s(r, func(c *canvas) { c.crossLine(thin, true) })
	}
	for _, r := range []rune{'\ue0bb', '\ue0bd', '╱'} {
		s(r, func(c *canvas) { c.crossLine(thin, false) })
	}
	s('╳', func(c *canvas) { c.crossLine(thin, false); c.crossLine(thin, true) })

	// corner triangles
	for _, ct := range []struct {
		r1, r2 rune
		which  edge
	}{
		{'\ue0b8', '◣', bottomLeft},
		{'\ue0ba', '◢', bottomRight},
		{'\ue0bc', '◤', topLeft},
		{'\ue0be', '◥', topRight},
	} {
		s(ct.r1, func(c *canvas) { c.cornerTriangle(ct.which) })
		s(ct.r2, func(c *canvas) { c.cornerTriangle(ct.which) })
	}
	for r, which := range map[rune]edge{
		'🮜': topLeft, '🮝': topRight, '🮞': bottomRight, '🮟': bottomLeft,
	} {
		g[r] = glyph{mode: shadedCorner, draw: func(c *canvas) { c.cornerTriangle(which) }}
	}

	// progress bars
	for i, seg := range []segment{segmentLeft, segmentMiddle, segmentRight} {
		d('\uee00'+rune(i), func(c *canvas) { c.progressBar(seg, false) })
		d('\uee03'+rune(i), func(c *canvas) { c.progressBar(seg, true) })
	}

	// spinners and circles
	for _, sp := range []struct {
		r          rune
		level      int
		start, end float64
	}{
		{'\uee06', thin, 235, 305},
		{'\uee07', thin, 270, 390},
		{'\uee08', thin, 315, 470},
		{'\uee09', thin, 360, 540},
		{'\uee0a', thin, 80, 220},
		{'\uee0b', thin, 170, 270},
		{'○', 0, 0, 360},
		{'◜', thin, 180, 270},
		{'◝', thin, 270, 360},
		{'◞', thin, 360, 450},
		{'◟', thin, 450, 540},
		{'◠', thin, 180, 360},
		{'◡', thin, 0, 180},
	} {
		s(sp.r, func(c *canvas) { c.spinner(sp.level, sp.start, sp.end) })
	}
	s('●', func(c *canvas) { c.drawCircle(1, 0, false) })
	s('◉', func(c *canvas) { c.fishEye(0) })

	// eighth blocks
	for r, bars := range map[rune][]int{
		'▔': {0}, '▀': {0, 1, 2, 3}, '▁': {7}, '▂': {6, 7}, '▃': {5, 6, 7},
		'▄': {4, 5, 6, 7}, '▅': {3, 4, 5, 6, 7}, '▆': {2, 3, 4, 5, 6, 7},
		'▇': {1, 2, 3, 4, 5, 6, 7},
		'🮂': {0, 1}, '🮃': {0, 1, 2}, '🮄': {0, 1, 2, 3, 4},
		'🮅': {0, 1, 2, 3, 4, 5}, '🮆': {0, 1, 2, 3, 4, 5, 6},
		'🮀': {0, 7}, '🮁': {0, 2, 4, 7},
	} {
		d(r, func(c *canvas) { c.eightBlock(true, bars...) })
	}
	for r, bars := range map[rune][]int{
		'▉': {0, 1, 2, 3, 4, 5, 6}, '▊': {0, 1, 2, 3, 4, 5}, '▋': {0, 1, 2, 3, 4},
		'▌': {0, 1, 2, 3}, '▍': {0, 1, 2}, '▎': {0, 1}, '▏': {0}, '▕': {7},
		'▐': {4, 5, 6, 7},
		'🮇': {6, 7}, '🮈': {5, 6, 7}, '🮉': {3, 4, 5, 6, 7},
		'🮊': {2, 3, 4, 5, 6, 7}, '🮋': {1, 2, 3, 4, 5, 6, 7},
	} {
		d(r, func(c *canvas) { c.eightBlock(false, bars...) })
	}
	d('🭼', func(c *canvas) { c.eightBar(0, false); c.eightBar(7, true) })
	d('🭽', func(c *canvas) { c.eightBar(0, false); c.eightBar(0, true) })
	d('🭾', func(c *canvas) { c.eightBar(7, false); c.eightBar(0, true) })
	d('🭿', func(c *canvas) { c.eightBar(7, false); c.eightBar(7, true) })

	// quadrants
	for r, which := range map[rune][]edge{
		'▖': {bottomLeft}, '▗': {bottomRight}, '▘': {topLeft}, '▝': {topRight},
		'▙': {topLeft, bottomLeft, bottomRight},
		'▚': {topLeft, bottomRight},
		'▛': {topLeft, topRight, bottomLeft},
		'▜': {topLeft, topRight, bottomRight},
		'▞': {topRight, bottomLeft},
		'▟': {topRight, bottomLeft, bottomRight},
	} {
		d(r, func(c *canvas) { c.quads(which...) })
	}

	// shades
	for r, p := range map[rune]shadePattern{
		'░': {xnum: 12, light: true},
		'▒': {xnum: 12},
		'▓': {xnum: 12, light: true, invert: true},
		'🮌': {xnum: 12, whichHalf: edgeLeft},
		'🮍': {xnum: 12, whichHalf: edgeRight},
		'🮎': {xnum: 12, whichHalf: edgeTop},
		'🮏': {xnum: 12, whichHalf: edgeBottom},
		'🮐': {xnum: 12, invert: true},
		'🮑': {xnum: 12, invert: true, fillBlank: true, whichHalf: edgeBottom},
		'🮒': {xnum: 12, invert: true, fillBlank: true, whichHalf: edgeTop},
		'🮓': {xnum: 12, invert: true, fillBlank: true, whichHalf: edgeRight},
		'🮔': {xnum: 12, invert: true, fillBlank: true, whichHalf: edgeLeft},
		'🮕': {xnum: 4, ynum: 4},
		'🮖': {xnum: 4, ynum: 4, invert: true},
		'🮗': {xnum: 1, ynum: 4, invert: true},
	} {
		d(r, func(c *canvas) { c.shade(p) })
	}
	s('🮘', func(c *canvas) { c.crossShade(false) })
	s('🮙', func(c *canvas) { c.crossShade(true) })

	// smooth mosaics: the first 22 fill below the line, the next 22
	// use the same lines and fill above
	for i, m := range [22][4]float64{
		{0, 2. / 3, 0.5, 1}, {0, 2. / 3, 1, 1}, {0, 1. / 3, 0.5, 1},
		{0, 1. / 3, 1, 1}, {0, 0, 0.5, 1}, {0, 1. / 3, 0.5, 0},
		{0, 1. / 3, 1, 0}, {0, 2. / 3, 0.5, 0}, {0, 2. / 3, 1, 0},
		{0, 1, 0.5, 0}, {0, 2. / 3, 1, 1. / 3}, {0.5, 1, 1, 2. / 3},
		{0, 1, 1, 2. / 3}, {0.5, 1, 1, 1. / 3}, {0, 1, 1, 1. / 3},
		{0.5, 1, 1, 0}, {0.5, 0, 1, 1. / 3}, {0, 0, 1, 1. / 3},
		{0.5, 0, 1, 2. / 3}, {0, 0, 1, 2. / 3}, {0.5, 0, 1, 1},
		{0, 1. / 3, 1, 2. / 3},
	} {
		s('🬼'+rune(i), func(c *canvas) { c.smoothMosaic(true, m[0], m[1], m[2], m[3]) })
		s('🭒'+rune(i), func(c *canvas) { c.smoothMosaic(false, m[0], m[1], m[2], m[3]) })
	}

	// half triangles
	for i, which := range []edge{edgeLeft, edgeTop, edgeRight, edgeBottom} {
		s('🭨'+rune(i), func(c *canvas) { c.halfTriangle(which, true) })
		s('🭬'+rune(i), func(c *canvas) { c.halfTriangle(which, false) })
	}
	s('🮛', func(c *canvas) {
		c.halfTriangle(edgeLeft, false)
		c.halfTriangle(edgeRight, false)
	})
	s('🮚', func(c *canvas) {
		c.halfTriangle(edgeBottom, false)
		c.halfTriangle(edgeTop, false)
	})

	// lines between edge midpoints
	for r, corners := range map[rune][]edge{
		'🮠': {topLeft},
		'🮡': {topRight},
		'🮢': {bottomLeft},
		'🮣': {bottomRight},
		'🮤': {topLeft, bottomLeft},
		'🮥': {topRight, bottomRight},
		'🮦': {bottomRight, bottomLeft},
		'🮧': {topRight, topLeft},
		'🮨': {bottomRight, topLeft},
		'🮩': {bottomLeft, topRight},
		'🮪': {bottomLeft, topRight, bottomRight},
		'🮫': {bottomLeft, topLeft, bottomRight},
		'🮬': {topRight, topLeft, bottomRight},
		'🮭': {topRight, topLeft, bottomLeft},
		'🮮': {topRight, bottomRight, topLeft, bottomLeft},
	} {
		s(r, func(c *canvas) { c.midLines(thin, corners...) })
	}

	return g
}
