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

// Package coverage computes the exact area of a polygon inside each pixel
// of a small grid.
//
// The glyph renderer approximates coverage by supersampling.  This package
// gives the exact answer for the same outlines, so that tests can check how
// far the supersampled masks are from the ideal.
package coverage

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how overlapping parts of a path are filled.
type Rule int

// The supported fill rules.
const (
	NonZero Rule = iota
	EvenOdd
)

// segment is a non-horizontal line segment in device space, stored with
// top above bottom.
type segment struct {
	xTop, yTop float64
	xBot, yBot float64
	dxdy       float64
	dir        float32 // +1 if the path runs downwards, -1 otherwise
}

func (s *segment) xAt(y float64) float64 {
	return s.xTop + s.dxdy*(y-s.yTop)
}

// Filler turns paths into per-pixel coverage.  A Filler can be reused;
// its buffers grow as needed.
type Filler struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device region to compute.  The coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	segs      []segment
	cover     []float32
	area      []float32
	crossings []float64
	bbox      rect.Rect
}

// New returns a Filler for the given clip rectangle, using the identity
// transformation.
func New(clip rect.Rect) *Filler {
	return &Filler{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Fill computes the coverage of p.  Every row of the clip rectangle which
// is touched by the path is passed to emit, together with the x coordinate
// of its first pixel.  The slice is only valid until emit returns.
func (f *Filler) Fill(p path.Path, rule Rule, emit func(y, xMin int, coverage []float32)) {
	if !f.collect(p) {
		return
	}

	x0 := max(int(math.Floor(f.bbox.LLx)), int(f.Clip.LLx))
	x1 := min(int(math.Floor(f.bbox.URx))+1, int(f.Clip.URx))
	y0 := max(int(math.Floor(f.bbox.LLy)), int(f.Clip.LLy))
	y1 := min(int(math.Floor(f.bbox.URy))+1, int(f.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	width := x1 - x0

	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]
	for y := y0; y < y1; y++ {
		clear(f.cover)
		clear(f.area)
		touched := false
		for i := range f.segs {
			if f.accumulate(&f.segs[i], y, x0, x1) {
				touched = true
			}
		}
		if !touched {
			continue
		}
		integrate(f.cover, f.area, rule)
		emit(y, x0, f.cover)
	}
}

// Mask fills p into a new width×height byte mask, with the clip rectangle
// set to the mask.  Coverage values are rounded to the nearest multiple of
// 1/255.
func (f *Filler) Mask(p path.Path, rule Rule, width, height int) []byte {
	mask := make([]byte, width*height)
	f.Clip = rect.Rect{URx: float64(width), URy: float64(height)}
	f.Fill(p, rule, func(y, xMin int, coverage []float32) {
		row := mask[y*width:]
		for i, c := range coverage {
			row[xMin+i] = byte(math.Round(float64(c) * 255))
		}
	})
	return mask
}

// collect converts p into device space segments and records their bounding
// box.  It reports whether any segment was found.
func (f *Filler) collect(p path.Path) bool {
	f.segs = f.segs[:0]

	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			f.addLine(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			// degree elevation
			c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			f.addCubic(cur, c1, c2, pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			f.addCubic(cur, pts[0], pts[1], pts[2])
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				f.addLine(cur, start)
			}
			cur = start
		}
	}
	return len(f.segs) > 0
}

func (f *Filler) apply(v vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// addCubic approximates a cubic Bézier curve by line segments.  The number
// of segments follows Wang's formula, evaluated in device space.
func (f *Filler) addCubic(p0, p1, p2, p3 vec.Vec2) {
	d0, d1, d2, d3 := f.apply(p0), f.apply(p1), f.apply(p2), f.apply(p3)
	dev := max(d0.Sub(d1.Mul(2)).Add(d2).Length(), d1.Sub(d2.Mul(2)).Add(d3).Length())

	n := 1
	if k := math.Sqrt(3 * dev / (4 * f.Flatness)); k > 1 {
		n = int(math.Ceil(k))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		f.addLine(prev, pt)
		prev = pt
	}
}

func (f *Filler) addLine(from, to vec.Vec2) {
	a, b := f.apply(from), f.apply(to)
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}

	var dir float32 = 1
	if dy < 0 {
		a, b = b, a
		dir = -1
	}
	f.segs = append(f.segs, segment{
		xTop: a.X, yTop: a.Y,
		xBot: b.X, yBot: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})

	box := rect.Rect{
		LLx: min(a.X, b.X), LLy: a.Y,
		URx: max(a.X, b.X), URy: b.Y,
	}
	if len(f.segs) == 1 {
		f.bbox = box
	} else {
		f.bbox.LLx = min(f.bbox.LLx, box.LLx)
		f.bbox.LLy = min(f.bbox.LLy, box.LLy)
		f.bbox.URx = max(f.bbox.URx, box.URx)
		f.bbox.URy = max(f.bbox.URy, box.URy)
	}
}

// accumulate adds the part of s inside the row [y, y+1) to the cover and
// area buffers, which start at pixel x0.  Each piece of the segment inside
// a pixel contributes its signed height to cover, and the part of that
// height to the right of the segment to area.  It reports whether s
// intersects the row.
func (f *Filler) accumulate(s *segment, y, x0, x1 int) bool {
	top := max(float64(y), s.yTop)
	bot := min(float64(y+1), s.yBot)
	if bot <= top {
		return false
	}

	f.crossings = append(f.crossings[:0], top, bot)
	xa, xb := s.xAt(top), s.xAt(bot)
	lo, hi := int(math.Floor(min(xa, xb))), int(math.Floor(max(xa, xb)))
	for x := lo + 1; x <= hi; x++ {
		if yx := s.yTop + (float64(x)-s.xTop)/s.dxdy; yx > top && yx < bot {
			f.crossings = append(f.crossings, yx)
		}
	}
	slices.Sort(f.crossings)

	for i := 1; i < len(f.crossings); i++ {
		ya, yb := f.crossings[i-1], f.crossings[i]
		if yb <= ya {
			continue
		}
		h := s.dir * float32(yb-ya)
		xm := s.xAt((ya + yb) / 2)
		pix := int(math.Floor(xm))
		switch {
		case pix < x0:
			f.cover[0] += h
			f.area[0] += h
		case pix < x1:
			k := pix - x0
			f.cover[k] += h
			f.area[k] += h * float32(1-(xm-float64(pix)))
		}
	}
	return true
}

// integrate turns the accumulated values of one row into coverage, in
// place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		raw = float32(math.Abs(float64(raw)))
		switch rule {
		case EvenOdd:
			m := float32(math.Mod(float64(raw), 2))
			cover[i] = 1 - float32(math.Abs(float64(1-m)))
		default:
			cover[i] = min(raw, 1)
		}
	}
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.05

	horizontalThreshold = 1e-10
)
