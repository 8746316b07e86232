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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// halfPlane is the set of points on the right of the directed line from A
// to B.  Since y grows downwards, this is the part below the line when A is
// left of B.
type halfPlane struct {
	A, B vec.Vec2
}

func (h halfPlane) side(p vec.Vec2) float64 {
	d := h.B.Sub(h.A)
	q := p.Sub(h.A)
	return d.X*q.Y - d.Y*q.X
}

// below is the half plane below the line through a and b, with a.X < b.X.
func below(a, b vec.Vec2) halfPlane {
	return halfPlane{A: a, B: b}
}

// above is the half plane above the line through a and b, with a.X < b.X.
func above(a, b vec.Vec2) halfPlane {
	return halfPlane{A: b, B: a}
}

// clip cuts the convex polygon poly by h.
func (h halfPlane) clip(poly []vec.Vec2) []vec.Vec2 {
	var out []vec.Vec2
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		sc, sp := h.side(cur), h.side(prev)
		if (sc >= 0) != (sp >= 0) {
			t := sp / (sp - sc)
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if sc >= 0 {
			out = append(out, cur)
		}
	}
	return out
}

// region returns the part of a supersampled canvas of the given size
// which lies inside all half planes.  Every sample stands for the unit
// square around it, so the canvas extends half a unit beyond the outer
// samples.
func region(width, height int, planes ...halfPlane) *path.Data {
	x1, y1 := float64(width)-0.5, float64(height)-0.5
	poly := []vec.Vec2{pt(-0.5, -0.5), pt(x1, -0.5), pt(x1, y1), pt(-0.5, y1)}
	for _, h := range planes {
		poly = h.clip(poly)
		if len(poly) == 0 {
			return &path.Data{}
		}
	}
	return polygon(poly...)
}

// withOutline sets the outline of a supersampled glyph.  The function
// receives the size of the supersampled canvas.
func withOutline(tc TestCase, outline func(w, h int) *path.Data) TestCase {
	tc.Outline = outline(factor*tc.Width, factor*tc.Height)
	tc.CTM = sampleCTM
	return tc
}

func powerlineTriangle(left bool) func(w, h int) *path.Data {
	return func(w, h int) *path.Data {
		x1, x2 := 0.0, float64(w-1)
		if !left {
			x1, x2 = x2, x1
		}
		mid := pt(x2, float64(h/2))
		top, bottom := pt(x1, 0), pt(x1, float64(h-1))
		if left {
			return region(w, h, below(top, mid), above(bottom, mid))
		}
		return region(w, h, below(mid, top), above(mid, bottom))
	}
}

func cornerTriangle(top, left bool) func(w, h int) *path.Data {
	return func(w, h int) *path.Data {
		w1, h1 := float64(w-1), float64(h-1)
		var a, b vec.Vec2
		if top == left {
			// anti-diagonal
			a, b = pt(0, h1), pt(w1, 0)
		} else {
			a, b = pt(0, 0), pt(w1, h1)
		}
		if top {
			return region(w, h, above(a, b))
		}
		return region(w, h, below(a, b))
	}
}

// mosaic is the part of the cell below (or above) the line between two
// points given as fractions of the cell size.
func mosaic(isBelow bool, ax, ay, bx, by float64) func(w, h int) *path.Data {
	return func(w, h int) *path.Data {
		w1, h1 := float64(w-1), float64(h-1)
		a, b := pt(ax*w1, ay*h1), pt(bx*w1, by*h1)
		if isBelow {
			return region(w, h, below(a, b))
		}
		return region(w, h, above(a, b))
	}
}
