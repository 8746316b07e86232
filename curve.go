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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// curve is a parametric curve, defined for t in [0, 1].
type curve interface {
	At(t float64) vec.Vec2
}

// CubicBezier is a cubic Bézier curve.
type CubicBezier struct {
	Start, C1, C2, End vec.Vec2
}

func bernstein(p0, p1, p2, p3, t float64) float64 {
	omt := 1 - t
	return omt*omt*omt*p0 + 3*t*omt*(omt*p1+t*p2) + t*t*t*p3
}

// X returns the x coordinate at parameter t.
func (b CubicBezier) X(t float64) float64 {
	return bernstein(b.Start.X, b.C1.X, b.C2.X, b.End.X, t)
}

// Y returns the y coordinate at parameter t.
func (b CubicBezier) Y(t float64) float64 {
	return bernstein(b.Start.Y, b.C1.Y, b.C2.Y, b.End.Y, t)
}

// At returns the point at parameter t.
func (b CubicBezier) At(t float64) vec.Vec2 {
	return vec.Vec2{X: b.X(t), Y: b.Y(t)}
}

// dCurve returns the curve of a "D" shape which bulges to the right from
// the left edge, spanning the full cell height.
func dCurve(cx, height int) CubicBezier {
	bottom := float64(height - 1)
	return CubicBezier{
		C1:  vec.Vec2{X: float64(cx)},
		C2:  vec.Vec2{X: float64(cx), Y: bottom},
		End: vec.Vec2{Y: bottom},
	}
}

// findBezierForD returns the largest control point x for which the "D"
// curve still fits into the given width.
func findBezierForD(width, height int) int {
	cx := width - 1
	last := cx
	for {
		if dCurve(cx, height).X(0.5) > float64(width-1) {
			return last
		}
		last = cx
		cx++
	}
}

// findTForX searches for the parameter at which the curve reaches x,
// starting from startT.  The search covers the first half of the curve,
// where x is increasing.
func findTForX(b CubicBezier, x int, startT float64) float64 {
	const tLimit = 0.5
	target := float64(x)
	if math.Abs(b.X(startT)-target) < 0.1 {
		return startT
	}
	inc := tLimit - startT
	if inc <= 0 {
		return startT
	}
	for {
		q := b.X(startT + inc)
		if math.Abs(q-target) < 0.1 {
			return startT + inc
		}
		if q > target {
			inc /= 2
			if inc < 1e-6 {
				Logger().Error("cubic Bézier search did not converge", "x", x)
				return startT
			}
		} else {
			startT += inc
			inc = tLimit - startT
			if inc <= 0 {
				return startT
			}
		}
	}
}

// bezierLimits appends one limit per column between the two halves of a
// "D" curve.  It stops once the halves are within two pixels, so that no
// isolated pixel is left at the tip.
func (c *canvas) bezierLimits(b CubicBezier) {
	startX := int(b.X(0))
	maxX := int(b.X(0.5))
	t := 0.0
	for x := startX; x <= maxX; x++ {
		if x > startX {
			t = findTForX(b, x, t)
		}
		upper, lower := b.Y(t), b.Y(1-t)
		if math.Abs(upper-lower) <= 2 {
			break
		}
		c.appendLimit(Limit{Upper: lower, Lower: upper})
	}
}

// drawCurve samples the curve and stamps a brush of the level's thickness
// at every pixel it visits.  Each pixel is stamped at most once.
func (c *canvas) drawCurve(level int, cv curve) {
	if c.height <= 0 {
		return
	}
	th := c.thickness(level, true)
	delta, extra := th/2, th%2
	round := c.cfg.CurveStamp == graphics.LineCapRound

	n := 8 * c.height
	seen := make(map[uint64]struct{}, n)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		v := cv.At(t)
		p := Point{X: int32(v.X), Y: int32(v.Y)}
		k := p.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		if round {
			c.stampDisc(int(p.X), int(p.Y), delta, extra)
		} else {
			x, y := int(p.X), int(p.Y)
			c.fillRect(x-delta, y-delta, x+delta+extra, y+delta+extra)
		}
	}
}

// stampDisc fills the pixels of the square brush whose centres lie within
// the inscribed circle.
func (c *canvas) stampDisc(px, py, delta, extra int) {
	r := float64(2*delta+extra) / 2
	cx := float64(px) + float64(extra)/2
	cy := float64(py) + float64(extra)/2
	for y := max(py-delta, 0); y < min(py+delta+extra, c.height); y++ {
		dy := float64(y) + 0.5 - cy
		for x := max(px-delta, 0); x < min(px+delta+extra, c.width); x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r*r {
				c.mask[y*c.width+x] = 255
			}
		}
	}
}

// circle is an arc around origin, from angle start to start+amt (radians).
type circle struct {
	origin     vec.Vec2
	radius     float64
	start, amt float64
}

func newCircle(origin vec.Vec2, radius, startDeg, endDeg float64) circle {
	const conv = math.Pi / 180
	return circle{
		origin: origin,
		radius: radius,
		start:  startDeg * conv,
		amt:    (endDeg - startDeg) * conv,
	}
}

func (c circle) At(t float64) vec.Vec2 {
	phi := c.start + c.amt*t
	return c.origin.Add(vec.Vec2{X: c.radius * math.Cos(phi), Y: c.radius * math.Sin(phi)})
}

// rectircle is one quadrant of the curve
//
//	(|x|/a)^(2a/r) + (|y|/a)^(2b/r) = 1
//
// where 2a is the cell width, 2b is the cell height and r is the radius.
// Four cells, one per quadrant, together show the complete shape; the
// origin is at the shared corner of the four cells.
type rectircle struct {
	a, b       float64
	yexp, xexp float64
	adjustX    float64
	cellWidth  float64
	left, top  bool
}

func (c *canvas) rectircle(which edge) rectircle {
	radius := float64(c.width) / 2
	odd := (c.width / c.factor) & 1
	return rectircle{
		a:         float64(c.halfWidth()),
		b:         float64(c.halfHeight()),
		yexp:      float64(c.height) / radius,
		xexp:      radius / float64(c.width),
		adjustX:   float64(odd * c.factor),
		cellWidth: float64(c.width),
		left:      which&edgeLeft != 0,
		top:       which&edgeTop != 0,
	}
}

func (r rectircle) At(t float64) vec.Vec2 {
	// As t runs from 0 to 1, |y|/b runs from 0 to 1 as well.
	var p vec.Vec2
	if r.top {
		p.Y = r.b * (2 - t)
	} else {
		p.Y = r.b * t
	}
	xterm := math.Abs(r.a * math.Pow(1-math.Pow(t, r.yexp), r.xexp))
	if r.left {
		p.X = math.Floor(r.cellWidth - xterm - r.adjustX)
	} else {
		p.X = math.Ceil(xterm)
	}
	return p
}
