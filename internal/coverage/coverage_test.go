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

package coverage

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func polygon(pts ...vec.Vec2) path.Path {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close().Iter()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	p := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})
	f := New(rect.Rect{URx: 10, URy: 1})

	coverage := make([]float32, 10)
	f.Fill(p, NonZero, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestAlignedSquare(t *testing.T) {
	p := polygon(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 3, Y: 1}, vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 1, Y: 3})
	mask := New(rect.Rect{}).Mask(p, NonZero, 4, 4)
	for y := range 4 {
		for x := range 4 {
			var want byte
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 255
			}
			if got := mask[y*4+x]; got != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestHalfPixelOffset(t *testing.T) {
	p := polygon(vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 0.5, Y: 1})
	mask := New(rect.Rect{}).Mask(p, NonZero, 2, 1)
	if mask[0] != 128 || mask[1] != 255 {
		t.Errorf("got %v, want [128 255]", mask)
	}
}

// TestCTM checks that the transformation is applied to the path, by
// mapping a 4×4 square of supersampled units onto one pixel.
func TestCTM(t *testing.T) {
	p := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 8, Y: 0}, vec.Vec2{X: 8, Y: 2}, vec.Vec2{X: 0, Y: 2})
	f := New(rect.Rect{})
	f.CTM = matrix.Matrix{0.25, 0, 0, 0.25, 0, 0}
	mask := f.Mask(p, NonZero, 3, 1)
	want := []byte{128, 128, 0}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("pixel %d: got %d, want %d", i, mask[i], want[i])
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	outer := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	inner := []vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		for _, poly := range [][]vec.Vec2{outer, inner} {
			if !yield(path.CmdMoveTo, poly[:1]) {
				return
			}
			for i := 1; i < len(poly); i++ {
				if !yield(path.CmdLineTo, poly[i:i+1]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}

	f := New(rect.Rect{})
	nz := f.Mask(p, NonZero, 4, 4)
	eo := f.Mask(p, EvenOdd, 4, 4)
	centre := 1*4 + 1
	if nz[centre] != 255 {
		t.Errorf("nonzero: centre pixel is %d, want 255", nz[centre])
	}
	if eo[centre] != 0 {
		t.Errorf("even-odd: centre pixel is %d, want 0", eo[centre])
	}
	if eo[0] != 255 {
		t.Errorf("even-odd: corner pixel is %d, want 255", eo[0])
	}
}

func TestCircleArea(t *testing.T) {
	// four cubic arcs approximating a circle of radius 3
	const k = 0.5522847498
	c := vec.Vec2{X: 4, Y: 4}
	r := 3.0
	pt := func(x, y float64) vec.Vec2 { return c.Add(vec.Vec2{X: x, Y: y}) }
	p := (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, k*r), pt(k*r, r), pt(0, r)).
		CubeTo(pt(-k*r, r), pt(-r, k*r), pt(-r, 0)).
		CubeTo(pt(-r, -k*r), pt(-k*r, -r), pt(0, -r)).
		CubeTo(pt(k*r, -r), pt(r, -k*r), pt(r, 0)).
		Close()

	var total float64
	New(rect.Rect{URx: 8, URy: 8}).Fill(p.Iter(), NonZero, func(y, xMin int, cov []float32) {
		for _, v := range cov {
			total += float64(v)
		}
	})
	// the inscribed polygon loses up to (2/3)·Flatness·perimeter
	want := math.Pi * r * r
	if math.Abs(total-want) > 2.0/3*defaultFlatness*2*math.Pi*r {
		t.Errorf("area %.3f, want %.3f", total, want)
	}
}

func TestClipOutside(t *testing.T) {
	p := polygon(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 12, Y: 10}, vec.Vec2{X: 12, Y: 12})
	called := false
	New(rect.Rect{URx: 4, URy: 4}).Fill(p, NonZero, func(int, int, []float32) {
		called = true
	})
	if called {
		t.Error("emit called for a path outside the clip rectangle")
	}
}
