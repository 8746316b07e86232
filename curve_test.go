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
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/boxdraw/config"
)

func TestFindTForX(t *testing.T) {
	var logged bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logged, nil)))
	defer SetLogger(nil)

	b := dCurve(10, 20)
	for _, x := range []int{0, 3, 5, 7} {
		tt := findTForX(b, x, 0)
		if got := b.X(tt); math.Abs(got-float64(x)) >= 0.1 {
			t.Errorf("x=%d: curve is at %g for t=%g", x, got, tt)
		}
	}
	if logged.Len() > 0 {
		t.Errorf("unexpected log output %q", logged.String())
	}
}

func TestFindTForXBehindStart(t *testing.T) {
	var logged bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logged, nil)))
	defer SetLogger(nil)

	// X(0.4) = 7.2, so x=0 cannot be reached by searching forward.
	b := dCurve(10, 20)
	if got := findTForX(b, 0, 0.4); got != 0.4 {
		t.Errorf("got t=%g, want 0.4", got)
	}
	out := logged.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "x=0") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestRoundedCornerFollowsCurve(t *testing.T) {
	const w, h = 10, 10
	mask := render(t, '╭', w, h)

	ss := &canvas{
		width:  w * SupersampleFactor,
		height: h * SupersampleFactor,
		factor: SupersampleFactor,
		dpiX:   96,
		dpiY:   96,
		cfg:    config.Default(),
	}
	rc := ss.rectircle(topLeft)
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		p := rc.At(tt)
		px := int(p.X) / SupersampleFactor
		py := int(p.Y) / SupersampleFactor
		if !inkNear(mask, w, h, px, py) {
			t.Errorf("t=%g: no ink within 1px of (%d,%d)", tt, px, py)
		}
	}
}

// inkNear reports whether some pixel within one pixel of (x, y) is at
// least half covered.
func inkNear(mask []byte, w, h, x, y int) bool {
	for yy := max(y-1, 0); yy <= min(y+1, h-1); yy++ {
		for xx := max(x-1, 0); xx <= min(x+1, w-1); xx++ {
			if mask[yy*w+xx] > 127 {
				return true
			}
		}
	}
	return false
}
