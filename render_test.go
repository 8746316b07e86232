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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/boxdraw/config"
	"seehuhn.de/go/boxdraw/internal/coverage"
	"seehuhn.de/go/boxdraw/testcases"
)

// render draws r into a fresh buffer and returns the glyph part.
func render(t testing.TB, r rune, w, h int) []byte {
	t.Helper()
	buf := make([]byte, BufferSize(w, h))
	if err := RenderBoxChar(nil, r, buf, w, h, 96, 96); err != nil {
		t.Fatalf("U+%04X at %dx%d: %v", r, w, h, err)
	}
	return buf[:w*h]
}

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				if !Supported(tc.Rune) {
					t.Fatalf("U+%04X is not supported", tc.Rune)
				}
				w, h := tc.Width, tc.Height
				dpiX, dpiY := tc.DPI()
				buf := make([]byte, BufferSize(w, h))
				if err := RenderBoxChar(nil, tc.Rune, buf, w, h, dpiX, dpiY); err != nil {
					t.Fatal(err)
				}
				if w >= 8 && h >= 8 && !slices.ContainsFunc(buf[:w*h], isSet) {
					t.Error("glyph is blank")
				}
			})
		}
	}
}

func isSet(b byte) bool {
	return b != 0
}

// TestOutlines compares supersampled glyphs to the exact coverage of the
// shapes they approximate.
func TestOutlines(t *testing.T) {
	f := coverage.New(rect.Rect{})
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Outline == nil {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := render(t, tc.Rune, w, h)

				f.CTM = tc.CTM
				expected := f.Mask(tc.Outline.Iter(), coverage.NonZero, w, h)

				if err := compareCoverage(name, expected, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// compareCoverage checks that actual is within the error of 4×4
// supersampling of the exact coverage.  Point sampling misjudges at most
// half a sample per sample row for each edge, and downsampling rounds
// down by less than one step of 1/16.
func compareCoverage(name string, expected, actual []byte, w, h int) error {
	const maxDiff = 96
	const maxMean = 16

	var failures []string
	total := 0
	for i := range w * h {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		total += diff
		if diff > maxDiff {
			failures = append(failures,
				fmt.Sprintf("pixel (%d,%d): got %d, want %d", i%w, i/w, actual[i], expected[i]))
		}
	}
	if mean := float64(total) / float64(w*h); mean > maxMean {
		failures = append(failures, fmt.Sprintf("mean difference %.1f (want <=%d)", mean, maxMean))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		if len(failures) > 5 {
			failures = append(failures[:5], "...")
		}
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// Create 3-panel image: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green: too little coverage, red: too much
			diff := int(expected[i]) - int(actual[i])
			c := color.RGBA{A: 255}
			if diff > 0 {
				c.G = uint8(diff)
			} else {
				c.R = uint8(-diff)
			}
			img.Set(x+w, y, c)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestEverySupportedRune(t *testing.T) {
	sizes := [][2]int{{10, 20}, {7, 15}, {1, 1}, {64, 2}, {2, 64}, {3, 3}}
	for r := range Glyphs() {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			buf := make([]byte, BufferSize(w, h))
			if err := RenderBoxChar(nil, r, buf, w, h, 96, 96); err != nil {
				t.Errorf("U+%04X at %dx%d: %v", r, w, h, err)
			}
		}
	}
}

// TestDeterministic checks that the result depends only on the arguments,
// not on the previous buffer contents.
func TestDeterministic(t *testing.T) {
	const w, h = 11, 23
	n := BufferSize(w, h)
	clean := make([]byte, n)
	dirty := make([]byte, n)
	for r := range Glyphs() {
		clear(clean)
		for i := range dirty {
			dirty[i] = 0xAB
		}
		if err := RenderBoxChar(nil, r, clean, w, h, 96, 96); err != nil {
			t.Fatal(err)
		}
		if err := RenderBoxChar(nil, r, dirty, w, h, 96, 96); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(clean[:w*h], dirty[:w*h]) {
			t.Errorf("U+%04X: result depends on buffer contents", r)
		}

		// render again into the used buffer
		if err := RenderBoxChar(nil, r, dirty, w, h, 96, 96); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(clean[:w*h], dirty[:w*h]) {
			t.Errorf("U+%04X: second rendering differs", r)
		}
	}
}

func TestFullBlock(t *testing.T) {
	for _, sz := range [][2]int{{10, 20}, {1, 1}, {13, 7}} {
		mask := render(t, '█', sz[0], sz[1])
		for i, v := range mask {
			if v != 255 {
				t.Fatalf("%dx%d: pixel %d is %d", sz[0], sz[1], i, v)
			}
		}
	}
}

// TestHorizontalLine checks the band of ─ in a 10x20 cell at 96 dpi.
// The thickness is rounded up, ceil(1*96/72) = 2 pixels, not rounded to
// the nearest integer (which would give 1 pixel).
func TestHorizontalLine(t *testing.T) {
	const w, h = 10, 20
	mask := render(t, '─', w, h)
	for y := range h {
		var want byte
		if y == 9 || y == 10 {
			want = 255
		}
		for x := range w {
			if got := mask[y*w+x]; got != want {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestLinesJoin(t *testing.T) {
	// The horizontal line of a cross must line up with a plain horizontal
	// line, so that neighbouring cells connect.
	const w, h = 10, 20
	line := render(t, '─', w, h)
	for _, r := range []rune{'┼', '├', '┤', '┬', '┴', '┌', '┐'} {
		mask := render(t, r, w, h)
		for _, x := range []int{0, w - 1} {
			for y := range h {
				if line[y*w+x] == 0 {
					continue
				}
				if mask[y*w+x] == 0 && hasArm(r, x == 0) {
					t.Errorf("%c: gap at (%d,%d)", r, x, y)
				}
			}
		}
	}
}

func hasArm(r rune, left bool) bool {
	switch r {
	case '├', '┌':
		return !left
	case '┤', '┐':
		return left
	}
	return true
}

func TestThicknessMonotone(t *testing.T) {
	const w, h = 20, 40
	count := func(r rune) int {
		n := 0
		for _, v := range render(t, r, w, h) {
			if v != 0 {
				n++
			}
		}
		return n
	}
	if thin, fat := count('─'), count('━'); thin >= fat {
		t.Errorf("thin line has %d pixels, heavy line %d", thin, fat)
	}
	if thin, fat := count('│'), count('┃'); thin >= fat {
		t.Errorf("thin line has %d pixels, heavy line %d", thin, fat)
	}
}

func TestMirrorPairs(t *testing.T) {
	type pair struct {
		a, b rune
	}
	check := func(p pair, w, h int) {
		t.Helper()
		a := render(t, p.a, w, h)
		b := render(t, p.b, w, h)
		for y := range h {
			for x := range w {
				va, vb := a[y*w+x], b[y*w+w-1-x]
				if va != vb {
					t.Errorf("%c/%c at %dx%d: (%d,%d) is %d, mirror is %d",
						p.a, p.b, w, h, x, y, va, vb)
				}
			}
		}
	}

	for _, p := range []pair{
		{'▌', '▐'},
		{'▏', '▕'},
		{'▘', '▝'},
		{'▖', '▗'},
		{'\ue0b4', '\ue0b6'},
		{'\ue0b5', '\ue0b7'},
		{'◗', '◖'},
	} {
		check(p, 16, 32)
	}

	// shapes whose geometry is symmetric for every cell size
	for _, p := range []pair{
		{'\ue0b0', '\ue0b2'},
		{'\ue0d7', '\ue0d6'},
		{'◣', '◢'},
		{'◤', '◥'},
		{'🭬', '🭮'},
		{'🭨', '🭪'},
		{'🭭', '🭭'},
		{'🭯', '🭯'},
		{'🭩', '🭩'},
		{'🭫', '🭫'},
		{'🮛', '🮛'},
		{'🮚', '🮚'},
	} {
		for _, sz := range [][2]int{{10, 20}, {9, 19}, {16, 32}, {7, 15}} {
			check(p, sz[0], sz[1])
		}
	}
}

func TestRoundedCorner(t *testing.T) {
	// The arc of ╭ must meet the line of │ at the bottom edge and the line
	// of ─ at the right edge, to within one pixel.
	const w, h = 10, 20
	corner := render(t, '╭', w, h)
	vline := render(t, '│', w, h)
	hline := render(t, '─', w, h)

	span := func(get func(i int) byte, n int) (lo, hi int) {
		lo, hi = -1, -1
		for i := range n {
			if get(i) > 127 {
				if lo < 0 {
					lo = i
				}
				hi = i
			}
		}
		return lo, hi
	}
	cl, ch := span(func(x int) byte { return corner[(h-1)*w+x] }, w)
	vl, vh := span(func(x int) byte { return vline[(h-1)*w+x] }, w)
	if cl < 0 || abs(cl-vl) > 1 || abs(ch-vh) > 1 {
		t.Errorf("bottom edge: arc covers [%d,%d], line covers [%d,%d]", cl, ch, vl, vh)
	}
	cl, ch = span(func(y int) byte { return corner[y*w+w-1] }, h)
	hl, hh := span(func(y int) byte { return hline[y*w+w-1] }, h)
	if cl < 0 || abs(cl-hl) > 1 || abs(ch-hh) > 1 {
		t.Errorf("right edge: arc covers [%d,%d], line covers [%d,%d]", cl, ch, hl, hh)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestShadeLevels(t *testing.T) {
	const w, h = 12, 24
	count := func(r rune) int {
		n := 0
		for _, v := range render(t, r, w, h) {
			if v == 255 {
				n++
			}
		}
		return n
	}
	light, medium, dark := count('░'), count('▒'), count('▓')
	if !(light < medium && medium < dark) {
		t.Errorf("shades not ordered: %d, %d, %d", light, medium, dark)
	}
	if medium != w*h/2 {
		t.Errorf("medium shade covers %d pixels, want %d", medium, w*h/2)
	}
}

func TestInputErrors(t *testing.T) {
	buf := make([]byte, BufferSize(10, 20))
	cases := []struct {
		name   string
		buf    []byte
		w, h   int
		dx, dy float64
		want   error
	}{
		{"zero width", buf, 0, 20, 96, 96, ErrInvalidCell},
		{"negative height", buf, 10, -1, 96, 96, ErrInvalidCell},
		{"zero dpi", buf, 10, 20, 0, 96, ErrInvalidDPI},
		{"nan dpi", buf, 10, 20, 96, math.NaN(), ErrInvalidDPI},
		{"infinite dpi", buf, 10, 20, math.Inf(1), 96, ErrInvalidDPI},
		{"short buffer", buf[:10*20], 10, 20, 96, 96, ErrBufferTooSmall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i := range c.buf {
				c.buf[i] = 7
			}
			err := RenderBoxChar(nil, '┼', c.buf, c.w, c.h, c.dx, c.dy)
			if !errors.Is(err, c.want) {
				t.Fatalf("got %v, want %v", err, c.want)
			}
			for i, v := range c.buf {
				if v != 7 {
					t.Fatalf("byte %d modified", i)
				}
			}
		})
	}
}

func TestUnsupportedRune(t *testing.T) {
	var logged bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logged, nil)))
	defer SetLogger(nil)

	if Supported('A') || Supported('\ue000') {
		t.Fatal("unexpected glyph definition")
	}

	const w, h = 10, 20
	buf := make([]byte, BufferSize(w, h))
	for i := range buf {
		buf[i] = 0xFF
	}
	if err := RenderBoxChar(nil, '\ue000', buf, w, h, 96, 96); err != nil {
		t.Fatal(err)
	}
	if slices.ContainsFunc(buf[:w*h], isSet) {
		t.Error("unsupported rune did not give a blank cell")
	}
	if out := logged.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "U+E000") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestGlyphsSorted(t *testing.T) {
	var prev rune = -1
	n := 0
	for r := range Glyphs() {
		if r <= prev {
			t.Fatalf("U+%04X after U+%04X", r, prev)
		}
		if !Supported(r) {
			t.Fatalf("U+%04X listed but not supported", r)
		}
		prev = r
		n++
	}
	if n != len(glyphs) {
		t.Errorf("iterated %d glyphs, table has %d", n, len(glyphs))
	}

	// complete blocks of the table
	for r := rune(0x2500); r <= 0x257f; r++ {
		if !Supported(r) {
			t.Errorf("box drawing U+%04X is missing", r)
		}
	}
	for r := rune(0x2580); r <= 0x259f; r++ {
		if !Supported(r) {
			t.Errorf("block element U+%04X is missing", r)
		}
	}
}

func TestConfigScale(t *testing.T) {
	const w, h = 20, 40
	cfg := config.Default()
	cfg.BoxDrawingScale[1] = 3
	buf := make([]byte, BufferSize(w, h))
	if err := RenderBoxChar(cfg, '─', buf, w, h, 72, 72); err != nil {
		t.Fatal(err)
	}
	rows := 0
	for y := range h {
		if buf[y*w] != 0 {
			rows++
		}
	}
	if rows != 3 {
		t.Errorf("line is %d rows high, want 3", rows)
	}
}

func FuzzRender(f *testing.F) {
	f.Add(int32('╭'), uint8(10), uint8(20), 96.0, 96.0)
	f.Add(int32('\ue0b0'), uint8(1), uint8(1), 72.0, 300.0)
	f.Add(int32('🮜'), uint8(64), uint8(2), 1.0, 1.0)
	f.Fuzz(func(t *testing.T, r int32, w, h uint8, dpiX, dpiY float64) {
		if w == 0 || h == 0 || !(dpiX > 0 && dpiX < 2000) || !(dpiY > 0 && dpiY < 2000) {
			return
		}
		buf := make([]byte, BufferSize(int(w), int(h)))
		if err := RenderBoxChar(nil, rune(r), buf, int(w), int(h), dpiX, dpiY); err != nil {
			t.Fatal(err)
		}
	})
}
