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

// Command genpdf writes a PDF proof sheet of all test cases.  Every pixel
// of a rendered glyph is drawn as a grey square; where a test case has an
// exact outline, the outline is stroked on top.  Optionally the sheet is
// converted to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/boxdraw"
	"seehuhn.de/go/boxdraw/testcases"
)

// unit is the size of one glyph pixel, in PDF points.
const (
	unit = 3.0
	gap  = 12.0
)

type entry struct {
	tc   testcases.TestCase
	mask []byte
	x, y float64 // top left corner on the page
}

func main() {
	out := flag.String("o", "testdata/proof.pdf", "output file name")
	pngOut := flag.String("png", "", "also render the sheet to this PNG file using Ghostscript")
	flag.Parse()

	entries, width, height, err := prepare()
	if err != nil {
		log.Fatal(err)
	}
	if err := generatePDF(*out, entries, width, height); err != nil {
		log.Fatal(err)
	}
	if *pngOut != "" {
		if err := renderPNG(*out, *pngOut); err != nil {
			log.Fatal(err)
		}
	}
}

// prepare renders all glyphs and arranges them in one row per category.
func prepare() ([]entry, float64, float64, error) {
	var entries []entry
	var width float64
	y := gap
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		x := gap
		rowHeight := 0.0
		for _, tc := range testcases.All[category] {
			w, h := tc.Width, tc.Height
			buf := make([]byte, boxdraw.BufferSize(w, h))
			dpiX, dpiY := tc.DPI()
			if err := boxdraw.RenderBoxChar(nil, tc.Rune, buf, w, h, dpiX, dpiY); err != nil {
				return nil, 0, 0, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			entries = append(entries, entry{tc: tc, mask: buf[:w*h], x: x, y: y})
			x += float64(w)*unit + gap
			rowHeight = max(rowHeight, float64(h)*unit)
		}
		width = max(width, x)
		y += rowHeight + gap
	}
	return entries, width, y, nil
}

func generatePDF(fname string, entries []entry, width, height float64) error {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// glyph coordinates have y pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	for _, e := range entries {
		w, h := e.tc.Width, e.tc.Height
		page.SetFillColor(color.DeviceGray(0))
		page.Rectangle(e.x, e.y, float64(w)*unit, float64(h)*unit)
		page.Fill()

		for i, v := range e.mask {
			if v == 0 {
				continue
			}
			px, py := i%w, i/w
			page.SetFillColor(color.DeviceGray(float64(v) / 255))
			page.Rectangle(e.x+float64(px)*unit, e.y+float64(py)*unit, unit, unit)
			page.Fill()
		}

		if e.tc.Outline == nil {
			continue
		}

		// The outline is transformed by hand, so that the line width
		// does not depend on the glyph scale.
		ctm := e.tc.CTM
		apply := func(p vec.Vec2) vec.Vec2 {
			return vec.Vec2{
				X: e.x + unit*(ctm[0]*p.X+ctm[2]*p.Y+ctm[4]),
				Y: e.y + unit*(ctm[1]*p.X+ctm[3]*p.Y+ctm[5]),
			}
		}
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.5)
		page.SetLineCap(graphics.LineCapRound)
		for cmd, pts := range e.tc.Outline.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				p := apply(pts[0])
				page.MoveTo(p.X, p.Y)
			case path.CmdLineTo:
				p := apply(pts[0])
				page.LineTo(p.X, p.Y)
			case path.CmdCubeTo:
				c1, c2, p := apply(pts[0]), apply(pts[1]), apply(pts[2])
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r144: two pixels per point
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
