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

// Command export renders all test cases into a PNG contact sheet, one row
// per category.  Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/boxdraw"
	"seehuhn.de/go/boxdraw/testcases"
)

const (
	pad        = 8
	labelWidth = 7 * len("U+1FB9C")
	lineHeight = 13
)

type tile struct {
	category string
	tc       testcases.TestCase
	img      *image.Gray
	at       image.Point
}

func main() {
	out := flag.String("o", "testdata/sheet.png", "output file name")
	scale := flag.Int("scale", 4, "magnification of the glyphs")
	list := flag.Bool("list", false, "print the rendered code points")
	flag.Parse()

	if *scale < 1 {
		log.Fatalf("invalid scale %d", *scale)
	}

	tiles, err := renderAll()
	if err != nil {
		log.Fatal(err)
	}
	bounds := layout(tiles, *scale)

	sheet := image.NewGray(bounds)
	for i := range tiles {
		t := &tiles[i]
		dst := image.Rectangle{
			Min: t.at,
			Max: t.at.Add(image.Pt(t.tc.Width**scale, t.tc.Height**scale)),
		}
		draw.NearestNeighbor.Scale(sheet, dst, t.img, t.img.Bounds(), draw.Src, nil)
		label(sheet, t.at.X, dst.Max.Y+lineHeight, fmt.Sprintf("U+%04X", t.tc.Rune))
		if *list {
			fmt.Printf("%s_%s\tU+%04X\t%s\n", t.category, t.tc.Name, t.tc.Rune, runenames.Name(t.tc.Rune))
		}
	}

	if err := writePNG(*out, sheet); err != nil {
		log.Fatal(err)
	}
}

func renderAll() ([]tile, error) {
	var tiles []tile
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			w, h := tc.Width, tc.Height
			buf := make([]byte, boxdraw.BufferSize(w, h))
			dpiX, dpiY := tc.DPI()
			if err := boxdraw.RenderBoxChar(nil, tc.Rune, buf, w, h, dpiX, dpiY); err != nil {
				return nil, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			img := &image.Gray{
				Pix:    buf[:w*h],
				Stride: w,
				Rect:   image.Rect(0, 0, w, h),
			}
			tiles = append(tiles, tile{category: category, tc: tc, img: img})
		}
	}
	return tiles, nil
}

// layout places the tiles, starting a new row for every category, and
// returns the size of the sheet.
func layout(tiles []tile, scale int) image.Rectangle {
	x, y := pad, pad
	rowHeight := 0
	width := 0
	for i := range tiles {
		t := &tiles[i]
		if i > 0 && t.category != tiles[i-1].category {
			x = pad
			y += rowHeight + pad
			rowHeight = 0
		}
		t.at = image.Pt(x, y)
		x += max(t.tc.Width*scale, labelWidth) + pad
		rowHeight = max(rowHeight, t.tc.Height*scale+lineHeight+4)
		width = max(width, x)
	}
	return image.Rect(0, 0, width, y+rowHeight+pad)
}

func label(dst draw.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray{Y: 160}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func writePNG(fname string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
