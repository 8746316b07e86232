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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/boxdraw/internal/coverage"
)

// BenchmarkRenderAll renders every supported glyph into one reused buffer.
func BenchmarkRenderAll(b *testing.B) {
	const w, h = 10, 20
	buf := make([]byte, BufferSize(w, h))
	var runes []rune
	for r := range Glyphs() {
		runes = append(runes, r)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, r := range runes {
			_ = RenderBoxChar(nil, r, buf, w, h, 96, 96)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	runes := []rune{'┼', '╬', '\ue0b0', '╭', '▒', '🮜', '\uee08'}
	sizes := [][2]int{{8, 16}, {20, 40}, {64, 128}}

	for _, r := range runes {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			b.Run(fmt.Sprintf("U+%04X/%dx%d", r, w, h), func(b *testing.B) {
				buf := make([]byte, BufferSize(w, h))
				b.ReportAllocs()
				for b.Loop() {
					_ = RenderBoxChar(nil, r, buf, w, h, 96, 96)
				}
			})
		}
	}
}

// The powerline triangle, drawn by general purpose rasterisers for
// comparison.

func BenchmarkTriangleVector(b *testing.B) {
	for _, size := range []int{20, 64} {
		w, h := size/2, size
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			r := vector.NewRasterizer(w, h)
			dst := image.NewAlpha(image.Rect(0, 0, w, h))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(w, h)
				r.MoveTo(0, 0)
				r.LineTo(float32(w), float32(h)/2)
				r.LineTo(0, float32(h))
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkTriangleCoverage(b *testing.B) {
	for _, size := range []int{20, 64} {
		w, h := size/2, size
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			f := coverage.New(rect.Rect{URx: float64(w), URy: float64(h)})
			dst := make([]byte, w*h)
			p := (&path.Data{}).
				MoveTo(vec.Vec2{}).
				LineTo(vec.Vec2{X: float64(w), Y: float64(h) / 2}).
				LineTo(vec.Vec2{Y: float64(h)}).
				Close()
			triangle := p.Iter()

			b.ReportAllocs()
			for b.Loop() {
				f.Fill(triangle, coverage.NonZero, func(y, xMin int, cov []float32) {
					row := dst[y*w+xMin:]
					for i, c := range cov {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}
