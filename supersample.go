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

import "math"

// SupersampleFactor is the linear magnification used for antialiased glyphs.
const SupersampleFactor = 4

// downsample averages each factor×factor block of src and adds the result,
// with saturation, to the corresponding pixel of dst.
func downsample(src, dst *canvas) {
	f := src.factor
	area := f * f
	for y := range dst.height {
		for x := range dst.width {
			total := 0
			for sy := y * f; sy < (y+1)*f; sy++ {
				row := src.mask[sy*src.width:]
				for sx := x * f; sx < (x+1)*f; sx++ {
					total += int(row[sx])
				}
			}
			i := y*dst.width + x
			dst.mask[i] = plus(dst.mask[i], byte(total/area))
		}
	}
}

// mirrored runs draw on a blank scratch canvas of the same geometry and
// merges the horizontally flipped result into c.
func (c *canvas) mirrored(draw func(*canvas)) {
	scratch := &canvas{
		mask:   make([]byte, c.width*c.height),
		width:  c.width,
		height: c.height,
		factor: c.factor,
		dpiX:   c.dpiX,
		dpiY:   c.dpiY,
		cfg:    c.cfg,
	}
	draw(scratch)
	for y := range c.height {
		src := scratch.mask[y*c.width : (y+1)*c.width]
		dst := c.mask[y*c.width : (y+1)*c.width]
		for x, v := range src {
			j := c.width - 1 - x
			dst[j] = max(dst[j], v)
		}
	}
}

// applyMask scales every pixel of c by the corresponding mask coverage.
func (c *canvas) applyMask(mask []byte) {
	for i := range c.width * c.height {
		c.mask[i] = byte(math.Round(float64(mask[i]) / 255 * float64(c.mask[i])))
	}
}
