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
	"math"

	"seehuhn.de/go/boxdraw/config"
)

// FontCellMetrics gives the size of a character cell and the position of
// the lines drawn by the font, all in pixels.  Positions are measured
// from the top of the cell.
type FontCellMetrics struct {
	CellWidth, CellHeight  int
	Baseline               int
	UnderlinePosition      int
	UnderlineThickness     int
	StrikethroughPosition  int
	StrikethroughThickness int
}

// DecorationGeometry is the band of rows covered by a decoration.
type DecorationGeometry struct {
	Top, Height int
}

// checkBuffer panics if buf cannot hold a cell.
func (m FontCellMetrics) checkBuffer(buf []byte) {
	if len(buf) < m.CellWidth*m.CellHeight {
		panic(fmt.Sprintf("boxdraw: buffer of %d bytes for %dx%d cell",
			len(buf), m.CellWidth, m.CellHeight))
	}
}

// fillRows sets the rows [y1, y2) to 255 between x1 and x2, clipped to
// the cell.
func (m FontCellMetrics) fillRows(buf []byte, x1, x2, y1, y2 int) {
	x1 = max(x1, 0)
	x2 = min(x2, m.CellWidth)
	for y := max(y1, 0); y < min(y2, m.CellHeight); y++ {
		row := buf[y*m.CellWidth:]
		for x := x1; x < x2; x++ {
			row[x] = 255
		}
	}
}

// band returns the rows covered by a line of the given thickness,
// centred on pos.
func (m FontCellMetrics) band(pos, thickness int) DecorationGeometry {
	top := sub(pos, thickness/2)
	h := max(0, min(thickness, m.CellHeight-top))
	return DecorationGeometry{Top: top, Height: h}
}

// AddStraightUnderline draws a single underline into buf.
func AddStraightUnderline(buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	g := m.band(m.UnderlinePosition, m.UnderlineThickness)
	m.fillRows(buf, 0, m.CellWidth, g.Top, g.Top+g.Height)
	return g
}

// AddStrikethrough draws a strikethrough line into buf.
func AddStrikethrough(buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	g := m.band(m.StrikethroughPosition, m.StrikethroughThickness)
	m.fillRows(buf, 0, m.CellWidth, g.Top, g.Top+g.Height)
	return g
}

// AddMissingGlyph draws the outline of the cell, used in place of a
// character the font cannot show.
func AddMissingGlyph(buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	th := max(0, min(m.UnderlineThickness, m.StrikethroughThickness, m.CellWidth))
	w, h := m.CellWidth, m.CellHeight
	m.fillRows(buf, 0, w, 0, th)
	m.fillRows(buf, 0, w, h-th, h)
	m.fillRows(buf, 0, th, 0, h)
	m.fillRows(buf, w-th, w, 0, h)
	return DecorationGeometry{Height: h}
}

// AddDoubleUnderline draws two one-pixel lines, at least one empty row
// apart.
func AddDoubleUnderline(buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	last := m.CellHeight - 1
	a := min(sub(m.UnderlinePosition, m.UnderlineThickness), last)
	b := min(max(m.UnderlinePosition, 0), last)
	top, bottom := min(a, b), max(a, b)
	if deficit := 2 - (bottom - top); deficit > 0 {
		switch {
		case bottom+deficit < m.CellHeight:
			bottom += deficit
		case bottom < last:
			bottom++
			if deficit > 1 {
				top -= deficit - 1
			}
		default:
			top -= deficit
		}
	}
	top = max(0, min(top, last))
	bottom = max(0, min(bottom, last))
	m.fillRows(buf, 0, m.CellWidth, top, top+1)
	m.fillRows(buf, 0, m.CellWidth, bottom, bottom+1)
	return DecorationGeometry{Top: top, Height: bottom + 1 - top}
}

// distributeDots computes the dot size and the start offset of every dot,
// relative to the nominal position j*size.  Pixels left over by the
// division are given to the gaps in turn.
func distributeDots(space, num int) (size int, offsets []int) {
	size = max(1, space/(2*num))
	gaps := make([]int, num)
	for i := range gaps {
		gaps[i] = size
	}
	extra := sub(space, 2*num*size)
	for i := 0; extra > 0; i = (i + 1) % num {
		gaps[i]++
		extra--
	}
	gaps[0] /= 2

	offsets = make([]int, num)
	sum := 0
	for i, g := range gaps {
		sum += g
		offsets[i] = sum
	}
	return size, offsets
}

// AddDottedUnderline draws a row of evenly spaced dots.
func AddDottedUnderline(buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	g := m.band(m.UnderlinePosition, m.UnderlineThickness)
	num := m.CellWidth / (2 * max(1, m.UnderlineThickness))
	if num == 0 {
		return g
	}
	size, offsets := distributeDots(m.CellWidth, num)
	for j, off := range offsets {
		x := j*size + off
		m.fillRows(buf, x, x+size, g.Top, g.Top+g.Height)
	}
	return g
}

// AddDashedUnderline draws two dashes, one at each end of the cell.
func AddDashedUnderline(buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	g := m.band(m.UnderlinePosition, m.UnderlineThickness)
	quarter := m.CellWidth / 4
	dash := m.CellWidth - 3*quarter
	m.fillRows(buf, 0, dash, g.Top, g.Top+g.Height)
	m.fillRows(buf, 3*quarter, 3*quarter+dash, g.Top, g.Top+g.Height)
	return g
}

// AddCurlUnderline draws an antialiased wave below the baseline.  The
// style setting selects between a sparse or dense and a thin or thick
// wave.
func AddCurlUnderline(cfg *config.Config, buf []byte, m FontCellMetrics) DecorationGeometry {
	m.checkBuffer(buf)
	if cfg == nil {
		cfg = config.Default()
	}
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		return DecorationGeometry{}
	}
	style := cfg.UndercurlStyle
	maxY := m.CellHeight - 1

	periods := 2.0
	if style&config.UndercurlDense != 0 {
		periods = 4
	}
	xfactor := periods * math.Pi / float64(max(1, m.CellWidth-1))

	ut := max(0, m.UnderlineThickness)
	top := sub(m.UnderlinePosition, ut/2)
	halfHeight := max(1, (m.CellHeight-top)/4)

	var thickness int
	if style&config.UndercurlThick != 0 {
		thickness = max(halfHeight, ut)
	} else {
		reduce := 2
		if ut < 3 {
			reduce = 1
		}
		thickness = sub(max(1, ut), reduce)
	}

	// keep the wave inside the cell
	position := m.UnderlinePosition + 2*halfHeight
	if position+halfHeight > maxY {
		position = maxY - halfHeight
	}

	add := func(x, y, v int) int {
		y = max(0, min(y+position, maxY))
		i := y*m.CellWidth + x
		buf[i] = byte(min(255, int(buf[i])+v))
		return y
	}

	minY, maxYSeen := m.CellHeight, -1
	note := func(y int) {
		minY = min(minY, y)
		maxYSeen = max(maxYSeen, y)
	}

	// A cosine wave has slope at most one here, so one pixel pair per
	// column is enough.
	for x := range m.CellWidth {
		y := float64(halfHeight) * math.Cos(float64(x)*xfactor)
		y1 := int(math.Floor(y - float64(thickness)))
		y2 := int(math.Ceil(y))
		intensity := int(255 * math.Abs(y-math.Floor(y)))
		i1, i2 := 255-intensity, intensity

		if yc := add(x, y1, i1); i1 > 0 {
			note(yc)
		}
		if yc := add(x, y2, i2); i2 > 0 {
			note(yc)
		}
		for t := 1; t <= thickness; t++ {
			note(add(x, y1+t, 255))
		}
	}
	if maxYSeen < 0 {
		return DecorationGeometry{}
	}
	return DecorationGeometry{Top: minY, Height: maxYSeen - minY + 1}
}

// ptToPixels converts a length in points to a pixel count between 1 and
// limit.
func ptToPixels(pt, dpi float64, limit int) int {
	return max(1, min(int(math.Round(pt*dpi/72)), limit))
}

// vert fills a column band at the left or right edge of the cell.
func (m FontCellMetrics) vert(buf []byte, left bool, widthPt, dpiX float64) {
	w := ptToPixels(widthPt, dpiX, m.CellWidth)
	x := 0
	if !left {
		x = sub(m.CellWidth, w)
	}
	m.fillRows(buf, x, x+w, 0, m.CellHeight)
}

// horz fills a row band at the top or bottom of the cell and returns its
// first row.
func (m FontCellMetrics) horz(buf []byte, top bool, heightPt, dpiY float64) int {
	h := ptToPixels(heightPt, dpiY, m.CellHeight)
	y := 0
	if !top {
		y = sub(m.CellHeight, h)
	}
	m.fillRows(buf, 0, m.CellWidth, y, y+h)
	return y
}

// AddBeamCursor draws a vertical bar cursor at the left edge of the cell.
func AddBeamCursor(cfg *config.Config, buf []byte, m FontCellMetrics, dpiX float64) DecorationGeometry {
	m.checkBuffer(buf)
	if cfg == nil {
		cfg = config.Default()
	}
	m.vert(buf, true, cfg.CursorBeamThickness, dpiX)
	return DecorationGeometry{Height: m.CellHeight}
}

// AddUnderlineCursor draws a horizontal bar cursor at the bottom of the
// cell.
func AddUnderlineCursor(cfg *config.Config, buf []byte, m FontCellMetrics, dpiY float64) DecorationGeometry {
	m.checkBuffer(buf)
	if cfg == nil {
		cfg = config.Default()
	}
	top := m.horz(buf, false, cfg.CursorUnderlineThickness, dpiY)
	return DecorationGeometry{Top: top, Height: m.CellHeight - top}
}

// AddHollowCursor draws a one point outline around the cell.
func AddHollowCursor(buf []byte, m FontCellMetrics, dpiX, dpiY float64) DecorationGeometry {
	m.checkBuffer(buf)
	m.vert(buf, true, 1, dpiX)
	m.vert(buf, false, 1, dpiX)
	m.horz(buf, true, 1, dpiY)
	m.horz(buf, false, 1, dpiY)
	return DecorationGeometry{Height: m.CellHeight}
}

// Decoration identifies one of the decoration glyphs.
type Decoration int

// The available decorations.
const (
	StraightUnderline Decoration = iota
	DoubleUnderline
	DottedUnderline
	DashedUnderline
	CurlUnderline
	Strikethrough
	MissingGlyph
	BeamCursor
	UnderlineCursor
	HollowCursor
)

var decorationNames = [...]string{
	StraightUnderline: "straight underline",
	DoubleUnderline:   "double underline",
	DottedUnderline:   "dotted underline",
	DashedUnderline:   "dashed underline",
	CurlUnderline:     "curl underline",
	Strikethrough:     "strikethrough",
	MissingGlyph:      "missing glyph",
	BeamCursor:        "beam cursor",
	UnderlineCursor:   "underline cursor",
	HollowCursor:      "hollow cursor",
}

func (d Decoration) String() string {
	if d >= 0 && int(d) < len(decorationNames) {
		return decorationNames[d]
	}
	return fmt.Sprintf("Decoration(%d)", int(d))
}

// DrawDecoration draws the given decoration into buf, which must hold at
// least CellWidth*CellHeight bytes.  Like the Add* functions, it does not
// clear buf first.
func DrawDecoration(cfg *config.Config, d Decoration, buf []byte, m FontCellMetrics, dpiX, dpiY float64) (DecorationGeometry, error) {
	switch d {
	case StraightUnderline:
		return AddStraightUnderline(buf, m), nil
	case DoubleUnderline:
		return AddDoubleUnderline(buf, m), nil
	case DottedUnderline:
		return AddDottedUnderline(buf, m), nil
	case DashedUnderline:
		return AddDashedUnderline(buf, m), nil
	case CurlUnderline:
		return AddCurlUnderline(cfg, buf, m), nil
	case Strikethrough:
		return AddStrikethrough(buf, m), nil
	case MissingGlyph:
		return AddMissingGlyph(buf, m), nil
	case BeamCursor:
		return AddBeamCursor(cfg, buf, m, dpiX), nil
	case UnderlineCursor:
		return AddUnderlineCursor(cfg, buf, m, dpiY), nil
	case HollowCursor:
		return AddHollowCursor(buf, m, dpiX, dpiY), nil
	}
	return DecorationGeometry{}, fmt.Errorf("unknown decoration %d", int(d))
}
