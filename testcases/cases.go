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

var lineCases = []TestCase{
	cell("light_horizontal", '─', 10, 20),
	cell("heavy_horizontal", '━', 10, 20),
	cell("light_vertical", '│', 10, 20),
	cell("heavy_vertical", '┃', 10, 20),
	cell("dashed_double", '╌', 12, 24),
	cell("dashed_triple_vertical", '┆', 12, 24),
	cell("dashed_quadruple_heavy", '┉', 16, 32),
	cell("half_left", '╴', 10, 20),
	cell("half_down_heavy", '╻', 10, 20),
	cell("mixed_half", '╼', 10, 20),
	cell("fading_right", '\uf5d2', 16, 32),
	cell("fading_up", '\uf5d5', 16, 32),
	cell("double_horizontal", '═', 10, 20),
	cell("double_vertical", '║', 10, 20),
	cell("progress_left_empty", '\uee00', 10, 20),
	cell("progress_middle_full", '\uee04', 10, 20),
	cell("progress_right_full", '\uee05', 10, 20),
}

var junctionCases = []TestCase{
	cell("corner_down_right", '┌', 10, 20),
	cell("corner_heavy_up_left", '┛', 10, 20),
	cell("corner_mixed", '┍', 10, 20),
	cell("tee_right", '├', 10, 20),
	cell("tee_heavy_left", '┫', 10, 20),
	cell("tee_down_heavy", '┳', 10, 20),
	cell("tee_mixed", '┞', 10, 20),
	cell("cross", '┼', 10, 20),
	cell("cross_heavy", '╋', 10, 20),
	cell("cross_mixed", '╃', 10, 20),
	cell("double_cross", '╬', 12, 24),
	cell("double_tee", '╠', 12, 24),
	cell("double_corner", '╔', 12, 24),
	cell("double_corner_up_left", '╝', 12, 24),
	cell("single_double_tee", '╞', 12, 24),
	cell("single_double_cross", '╫', 12, 24),
}

var powerlineCases = []TestCase{
	withOutline(cell("triangle_right", '\ue0b0', 20, 40), powerlineTriangle(true)),
	withOutline(cell("triangle_left", '\ue0b2', 20, 40), powerlineTriangle(false)),
	cell("triangle_right_inverted", '\ue0d7', 10, 20),
	cell("chevron_right", '\ue0b1', 10, 20),
	cell("chevron_left", '\ue0b3', 10, 20),
	cell("half_circle_right", '\ue0b4', 10, 20),
	cell("half_circle_left", '\ue0b6', 10, 20),
	cell("half_circle_outline", '\ue0b5', 10, 20),
	cell("diagonal_left", '╲', 10, 20),
	cell("diagonal_cross", '╳', 10, 20),
	withOutline(cell("corner_lower_left", '◣', 20, 40), cornerTriangle(false, true)),
	withOutline(cell("corner_lower_right", '◢', 20, 40), cornerTriangle(false, false)),
	withOutline(cell("corner_upper_left", '◤', 20, 40), cornerTriangle(true, true)),
	withOutline(cell("corner_upper_right", '◥', 20, 40), cornerTriangle(true, false)),
}

var blockCases = []TestCase{
	cell("full", '█', 10, 20),
	cell("upper_half", '▀', 10, 20),
	cell("lower_eighth", '▁', 10, 20),
	cell("lower_three_eighths", '▃', 9, 19),
	cell("left_half", '▌', 10, 20),
	cell("left_seven_eighths", '▉', 11, 21),
	cell("right_eighth", '▕', 10, 20),
	cell("upper_and_lower_eighth", '🮀', 10, 20),
	cell("frame_corner", '🭽', 10, 20),
	cell("quadrant_lower_left", '▖', 10, 20),
	cell("quadrants_diagonal", '▚', 11, 21),
	cell("quadrants_three", '▟', 10, 20),
}

var shadeCases = []TestCase{
	cell("light", '░', 12, 24),
	cell("medium", '▒', 12, 24),
	cell("dark", '▓', 12, 24),
	cell("left_half_medium", '🮌', 12, 24),
	cell("upper_half_inverted", '🮒', 12, 24),
	cell("checker", '🮕', 16, 32),
	cell("checker_inverted", '🮖', 16, 32),
	cell("stripes", '🮗', 16, 32),
	cell("hatch", '🮘', 16, 32),
	cell("hatch_rotated", '🮙', 16, 32),
	cell("shaded_corner", '🮜', 16, 32),
	cell("shaded_corner_lower_left", '🮟', 16, 32),
}

var mosaicCases = []TestCase{
	withOutline(cell("lower_left_sliver", '🬼', 20, 40), mosaic(true, 0, 2./3, 0.5, 1)),
	withOutline(cell("lower_left_wedge", '🬽', 20, 40), mosaic(true, 0, 2./3, 1, 1)),
	withOutline(cell("lower_steep", '🭀', 20, 40), mosaic(true, 0, 0, 0.5, 1)),
	withOutline(cell("lower_middle_band", '🭑', 20, 40), mosaic(true, 0, 1./3, 1, 2./3)),
	withOutline(cell("upper_left_sliver", '🭒', 20, 40), mosaic(false, 0, 2./3, 0.5, 1)),
	withOutline(cell("upper_middle_band", '🭧', 20, 40), mosaic(false, 0, 1./3, 1, 2./3)),
	cell("half_triangle_left", '🭨', 10, 20),
	cell("half_triangle_up", '🭭', 10, 20),
	cell("half_triangles_left_right", '🮛', 10, 20),
	cell("half_triangles_up_down", '🮚', 10, 20),
	cell("mid_lines_upper_left", '🮠', 10, 20),
	cell("mid_lines_diamond", '🮮', 10, 20),
}

var curveCases = []TestCase{
	cell("rounded_down_right", '╭', 10, 20),
	cell("rounded_up_left", '╯', 10, 20),
	cell("rounded_pair", '\uf5dc', 12, 24),
	cell("rounded_with_line", '\uf5e8', 12, 24),
	cell("commit_solid", '\uf5ee', 12, 24),
	cell("commit_hollow_cross", '\uf60d', 12, 24),
	cell("spinner_first", '\uee06', 16, 32),
	cell("spinner_last", '\uee0b', 16, 32),
	cell("circle", '○', 16, 32),
	cell("disc", '●', 16, 32),
	cell("fish_eye", '◉', 16, 32),
	cell("upper_half_circle", '◠', 16, 32),
	cell("quarter_arc", '◜', 16, 32),
}

var aspectCases = []TestCase{
	cell("tiny_cross", '┼', 1, 1),
	cell("tiny_triangle", '\ue0b0', 1, 1),
	cell("tiny_shade", '▒', 2, 2),
	cell("wide_corner", '╭', 64, 2),
	cell("wide_circle", '○', 64, 2),
	cell("tall_half_circle", '\ue0b4', 2, 64),
	cell("tall_double_cross", '╬', 2, 64),
	cell("wide_spinner", '\uee08', 64, 2),
	{Name: "high_dpi_cross", Rune: '╋', Width: 20, Height: 40, DPIX: 192, DPIY: 192},
	{Name: "anisotropic_corner", Rune: '┏', Width: 10, Height: 20, DPIX: 72, DPIY: 144},
}
