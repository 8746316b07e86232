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
	"slices"
	"testing"
)

func TestEightRange(t *testing.T) {
	cases := []struct {
		size  int
		sizes []int
	}{
		{8, []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{11, []int{1, 1, 2, 2, 2, 1, 1, 1}},
		{16, []int{2, 2, 2, 2, 2, 2, 2, 2}},
		{15, []int{1, 2, 2, 2, 2, 2, 2, 2}},
		{23, []int{2, 3, 3, 3, 3, 3, 3, 3}},
	}
	for _, tc := range cases {
		var got []int
		pos := 0
		for i := range 8 {
			r := eightRange(tc.size, i)
			if r.Start != pos {
				t.Errorf("size %d, eighth %d: starts at %d, want %d", tc.size, i, r.Start, pos)
			}
			got = append(got, r.End-r.Start)
			pos = r.End
		}
		if pos != tc.size {
			t.Errorf("size %d: bars end at %d", tc.size, pos)
		}
		if !slices.Equal(got, tc.sizes) {
			t.Errorf("size %d: got %v, want %v", tc.size, got, tc.sizes)
		}
	}
}

func TestEightRangeSmall(t *testing.T) {
	// Cells narrower than eight pixels get one-pixel bars which stay
	// inside the cell.
	for i := range 8 {
		r := eightRange(5, i)
		if r.End-r.Start != 1 || r.Start < 0 || r.End > 5 {
			t.Errorf("eighth %d: %v", i, r)
		}
	}
	if r := eightRange(5, 7); r.Start != 4 {
		t.Errorf("last eighth starts at %d", r.Start)
	}
}
