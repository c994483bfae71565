// github.com/textlayer/pdftext - a library for PDF text extraction and annotations
// Copyright (C) 2026  The pdftext authors
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

package textpage

import (
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Test fixtures lay glyphs out on a fixed-pitch grid: every glyph is
// 6 units wide at 12pt, with 2 units of descent and 10 units above the
// baseline.
const (
	testFontSize = 12.0
	testAdvance  = 6.0
	testDescent  = 2.0
	testAscent   = 10.0
)

// glyphAt places one 12pt glyph with its origin at (x, y).
func glyphAt(r rune, x, y float64) Glyph {
	box := rect.Rect{
		LLx: x, LLy: y - testDescent,
		URx: x + testAdvance, URy: y + testAscent,
	}
	return Glyph{
		Rune:     r,
		Font:     "F0",
		FontSize: testFontSize,
		Origin:   vec.Vec2{X: x, Y: y},
		GlyphBox: rect.Rect{
			LLx: x + 0.5, LLy: y,
			URx: x + testAdvance - 0.5, URy: y + testAscent - 2,
		},
		Box:    box,
		Matrix: matrix.Identity,
	}
}

// lineGlyphs places the runes of s on one baseline starting at (x, y),
// one grid cell per rune.  Spaces become real space glyphs.
func lineGlyphs(s string, x, y float64) []Glyph {
	var gg []Glyph
	for _, r := range s {
		gg = append(gg, glyphAt(r, x, y))
		x += testAdvance
	}
	return gg
}

// mustPage builds a TextPage or fails the test.
func mustPage(t *testing.T, flags ParseFlag, glyphs ...[]Glyph) *TextPage {
	t.Helper()
	var all GlyphSlice
	for _, gg := range glyphs {
		all = append(all, gg...)
	}
	tp, err := New(all, flags)
	if err != nil {
		t.Fatal(err)
	}
	return tp
}

// singleLine builds a one-line page from s with explicit space glyphs.
func singleLine(t *testing.T, s string) *TextPage {
	t.Helper()
	return mustPage(t, ParseNormal, lineGlyphs(s, 100, 700))
}
