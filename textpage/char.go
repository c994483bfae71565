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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
)

// CharKind classifies a character in a [TextPage].
type CharKind uint8

// The valid values of CharKind.
const (
	// KindNormal is an ordinary character taken from the page content.
	KindNormal CharKind = iota

	// KindGenerated marks characters inserted by layout analysis, such as
	// spaces between words and line feeds, which have no glyph on the page.
	KindGenerated

	// KindNonUnicode marks glyphs for which no Unicode mapping is known.
	KindNonUnicode

	// KindHyphen marks a hyphen at the end of a line which splits a word.
	KindHyphen

	// KindComboWord marks the first character after a word was joined
	// across a line break.
	KindComboWord
)

// Char is one character record of a TextPage.  Char values are immutable
// once the TextPage is built.
type Char struct {
	// Rune is the Unicode code point of the character.  For
	// [KindNonUnicode] characters this is U+FFFD.
	Rune rune

	// Kind classifies the character.
	Kind CharKind

	// Font is the name of the font resource the glyph was drawn with.
	// Generated characters have an empty font name.
	Font pdf.Name

	// FontRef refers to the font dictionary in the document store.
	FontRef pdf.Reference

	// FontSize is the font size in text space units.  Always positive for
	// non-generated characters.
	FontSize float64

	// Origin is the glyph origin on the baseline, in page space.
	Origin vec.Vec2

	// GlyphBox is the tight bounding box of the rendered glyph outline,
	// in page space.
	GlyphBox rect.Rect

	// Box is the typographic bounding box (glyph advance by line height),
	// in page space.  All hit testing uses this box.
	Box rect.Rect

	// Matrix is the text rendering matrix for the glyph.
	Matrix matrix.Matrix
}

// Glyph is the input record handed to [New] by the external content parser,
// one per glyph in content-stream order.
type Glyph struct {
	// Rune is the Unicode code point for the glyph.  If the parser could
	// not map the glyph to Unicode, NoUnicode must be set and Rune is
	// ignored.
	Rune rune

	// NoUnicode marks glyphs without a known Unicode mapping.
	NoUnicode bool

	Font     pdf.Name
	FontRef  pdf.Reference
	FontSize float64
	Origin   vec.Vec2
	GlyphBox rect.Rect
	Box      rect.Rect
	Matrix   matrix.Matrix
}

// Source yields the glyphs of one parsed page in content-stream order.
type Source interface {
	EachGlyph(fn func(Glyph) error) error
}

// GlyphSlice adapts a glyph slice to the [Source] interface.
type GlyphSlice []Glyph

// EachGlyph implements the [Source] interface.
func (gg GlyphSlice) EachGlyph(fn func(Glyph) error) error {
	for _, g := range gg {
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}

// ParseFlag selects how page content is turned into the character sequence.
type ParseFlag int

// The valid parse flags.  Flags can be combined by bitwise or.
const (
	// ParseNormal applies layout analysis: characters are ordered in
	// visual reading order, word gaps become generated spaces, line breaks
	// become generated line feeds, and words hyphenated across lines are
	// joined.
	ParseNormal ParseFlag = 0

	// ParseOutputHyphen keeps the hyphen (and the line break after it)
	// when a word is split across lines.
	ParseOutputHyphen ParseFlag = 1 << iota

	// ParseStreamOrder keeps characters in content-stream order and
	// disables layout analysis.
	ParseStreamOrder
)

// Range is a contiguous run of character indices.
type Range struct {
	Start int
	Count int
}

// IsEmpty reports whether the range contains no characters.
func (r Range) IsEmpty() bool {
	return r.Count <= 0
}

// emptyRange is returned by queries that legitimately find nothing.
var emptyRange = Range{Start: -1, Count: 0}
