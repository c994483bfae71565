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
	"unicode"
)

// WordRangeAtPosition returns the character range of the word at the given
// page-space position.  A word is a maximal run of word characters; CJK
// ideographs form single-character words.  If no character lies within
// tolerance of the position, the empty range is returned.
func (tp *TextPage) WordRangeAtPosition(x, y, tolerance float64) (Range, error) {
	i, err := tp.IndexAtPosition(x, y, tolerance)
	if err != nil {
		return emptyRange, err
	}
	if i < 0 {
		return emptyRange, nil
	}
	return tp.wordAt(i), nil
}

// wordAt returns the word range containing character index i.
func (tp *TextPage) wordAt(i int) Range {
	c := tp.chars[i]
	if !isWordRune(c.Rune) {
		return Range{Start: i, Count: 1}
	}
	if isCJK(c.Rune) {
		// each ideograph is a word of its own
		return Range{Start: i, Count: 1}
	}
	start := i
	for start > 0 {
		r := tp.chars[start-1].Rune
		if !isWordRune(r) || isCJK(r) || !tp.sameLine(start-1, start) {
			break
		}
		start--
	}
	end := i + 1
	for end < len(tp.chars) {
		r := tp.chars[end].Rune
		if !isWordRune(r) || isCJK(r) || !tp.sameLine(end-1, end) {
			break
		}
		end++
	}
	return Range{Start: start, Count: end - start}
}

// isWordRune reports whether r can be part of a word.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r)
}

// isCJK reports whether r is a CJK ideograph or kana character.
func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// isWordBoundary reports whether a match starting (or ending) between
// character indices i-1 and i sits on a word boundary.  Used by
// whole-word search.
func (tp *TextPage) isWordBoundary(i int) bool {
	if i <= 0 || i >= len(tp.chars) {
		return true
	}
	a, b := tp.chars[i-1].Rune, tp.chars[i].Rune
	if !isWordRune(a) || !isWordRune(b) {
		return true
	}
	return isCJK(a) || isCJK(b)
}
