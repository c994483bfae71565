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

	"golang.org/x/text/width"
)

// foldRune normalises a rune for pattern comparison according to the
// search flags.  Whitespace folds to a plain space so that generated
// line breaks still match a space in the pattern.
func (s *Search) foldRune(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	if s.flags&IgnoreWidth != 0 {
		if f := width.LookupRune(r).Folded(); f != 0 {
			r = f
		}
	}
	if s.flags&MatchCase == 0 {
		r = unicode.ToLower(r)
	}
	return r
}

// foldPattern re-folds the raw pattern under the current flags.
func (s *Search) foldPattern() {
	runes := []rune(s.rawPattern)
	s.pat = make([]rune, len(runes))
	for i, r := range runes {
		s.pat[i] = s.foldRune(r)
	}
}
