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

import "unicode"

// isSentenceEnd reports whether r terminates a sentence.
func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

// sentenceBounds expands the character range [start,end) outward to the
// enclosing sentence.  The sentence begins after the previous sentence
// terminator (skipping intervening whitespace) and ends with the next
// terminator, or at the page boundaries.
func (tp *TextPage) sentenceBounds(start, end int) (int, int) {
	lo := start
	for lo > 0 && !isSentenceEnd(tp.chars[lo-1].Rune) {
		lo--
	}
	for lo < start && unicode.IsSpace(tp.chars[lo].Rune) {
		lo++
	}
	hi := end
	for hi < len(tp.chars) {
		r := tp.chars[hi].Rune
		hi++
		if isSentenceEnd(r) {
			break
		}
	}
	return lo, hi
}
