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
	"math"
	"sort"
	"unicode"

	"seehuhn.de/go/geom/rect"

	pdf "github.com/textlayer/pdftext"
)

// TextRect is one visual rectangle of a character range: a maximal run of
// characters on one line sharing baseline rotation and font size.
type TextRect struct {
	// Box is the union of the typographic boxes of the run, in page space.
	Box rect.Rect

	// Chars is the character index sub-range covered by the rectangle.
	Chars Range

	// Rotation is the baseline rotation of the run.
	Rotation Rotation
}

// RectCount segments the character range [start,start+count) into visual
// rectangles and returns their number.  A count of -1 selects all
// characters up to the end of the page.  The segmentation is cached for
// use by [TextPage.RectAt] and [TextPage.BaselineRotation] until the next
// RectCount call.
//
// RectCount returns -1 if the range is invalid.
func (tp *TextPage) RectCount(start, count int) int {
	n := len(tp.chars)
	if start < 0 || start > n || count < -1 {
		return -1
	}
	if count == -1 || count > n-start {
		count = n - start
	}
	tp.lastRects = tp.segmentRange(Range{Start: start, Count: count})
	return len(tp.lastRects)
}

// RectAt returns the i-th rectangle of the segmentation computed by the
// most recent [TextPage.RectCount] call.
func (tp *TextPage) RectAt(i int) (TextRect, error) {
	if i < 0 || i >= len(tp.lastRects) {
		return TextRect{}, pdf.Invalidf("rectangle index %d out of range [0,%d)", i, len(tp.lastRects))
	}
	return tp.lastRects[i], nil
}

// BaselineRotation returns the baseline rotation of the i-th rectangle of
// the segmentation computed by the most recent [TextPage.RectCount] call.
// It returns RotationUnknown if i is out of range.
func (tp *TextPage) BaselineRotation(i int) Rotation {
	if i < 0 || i >= len(tp.lastRects) {
		return RotationUnknown
	}
	return tp.lastRects[i].Rotation
}

// RectsInRect returns all visual rectangles of the page which intersect r.
// A rectangle fully outside the page text yields an empty result, not an
// error.
func (tp *TextPage) RectsInRect(r rect.Rect) []TextRect {
	var res []TextRect
	for _, tr := range tp.segmentRange(Range{Start: 0, Count: len(tp.chars)}) {
		if overlapFraction(tr.Box, r) > 0 {
			res = append(res, tr)
		}
	}
	return res
}

// CharRangeForRect returns the character index range spanned by the
// characters whose boxes lie mostly inside r.  If no character qualifies,
// the empty range is returned.
func (tp *TextPage) CharRangeForRect(r rect.Rect) Range {
	first, last := -1, -1
	for i, c := range tp.chars {
		if c.Kind == KindGenerated {
			continue
		}
		if overlapFraction(c.Box, r) >= minOverlapR {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return emptyRange
	}
	return Range{Start: first, Count: last - first + 1}
}

// RectsForRange returns the visual rectangles covering the character range,
// without touching the RectCount cache.
func (tp *TextPage) RectsForRange(r Range) []rect.Rect {
	segs := tp.segmentRange(r)
	res := make([]rect.Rect, len(segs))
	for i, s := range segs {
		res[i] = s.Box
	}
	return res
}

// segmentRange splits the character range into runs, breaking at line
// boundaries, whitespace, baseline rotation changes, and font size changes.
func (tp *TextPage) segmentRange(r Range) []TextRect {
	if r.Start < 0 || r.Count <= 0 {
		return nil
	}
	end := r.Start + r.Count
	if end > len(tp.chars) {
		end = len(tp.chars)
	}

	var res []TextRect
	var cur *TextRect
	flush := func() {
		if cur != nil {
			res = append(res, *cur)
			cur = nil
		}
	}
	for i := r.Start; i < end; i++ {
		c := tp.chars[i]
		if unicode.IsSpace(c.Rune) {
			flush()
			continue
		}
		rot := rotationOf(c)
		if cur != nil {
			prev := tp.chars[i-1]
			if rot != cur.Rotation ||
				math.Abs(c.FontSize-prev.FontSize) > 1e-6 ||
				!tp.sameLine(i-1, i) {
				flush()
			}
		}
		if cur == nil {
			cur = &TextRect{
				Box:      c.Box,
				Chars:    Range{Start: i, Count: 1},
				Rotation: rot,
			}
			continue
		}
		cur.Box = rectUnion(cur.Box, c.Box)
		cur.Chars.Count = i - cur.Chars.Start + 1
	}
	flush()
	return res
}

// sameLine reports whether the characters with indices i and j lie on the
// same visual line.  The line ranges are contiguous and ordered, so a
// binary search suffices.
func (tp *TextPage) sameLine(i, j int) bool {
	return tp.lineOf(i) == tp.lineOf(j)
}

func (tp *TextPage) lineOf(i int) int {
	k := sort.Search(len(tp.lines), func(k int) bool {
		return tp.lines[k].Start+tp.lines[k].Count > i
	})
	if k < len(tp.lines) && i >= tp.lines[k].Start {
		return k
	}
	return -1
}
