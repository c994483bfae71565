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
	"strings"

	"golang.org/x/text/unicode/bidi"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
)

// minOverlapR is the fraction of a character box that must be covered for
// the character to count as "inside" a query rectangle.
const minOverlapR = 0.5

// TextPage is the character index for one page snapshot.
type TextPage struct {
	flags  ParseFlag
	chars  []Char
	stream []rune
	lines  []Range

	// lastRects caches the segmentation computed by the most recent call
	// to RectCount.
	lastRects []TextRect
}

// Order selects the order in which [TextPage.Text] concatenates the page
// text.
type Order int

// The valid values of Order.
const (
	// OrderStream is the raw content-stream order.
	OrderStream Order = iota

	// OrderDisplay is visual reading order.  Right-to-left runs are
	// reordered with the Unicode bidirectional algorithm.
	OrderDisplay
)

// Flags returns the parse flags the page was built with.
func (tp *TextPage) Flags() ParseFlag {
	return tp.flags
}

// CharCount returns the number of characters in the index.
func (tp *TextPage) CharCount() int {
	return len(tp.chars)
}

// CharAt returns the character record with the given index.
func (tp *TextPage) CharAt(i int) (Char, error) {
	if i < 0 || i >= len(tp.chars) {
		return Char{}, pdf.Invalidf("character index %d out of range [0,%d)", i, len(tp.chars))
	}
	return tp.chars[i], nil
}

// Chars returns the text of the characters [start,start+count).
// A count of -1 selects all characters up to the end of the page; a count
// beyond the end of the page is clamped, not an error.
func (tp *TextPage) Chars(start, count int) (string, error) {
	n := len(tp.chars)
	if start < 0 || start > n {
		return "", pdf.Invalidf("start index %d out of range [0,%d]", start, n)
	}
	if count < -1 {
		return "", pdf.Invalidf("invalid count %d", count)
	}
	if count == -1 || count > n-start {
		count = n - start
	}
	var b strings.Builder
	for _, c := range tp.chars[start : start+count] {
		b.WriteRune(c.Rune)
	}
	return b.String(), nil
}

// Text returns the full text of the page in the given order.
func (tp *TextPage) Text(order Order) string {
	switch order {
	case OrderStream:
		return string(tp.stream)
	default:
		var b strings.Builder
		for _, line := range tp.lines {
			var lb strings.Builder
			for _, c := range tp.chars[line.Start : line.Start+line.Count] {
				lb.WriteRune(c.Rune)
			}
			b.WriteString(displayLine(lb.String()))
		}
		return b.String()
	}
}

// displayLine reorders one line of text into visual order using the Unicode
// bidirectional algorithm.
func displayLine(s string) string {
	p := &bidi.Paragraph{}
	p.SetString(s)
	o, err := p.Order()
	if err != nil || o.NumRuns() <= 1 {
		return s
	}
	var b strings.Builder
	for i := 0; i < o.NumRuns(); i++ {
		run := o.Run(i)
		t := run.String()
		if run.Direction() == bidi.RightToLeft {
			t = bidi.ReverseString(t)
		}
		b.WriteString(t)
	}
	return b.String()
}

// IndexAtPosition returns the index of the character whose typographic box,
// expanded by tolerance in every direction, contains the given point in
// page space.  If several characters match, the nearest one wins, with ties
// broken in favour of the smallest index.  The function returns -1 if no
// character is hit.
func (tp *TextPage) IndexAtPosition(x, y, tolerance float64) (int, error) {
	if tolerance < 0 {
		return -1, pdf.Invalidf("negative tolerance %g", tolerance)
	}
	best := -1
	bestDist := 0.0
	for i, c := range tp.chars {
		if c.Kind == KindGenerated {
			continue
		}
		box := c.Box
		box.LLx -= tolerance
		box.LLy -= tolerance
		box.URx += tolerance
		box.URy += tolerance
		if x < box.LLx || x > box.URx || y < box.LLy || y > box.URy {
			continue
		}
		d := distToRect(c.Box, x, y)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, nil
}

// TextInRect returns the text of all characters whose boxes lie mostly
// inside r, concatenated in index order.
func (tp *TextPage) TextInRect(r rect.Rect) string {
	var b strings.Builder
	for _, c := range tp.chars {
		if c.Kind == KindGenerated {
			continue
		}
		if overlapFraction(c.Box, r) >= minOverlapR {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// ToDevice converts a page-space rectangle to device space using the
// page-to-device transform supplied by the rendering subsystem.
func ToDevice(m matrix.Matrix, r rect.Rect) rect.Rect {
	corners := []vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.LLx, Y: r.URy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
	}
	var out rect.Rect
	for i, p := range corners {
		qx, qy := m.Apply(p.X, p.Y)
		if i == 0 {
			out = rect.Rect{LLx: qx, LLy: qy, URx: qx, URy: qy}
			continue
		}
		if qx < out.LLx {
			out.LLx = qx
		}
		if qy < out.LLy {
			out.LLy = qy
		}
		if qx > out.URx {
			out.URx = qx
		}
		if qy > out.URy {
			out.URy = qy
		}
	}
	return out
}

// rectUnion returns the smallest rectangle containing both a and b.
func rectUnion(a, b rect.Rect) rect.Rect {
	if b.LLx < a.LLx {
		a.LLx = b.LLx
	}
	if b.LLy < a.LLy {
		a.LLy = b.LLy
	}
	if b.URx > a.URx {
		a.URx = b.URx
	}
	if b.URy > a.URy {
		a.URy = b.URy
	}
	return a
}

// overlapFraction returns the fraction of the area of a covered by b.
func overlapFraction(a, b rect.Rect) float64 {
	w := min(a.URx, b.URx) - max(a.LLx, b.LLx)
	h := min(a.URy, b.URy) - max(a.LLy, b.LLy)
	if w <= 0 || h <= 0 {
		return 0
	}
	area := (a.URx - a.LLx) * (a.URy - a.LLy)
	if area <= 0 {
		// degenerate boxes count as fully covered when they intersect
		return 1
	}
	return w * h / area
}

// distToRect returns the distance from a point to a rectangle, zero if the
// point is inside.
func distToRect(r rect.Rect, x, y float64) float64 {
	dx := max(max(r.LLx-x, 0), x-r.URx)
	dy := max(max(r.LLy-y, 0), y-r.URy)
	if dx > dy {
		return dx
	}
	return dy
}
