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
	"unicode/utf8"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
)

// Thresholds for layout analysis, relative to the font size.
// The values follow the usual choices in text extraction libraries.
const (
	// maxLineGapR is the maximum difference in depth for two characters
	// to be considered part of the same line.
	maxLineGapR = 0.5

	// minSpaceGapR is the minimum gap in reading direction which is
	// reported as a word break.
	minSpaceGapR = 0.3
)

// New builds the character index for one page snapshot.
//
// The glyphs are consumed in one pass; time and memory are linear in the
// number of glyphs on the page.
func New(src Source, flags ParseFlag) (*TextPage, error) {
	var raw []Char
	err := src.EachGlyph(func(g Glyph) error {
		if g.FontSize <= 0 {
			return pdf.Invalidf("glyph font size %g", g.FontSize)
		}
		c := Char{
			Rune:     g.Rune,
			Kind:     KindNormal,
			Font:     g.Font,
			FontRef:  g.FontRef,
			FontSize: g.FontSize,
			Origin:   g.Origin,
			GlyphBox: g.GlyphBox,
			Box:      g.Box,
			Matrix:   g.Matrix,
		}
		if g.NoUnicode {
			c.Rune = utf8.RuneError
			c.Kind = KindNonUnicode
		}
		raw = append(raw, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	stream := make([]rune, len(raw))
	for i, c := range raw {
		stream[i] = c.Rune
	}

	tp := &TextPage{
		flags:  flags,
		stream: stream,
	}
	if flags&ParseStreamOrder != 0 {
		tp.chars = raw
		tp.lines = streamLines(raw)
	} else {
		tp.chars, tp.lines = layout(raw, flags)
	}
	return tp, nil
}

// streamLines segments a stream-order character sequence into lines without
// reordering.  A new line starts when the baseline rotation changes or the
// depth jumps by more than the line tolerance.
func streamLines(chars []Char) []Range {
	var lines []Range
	start := 0
	for i := 1; i <= len(chars); i++ {
		brk := i == len(chars)
		if !brk {
			prev, cur := chars[i-1], chars[i]
			if rotationOf(cur) != rotationOf(prev) {
				brk = true
			} else {
				d := math.Abs(depthOf(cur) - depthOf(prev))
				brk = d > maxLineGapR*math.Max(prev.FontSize, cur.FontSize)
			}
		}
		if brk {
			lines = append(lines, Range{Start: start, Count: i - start})
			start = i
		}
	}
	return lines
}

// layout reorders the raw characters into visual reading order, inserts
// generated word and line separators, and joins hyphenated words.
func layout(raw []Char, flags ParseFlag) ([]Char, []Range) {
	if len(raw) == 0 {
		return nil, nil
	}

	// cluster characters into lines of equal rotation and similar depth
	idx := make([]int, len(raw))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := raw[idx[a]], raw[idx[b]]
		ra, rb := rotationOf(ca), rotationOf(cb)
		if ra != rb {
			return ra < rb
		}
		return depthOf(ca) < depthOf(cb)
	})

	var lineIdx [][]int
	var cur []int
	var curDepth float64
	var curRot Rotation
	for _, i := range idx {
		c := raw[i]
		if len(cur) == 0 {
			cur = append(cur, i)
			curDepth = depthOf(c)
			curRot = rotationOf(c)
			continue
		}
		sameLine := rotationOf(c) == curRot &&
			depthOf(c)-curDepth <= maxLineGapR*c.FontSize
		if sameLine {
			cur = append(cur, i)
			continue
		}
		lineIdx = append(lineIdx, cur)
		cur = []int{i}
		curDepth = depthOf(c)
		curRot = rotationOf(c)
	}
	if len(cur) > 0 {
		lineIdx = append(lineIdx, cur)
	}

	// order each line in reading direction
	for _, line := range lineIdx {
		sort.SliceStable(line, func(a, b int) bool {
			return readingOf(raw[line[a]]) < readingOf(raw[line[b]])
		})
	}

	// assemble the final sequence, inserting generated characters
	var chars []Char
	var lines []Range
	joinNext := false
	for li, line := range lineIdx {
		lineStart := len(chars)

		n := len(line)
		dropHyphen := false
		if li+1 < len(lineIdx) && flags&ParseOutputHyphen == 0 {
			// a trailing hyphen joins the word with the next line
			last := raw[line[n-1]]
			next := raw[lineIdx[li+1][0]]
			if last.Rune == '-' && isWordRune(next.Rune) {
				dropHyphen = true
			}
		}

		for k, i := range line {
			c := raw[i]
			if dropHyphen && k == n-1 {
				break
			}
			if k > 0 {
				prev := chars[len(chars)-1]
				if sp, ok := generatedSpace(prev, c); ok {
					chars = append(chars, sp)
				}
			}
			if joinNext {
				if c.Kind == KindNormal {
					c.Kind = KindComboWord
				}
				joinNext = false
			}
			chars = append(chars, c)
		}

		switch {
		case dropHyphen:
			// word continues on the next line
			joinNext = true
		case li+1 < len(lineIdx):
			last := chars[len(chars)-1]
			if flags&ParseOutputHyphen != 0 && last.Rune == '-' &&
				isWordRune(raw[lineIdx[li+1][0]].Rune) {
				chars[len(chars)-1].Kind = KindHyphen
			}
			chars = append(chars, generatedNewline(last))
		}

		lines = append(lines, Range{Start: lineStart, Count: len(chars) - lineStart})
	}
	return chars, lines
}

// generatedSpace returns a generated space character for the gap between
// prev and c, if the gap is wide enough to be a word break.
func generatedSpace(prev, c Char) (Char, bool) {
	if unicode.IsSpace(prev.Rune) || unicode.IsSpace(c.Rune) {
		return Char{}, false
	}
	_, a1 := readingExtent(prev)
	b0, _ := readingExtent(c)
	gap := b0 - a1
	if gap <= minSpaceGapR*math.Max(prev.FontSize, c.FontSize) {
		return Char{}, false
	}
	box := prev.Box
	switch rotationOf(prev) {
	case Rotation0:
		box = rect.Rect{LLx: a1, LLy: prev.Box.LLy, URx: b0, URy: prev.Box.URy}
	case Rotation180:
		box = rect.Rect{LLx: -b0, LLy: prev.Box.LLy, URx: -a1, URy: prev.Box.URy}
	case Rotation90:
		box = rect.Rect{LLx: prev.Box.LLx, LLy: a1, URx: prev.Box.URx, URy: b0}
	case Rotation270:
		box = rect.Rect{LLx: prev.Box.LLx, LLy: -b0, URx: prev.Box.URx, URy: -a1}
	}
	return Char{
		Rune:     ' ',
		Kind:     KindGenerated,
		FontSize: prev.FontSize,
		Origin:   vec.Vec2{X: box.LLx, Y: prev.Origin.Y},
		GlyphBox: box,
		Box:      box,
		Matrix:   prev.Matrix,
	}, true
}

// generatedNewline returns a generated line feed at the end of the line
// terminated by last.
func generatedNewline(last Char) Char {
	box := rect.Rect{
		LLx: last.Box.URx, LLy: last.Box.LLy,
		URx: last.Box.URx, URy: last.Box.URy,
	}
	return Char{
		Rune:     '\n',
		Kind:     KindGenerated,
		FontSize: last.FontSize,
		Origin:   vec.Vec2{X: last.Box.URx, Y: last.Origin.Y},
		GlyphBox: box,
		Box:      box,
		Matrix:   last.Matrix,
	}
}

// depthOf returns the distance of the character's baseline from the top of
// the page, in a rotation-independent reading coordinate system.  Larger
// depth means later in reading order.
func depthOf(c Char) float64 {
	switch rotationOf(c) {
	case Rotation90:
		return c.Origin.X
	case Rotation180:
		return c.Origin.Y
	case Rotation270:
		return -c.Origin.X
	default:
		return -c.Origin.Y
	}
}

// readingOf returns the position of the character along the reading
// direction of its line.
func readingOf(c Char) float64 {
	switch rotationOf(c) {
	case Rotation90:
		return c.Origin.Y
	case Rotation180:
		return -c.Origin.X
	case Rotation270:
		return -c.Origin.Y
	default:
		return c.Origin.X
	}
}

// readingExtent returns the start and end of the character's typographic
// box along the reading direction.
func readingExtent(c Char) (float64, float64) {
	switch rotationOf(c) {
	case Rotation90:
		return c.Box.LLy, c.Box.URy
	case Rotation180:
		return -c.Box.URx, -c.Box.LLx
	case Rotation270:
		return -c.Box.URy, -c.Box.LLy
	default:
		return c.Box.LLx, c.Box.URx
	}
}

// rotationOf quantizes the baseline direction of the character to the
// nearest quarter turn.
func rotationOf(c Char) Rotation {
	ang := math.Atan2(c.Matrix[1], c.Matrix[0])
	deg := ang * 180 / math.Pi
	switch {
	case deg >= -45 && deg < 45:
		return Rotation0
	case deg >= 45 && deg < 135:
		return Rotation90
	case deg >= -135 && deg < -45:
		return Rotation270
	default:
		return Rotation180
	}
}

// Rotation is a baseline rotation, quantized to quarter turns
// counter-clockwise.
type Rotation int

// The valid rotation values.
const (
	RotationUnknown Rotation = -1
	Rotation0       Rotation = 0
	Rotation90      Rotation = 1
	Rotation180     Rotation = 2
	Rotation270     Rotation = 3
)

// Degrees returns the rotation angle in degrees, or -1 for RotationUnknown.
func (r Rotation) Degrees() int {
	if r < Rotation0 || r > Rotation270 {
		return -1
	}
	return int(r) * 90
}
