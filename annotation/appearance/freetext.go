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

package appearance

import (
	"strings"

	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

// stickyYellow is the traditional background color of note annotations.
var stickyYellow = graphics.Color{1, 0.85, 0.3}

func (s *Style) freeText(a *annotation.FreeText) (*graphics.Form, error) {
	bg := a.Color
	if !bg.IsSet() {
		bg = stickyYellow
	}
	inner := insetRect(a.Rect, a.Margin)
	size := s.textSize()

	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		if op := a.PaintOpacity(); op != 1 {
			w.SetAlpha(op, op)
		}

		lw := borderWidth(&a.Common, a.BorderStyle)
		w.SetLineWidth(lw)
		if a.BorderStyle != nil && a.BorderStyle.Style == "D" && len(a.BorderStyle.DashArray) > 0 {
			w.SetLineDash(a.BorderStyle.DashArray, 0)
		}
		w.SetStrokeColor(graphics.Color{0.2})
		if len(bg) > 0 {
			w.SetFillColor(bg)
			w.Rectangle(inner.LLx+lw/2, inner.LLy+lw/2, inner.Width()-lw, inner.Height()-lw)
			w.FillAndStroke()
		} else {
			w.Rectangle(inner.LLx+lw/2, inner.LLy+lw/2, inner.Width()-lw, inner.Height()-lw)
			w.Stroke()
		}

		if len(a.CalloutLine) >= 2 {
			w.SetStrokeColor(graphics.Color{0.2})
			drawPolyline(w, a.CalloutLine)
			w.Stroke()
			drawLineEnding(w, a.CalloutLine[0],
				direction(a.CalloutLine[1], a.CalloutLine[0]),
				a.LineEnding, lw, graphics.Color{0.2}, nil)
		}

		if a.Contents == "" {
			return
		}

		pad := size / 3
		maxWidth := inner.Width() - 2*pad
		lines := wrapText(a.Contents, size, maxWidth)

		w.SetFillColor(graphics.Color{0})
		w.TextBegin()
		w.TextSetFont(builtinFontDict(), size)
		y := inner.URy - pad - fontAscent(size)
		leading := 1.2 * size
		// Td is relative to the start of the previous line
		prevX, prevY := 0.0, 0.0
		for _, line := range lines {
			if y < inner.LLy {
				break
			}
			x := inner.LLx + pad
			switch a.Quadding {
			case annotation.QuaddingCentered:
				x = inner.LLx + (inner.Width()-textWidth(line, size))/2
			case annotation.QuaddingRight:
				x = inner.URx - pad - textWidth(line, size)
			}
			w.TextFirstLine(x-prevX, y-prevY)
			prevX, prevY = x, y
			w.TextShow(line)
			y -= leading
		}
		w.TextEnd()
	})
}

// wrapText splits text into lines not wider than maxWidth, breaking at
// spaces where possible.  Explicit newlines are kept.
func wrapText(text string, size, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			trial := cur + " " + word
			if textWidth(trial, size) <= maxWidth {
				cur = trial
			} else {
				lines = append(lines, cur)
				cur = word
			}
		}
		lines = append(lines, cur)
	}
	return lines
}
