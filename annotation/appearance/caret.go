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
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

func (s *Style) caret(a *annotation.Caret) (*graphics.Form, error) {
	col := strokeColor(a.Color)
	inner := insetRect(a.Rect, a.Margin)

	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		if op := a.PaintOpacity(); op != 1 {
			w.SetAlpha(op, op)
		}

		x0 := inner.LLx
		y0 := inner.LLy
		dx := inner.Width()
		dy := inner.Height()

		// filled caret: flat base with straight sides curving to a
		// narrow tip
		w.SetFillColor(col)
		w.MoveTo(x0, y0)
		w.LineTo(x0+dx, y0)
		w.LineTo(x0+dx, y0+0.1*dy)
		w.CurveTo(
			x0+0.52*dx, y0+0.1*dy,
			x0+0.52*dx, y0+0.1*dy,
			x0+0.52*dx, y0+dy)
		w.LineTo(x0+0.48*dx, y0+dy)
		w.CurveTo(
			x0+0.48*dx, y0+0.1*dy,
			x0+0.48*dx, y0+0.1*dy,
			x0, y0+0.1*dy)
		w.ClosePath()
		w.Fill()

		if a.Symbol == "P" {
			size := max(3, 0.6*dx)
			cx := (inner.LLx + inner.URx) / 2
			w.TextBegin()
			w.TextSetFont(builtinFontDict(), size)
			w.TextFirstLine(cx-0.25*size, y0-0.85*size)
			w.TextShow("¶")
			w.TextEnd()
		}
	})
}
