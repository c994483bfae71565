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
	"seehuhn.de/go/geom/matrix"

	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

// textNote draws the icon of a closed text annotation.  The icon is
// drawn on a 24x24 unit canvas and scaled to the annotation rectangle.
func (s *Style) textNote(a *annotation.Text) (*graphics.Form, error) {
	bg := a.Color
	if !bg.IsSet() || len(bg) == 0 {
		bg = stickyYellow
	}

	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		if op := a.PaintOpacity(); op != 1 {
			w.SetAlpha(op, op)
		}
		w.PushGraphicsState()
		w.Transform(matrix.Matrix{
			a.Rect.Width() / 24, 0, 0, a.Rect.Height() / 24,
			a.Rect.LLx, a.Rect.LLy,
		})

		switch a.IconName {
		case "Comment":
			drawIconBox(w, bg)
			// speech bubble
			w.SetFillColor(graphics.Color{0.2})
			w.MoveTo(4, 19)
			w.CurveTo(4, 21, 6, 21, 12, 21)
			w.CurveTo(18, 21, 20, 21, 20, 19)
			w.LineTo(20, 12)
			w.CurveTo(20, 10, 18, 10, 12, 10)
			w.CurveTo(6, 10, 4, 10, 4, 12)
			w.ClosePath()
			w.MoveTo(8, 10)
			w.LineTo(6, 5)
			w.LineTo(11, 10)
			w.ClosePath()
			w.Fill()

		case "Help":
			drawIconBox(w, bg)
			w.SetFillColor(graphics.Color{0})
			w.TextBegin()
			w.TextSetFont(builtinFontDict(), 18)
			w.TextFirstLine(8, 6)
			w.TextShow("?")
			w.TextEnd()

		case "Key":
			drawIconBox(w, bg)
			w.SetStrokeColor(graphics.Color{0.2})
			w.SetLineWidth(1.5)
			w.Circle(9, 15, 4)
			w.Stroke()
			w.MoveTo(12, 12)
			w.LineTo(18, 6)
			w.Stroke()
			w.MoveTo(16, 8)
			w.LineTo(18, 10)
			w.Stroke()

		case "Insert":
			// no box, just a caret pointing up
			w.SetFillColor(graphics.Color{0.2})
			w.MoveTo(3, 3)
			w.LineTo(12, 21)
			w.LineTo(21, 3)
			w.LineTo(15, 3)
			w.LineTo(12, 9)
			w.LineTo(9, 3)
			w.ClosePath()
			w.Fill()

		case "NewParagraph":
			drawIconBox(w, bg)
			w.SetFillColor(graphics.Color{0.2})
			w.MoveTo(7, 6)
			w.LineTo(12, 18)
			w.LineTo(17, 6)
			w.LineTo(13.5, 6)
			w.LineTo(12, 10)
			w.LineTo(10.5, 6)
			w.ClosePath()
			w.Fill()

		case "Paragraph":
			drawIconBox(w, bg)
			w.SetFillColor(graphics.Color{0})
			w.TextBegin()
			w.TextSetFont(builtinFontDict(), 18)
			w.TextFirstLine(7, 6)
			w.TextShow("¶")
			w.TextEnd()

		default: // Note
			// sheet of paper with a folded corner
			const fold = 7.0
			w.SetLineWidth(0.5)
			w.SetStrokeColor(graphics.Color{0.2})
			w.SetFillColor(bg)
			w.MoveTo(23.5-fold, 0.25)
			w.LineTo(0.25, 0.25)
			w.LineTo(0.25, 23.5)
			w.LineTo(23.5, 23.5)
			w.LineTo(23.5, 0.25+fold)
			w.LineTo(23.5-fold, 0.25)
			w.LineTo(23.5-fold, 0.25+fold)
			w.LineTo(23.5, 0.25+fold)
			w.ClosePath()
			w.FillAndStroke()

			// text lines
			w.SetLineWidth(1.5)
			w.SetStrokeColor(graphics.Color{0.5})
			for y := 19.0; y > 6; y -= 3.5 {
				w.MoveTo(4, y)
				if y > 10 {
					w.LineTo(17, y)
				} else {
					w.LineTo(12, y)
				}
			}
			w.Stroke()
		}

		w.PopGraphicsState()
	})
}

// drawIconBox fills the 24x24 icon canvas with the background color and
// a thin outline.
func drawIconBox(w *graphics.Writer, bg graphics.Color) {
	w.SetLineWidth(0.5)
	w.SetStrokeColor(graphics.Color{0.2})
	w.SetFillColor(bg)
	w.Rectangle(0.25, 0.25, 23.5, 23.5)
	w.FillAndStroke()
}
