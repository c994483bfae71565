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
	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

func (s *Style) link(a *annotation.Link) (*graphics.Form, error) {
	lw := 1.0
	var dash []float64
	style := pdf.Name("S")
	if a.Border != nil {
		lw = a.Border.Width
		dash = a.Border.DashArray
		if len(dash) > 0 {
			style = "D"
		}
	}
	if a.BorderStyle != nil {
		lw = a.BorderStyle.Width
		style = a.BorderStyle.Style
		if style == "D" {
			dash = a.BorderStyle.DashArray
			if len(dash) == 0 {
				dash = []float64{3}
			}
		}
	}
	col := strokeColor(a.Color)
	r := a.Rect

	return graphics.Draw(r, func(w *graphics.Writer) {
		if lw <= 0 {
			// a border of width zero means no visible border
			return
		}
		w.SetStrokeColor(col)
		w.SetLineWidth(lw)

		switch style {
		case "U": // underline
			w.MoveTo(r.LLx, r.LLy+lw/2)
			w.LineTo(r.URx, r.LLy+lw/2)
			w.Stroke()
		case "D": // dashed outline
			w.SetLineDash(dash, 0)
			w.Rectangle(r.LLx+lw/2, r.LLy+lw/2, r.Width()-lw, r.Height()-lw)
			w.Stroke()
		default: // solid or unknown
			w.Rectangle(r.LLx+lw/2, r.LLy+lw/2, r.Width()-lw, r.Height()-lw)
			w.Stroke()
		}
	})
}
