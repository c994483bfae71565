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

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

func (s *Style) stamp(a *annotation.Stamp) (*graphics.Form, error) {
	if a.Image == nil && s.Icons == nil {
		return nil, pdf.Preconditionf("stamp annotation needs a bitmap or an icon provider")
	}
	r := a.Rect

	if a.Image != nil {
		b := a.Image.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 {
			return nil, pdf.Preconditionf("stamp bitmap has empty bounds")
		}
		// scale the bitmap into the rectangle, preserving aspect ratio
		sx := r.Width() / float64(b.Dx())
		sy := r.Height() / float64(b.Dy())
		scale := min(sx, sy)
		dw := float64(b.Dx()) * scale
		dh := float64(b.Dy()) * scale
		x0 := r.LLx + (r.Width()-dw)/2
		y0 := r.LLy + (r.Height()-dh)/2

		return graphics.Draw(r, func(w *graphics.Writer) {
			if op := a.PaintOpacity(); op != 1 {
				w.SetAlpha(op, op)
			}
			w.PushGraphicsState()
			w.Transform(matrix.Matrix{dw, 0, 0, dh, x0, y0})
			w.InlineImage(a.Image)
			w.PopGraphicsState()
		})
	}

	name := a.IconName
	if name == "" {
		name = "Draft"
	}
	icon := s.Icons.Icon(name)

	return graphics.Draw(r, func(w *graphics.Writer) {
		if op := a.PaintOpacity(); op != 1 {
			w.SetAlpha(op, op)
		}
		if icon != nil {
			sx := r.Width() / icon.BBox.Width()
			sy := r.Height() / icon.BBox.Height()
			scale := min(sx, sy)
			w.PushGraphicsState()
			w.Transform(matrix.Matrix{
				scale, 0, 0, scale,
				r.LLx - scale*icon.BBox.LLx, r.LLy - scale*icon.BBox.LLy,
			})
			icon.Draw(w)
			w.PopGraphicsState()
			return
		}

		// no drawing for this name: a classic rubber stamp showing the
		// icon name
		red := graphics.Color{0.75, 0.16, 0.16}
		lw := 1.5
		w.SetLineWidth(lw)
		w.SetStrokeColor(red)
		w.Rectangle(r.LLx+lw/2, r.LLy+lw/2, r.Width()-lw, r.Height()-lw)
		w.Stroke()

		text := string(name)
		size := 0.6 * r.Height()
		if tw := textWidth(text, size); tw > 0.9*r.Width() {
			size *= 0.9 * r.Width() / tw
		}
		w.SetFillColor(red)
		w.TextBegin()
		w.TextSetFont(builtinFontDict(), size)
		w.TextFirstLine(
			r.LLx+(r.Width()-textWidth(text, size))/2,
			r.LLy+(r.Height()-0.7*size)/2)
		w.TextShow(text)
		w.TextEnd()
	})
}
