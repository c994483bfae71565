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
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

func (s *Style) square(a *annotation.Square) (*graphics.Form, error) {
	r := insetRect(a.Rect, a.Margin)
	lw := borderWidth(&a.Common, a.BorderStyle)
	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		setupStroke(w, a, a.BorderStyle)
		// keep the stroke inside the annotation rectangle
		w.Rectangle(r.LLx+lw/2, r.LLy+lw/2, r.Width()-lw, r.Height()-lw)
		paintShape(w, a.FillColor)
	})
}

func (s *Style) circle(a *annotation.Circle) (*graphics.Form, error) {
	r := insetRect(a.Rect, a.Margin)
	lw := borderWidth(&a.Common, a.BorderStyle)
	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		setupStroke(w, a, a.BorderStyle)
		cx := (r.LLx + r.URx) / 2
		cy := (r.LLy + r.URy) / 2
		w.Ellipse(cx, cy, (r.Width()-lw)/2, (r.Height()-lw)/2)
		paintShape(w, a.FillColor)
	})
}

func (s *Style) polygon(a *annotation.Polygon) (*graphics.Form, error) {
	if len(a.Vertices) < 3 {
		return nil, pdf.Preconditionf("polygon annotation needs at least 3 vertices")
	}
	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		setupStroke(w, a, a.BorderStyle)
		drawPolyline(w, a.Vertices)
		w.ClosePath()
		paintShape(w, a.FillColor)
	})
}

func (s *Style) polyLine(a *annotation.PolyLine) (*graphics.Form, error) {
	if len(a.Vertices) < 2 {
		return nil, pdf.Preconditionf("polyline annotation needs at least 2 vertices")
	}
	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		setupStroke(w, a, a.BorderStyle)
		drawPolyline(w, a.Vertices)
		w.Stroke()

		lw := borderWidth(&a.Common, a.BorderStyle)
		n := len(a.Vertices)
		drawLineEnding(w, a.Vertices[0], direction(a.Vertices[1], a.Vertices[0]),
			a.LineEndings[0], lw, strokeColor(a.Color), a.FillColor)
		drawLineEnding(w, a.Vertices[n-1], direction(a.Vertices[n-2], a.Vertices[n-1]),
			a.LineEndings[1], lw, strokeColor(a.Color), a.FillColor)
	})
}

func (s *Style) ink(a *annotation.Ink) (*graphics.Form, error) {
	if len(a.InkList) == 0 {
		return nil, pdf.Preconditionf("ink annotation has no strokes")
	}
	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		setupStroke(w, a, a.BorderStyle)
		w.SetLineCap(graphics.LineCapRound)
		w.SetLineJoin(graphics.LineJoinRound)
		for _, stroke := range a.InkList {
			if len(stroke) == 0 {
				continue
			}
			if len(stroke) == 1 {
				// a single point becomes a dot
				lw := borderWidth(&a.Common, a.BorderStyle)
				w.Circle(stroke[0].X, stroke[0].Y, lw/2)
				w.SetFillColor(strokeColor(a.Color))
				w.Fill()
				continue
			}
			drawPolyline(w, stroke)
			w.Stroke()
		}
	})
}

// paintShape strokes the current path, filling it first if a fill color
// is set.
func paintShape(w *graphics.Writer, fill graphics.Color) {
	if fill.IsSet() && len(fill) > 0 {
		w.SetFillColor(fill)
		w.FillAndStroke()
	} else {
		w.Stroke()
	}
}

func drawPolyline(w *graphics.Writer, pts []vec.Vec2) {
	w.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		w.LineTo(p.X, p.Y)
	}
}

// direction returns the unit vector pointing from a to b, or the zero
// vector if the points coincide.
func direction(a, b vec.Vec2) vec.Vec2 {
	d := vec.Vec2{X: b.X - a.X, Y: b.Y - a.Y}
	l := d.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{X: d.X / l, Y: d.Y / l}
}
