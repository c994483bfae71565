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
	"math"

	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

// squiggly parameters at border width 1
const (
	squigglyAmplitude  = 1.0
	squigglyHalfPeriod = 2.0
)

func (s *Style) textMarkup(a *annotation.TextMarkup) (*graphics.Form, error) {
	if len(a.QuadPoints) == 0 {
		return nil, pdf.Preconditionf("text markup annotation has no quad points")
	}

	bw := borderWidth(&a.Common, nil)
	col := strokeColor(a.Color)

	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		if op := a.PaintOpacity(); op != 1 {
			w.SetAlpha(op, op)
		}

		switch a.MarkupType {
		case "Highlight":
			// multiply blending keeps the text below readable
			w.SetBlendMode("Multiply")
			w.SetFillColor(col)
			for _, q := range a.QuadPoints {
				w.MoveTo(q[0].X, q[0].Y) // upper left
				w.LineTo(q[1].X, q[1].Y) // upper right
				w.LineTo(q[3].X, q[3].Y) // lower right
				w.LineTo(q[2].X, q[2].Y) // lower left
				w.ClosePath()
				w.Fill()
			}

		case "Underline":
			w.SetLineWidth(bw)
			w.SetStrokeColor(col)
			for _, q := range a.QuadPoints {
				// shift inward by bw/2 so the stroke fits inside the quad
				off := inwardOffset(q[2], q[0], bw/2)
				w.MoveTo(q[2].X+off.X, q[2].Y+off.Y)
				w.LineTo(q[3].X+off.X, q[3].Y+off.Y)
				w.Stroke()
			}

		case "StrikeOut":
			w.SetLineWidth(bw)
			w.SetStrokeColor(col)
			for _, q := range a.QuadPoints {
				w.MoveTo((q[0].X+q[2].X)/2, (q[0].Y+q[2].Y)/2)
				w.LineTo((q[1].X+q[3].X)/2, (q[1].Y+q[3].Y)/2)
				w.Stroke()
			}

		case "Squiggly":
			w.SetLineWidth(0.7 * bw)
			w.SetStrokeColor(col)
			w.SetLineCap(graphics.LineCapRound)
			w.SetLineJoin(graphics.LineJoinRound)
			for _, q := range a.QuadPoints {
				drawSquigglyLine(w, q[2], q[3],
					squigglyAmplitude*bw, squigglyHalfPeriod*bw)
			}
		}
	})
}

// inwardOffset returns a vector of the given length pointing from outer
// toward inner, e.g. from the lower left toward the upper left corner of
// a quadrilateral.
func inwardOffset(outer, inner vec.Vec2, dist float64) vec.Vec2 {
	return inner.Sub(outer).Normalize().Mul(dist)
}

// drawSquigglyLine draws a wavy line from p0 to p1 using alternating
// cubic Bezier arcs.
func drawSquigglyLine(w *graphics.Writer, p0, p1 vec.Vec2, amplitude, halfPeriod float64) {
	d := p1.Sub(p0)
	length := d.Length()
	if length < 0.01 {
		return
	}

	u := d.Normalize()
	n := u.Rot90()

	nSteps := max(int(math.Round(length/halfPeriod)), 1)
	step := length / float64(nSteps)

	// control point factor for a smooth bump
	const k = 4.0 / 3.0

	w.MoveTo(p0.X, p0.Y)
	sign := 1.0
	for i := range nSteps {
		t0 := float64(i) * step
		t1 := t0 + step

		off := sign * amplitude * k
		w.CurveTo(
			p0.X+(t0+step/3)*u.X+off*n.X, p0.Y+(t0+step/3)*u.Y+off*n.Y,
			p0.X+(t0+2*step/3)*u.X+off*n.X, p0.Y+(t0+2*step/3)*u.Y+off*n.Y,
			p0.X+t1*u.X, p0.Y+t1*u.Y)
		sign = -sign
	}
	w.Stroke()
}
