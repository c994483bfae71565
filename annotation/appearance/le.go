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

// endingSize returns the characteristic size of a line ending symbol for
// the given line width.
func endingSize(lw float64) float64 {
	return max(3, 6*lw)
}

// drawLineEnding draws a line ending symbol at the point at.  dir is the
// unit vector pointing outward, in the direction of travel of the line at
// this endpoint.  The current path must already be painted; the symbol is
// drawn as a separate path.
func drawLineEnding(w *graphics.Writer, at, dir vec.Vec2, style pdf.Name, lw float64, stroke, fill graphics.Color) {
	if dir == (vec.Vec2{}) {
		return
	}
	size := endingSize(lw)
	// perpendicular, pointing to the left of the direction of travel
	perp := vec.Vec2{X: -dir.Y, Y: dir.X}

	w.SetStrokeColor(stroke)
	hasFill := fill.IsSet() && len(fill) > 0
	if hasFill {
		w.SetFillColor(fill)
	}
	closedShape := func() {
		w.ClosePath()
		if hasFill {
			w.FillAndStroke()
		} else {
			w.Stroke()
		}
	}

	switch style {
	case annotation.LineEndingSquare:
		w.MoveTo(at.X+0.5*size*(dir.X+perp.X), at.Y+0.5*size*(dir.Y+perp.Y))
		w.LineTo(at.X+0.5*size*(-dir.X+perp.X), at.Y+0.5*size*(-dir.Y+perp.Y))
		w.LineTo(at.X-0.5*size*(dir.X+perp.X), at.Y-0.5*size*(dir.Y+perp.Y))
		w.LineTo(at.X-0.5*size*(-dir.X+perp.X), at.Y-0.5*size*(-dir.Y+perp.Y))
		closedShape()
	case annotation.LineEndingCircle:
		w.Circle(at.X, at.Y, 0.5*size)
		if hasFill {
			w.FillAndStroke()
		} else {
			w.Stroke()
		}
	case annotation.LineEndingDiamond:
		w.MoveTo(at.X+0.5*size*dir.X, at.Y+0.5*size*dir.Y)
		w.LineTo(at.X+0.5*size*perp.X, at.Y+0.5*size*perp.Y)
		w.LineTo(at.X-0.5*size*dir.X, at.Y-0.5*size*dir.Y)
		w.LineTo(at.X-0.5*size*perp.X, at.Y-0.5*size*perp.Y)
		closedShape()
	case annotation.LineEndingOpenArrow, annotation.LineEndingROpenArrow:
		d := dir
		if style == annotation.LineEndingROpenArrow {
			d = vec.Vec2{X: -dir.X, Y: -dir.Y}
		}
		p := vec.Vec2{X: -d.Y, Y: d.X}
		w.MoveTo(at.X-size*d.X+0.5*size*p.X, at.Y-size*d.Y+0.5*size*p.Y)
		w.LineTo(at.X, at.Y)
		w.LineTo(at.X-size*d.X-0.5*size*p.X, at.Y-size*d.Y-0.5*size*p.Y)
		w.Stroke()
	case annotation.LineEndingClosedArrow, annotation.LineEndingRClosedArrow:
		d := dir
		if style == annotation.LineEndingRClosedArrow {
			d = vec.Vec2{X: -dir.X, Y: -dir.Y}
		}
		p := vec.Vec2{X: -d.Y, Y: d.X}
		w.MoveTo(at.X, at.Y)
		w.LineTo(at.X-size*d.X+0.5*size*p.X, at.Y-size*d.Y+0.5*size*p.Y)
		w.LineTo(at.X-size*d.X-0.5*size*p.X, at.Y-size*d.Y-0.5*size*p.Y)
		closedShape()
	case annotation.LineEndingButt:
		w.MoveTo(at.X+0.5*size*perp.X, at.Y+0.5*size*perp.Y)
		w.LineTo(at.X-0.5*size*perp.X, at.Y-0.5*size*perp.Y)
		w.Stroke()
	case annotation.LineEndingSlash:
		// a line rotated 30 degrees clockwise from perpendicular
		const cos30, sin30 = 0.8660254037844387, 0.5
		sx := cos30*perp.X + sin30*dir.X
		sy := cos30*perp.Y + sin30*dir.Y
		w.MoveTo(at.X+0.5*size*sx, at.Y+0.5*size*sy)
		w.LineTo(at.X-0.5*size*sx, at.Y-0.5*size*sy)
		w.Stroke()
	default: // annotation.LineEndingNone
	}
}
