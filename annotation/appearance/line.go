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

func (s *Style) line(a *annotation.Line) (*graphics.Form, error) {
	if !a.HasEndpoints {
		return nil, pdf.Preconditionf("line annotation has no endpoints")
	}

	lw := borderWidth(&a.Common, a.BorderStyle)
	col := strokeColor(a.Color)

	start, end := a.Start, a.End
	dir := direction(start, end)
	if a.LeaderLength != 0 && dir != (vec.Vec2{}) {
		// dimension line style: the line joins the ends of the leader
		// lines, offset perpendicular from the endpoints
		perp := vec.Vec2{X: -dir.Y, Y: dir.X}
		sign := 1.0
		if a.LeaderLength < 0 {
			sign = -1
		}
		ll := math.Abs(a.LeaderLength)

		shift := func(p vec.Vec2, d float64) vec.Vec2 {
			return vec.Vec2{X: p.X + sign*d*perp.X, Y: p.Y + sign*d*perp.Y}
		}
		lineStart := shift(start, ll)
		lineEnd := shift(end, ll)

		return graphics.Draw(a.Rect, func(w *graphics.Writer) {
			setupStroke(w, a, a.BorderStyle)

			for _, p := range []vec.Vec2{start, end} {
				from := shift(p, a.LeaderOffset)
				to := shift(p, ll+a.LeaderExtend)
				w.MoveTo(from.X, from.Y)
				w.LineTo(to.X, to.Y)
				w.Stroke()
			}

			s.drawLineBody(w, a, lineStart, lineEnd, lw, col)
		})
	}

	return graphics.Draw(a.Rect, func(w *graphics.Writer) {
		setupStroke(w, a, a.BorderStyle)
		s.drawLineBody(w, a, start, end, lw, col)
	})
}

// drawLineBody draws the main line with its endings and, if requested,
// the caption.
func (s *Style) drawLineBody(w *graphics.Writer, a *annotation.Line, start, end vec.Vec2, lw float64, col graphics.Color) {
	dir := direction(start, end)

	mid := vec.Vec2{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}
	caption := ""
	if a.Caption {
		caption = a.Contents
	}

	if caption != "" && a.CaptionPosition != "Top" && dir != (vec.Vec2{}) {
		// inline caption: leave a gap in the middle of the line
		size := s.textSize()
		tw := textWidth(caption, size) + size/2
		half := tw / 2
		length := math.Hypot(end.X-start.X, end.Y-start.Y)
		if tw < length {
			w.MoveTo(start.X, start.Y)
			w.LineTo(mid.X-half*dir.X, mid.Y-half*dir.Y)
			w.Stroke()
			w.MoveTo(mid.X+half*dir.X, mid.Y+half*dir.Y)
			w.LineTo(end.X, end.Y)
			w.Stroke()
		} else {
			w.MoveTo(start.X, start.Y)
			w.LineTo(end.X, end.Y)
			w.Stroke()
		}
	} else {
		w.MoveTo(start.X, start.Y)
		w.LineTo(end.X, end.Y)
		w.Stroke()
	}

	drawLineEnding(w, start, vec.Vec2{X: -dir.X, Y: -dir.Y},
		a.LineEndings[0], lw, col, a.FillColor)
	drawLineEnding(w, end, dir, a.LineEndings[1], lw, col, a.FillColor)

	if caption != "" {
		size := s.textSize()
		tw := textWidth(caption, size)
		pos := vec.Vec2{
			X: mid.X + a.CaptionOffset.X - tw/2,
			Y: mid.Y + a.CaptionOffset.Y - size/3,
		}
		if a.CaptionPosition == "Top" {
			pos.Y = mid.Y + a.CaptionOffset.Y + size/4
		}
		w.SetFillColor(col)
		w.TextBegin()
		w.TextSetFont(builtinFontDict(), size)
		w.TextFirstLine(pos.X, pos.Y)
		w.TextShow(caption)
		w.TextEnd()
	}
}
