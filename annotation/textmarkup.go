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

package annotation

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
)

// QuadPoint is one quadrilateral of a text markup region, given by its
// four corners in the order upper-left, upper-right, lower-left,
// lower-right.
type QuadPoint [4]vec.Vec2

// Rect returns the bounding box of the quadrilateral.
func (q QuadPoint) Rect() rect.Rect {
	r := rect.Rect{LLx: q[0].X, LLy: q[0].Y, URx: q[0].X, URy: q[0].Y}
	for _, p := range q[1:] {
		if p.X < r.LLx {
			r.LLx = p.X
		}
		if p.X > r.URx {
			r.URx = p.X
		}
		if p.Y < r.LLy {
			r.LLy = p.Y
		}
		if p.Y > r.URy {
			r.URy = p.Y
		}
	}
	return r
}

// QuadFromRect returns the quadrilateral covering a rectangle.
func QuadFromRect(r rect.Rect) QuadPoint {
	return QuadPoint{
		{X: r.LLx, Y: r.URy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
	}
}

// encodeQuadPoints flattens a quad list into a PDF number array.
func encodeQuadPoints(quads []QuadPoint) pdf.Array {
	arr := make(pdf.Array, 0, 8*len(quads))
	for _, q := range quads {
		for _, p := range q {
			arr = append(arr, pdf.Number(p.X), pdf.Number(p.Y))
		}
	}
	return arr
}

// decodeQuadPoints reads a flat coordinate array into a quad list.
// Incomplete trailing quads are dropped.
func decodeQuadPoints(r pdf.Getter, obj pdf.Object) ([]QuadPoint, error) {
	coords, err := pdf.GetFloatArray(r, obj)
	if err != nil || len(coords) < 8 {
		return nil, err
	}
	quads := make([]QuadPoint, 0, len(coords)/8)
	for i := 0; i+8 <= len(coords); i += 8 {
		var q QuadPoint
		for k := range 4 {
			q[k] = vec.Vec2{X: coords[i+2*k], Y: coords[i+2*k+1]}
		}
		quads = append(quads, q)
	}
	return quads, nil
}

// TextMarkup represents the four text markup annotation subtypes:
// Highlight, Underline, StrikeOut and Squiggly.  The marked text region
// is given as a list of quadrilaterals, one per marked text run.
type TextMarkup struct {
	Common
	Markup

	// MarkupType is the annotation subtype, one of "Highlight",
	// "Underline", "StrikeOut" and "Squiggly".
	MarkupType pdf.Name

	// QuadPoints are the quadrilaterals covering the marked text.
	QuadPoints []QuadPoint
}

var _ Annotation = (*TextMarkup)(nil)

// AnnotationType returns the markup subtype.
// This implements the [Annotation] interface.
func (t *TextMarkup) AnnotationType() pdf.Name {
	return t.MarkupType
}

// SetQuadPoints changes the marked region.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (t *TextMarkup) SetQuadPoints(quads []QuadPoint) {
	t.QuadPoints = quads
	t.markStale()
}

func decodeTextMarkup(r pdf.Getter, dict pdf.Dict, subtype pdf.Name) (*TextMarkup, error) {
	tm := &TextMarkup{MarkupType: subtype}
	if err := decodeCommon(r, &tm.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &tm.Markup, dict); err != nil {
		return nil, err
	}

	if quads, err := pdf.Optional(decodeQuadPoints(r, dict["QuadPoints"])); err != nil {
		return nil, err
	} else {
		tm.QuadPoints = quads
	}

	return tm, nil
}

func (t *TextMarkup) Encode() (pdf.Dict, error) {
	switch t.MarkupType {
	case "Highlight", "Underline", "StrikeOut", "Squiggly":
		// ok
	default:
		return nil, pdf.Invalidf("invalid text markup subtype %q", t.MarkupType)
	}
	if len(t.QuadPoints) == 0 {
		return nil, pdf.Invalidf("text markup annotation without quad points")
	}

	dict := pdf.Dict{
		"Subtype":    t.MarkupType,
		"QuadPoints": encodeQuadPoints(t.QuadPoints),
	}
	if err := t.Common.fillDict(dict, isMarkup(t)); err != nil {
		return nil, err
	}
	if err := t.Markup.fillDict(dict); err != nil {
		return nil, err
	}
	return dict, nil
}
