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
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

// Polygon represents an annotation which displays a closed polygon on
// the page.
type Polygon struct {
	Common
	Markup

	// Vertices are the corner points of the polygon, in page space.
	// The polygon is closed automatically.
	//
	// This corresponds to the /Vertices entry in the PDF annotation
	// dictionary.
	Vertices []vec.Vec2

	// FillColor (optional) is the color used to fill the polygon.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor graphics.Color

	// BorderStyle (optional) specifies the line width and dash pattern
	// of the polygon border.  If set, Common.Border is ignored.
	BorderStyle *BorderStyle

	// BorderEffect (optional) modifies the border drawing.
	BorderEffect *BorderEffect
}

var _ Annotation = (*Polygon)(nil)

// AnnotationType returns "Polygon".
// This implements the [Annotation] interface.
func (p *Polygon) AnnotationType() pdf.Name {
	return "Polygon"
}

func (p *Polygon) fillColor() graphics.Color     { return p.FillColor }
func (p *Polygon) setFillColor(c graphics.Color) { p.FillColor = c }

// SetFillColor changes the interior color.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (p *Polygon) SetFillColor(c graphics.Color) {
	p.FillColor = c
	p.markStale()
}

// SetVertices changes the polygon geometry.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (p *Polygon) SetVertices(vertices []vec.Vec2) {
	p.Vertices = vertices
	p.markStale()
}

func decodePolygon(r pdf.Getter, dict pdf.Dict) (*Polygon, error) {
	polygon := &Polygon{}
	if err := decodeCommon(r, &polygon.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &polygon.Markup, dict); err != nil {
		return nil, err
	}

	polygon.Vertices = decodeVertices(r, dict["Vertices"])

	if err := decodeShapeFields(r, dict,
		new([]float64), &polygon.FillColor, &polygon.BorderStyle, &polygon.BorderEffect); err != nil {
		return nil, err
	}

	return polygon, nil
}

func (p *Polygon) Encode() (pdf.Dict, error) {
	if len(p.Vertices) < 3 {
		return nil, pdf.Invalidf("polygon with %d vertices", len(p.Vertices))
	}

	dict := pdf.Dict{
		"Subtype":  pdf.Name("Polygon"),
		"Vertices": encodeVertices(p.Vertices),
	}
	if err := p.Common.fillDict(dict, isMarkup(p)); err != nil {
		return nil, err
	}
	if err := p.Markup.fillDict(dict); err != nil {
		return nil, err
	}
	if err := fillShapeFields(dict, &p.Rect,
		nil, p.FillColor, p.BorderStyle, p.BorderEffect); err != nil {
		return nil, err
	}
	return dict, nil
}

// encodeVertices flattens a vertex list into a PDF number array.
func encodeVertices(vertices []vec.Vec2) pdf.Array {
	arr := make(pdf.Array, 0, 2*len(vertices))
	for _, v := range vertices {
		arr = append(arr, pdf.Number(v.X), pdf.Number(v.Y))
	}
	return arr
}

// decodeVertices reads a flat coordinate array into a vertex list.  An
// odd trailing coordinate is dropped.
func decodeVertices(r pdf.Getter, obj pdf.Object) []vec.Vec2 {
	coords, err := pdf.GetFloatArray(r, obj)
	if err != nil || len(coords) < 2 {
		return nil
	}
	vertices := make([]vec.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		vertices = append(vertices, vec.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return vertices
}
