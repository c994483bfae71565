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

// PolyLine represents an annotation which displays an open polygonal
// line on the page.
type PolyLine struct {
	Common
	Markup

	// Vertices are the corner points of the line, in page space.
	//
	// This corresponds to the /Vertices entry in the PDF annotation
	// dictionary.
	Vertices []vec.Vec2

	// LineEndings are the line ending styles for the first and last
	// vertex.  The default is [LineEndingNone] for both.
	//
	// This corresponds to the /LE entry in the PDF annotation dictionary.
	LineEndings [2]pdf.Name

	// FillColor (optional) is the interior color of the line endings.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor graphics.Color

	// BorderStyle (optional) specifies the line width and dash pattern.
	// If set, Common.Border is ignored.
	BorderStyle *BorderStyle
}

var _ Annotation = (*PolyLine)(nil)

// AnnotationType returns "PolyLine".
// This implements the [Annotation] interface.
func (p *PolyLine) AnnotationType() pdf.Name {
	return "PolyLine"
}

func (p *PolyLine) fillColor() graphics.Color     { return p.FillColor }
func (p *PolyLine) setFillColor(c graphics.Color) { p.FillColor = c }

// SetFillColor changes the interior color of the line endings.  The
// stored appearance streams are left untouched until the appearance is
// regenerated.
func (p *PolyLine) SetFillColor(c graphics.Color) {
	p.FillColor = c
	p.markStale()
}

// SetVertices changes the line geometry.  The stored appearance streams
// are left untouched until the appearance is regenerated.
func (p *PolyLine) SetVertices(vertices []vec.Vec2) {
	p.Vertices = vertices
	p.markStale()
}

func decodePolyLine(r pdf.Getter, dict pdf.Dict) (*PolyLine, error) {
	polyline := &PolyLine{}
	if err := decodeCommon(r, &polyline.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &polyline.Markup, dict); err != nil {
		return nil, err
	}

	polyline.Vertices = decodeVertices(r, dict["Vertices"])

	if le, err := pdf.Optional(pdf.GetArray(r, dict["LE"])); err != nil {
		return nil, err
	} else if len(le) == 2 {
		for i := range le {
			if name, err := pdf.GetName(r, le[i]); err == nil {
				polyline.LineEndings[i] = name
			}
		}
	}

	if ic, err := pdf.Optional(extractColor(r, dict["IC"])); err != nil {
		return nil, err
	} else {
		polyline.FillColor = ic
	}

	if bs, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return nil, err
	} else {
		polyline.BorderStyle = bs
	}

	return polyline, nil
}

func (p *PolyLine) Encode() (pdf.Dict, error) {
	if len(p.Vertices) < 2 {
		return nil, pdf.Invalidf("polyline with %d vertices", len(p.Vertices))
	}

	dict := pdf.Dict{
		"Subtype":  pdf.Name("PolyLine"),
		"Vertices": encodeVertices(p.Vertices),
	}
	if err := p.Common.fillDict(dict, isMarkup(p)); err != nil {
		return nil, err
	}
	if err := p.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if p.LineEndings[0] != "" || p.LineEndings[1] != "" {
		le := make(pdf.Array, 2)
		for i, name := range p.LineEndings {
			if name == "" {
				name = LineEndingNone
			}
			le[i] = name
		}
		dict["LE"] = le
	}

	if p.FillColor != nil {
		ic, err := encodeColor(p.FillColor)
		if err != nil {
			return nil, err
		}
		dict["IC"] = ic
	}

	if p.BorderStyle != nil {
		bs, err := p.BorderStyle.Encode()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
		delete(dict, "Border")
	}

	return dict, nil
}
