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
	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

// Circle represents an annotation which displays an ellipse inscribed
// into the annotation rectangle.  The fields mirror those of [Square].
type Circle struct {
	Common
	Markup

	// Margin (optional) gives the differences between Common.Rect and
	// the bounding box of the drawn ellipse, as [left, bottom, right,
	// top].
	//
	// This corresponds to the /RD entry in the PDF annotation dictionary.
	Margin []float64

	// FillColor (optional) is the color used to fill the ellipse.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor graphics.Color

	// BorderStyle (optional) specifies the line width and dash pattern
	// of the ellipse border.  If set, Common.Border is ignored.
	BorderStyle *BorderStyle

	// BorderEffect (optional) modifies the border drawing.
	BorderEffect *BorderEffect
}

var _ Annotation = (*Circle)(nil)

// AnnotationType returns "Circle".
// This implements the [Annotation] interface.
func (c *Circle) AnnotationType() pdf.Name {
	return "Circle"
}

func (c *Circle) fillColor() graphics.Color { return c.FillColor }
func (c *Circle) setFillColor(col graphics.Color) { c.FillColor = col }

// SetFillColor changes the interior color.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (c *Circle) SetFillColor(col graphics.Color) {
	c.FillColor = col
	c.markStale()
}

func decodeCircle(r pdf.Getter, dict pdf.Dict) (*Circle, error) {
	circle := &Circle{}
	if err := decodeCommon(r, &circle.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &circle.Markup, dict); err != nil {
		return nil, err
	}
	if err := decodeShapeFields(r, dict,
		&circle.Margin, &circle.FillColor, &circle.BorderStyle, &circle.BorderEffect); err != nil {
		return nil, err
	}
	return circle, nil
}

func (c *Circle) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Circle"),
	}
	if err := c.Common.fillDict(dict, isMarkup(c)); err != nil {
		return nil, err
	}
	if err := c.Markup.fillDict(dict); err != nil {
		return nil, err
	}
	if err := fillShapeFields(dict, &c.Rect,
		c.Margin, c.FillColor, c.BorderStyle, c.BorderEffect); err != nil {
		return nil, err
	}
	return dict, nil
}
