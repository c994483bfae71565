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

// Square represents an annotation which displays a rectangle on the
// page:
//
//   - The location of the rectangle is given by the Common.Rect field,
//     optionally inset by the Margin field.
//   - The border line color is given by the Common.Color field.  If this
//     is nil, no border is drawn.
//   - The border line style is given by the BorderStyle field.  If this
//     is nil, the Common.Border field is used instead; if both are nil,
//     a solid border of width 1 is drawn.
type Square struct {
	Common
	Markup

	// Margin (optional) gives the differences between Common.Rect and
	// the drawn rectangle, as [left, bottom, right, top].  This is used
	// when a border effect makes the drawing extend beyond the
	// rectangle proper.
	//
	// This corresponds to the /RD entry in the PDF annotation dictionary.
	Margin []float64

	// FillColor (optional) is the color used to fill the rectangle.
	// If this is nil, the rectangle is not filled.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor graphics.Color

	// BorderStyle (optional) specifies the line width and dash pattern
	// of the rectangle border.  If set, Common.Border is ignored.
	//
	// This corresponds to the /BS entry in the PDF annotation dictionary.
	BorderStyle *BorderStyle

	// BorderEffect (optional) modifies the border drawing, for example
	// to a "cloudy" line.
	//
	// This corresponds to the /BE entry in the PDF annotation dictionary.
	BorderEffect *BorderEffect
}

var _ Annotation = (*Square)(nil)

// AnnotationType returns "Square".
// This implements the [Annotation] interface.
func (s *Square) AnnotationType() pdf.Name {
	return "Square"
}

func (s *Square) fillColor() graphics.Color { return s.FillColor }
func (s *Square) setFillColor(c graphics.Color) { s.FillColor = c }

// SetFillColor changes the interior color.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (s *Square) SetFillColor(c graphics.Color) {
	s.FillColor = c
	s.markStale()
}

func decodeSquare(r pdf.Getter, dict pdf.Dict) (*Square, error) {
	square := &Square{}
	if err := decodeCommon(r, &square.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &square.Markup, dict); err != nil {
		return nil, err
	}
	if err := decodeShapeFields(r, dict,
		&square.Margin, &square.FillColor, &square.BorderStyle, &square.BorderEffect); err != nil {
		return nil, err
	}
	return square, nil
}

func (s *Square) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Square"),
	}
	if err := s.Common.fillDict(dict, isMarkup(s)); err != nil {
		return nil, err
	}
	if err := s.Markup.fillDict(dict); err != nil {
		return nil, err
	}
	if err := fillShapeFields(dict, &s.Rect,
		s.Margin, s.FillColor, s.BorderStyle, s.BorderEffect); err != nil {
		return nil, err
	}
	return dict, nil
}

// decodeShapeFields reads the fields shared by Square and Circle.
func decodeShapeFields(r pdf.Getter, dict pdf.Dict, margin *[]float64, fill *graphics.Color, bs **BorderStyle, be **BorderEffect) error {
	if x, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return err
	} else {
		*bs = x
	}
	if x, err := pdf.Optional(decodeBorderEffect(r, dict["BE"])); err != nil {
		return err
	} else {
		*be = x
	}
	if x, err := pdf.Optional(extractColor(r, dict["IC"])); err != nil {
		return err
	} else {
		*fill = x
	}
	if rd, err := pdf.GetFloatArray(r, dict["RD"]); err == nil && len(rd) == 4 {
		*margin = rd
	}
	return nil
}

// fillShapeFields writes the fields shared by Square and Circle.
func fillShapeFields(dict pdf.Dict, rect *pdf.Rectangle, margin []float64, fill graphics.Color, bs *BorderStyle, be *BorderEffect) error {
	if bs != nil {
		enc, err := bs.Encode()
		if err != nil {
			return err
		}
		dict["BS"] = enc
		delete(dict, "Border")
	} else if be != nil {
		return pdf.Invalidf("border effect without border style")
	}
	if be != nil {
		dict["BE"] = be.Encode()
	}
	if fill != nil {
		ic, err := encodeColor(fill)
		if err != nil {
			return err
		}
		dict["IC"] = ic
	}
	if margin != nil {
		if len(margin) != 4 {
			return pdf.Invalidf("invalid length %d for RD array", len(margin))
		}
		rd := make(pdf.Array, 4)
		for i, x := range margin {
			if x < 0 {
				return pdf.Invalidf("negative entry %g in RD array", x)
			}
			rd[i] = pdf.Number(x)
		}
		if margin[0]+margin[2] >= rect.Width() {
			return pdf.Invalidf("left and right margins exceed rectangle width")
		}
		if margin[1]+margin[3] >= rect.Height() {
			return pdf.Invalidf("top and bottom margins exceed rectangle height")
		}
		dict["RD"] = rd
	}
	return nil
}
