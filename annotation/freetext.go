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
)

// Text quadding (justification) values for [FreeText] and [Redact].
const (
	QuaddingLeft     = 0
	QuaddingCentered = 1
	QuaddingRight    = 2
)

// FreeText represents an annotation which displays text directly on the
// page, without an icon or popup window.
type FreeText struct {
	Common
	Markup

	// DefaultAppearance is the default appearance string used in
	// formatting the text, a sequence of content stream text state
	// operators.
	//
	// This corresponds to the /DA entry in the PDF annotation dictionary.
	DefaultAppearance string

	// Quadding is the justification of the text: QuaddingLeft,
	// QuaddingCentered or QuaddingRight.
	//
	// This corresponds to the /Q entry in the PDF annotation dictionary.
	Quadding int

	// Margin (optional) gives the differences between Common.Rect and
	// the text region, as [left, bottom, right, top].  The space is
	// used by the callout line.
	//
	// This corresponds to the /RD entry in the PDF annotation dictionary.
	Margin []float64

	// CalloutLine (optional) is a two- or three-point polyline pointing
	// from the text box to the location the text refers to.
	//
	// This corresponds to the /CL entry in the PDF annotation dictionary.
	CalloutLine []vec.Vec2

	// LineEnding (optional) is the line ending style of the callout
	// line.
	//
	// This corresponds to the /LE entry in the PDF annotation dictionary.
	LineEnding pdf.Name

	// BorderStyle (optional) specifies the line width and dash pattern
	// of the text box border.  If set, Common.Border is ignored.
	BorderStyle *BorderStyle

	// BorderEffect (optional) modifies the border drawing.
	BorderEffect *BorderEffect
}

var _ Annotation = (*FreeText)(nil)

// AnnotationType returns "FreeText".
// This implements the [Annotation] interface.
func (f *FreeText) AnnotationType() pdf.Name {
	return "FreeText"
}

// SetDefaultAppearance changes the text formatting.  The stored
// appearance streams are left untouched until the appearance is
// regenerated.
func (f *FreeText) SetDefaultAppearance(da string) {
	f.DefaultAppearance = da
	f.markStale()
}

// SetQuadding changes the text justification.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (f *FreeText) SetQuadding(q int) error {
	if q < QuaddingLeft || q > QuaddingRight {
		return pdf.Invalidf("invalid quadding %d", q)
	}
	f.Quadding = q
	f.markStale()
	return nil
}

func decodeFreeText(r pdf.Getter, dict pdf.Dict) (*FreeText, error) {
	ft := &FreeText{}
	if err := decodeCommon(r, &ft.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &ft.Markup, dict); err != nil {
		return nil, err
	}

	if da, err := pdf.Optional(pdf.GetString(r, dict["DA"])); err != nil {
		return nil, err
	} else {
		ft.DefaultAppearance = string(da)
	}

	if q, err := pdf.Optional(pdf.GetInt(r, dict["Q"])); err != nil {
		return nil, err
	} else if q >= QuaddingLeft && q <= QuaddingRight {
		ft.Quadding = int(q)
	}

	if rd, err := pdf.GetFloatArray(r, dict["RD"]); err == nil && len(rd) == 4 {
		ft.Margin = rd
	}

	ft.CalloutLine = decodeVertices(r, dict["CL"])

	if le, err := pdf.Optional(pdf.GetName(r, dict["LE"])); err != nil {
		return nil, err
	} else {
		ft.LineEnding = le
	}

	if bs, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return nil, err
	} else {
		ft.BorderStyle = bs
	}
	if be, err := pdf.Optional(decodeBorderEffect(r, dict["BE"])); err != nil {
		return nil, err
	} else {
		ft.BorderEffect = be
	}

	return ft, nil
}

func (f *FreeText) Encode() (pdf.Dict, error) {
	if f.DefaultAppearance == "" {
		return nil, pdf.Invalidf("free text annotation without default appearance")
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("FreeText"),
		"DA":      pdf.String(f.DefaultAppearance),
	}
	if err := f.Common.fillDict(dict, isMarkup(f)); err != nil {
		return nil, err
	}
	if err := f.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if f.Quadding != QuaddingLeft {
		if f.Quadding < QuaddingLeft || f.Quadding > QuaddingRight {
			return nil, pdf.Invalidf("invalid quadding %d", f.Quadding)
		}
		dict["Q"] = pdf.Integer(f.Quadding)
	}

	if f.Margin != nil {
		if len(f.Margin) != 4 {
			return nil, pdf.Invalidf("invalid length %d for RD array", len(f.Margin))
		}
		rd := make(pdf.Array, 4)
		for i, x := range f.Margin {
			if x < 0 {
				return nil, pdf.Invalidf("negative entry %g in RD array", x)
			}
			rd[i] = pdf.Number(x)
		}
		dict["RD"] = rd
	}

	if f.CalloutLine != nil {
		if n := len(f.CalloutLine); n != 2 && n != 3 {
			return nil, pdf.Invalidf("callout line with %d points", n)
		}
		dict["CL"] = encodeVertices(f.CalloutLine)
	}

	if f.LineEnding != "" && f.LineEnding != LineEndingNone {
		dict["LE"] = f.LineEnding
	}

	if f.BorderStyle != nil {
		bs, err := f.BorderStyle.Encode()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
		delete(dict, "Border")
	}
	if f.BorderEffect != nil {
		dict["BE"] = f.BorderEffect.Encode()
	}

	return dict, nil
}
