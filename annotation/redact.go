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

// Redact represents an annotation which marks content for removal from
// the document.
type Redact struct {
	Common
	Markup

	// QuadPoints (optional) restricts the marked region to a set of
	// quadrilaterals within the annotation rectangle.  If unset, the
	// whole rectangle is marked.
	QuadPoints []QuadPoint

	// FillColor (optional) is the color used to fill the redacted
	// region after the content has been removed.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor graphics.Color

	// OverlayText (optional) is text printed over the redacted region
	// after the content has been removed.
	OverlayText string

	// Repeat specifies whether the overlay text is repeated to fill the
	// region.
	Repeat bool

	// DefaultAppearance is the appearance string used in formatting the
	// overlay text.  Required if OverlayText is set.
	//
	// This corresponds to the /DA entry in the PDF annotation dictionary.
	DefaultAppearance string

	// Quadding is the justification of the overlay text.
	//
	// This corresponds to the /Q entry in the PDF annotation dictionary.
	Quadding int
}

var _ Annotation = (*Redact)(nil)

// AnnotationType returns "Redact".
// This implements the [Annotation] interface.
func (rd *Redact) AnnotationType() pdf.Name {
	return "Redact"
}

func (rd *Redact) fillColor() graphics.Color     { return rd.FillColor }
func (rd *Redact) setFillColor(c graphics.Color) { rd.FillColor = c }

// SetFillColor changes the fill color of the redacted region.  The
// stored appearance streams are left untouched until the appearance is
// regenerated.
func (rd *Redact) SetFillColor(c graphics.Color) {
	rd.FillColor = c
	rd.markStale()
}

func decodeRedact(r pdf.Getter, dict pdf.Dict) (*Redact, error) {
	redact := &Redact{}
	if err := decodeCommon(r, &redact.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &redact.Markup, dict); err != nil {
		return nil, err
	}

	if quads, err := pdf.Optional(decodeQuadPoints(r, dict["QuadPoints"])); err != nil {
		return nil, err
	} else {
		redact.QuadPoints = quads
	}

	if ic, err := pdf.Optional(extractColor(r, dict["IC"])); err != nil {
		return nil, err
	} else {
		redact.FillColor = ic
	}

	if text, err := pdf.Optional(pdf.GetTextString(r, dict["OverlayText"])); err != nil {
		return nil, err
	} else {
		redact.OverlayText = text
	}

	if repeat, err := pdf.Optional(pdf.GetBool(r, dict["Repeat"])); err != nil {
		return nil, err
	} else {
		redact.Repeat = bool(repeat)
	}

	if da, err := pdf.Optional(pdf.GetString(r, dict["DA"])); err != nil {
		return nil, err
	} else {
		redact.DefaultAppearance = string(da)
	}

	if q, err := pdf.Optional(pdf.GetInt(r, dict["Q"])); err != nil {
		return nil, err
	} else if q >= QuaddingLeft && q <= QuaddingRight {
		redact.Quadding = int(q)
	}

	return redact, nil
}

func (rd *Redact) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Redact"),
	}
	if err := rd.Common.fillDict(dict, isMarkup(rd)); err != nil {
		return nil, err
	}
	if err := rd.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if len(rd.QuadPoints) > 0 {
		dict["QuadPoints"] = encodeQuadPoints(rd.QuadPoints)
	}

	if rd.FillColor != nil {
		ic, err := encodeColor(rd.FillColor)
		if err != nil {
			return nil, err
		}
		dict["IC"] = ic
	}

	if rd.OverlayText != "" {
		if rd.DefaultAppearance == "" {
			return nil, pdf.Invalidf("overlay text without default appearance")
		}
		dict["OverlayText"] = pdf.TextString(rd.OverlayText)
		if rd.Repeat {
			dict["Repeat"] = pdf.Bool(true)
		}
	}

	if rd.DefaultAppearance != "" {
		dict["DA"] = pdf.String(rd.DefaultAppearance)
	}

	if rd.Quadding != QuaddingLeft {
		if rd.Quadding < QuaddingLeft || rd.Quadding > QuaddingRight {
			return nil, pdf.Invalidf("invalid quadding %d", rd.Quadding)
		}
		dict["Q"] = pdf.Integer(rd.Quadding)
	}

	return dict, nil
}
