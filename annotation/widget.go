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

// IconFit describes how the icon of a widget annotation is scaled into
// the annotation rectangle.
type IconFit struct {
	// ScaleWhen determines when the icon is scaled: "A" (always, the
	// default), "B" (when the icon is bigger), "S" (when the icon is
	// smaller) or "N" (never).
	//
	// This corresponds to the /SW entry in the icon fit dictionary.
	ScaleWhen pdf.Name

	// Proportional selects proportional instead of anamorphic scaling.
	//
	// This corresponds to the /S entry in the icon fit dictionary.
	Proportional bool

	// Left and Bottom position the icon within the rectangle when
	// proportional scaling leaves empty space.  Both are fractions in
	// the range 0 to 1; the default is 0.5 (centered).
	//
	// This corresponds to the /A entry in the icon fit dictionary.
	Left, Bottom float64

	// FitBounds scales the icon to fit the bounds of the rectangle
	// inside the border width.
	//
	// This corresponds to the /FB entry in the icon fit dictionary.
	FitBounds bool
}

// Encode converts the icon fit settings to a PDF dictionary.
func (fit *IconFit) Encode() (pdf.Dict, error) {
	if fit.Left < 0 || fit.Left > 1 || fit.Bottom < 0 || fit.Bottom > 1 {
		return nil, pdf.Invalidf("icon fit position (%g,%g) outside [0,1]", fit.Left, fit.Bottom)
	}
	dict := pdf.Dict{}
	if fit.ScaleWhen != "" && fit.ScaleWhen != "A" {
		dict["SW"] = fit.ScaleWhen
	}
	if fit.Proportional {
		dict["S"] = pdf.Name("P")
	}
	if fit.Left != 0.5 || fit.Bottom != 0.5 {
		dict["A"] = pdf.Array{pdf.Number(fit.Left), pdf.Number(fit.Bottom)}
	}
	if fit.FitBounds {
		dict["FB"] = pdf.Bool(true)
	}
	return dict, nil
}

// decodeIconFit reads an icon fit dictionary.
func decodeIconFit(r pdf.Getter, obj pdf.Object) (*IconFit, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil || dict == nil {
		return nil, err
	}
	fit := &IconFit{ScaleWhen: "A", Left: 0.5, Bottom: 0.5}
	if sw, err := pdf.GetName(r, dict["SW"]); err == nil && sw != "" {
		fit.ScaleWhen = sw
	}
	if s, err := pdf.GetName(r, dict["S"]); err == nil && s == "P" {
		fit.Proportional = true
	}
	if a, err := pdf.GetFloatArray(r, dict["A"]); err == nil && len(a) == 2 {
		clamp := func(x float64) float64 {
			if x < 0 {
				return 0
			}
			if x > 1 {
				return 1
			}
			return x
		}
		fit.Left = clamp(a[0])
		fit.Bottom = clamp(a[1])
	}
	if fb, err := pdf.GetBool(r, dict["FB"]); err == nil {
		fit.FitBounds = bool(fb)
	}
	return fit, nil
}

// AppearanceCharacteristics holds the visual characteristics of a
// widget annotation.
type AppearanceCharacteristics struct {
	// Rotation is the rotation of the widget content relative to the
	// page, in degrees.  Must be a multiple of 90.
	//
	// This corresponds to the /R entry in the dictionary.
	Rotation int

	// BorderColor (optional) is the border color of the widget.
	//
	// This corresponds to the /BC entry in the dictionary.
	BorderColor graphics.Color

	// BackgroundColor (optional) is the background color of the widget.
	//
	// This corresponds to the /BG entry in the dictionary.
	BackgroundColor graphics.Color

	// NormalCaption (optional) is the widget caption.
	//
	// This corresponds to the /CA entry in the dictionary.
	NormalCaption string

	// IconFit (optional) describes how an icon caption is scaled.
	//
	// This corresponds to the /IF entry in the dictionary.
	IconFit *IconFit
}

// Widget represents the visual part of an interactive form field.
type Widget struct {
	Common

	// Highlight (optional) is the visual effect used when the widget is
	// activated: "N" (none), "I" (invert, the default), "O" (outline)
	// or "P" (push).
	//
	// This corresponds to the /H entry in the PDF annotation dictionary.
	Highlight pdf.Name

	// Characteristics (optional) holds the visual characteristics of
	// the widget.
	//
	// This corresponds to the /MK entry in the PDF annotation dictionary.
	Characteristics *AppearanceCharacteristics

	// BorderStyle (optional) specifies the widget border.  If set,
	// Common.Border is ignored.
	BorderStyle *BorderStyle
}

var _ Annotation = (*Widget)(nil)

// AnnotationType returns "Widget".
// This implements the [Annotation] interface.
func (w *Widget) AnnotationType() pdf.Name {
	return "Widget"
}

func decodeWidget(r pdf.Getter, dict pdf.Dict) (*Widget, error) {
	widget := &Widget{}
	if err := decodeCommon(r, &widget.Common, dict); err != nil {
		return nil, err
	}

	if h, err := pdf.Optional(pdf.GetName(r, dict["H"])); err != nil {
		return nil, err
	} else {
		widget.Highlight = h
	}

	if mk, err := pdf.Optional(pdf.GetDict(r, dict["MK"])); err != nil {
		return nil, err
	} else if mk != nil {
		ch := &AppearanceCharacteristics{}
		if rot, err := pdf.GetInt(r, mk["R"]); err == nil {
			ch.Rotation = int(rot)
		}
		if bc, err := pdf.Optional(extractColor(r, mk["BC"])); err == nil {
			ch.BorderColor = bc
		}
		if bg, err := pdf.Optional(extractColor(r, mk["BG"])); err == nil {
			ch.BackgroundColor = bg
		}
		if ca, err := pdf.Optional(pdf.GetTextString(r, mk["CA"])); err == nil {
			ch.NormalCaption = ca
		}
		if fit, err := pdf.Optional(decodeIconFit(r, mk["IF"])); err == nil {
			ch.IconFit = fit
		}
		widget.Characteristics = ch
	}

	if bs, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return nil, err
	} else {
		widget.BorderStyle = bs
	}

	return widget, nil
}

func (w *Widget) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Widget"),
	}
	if err := w.Common.fillDict(dict, isMarkup(w)); err != nil {
		return nil, err
	}

	if w.Highlight != "" && w.Highlight != "I" {
		dict["H"] = w.Highlight
	}

	if ch := w.Characteristics; ch != nil {
		mk := pdf.Dict{}
		if ch.Rotation != 0 {
			if ch.Rotation%90 != 0 {
				return nil, pdf.Invalidf("widget rotation %d not a multiple of 90", ch.Rotation)
			}
			mk["R"] = pdf.Integer(ch.Rotation)
		}
		if ch.BorderColor != nil {
			bc, err := encodeColor(ch.BorderColor)
			if err != nil {
				return nil, err
			}
			mk["BC"] = bc
		}
		if ch.BackgroundColor != nil {
			bg, err := encodeColor(ch.BackgroundColor)
			if err != nil {
				return nil, err
			}
			mk["BG"] = bg
		}
		if ch.NormalCaption != "" {
			mk["CA"] = pdf.TextString(ch.NormalCaption)
		}
		if ch.IconFit != nil {
			fit, err := ch.IconFit.Encode()
			if err != nil {
				return nil, err
			}
			mk["IF"] = fit
		}
		if len(mk) > 0 {
			dict["MK"] = mk
		}
	}

	if w.BorderStyle != nil {
		bs, err := w.BorderStyle.Encode()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
		delete(dict, "Border")
	}

	return dict, nil
}
