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
)

// Caret represents an annotation which marks a point where text should
// be inserted.
type Caret struct {
	Common
	Markup

	// Margin (optional) gives the differences between Common.Rect and
	// the drawn caret, as [left, bottom, right, top].
	//
	// This corresponds to the /RD entry in the PDF annotation dictionary.
	Margin []float64

	// Symbol (optional) is the symbol associated with the caret:
	// "P" (paragraph symbol) or "None" (the default).
	//
	// This corresponds to the /Sy entry in the PDF annotation dictionary.
	Symbol pdf.Name
}

var _ Annotation = (*Caret)(nil)

// AnnotationType returns "Caret".
// This implements the [Annotation] interface.
func (c *Caret) AnnotationType() pdf.Name {
	return "Caret"
}

func decodeCaret(r pdf.Getter, dict pdf.Dict) (*Caret, error) {
	caret := &Caret{}
	if err := decodeCommon(r, &caret.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &caret.Markup, dict); err != nil {
		return nil, err
	}

	if rd, err := pdf.GetFloatArray(r, dict["RD"]); err == nil && len(rd) == 4 {
		caret.Margin = rd
	}

	if sy, err := pdf.Optional(pdf.GetName(r, dict["Sy"])); err != nil {
		return nil, err
	} else {
		caret.Symbol = sy
	}

	return caret, nil
}

func (c *Caret) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Caret"),
	}
	if err := c.Common.fillDict(dict, isMarkup(c)); err != nil {
		return nil, err
	}
	if err := c.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if c.Margin != nil {
		if len(c.Margin) != 4 {
			return nil, pdf.Invalidf("invalid length %d for RD array", len(c.Margin))
		}
		rd := make(pdf.Array, 4)
		for i, x := range c.Margin {
			if x < 0 {
				return nil, pdf.Invalidf("negative entry %g in RD array", x)
			}
			rd[i] = pdf.Number(x)
		}
		dict["RD"] = rd
	}

	if c.Symbol != "" && c.Symbol != "None" {
		if c.Symbol != "P" {
			return nil, pdf.Invalidf("invalid caret symbol %q", c.Symbol)
		}
		dict["Sy"] = c.Symbol
	}

	return dict, nil
}
