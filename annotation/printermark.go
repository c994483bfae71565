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

// PrinterMark represents a graphic symbol added to the page to assist
// production personnel, such as registration targets or color bars.
type PrinterMark struct {
	Common

	// MarkStyle (optional) is an arbitrary name identifying the type of
	// the printer's mark.
	//
	// This corresponds to the /MN entry in the PDF annotation dictionary.
	MarkStyle pdf.Name
}

var _ Annotation = (*PrinterMark)(nil)

// AnnotationType returns "PrinterMark".
// This implements the [Annotation] interface.
func (p *PrinterMark) AnnotationType() pdf.Name {
	return "PrinterMark"
}

func decodePrinterMark(r pdf.Getter, dict pdf.Dict) (*PrinterMark, error) {
	pm := &PrinterMark{}
	if err := decodeCommon(r, &pm.Common, dict); err != nil {
		return nil, err
	}

	if mn, err := pdf.Optional(pdf.GetName(r, dict["MN"])); err != nil {
		return nil, err
	} else {
		pm.MarkStyle = mn
	}

	return pm, nil
}

func (p *PrinterMark) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("PrinterMark"),
	}
	if err := p.Common.fillDict(dict, isMarkup(p)); err != nil {
		return nil, err
	}

	if p.MarkStyle != "" {
		dict["MN"] = p.MarkStyle
	}

	return dict, nil
}
