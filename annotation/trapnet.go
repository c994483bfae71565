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
	"time"

	pdf "github.com/textlayer/pdftext"
)

// TrapNet represents a trap network annotation, which records the
// trapping information of the page.  Trap network annotations are
// deprecated in PDF 2.0.
type TrapNet struct {
	Common

	// LastModified (optional) is the date the trap network was last
	// modified.
	LastModified time.Time

	// Fonts (optional) lists the font dictionaries used while building
	// the trap network.
	//
	// This corresponds to the /FontFauxing entry in the PDF annotation
	// dictionary.
	Fonts []pdf.Reference
}

var _ Annotation = (*TrapNet)(nil)

// AnnotationType returns "TrapNet".
// This implements the [Annotation] interface.
func (t *TrapNet) AnnotationType() pdf.Name {
	return "TrapNet"
}

func decodeTrapNet(r pdf.Getter, dict pdf.Dict) (*TrapNet, error) {
	tn := &TrapNet{}
	if err := decodeCommon(r, &tn.Common, dict); err != nil {
		return nil, err
	}

	if d, err := pdf.Optional(pdf.GetDate(r, dict["LastModified"])); err != nil {
		return nil, err
	} else {
		tn.LastModified = d
	}

	if arr, err := pdf.Optional(pdf.GetArray(r, dict["FontFauxing"])); err != nil {
		return nil, err
	} else {
		for _, elem := range arr {
			if ref, ok := elem.(pdf.Reference); ok {
				tn.Fonts = append(tn.Fonts, ref)
			}
		}
	}

	return tn, nil
}

func (t *TrapNet) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("TrapNet"),
	}
	if err := t.Common.fillDict(dict, isMarkup(t)); err != nil {
		return nil, err
	}

	if !t.LastModified.IsZero() {
		dict["LastModified"] = pdf.Date(t.LastModified)
	}

	if len(t.Fonts) > 0 {
		arr := make(pdf.Array, len(t.Fonts))
		for i, ref := range t.Fonts {
			arr[i] = ref
		}
		dict["FontFauxing"] = arr
	}

	return dict, nil
}
