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

// Popup represents a popup window for entering or editing the text of
// the markup annotation it is attached to.
type Popup struct {
	Common

	// Parent (optional) refers to the markup annotation this popup
	// belongs to.  If set, the popup takes its contents, modification
	// date and color from the parent.
	Parent pdf.Reference

	// Open specifies whether the popup is initially displayed open.
	Open bool
}

var _ Annotation = (*Popup)(nil)

// AnnotationType returns "Popup".
// This implements the [Annotation] interface.
func (p *Popup) AnnotationType() pdf.Name {
	return "Popup"
}

func decodePopup(r pdf.Getter, dict pdf.Dict) (*Popup, error) {
	popup := &Popup{}
	if err := decodeCommon(r, &popup.Common, dict); err != nil {
		return nil, err
	}

	if ref, ok := dict["Parent"].(pdf.Reference); ok {
		popup.Parent = ref
	}

	if open, err := pdf.Optional(pdf.GetBool(r, dict["Open"])); err != nil {
		return nil, err
	} else {
		popup.Open = bool(open)
	}

	return popup, nil
}

func (p *Popup) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Popup"),
	}
	if err := p.Common.fillDict(dict, isMarkup(p)); err != nil {
		return nil, err
	}

	if p.Parent != 0 {
		dict["Parent"] = p.Parent
	}
	if p.Open {
		dict["Open"] = pdf.Bool(true)
	}

	return dict, nil
}
