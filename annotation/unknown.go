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

// Unknown represents an annotation of a subtype this package does not
// model.  The annotation dictionary is preserved unchanged, so that
// unknown annotations survive a decode/encode round trip.
type Unknown struct {
	Common

	// Subtype is the value of the /Subtype entry.
	Subtype pdf.Name

	// Data holds the entries of the annotation dictionary which are not
	// covered by Common.
	Data pdf.Dict
}

var _ Annotation = (*Unknown)(nil)

// AnnotationType returns the subtype of the annotation.
// This implements the [Annotation] interface.
func (u *Unknown) AnnotationType() pdf.Name {
	return u.Subtype
}

// commonKeys are the dictionary keys covered by the Common fields.
var commonKeys = map[pdf.Name]bool{
	"Type": true, "Subtype": true, "Rect": true, "Contents": true,
	"NM": true, "M": true, "F": true, "AP": true, "AS": true,
	"Border": true, "C": true, "Lang": true,
}

func decodeUnknown(r pdf.Getter, dict pdf.Dict, subtype pdf.Name) (*Unknown, error) {
	u := &Unknown{Subtype: subtype}
	if err := decodeCommon(r, &u.Common, dict); err != nil {
		return nil, err
	}

	for key, val := range dict {
		if !commonKeys[key] {
			if u.Data == nil {
				u.Data = pdf.Dict{}
			}
			u.Data[key] = val
		}
	}

	return u, nil
}

func (u *Unknown) Encode() (pdf.Dict, error) {
	if u.Subtype == "" {
		return nil, pdf.Invalidf("annotation without subtype")
	}

	dict := pdf.Dict{
		"Subtype": u.Subtype,
	}
	if err := u.Common.fillDict(dict, isMarkup(u)); err != nil {
		return nil, err
	}

	for key, val := range u.Data {
		if !commonKeys[key] && key != "Subtype" {
			dict[key] = val
		}
	}

	return dict, nil
}
