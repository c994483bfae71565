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
	"image"

	pdf "github.com/textlayer/pdftext"
)

// Stamp represents a rubber stamp annotation.
type Stamp struct {
	Common
	Markup

	// IconName is the name of the stamp icon: Approved, Experimental,
	// NotApproved, AsIs, Expired, NotForPublicRelease, Confidential,
	// Final, Sold, Departmental, ForComment, TopSecret, Draft or
	// ForPublicRelease.  The default is Draft.
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	IconName pdf.Name

	// Image (optional) is a bitmap to stamp instead of a named icon.
	// The image is not stored in the annotation dictionary; it is used
	// when the appearance stream is generated.
	Image image.Image
}

var _ Annotation = (*Stamp)(nil)

// AnnotationType returns "Stamp".
// This implements the [Annotation] interface.
func (s *Stamp) AnnotationType() pdf.Name {
	return "Stamp"
}

// SetIconName changes the stamp icon.  The stored appearance streams are
// left untouched until the appearance is regenerated.
func (s *Stamp) SetIconName(name pdf.Name) {
	s.IconName = name
	s.markStale()
}

// SetImage replaces the stamp icon by a bitmap.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (s *Stamp) SetImage(img image.Image) {
	s.Image = img
	s.markStale()
}

func decodeStamp(r pdf.Getter, dict pdf.Dict) (*Stamp, error) {
	stamp := &Stamp{}
	if err := decodeCommon(r, &stamp.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &stamp.Markup, dict); err != nil {
		return nil, err
	}

	if name, err := pdf.Optional(pdf.GetName(r, dict["Name"])); err != nil {
		return nil, err
	} else {
		stamp.IconName = name
	}

	return stamp, nil
}

func (s *Stamp) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Stamp"),
	}
	if err := s.Common.fillDict(dict, isMarkup(s)); err != nil {
		return nil, err
	}
	if err := s.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if s.IconName != "" && s.IconName != "Draft" {
		dict["Name"] = s.IconName
	}

	return dict, nil
}
