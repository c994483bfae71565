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

// Sound represents an annotation which plays a recorded sound,
// displayed as an icon.  Sound annotations are deprecated in PDF 2.0.
type Sound struct {
	Common
	Markup

	// Sound refers to the sound stream to play.
	//
	// This corresponds to the /Sound entry in the PDF annotation dictionary.
	Sound pdf.Reference

	// IconName (optional) is the name of the display icon: Speaker or
	// Mic.  The default is Speaker.
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	IconName pdf.Name
}

var _ Annotation = (*Sound)(nil)

// AnnotationType returns "Sound".
// This implements the [Annotation] interface.
func (s *Sound) AnnotationType() pdf.Name {
	return "Sound"
}

func decodeSound(r pdf.Getter, dict pdf.Dict) (*Sound, error) {
	sound := &Sound{}
	if err := decodeCommon(r, &sound.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &sound.Markup, dict); err != nil {
		return nil, err
	}

	if ref, ok := dict["Sound"].(pdf.Reference); ok {
		sound.Sound = ref
	}

	if name, err := pdf.Optional(pdf.GetName(r, dict["Name"])); err != nil {
		return nil, err
	} else {
		sound.IconName = name
	}

	return sound, nil
}

func (s *Sound) Encode() (pdf.Dict, error) {
	if s.Sound == 0 {
		return nil, pdf.Invalidf("sound annotation without sound stream")
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Sound"),
		"Sound":   s.Sound,
	}
	if err := s.Common.fillDict(dict, isMarkup(s)); err != nil {
		return nil, err
	}
	if err := s.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if s.IconName != "" && s.IconName != "Speaker" {
		dict["Name"] = s.IconName
	}

	return dict, nil
}
