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

// RichMedia represents an annotation which embeds interactive media
// such as video or sound in the page.
type RichMedia struct {
	Common

	// Content refers to the rich media content dictionary, which holds
	// the media assets and their configurations.
	//
	// This corresponds to the /RichMediaContent entry in the PDF
	// annotation dictionary.
	Content pdf.Reference

	// Settings (optional) refers to the rich media settings dictionary,
	// which controls activation and deactivation.
	//
	// This corresponds to the /RichMediaSettings entry in the PDF
	// annotation dictionary.
	Settings pdf.Reference
}

var _ Annotation = (*RichMedia)(nil)

// AnnotationType returns "RichMedia".
// This implements the [Annotation] interface.
func (rm *RichMedia) AnnotationType() pdf.Name {
	return "RichMedia"
}

func decodeRichMedia(r pdf.Getter, dict pdf.Dict) (*RichMedia, error) {
	media := &RichMedia{}
	if err := decodeCommon(r, &media.Common, dict); err != nil {
		return nil, err
	}

	if ref, ok := dict["RichMediaContent"].(pdf.Reference); ok {
		media.Content = ref
	}
	if ref, ok := dict["RichMediaSettings"].(pdf.Reference); ok {
		media.Settings = ref
	}

	return media, nil
}

func (rm *RichMedia) Encode() (pdf.Dict, error) {
	if rm.Content == 0 {
		return nil, pdf.Invalidf("rich media annotation without content")
	}

	dict := pdf.Dict{
		"Subtype":          pdf.Name("RichMedia"),
		"RichMediaContent": rm.Content,
	}
	if err := rm.Common.fillDict(dict, isMarkup(rm)); err != nil {
		return nil, err
	}

	if rm.Settings != 0 {
		dict["RichMediaSettings"] = rm.Settings
	}

	return dict, nil
}
