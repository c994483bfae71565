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

// FileAttachment represents an annotation which embeds a reference to a
// file, displayed as an icon.
type FileAttachment struct {
	Common
	Markup

	// File refers to the file specification dictionary of the attached
	// file.
	//
	// This corresponds to the /FS entry in the PDF annotation dictionary.
	File pdf.Reference

	// IconName (optional) is the name of the display icon: Graph,
	// PushPin, Paperclip or Tag.  The default is PushPin.
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	IconName pdf.Name
}

var _ Annotation = (*FileAttachment)(nil)

// AnnotationType returns "FileAttachment".
// This implements the [Annotation] interface.
func (f *FileAttachment) AnnotationType() pdf.Name {
	return "FileAttachment"
}

// SetIconName changes the display icon.  The stored appearance streams
// are left untouched until the appearance is regenerated.
func (f *FileAttachment) SetIconName(name pdf.Name) {
	f.IconName = name
	f.markStale()
}

func decodeFileAttachment(r pdf.Getter, dict pdf.Dict) (*FileAttachment, error) {
	fa := &FileAttachment{}
	if err := decodeCommon(r, &fa.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &fa.Markup, dict); err != nil {
		return nil, err
	}

	if ref, ok := dict["FS"].(pdf.Reference); ok {
		fa.File = ref
	}

	if name, err := pdf.Optional(pdf.GetName(r, dict["Name"])); err != nil {
		return nil, err
	} else {
		fa.IconName = name
	}

	return fa, nil
}

func (f *FileAttachment) Encode() (pdf.Dict, error) {
	if f.File == 0 {
		return nil, pdf.Invalidf("file attachment annotation without file")
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("FileAttachment"),
		"FS":      f.File,
	}
	if err := f.Common.fillDict(dict, isMarkup(f)); err != nil {
		return nil, err
	}
	if err := f.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if f.IconName != "" && f.IconName != "PushPin" {
		dict["Name"] = f.IconName
	}

	return dict, nil
}
