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

// Annot3D represents an annotation which embeds 3D artwork in the page.
type Annot3D struct {
	Common

	// Artwork refers to the 3D stream or 3D reference dictionary.
	//
	// This corresponds to the /3DD entry in the PDF annotation dictionary.
	Artwork pdf.Reference

	// Interactive specifies whether the user may interact with the
	// artwork.
	//
	// This corresponds to the /3DI entry in the PDF annotation dictionary.
	Interactive bool

	// ViewBox (optional) is the region of the annotation rectangle in
	// which the artwork is drawn.
	//
	// This corresponds to the /3DB entry in the PDF annotation dictionary.
	ViewBox *pdf.Rectangle
}

var _ Annotation = (*Annot3D)(nil)

// AnnotationType returns "3D".
// This implements the [Annotation] interface.
func (a *Annot3D) AnnotationType() pdf.Name {
	return "3D"
}

func decodeAnnot3D(r pdf.Getter, dict pdf.Dict) (*Annot3D, error) {
	a := &Annot3D{Interactive: true}
	if err := decodeCommon(r, &a.Common, dict); err != nil {
		return nil, err
	}

	if ref, ok := dict["3DD"].(pdf.Reference); ok {
		a.Artwork = ref
	}

	if i, err := pdf.Optional(pdf.GetBool(r, dict["3DI"])); err != nil {
		return nil, err
	} else if _, present := dict["3DI"]; present {
		a.Interactive = bool(i)
	}

	if box, err := pdf.Optional(pdf.GetRectangle(r, dict["3DB"])); err != nil {
		return nil, err
	} else {
		a.ViewBox = box
	}

	return a, nil
}

func (a *Annot3D) Encode() (pdf.Dict, error) {
	if a.Artwork == 0 {
		return nil, pdf.Invalidf("3D annotation without artwork")
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("3D"),
		"3DD":     a.Artwork,
	}
	if err := a.Common.fillDict(dict, isMarkup(a)); err != nil {
		return nil, err
	}

	if !a.Interactive {
		dict["3DI"] = pdf.Bool(false)
	}
	if a.ViewBox != nil {
		box := *a.ViewBox
		box.Round(2)
		dict["3DB"] = &box
	}

	return dict, nil
}
