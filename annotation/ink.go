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
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
)

// Ink represents a freehand "scribble" annotation composed of one or
// more strokes.
type Ink struct {
	Common
	Markup

	// InkList are the strokes, each a list of connected points in page
	// space.
	InkList [][]vec.Vec2

	// BorderStyle (optional) specifies the stroke width and dash
	// pattern.  If set, Common.Border is ignored.
	BorderStyle *BorderStyle
}

var _ Annotation = (*Ink)(nil)

// AnnotationType returns "Ink".
// This implements the [Annotation] interface.
func (ink *Ink) AnnotationType() pdf.Name {
	return "Ink"
}

// SetInkList changes the strokes.  The stored appearance streams are
// left untouched until the appearance is regenerated.
func (ink *Ink) SetInkList(strokes [][]vec.Vec2) {
	ink.InkList = strokes
	ink.markStale()
}

func decodeInk(r pdf.Getter, dict pdf.Dict) (*Ink, error) {
	ink := &Ink{}
	if err := decodeCommon(r, &ink.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &ink.Markup, dict); err != nil {
		return nil, err
	}

	if list, err := pdf.Optional(pdf.GetArray(r, dict["InkList"])); err != nil {
		return nil, err
	} else {
		for _, elem := range list {
			stroke := decodeVertices(r, elem)
			if len(stroke) > 0 {
				ink.InkList = append(ink.InkList, stroke)
			}
		}
	}

	if bs, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return nil, err
	} else {
		ink.BorderStyle = bs
	}

	return ink, nil
}

func (ink *Ink) Encode() (pdf.Dict, error) {
	if len(ink.InkList) == 0 {
		return nil, pdf.Invalidf("ink annotation without strokes")
	}

	list := make(pdf.Array, len(ink.InkList))
	for i, stroke := range ink.InkList {
		if len(stroke) == 0 {
			return nil, pdf.Invalidf("empty ink stroke")
		}
		list[i] = encodeVertices(stroke)
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Ink"),
		"InkList": list,
	}
	if err := ink.Common.fillDict(dict, isMarkup(ink)); err != nil {
		return nil, err
	}
	if err := ink.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if ink.BorderStyle != nil {
		bs, err := ink.BorderStyle.Encode()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
		delete(dict, "Border")
	}

	return dict, nil
}
