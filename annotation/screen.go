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

// Screen represents a region of the page in which media clips are
// played.
type Screen struct {
	Common

	// Title (optional) is the title of the screen annotation.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	Title string

	// Characteristics (optional) holds the visual characteristics of
	// the screen.
	//
	// This corresponds to the /MK entry in the PDF annotation dictionary.
	Characteristics *AppearanceCharacteristics

	// Action (optional) refers to the action performed when the
	// annotation is activated.
	//
	// This corresponds to the /A entry in the PDF annotation dictionary.
	Action pdf.Reference
}

var _ Annotation = (*Screen)(nil)

// AnnotationType returns "Screen".
// This implements the [Annotation] interface.
func (s *Screen) AnnotationType() pdf.Name {
	return "Screen"
}

func decodeScreen(r pdf.Getter, dict pdf.Dict) (*Screen, error) {
	screen := &Screen{}
	if err := decodeCommon(r, &screen.Common, dict); err != nil {
		return nil, err
	}

	if t, err := pdf.Optional(pdf.GetTextString(r, dict["T"])); err != nil {
		return nil, err
	} else {
		screen.Title = t
	}

	if mk, err := pdf.Optional(pdf.GetDict(r, dict["MK"])); err != nil {
		return nil, err
	} else if mk != nil {
		ch := &AppearanceCharacteristics{}
		if rot, err := pdf.GetInt(r, mk["R"]); err == nil {
			ch.Rotation = int(rot)
		}
		if bc, err := pdf.Optional(extractColor(r, mk["BC"])); err == nil {
			ch.BorderColor = bc
		}
		if bg, err := pdf.Optional(extractColor(r, mk["BG"])); err == nil {
			ch.BackgroundColor = bg
		}
		screen.Characteristics = ch
	}

	if ref, ok := dict["A"].(pdf.Reference); ok {
		screen.Action = ref
	}

	return screen, nil
}

func (s *Screen) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Screen"),
	}
	if err := s.Common.fillDict(dict, isMarkup(s)); err != nil {
		return nil, err
	}

	if s.Title != "" {
		dict["T"] = pdf.TextString(s.Title)
	}

	if ch := s.Characteristics; ch != nil {
		mk := pdf.Dict{}
		if ch.Rotation != 0 {
			if ch.Rotation%90 != 0 {
				return nil, pdf.Invalidf("screen rotation %d not a multiple of 90", ch.Rotation)
			}
			mk["R"] = pdf.Integer(ch.Rotation)
		}
		if ch.BorderColor != nil {
			bc, err := encodeColor(ch.BorderColor)
			if err != nil {
				return nil, err
			}
			mk["BC"] = bc
		}
		if ch.BackgroundColor != nil {
			bg, err := encodeColor(ch.BackgroundColor)
			if err != nil {
				return nil, err
			}
			mk["BG"] = bg
		}
		if len(mk) > 0 {
			dict["MK"] = mk
		}
	}

	if s.Action != 0 {
		dict["A"] = s.Action
	}

	return dict, nil
}
