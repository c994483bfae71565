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

// Link represents an annotation which makes a region of the page act as
// a hypertext link.
type Link struct {
	Common

	// URI (optional) is the target of the link.  This is stored as a
	// URI action in the /A entry of the PDF annotation dictionary.
	URI string

	// Dest (optional) is a destination within the document, used when
	// URI is empty.
	//
	// This corresponds to the /Dest entry in the PDF annotation dictionary.
	Dest pdf.Object

	// Highlight (optional) is the visual effect used when the link is
	// activated: "N" (none), "I" (invert, the default), "O" (outline)
	// or "P" (push).
	//
	// This corresponds to the /H entry in the PDF annotation dictionary.
	Highlight pdf.Name

	// QuadPoints (optional) restricts the active region to a set of
	// quadrilaterals within the annotation rectangle.
	QuadPoints []QuadPoint

	// BorderStyle (optional) specifies the link border.  If set,
	// Common.Border is ignored.
	BorderStyle *BorderStyle
}

var _ Annotation = (*Link)(nil)

// AnnotationType returns "Link".
// This implements the [Annotation] interface.
func (l *Link) AnnotationType() pdf.Name {
	return "Link"
}

func decodeLink(r pdf.Getter, dict pdf.Dict) (*Link, error) {
	link := &Link{}
	if err := decodeCommon(r, &link.Common, dict); err != nil {
		return nil, err
	}

	if action, err := pdf.Optional(pdf.GetDict(r, dict["A"])); err != nil {
		return nil, err
	} else if action != nil {
		if s, err := pdf.Optional(pdf.GetString(r, action["URI"])); err != nil {
			return nil, err
		} else {
			link.URI = string(s)
		}
	}

	if dest := dict["Dest"]; dest != nil {
		link.Dest = dest
	}

	if h, err := pdf.Optional(pdf.GetName(r, dict["H"])); err != nil {
		return nil, err
	} else {
		link.Highlight = h
	}

	if quads, err := pdf.Optional(decodeQuadPoints(r, dict["QuadPoints"])); err != nil {
		return nil, err
	} else {
		link.QuadPoints = quads
	}

	if bs, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return nil, err
	} else {
		link.BorderStyle = bs
	}

	return link, nil
}

func (l *Link) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Link"),
	}
	if err := l.Common.fillDict(dict, isMarkup(l)); err != nil {
		return nil, err
	}

	if l.URI != "" {
		if l.Dest != nil {
			return nil, pdf.Invalidf("link with both URI and destination")
		}
		dict["A"] = pdf.Dict{
			"S":   pdf.Name("URI"),
			"URI": pdf.String(l.URI),
		}
	} else if l.Dest != nil {
		dict["Dest"] = l.Dest
	}

	if l.Highlight != "" && l.Highlight != "I" {
		dict["H"] = l.Highlight
	}

	if len(l.QuadPoints) > 0 {
		dict["QuadPoints"] = encodeQuadPoints(l.QuadPoints)
	}

	if l.BorderStyle != nil {
		bs, err := l.BorderStyle.Encode()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
		delete(dict, "Border")
	}

	return dict, nil
}
