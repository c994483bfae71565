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

// Annotation is the common interface of all annotation types.
type Annotation interface {
	// AnnotationType returns the value of the /Subtype entry of the
	// annotation dictionary.
	AnnotationType() pdf.Name

	// Encode converts the annotation to a PDF annotation dictionary.
	Encode() (pdf.Dict, error)

	common() *Common
}

// markupAnnotation is implemented by all types which embed [Markup].
type markupAnnotation interface {
	Annotation
	markupFields() *Markup
}

// isMarkup reports whether a is one of the markup annotation types.
func isMarkup(a Annotation) bool {
	_, ok := a.(markupAnnotation)
	return ok
}

// markupOf returns the markup fields of a, or nil if a is not a markup
// annotation.
func markupOf(a Annotation) *Markup {
	if m, ok := a.(markupAnnotation); ok {
		return m.markupFields()
	}
	return nil
}

// CommonOf returns the fields shared by all annotation types.
func CommonOf(a Annotation) *Common {
	return a.common()
}

// MarkupOf returns the markup fields of a, or nil if a is not a markup
// annotation.
func MarkupOf(a Annotation) *Markup {
	return markupOf(a)
}

// Decode reads an annotation dictionary from the store and returns the
// matching annotation type.  Unknown subtypes decode to [*Unknown].
func Decode(r pdf.Getter, obj pdf.Object) (Annotation, error) {
	dict, err := pdf.GetDictTyped(r, obj, "Annot")
	if err != nil {
		return nil, err
	}
	if dict == nil {
		return nil, &pdf.MalformedDataError{Err: errMissingDict}
	}

	subtype, err := pdf.GetName(r, dict["Subtype"])
	if err != nil {
		return nil, err
	}

	switch subtype {
	case "Text":
		return decodeText(r, dict)
	case "Link":
		return decodeLink(r, dict)
	case "FreeText":
		return decodeFreeText(r, dict)
	case "Line":
		return decodeLine(r, dict)
	case "Square":
		return decodeSquare(r, dict)
	case "Circle":
		return decodeCircle(r, dict)
	case "Polygon":
		return decodePolygon(r, dict)
	case "PolyLine":
		return decodePolyLine(r, dict)
	case "Highlight", "Underline", "StrikeOut", "Squiggly":
		return decodeTextMarkup(r, dict, subtype)
	case "Stamp":
		return decodeStamp(r, dict)
	case "Caret":
		return decodeCaret(r, dict)
	case "Ink":
		return decodeInk(r, dict)
	case "Popup":
		return decodePopup(r, dict)
	case "FileAttachment":
		return decodeFileAttachment(r, dict)
	case "Sound":
		return decodeSound(r, dict)
	case "Movie":
		return decodeMovie(r, dict)
	case "Widget":
		return decodeWidget(r, dict)
	case "Screen":
		return decodeScreen(r, dict)
	case "PrinterMark":
		return decodePrinterMark(r, dict)
	case "TrapNet":
		return decodeTrapNet(r, dict)
	case "Watermark":
		return decodeWatermark(r, dict)
	case "3D":
		return decodeAnnot3D(r, dict)
	case "Redact":
		return decodeRedact(r, dict)
	case "RichMedia":
		return decodeRichMedia(r, dict)
	case "PagingSeal":
		return decodePagingSeal(r, dict)
	default:
		return decodeUnknown(r, dict, subtype)
	}
}
