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

package graphics

import (
	"seehuhn.de/go/geom/matrix"

	pdf "github.com/textlayer/pdftext"
)

// Form represents a form XObject, used as an annotation appearance stream.
type Form struct {
	// BBox is the bounding box of the form in form space.
	BBox pdf.Rectangle

	// Matrix maps form space to the space of the page the form is drawn on.
	// The zero value is treated as the identity matrix.
	Matrix matrix.Matrix

	// Content is the content stream of the form.
	Content []byte

	// Resources is the resource dictionary for Content, or nil.
	Resources pdf.Dict
}

// Draw runs fn with a fresh [Writer] and packages the result as a Form with
// the given bounding box.
func Draw(bbox pdf.Rectangle, fn func(w *Writer)) (*Form, error) {
	w := NewWriter()
	fn(w)
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Form{
		BBox:      bbox,
		Content:   w.Content.Bytes(),
		Resources: w.Resources(),
	}, nil
}

// AsStream converts the form to a stream object.
func (f *Form) AsStream() *pdf.Stream {
	dict := pdf.Dict{
		"Type":    pdf.Name("XObject"),
		"Subtype": pdf.Name("Form"),
		"BBox":    &f.BBox,
	}
	if f.Matrix != (matrix.Matrix{}) && f.Matrix != matrix.Identity {
		m := f.Matrix
		dict["Matrix"] = pdf.Array{
			pdf.Number(m[0]), pdf.Number(m[1]), pdf.Number(m[2]),
			pdf.Number(m[3]), pdf.Number(m[4]), pdf.Number(m[5]),
		}
	}
	if f.Resources != nil {
		dict["Resources"] = f.Resources
	}
	return &pdf.Stream{
		Dict: dict,
		Data: f.Content,
	}
}

// Embed writes the form to the store as an indirect stream object and
// returns its reference.
func (f *Form) Embed(s pdf.Putter) (pdf.Reference, error) {
	ref := s.Alloc()
	if err := s.Put(ref, f.AsStream()); err != nil {
		return 0, err
	}
	return ref, nil
}
