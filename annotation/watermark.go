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
	"seehuhn.de/go/geom/matrix"

	pdf "github.com/textlayer/pdftext"
)

// Watermark represents a graphic to be printed at a fixed size and
// position on the page, regardless of the page size.
type Watermark struct {
	Common

	// Matrix (optional) maps the appearance form to the fixed print
	// area.  The default is the identity matrix.
	//
	// This is part of the /FixedPrint entry in the PDF annotation
	// dictionary.
	Matrix matrix.Matrix

	// HOffset and VOffset translate the fixed print area relative to
	// the page, as percentages of the page width and height.
	//
	// These are part of the /FixedPrint entry in the PDF annotation
	// dictionary.
	HOffset, VOffset float64
}

var _ Annotation = (*Watermark)(nil)

// AnnotationType returns "Watermark".
// This implements the [Annotation] interface.
func (w *Watermark) AnnotationType() pdf.Name {
	return "Watermark"
}

func decodeWatermark(r pdf.Getter, dict pdf.Dict) (*Watermark, error) {
	wm := &Watermark{Matrix: matrix.Identity}
	if err := decodeCommon(r, &wm.Common, dict); err != nil {
		return nil, err
	}

	if fp, err := pdf.Optional(pdf.GetDictTyped(r, dict["FixedPrint"], "FixedPrint")); err != nil {
		return nil, err
	} else if fp != nil {
		if m, err := pdf.GetFloatArray(r, fp["Matrix"]); err == nil && len(m) == 6 {
			copy(wm.Matrix[:], m)
		}
		if h, err := pdf.GetNumber(r, fp["H"]); err == nil {
			wm.HOffset = float64(h)
		}
		if v, err := pdf.GetNumber(r, fp["V"]); err == nil {
			wm.VOffset = float64(v)
		}
	}

	return wm, nil
}

func (w *Watermark) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Watermark"),
	}
	if err := w.Common.fillDict(dict, isMarkup(w)); err != nil {
		return nil, err
	}

	if w.Matrix != (matrix.Matrix{}) && w.Matrix != matrix.Identity || w.HOffset != 0 || w.VOffset != 0 {
		fp := pdf.Dict{"Type": pdf.Name("FixedPrint")}
		if w.Matrix != (matrix.Matrix{}) && w.Matrix != matrix.Identity {
			m := make(pdf.Array, 6)
			for i, x := range w.Matrix {
				m[i] = pdf.Number(x)
			}
			fp["Matrix"] = m
		}
		if w.HOffset != 0 {
			fp["H"] = pdf.Number(w.HOffset)
		}
		if w.VOffset != 0 {
			fp["V"] = pdf.Number(w.VOffset)
		}
		dict["FixedPrint"] = fp
	}

	return dict, nil
}
