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
	"github.com/textlayer/pdftext/graphics"
)

// encodeColor converts a color to a PDF color array.  The empty
// (transparent) color encodes as an empty array.
func encodeColor(col graphics.Color) (pdf.Array, error) {
	switch len(col) {
	case 0, 1, 3, 4:
		arr := make(pdf.Array, len(col))
		for i, x := range col {
			if x < 0 || x > 1 {
				return nil, pdf.Invalidf("color component %g outside [0,1]", x)
			}
			arr[i] = pdf.Number(x)
		}
		return arr, nil
	default:
		return nil, pdf.Invalidf("invalid number of color components: %d", len(col))
	}
}

// extractColor reads a PDF color array.  A missing entry yields nil, an
// empty array the transparent color.
func extractColor(r pdf.Getter, obj pdf.Object) (graphics.Color, error) {
	arr, err := pdf.GetArray(r, obj)
	if err != nil || arr == nil {
		return nil, err
	}
	switch len(arr) {
	case 0:
		return graphics.Transparent, nil
	case 1, 3, 4:
		col := make(graphics.Color, len(arr))
		for i, elem := range arr {
			x, err := pdf.GetNumber(r, elem)
			if err != nil {
				return nil, err
			}
			col[i] = float64(x)
		}
		return col, nil
	default:
		return nil, &pdf.MalformedDataError{
			Err: pdf.Invalidf("invalid number of color components: %d", len(arr)),
		}
	}
}
