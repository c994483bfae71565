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
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// maxInlineImageDim is the maximum width and height, in pixels, of an
// image written as an inline image.  Larger images are downscaled.
const maxInlineImageDim = 256

// InlineImage draws img into the unit square [0,1]x[0,1] of the current
// coordinate system using an inline image object.  Images larger than
// 256 pixels along either axis are downscaled first.
//
// This implements the PDF operators "BI", "ID" and "EI".
func (w *Writer) InlineImage(img image.Image) {
	if w.Err != nil {
		return
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		w.Err = fmt.Errorf("inline image has empty bounds")
		return
	}
	if width > maxInlineImageDim || height > maxInlineImageDim {
		scale := float64(maxInlineImageDim) / float64(width)
		if s := float64(maxInlineImageDim) / float64(height); s < scale {
			scale = s
		}
		width = int(float64(width)*scale + 0.5)
		height = int(float64(height)*scale + 0.5)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	_, w.Err = fmt.Fprintf(w.Content,
		"BI /W %d /H %d /CS /RGB /BPC 8 ID ", width, height)
	if w.Err != nil {
		return
	}
	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := dst.PixOffset(x, y)
			copy(row[3*x:], dst.Pix[i:i+3])
		}
		if _, w.Err = w.Content.Write(row); w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintln(w.Content, "\nEI")
}
