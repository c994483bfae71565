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

package appearance

import (
	"bytes"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"

	pdf "github.com/textlayer/pdftext"
)

// textMetrics measures text using the Go Regular font.
type textMetrics struct {
	font *sfnt.Font
	cmap cmap.Subtable
}

var loadMetrics = sync.OnceValue(func() *textMetrics {
	f, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil
	}
	sub, err := f.CMapTable.GetBest()
	if err != nil {
		return nil
	}
	return &textMetrics{font: f, cmap: sub}
})

// textWidth returns the width of s, in points, when drawn at the given
// font size.  Text drawn with the builtin font may differ slightly, since
// the widths are taken from the Go Regular font.
func textWidth(s string, size float64) float64 {
	m := loadMetrics()
	if m == nil {
		// crude fallback, roughly right for Latin text
		return 0.5 * size * float64(len([]rune(s)))
	}
	var total float64
	for _, r := range s {
		gid := m.cmap.Lookup(r)
		total += m.font.GlyphWidthPDF(gid)
	}
	return total / 1000 * size
}

// fontAscent returns the ascent of the measuring font, in points, at the
// given font size.
func fontAscent(size float64) float64 {
	m := loadMetrics()
	if m == nil {
		return 0.75 * size
	}
	return float64(m.font.Ascent) / float64(m.font.UnitsPerEm) * size
}

// builtinFontDict returns the font dictionary used for annotation text.
// The standard Helvetica font requires no embedding, so the appearance
// stream stays self-contained.
func builtinFontDict() pdf.Dict {
	return pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica"),
	}
}
