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

// Package appearance generates appearance streams for annotations.
//
// The [Style] type implements [annotation.Generator].  Given an annotation
// it draws a normal appearance in page coordinates and returns it as a form
// XObject with the annotation rectangle as bounding box.
package appearance

import (
	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

// Icon is a stamp icon.  Draw paints the icon onto the given writer,
// inside BBox.  The icon is scaled to the annotation rectangle when it
// is used.
type Icon struct {
	BBox pdf.Rectangle
	Draw func(w *graphics.Writer)
}

// IconProvider supplies drawings for named stamp icons.
//
// Icon returns nil if no icon with the given name is available.
type IconProvider interface {
	Icon(name pdf.Name) *Icon
}

// Style draws annotation appearance streams.
//
// The zero value is a usable style which draws with black strokes and
// 12pt text and has no stamp icons.
type Style struct {
	// Icons (optional) supplies forms for named stamp icons.
	Icons IconProvider

	// TextSize is the font size used for annotation text.
	// If zero, 12 is used.
	TextSize float64
}

var _ annotation.Generator = (*Style)(nil)

// NewStyle returns a Style which takes stamp icons from the given
// provider.  The provider may be nil.
func NewStyle(icons IconProvider) *Style {
	return &Style{Icons: icons}
}

// Generate draws the normal appearance of the annotation.
//
// Annotation types without visual representation return an error
// wrapping [pdf.ErrUnsupported].  Annotations missing the geometry
// needed to draw them return an error wrapping [pdf.ErrPrecondition].
func (s *Style) Generate(a annotation.Annotation) (*graphics.Form, error) {
	switch a := a.(type) {
	case *annotation.Square:
		return s.square(a)
	case *annotation.Circle:
		return s.circle(a)
	case *annotation.Line:
		return s.line(a)
	case *annotation.Polygon:
		return s.polygon(a)
	case *annotation.PolyLine:
		return s.polyLine(a)
	case *annotation.Ink:
		return s.ink(a)
	case *annotation.TextMarkup:
		return s.textMarkup(a)
	case *annotation.FreeText:
		return s.freeText(a)
	case *annotation.Text:
		return s.textNote(a)
	case *annotation.Caret:
		return s.caret(a)
	case *annotation.Link:
		return s.link(a)
	case *annotation.Stamp:
		return s.stamp(a)
	default:
		return nil, pdf.Unsupportedf("no appearance generator for %s annotations",
			a.AnnotationType())
	}
}

func (s *Style) textSize() float64 {
	if s.TextSize > 0 {
		return s.TextSize
	}
	return 12
}

// strokeColor returns the annotation color, or black if none is set.
func strokeColor(c graphics.Color) graphics.Color {
	if !c.IsSet() || len(c) == 0 {
		return graphics.Color{0}
	}
	return c
}

// borderWidth returns the line width requested by the annotation.
func borderWidth(common *annotation.Common, bs *annotation.BorderStyle) float64 {
	if bs != nil {
		return bs.Width
	}
	if common.Border != nil {
		return common.Border.Width
	}
	return 1
}

// setupStroke prepares the writer for stroking an annotation outline:
// opacity, line width, dash pattern and stroke color.
func setupStroke(w *graphics.Writer, a annotation.Annotation, bs *annotation.BorderStyle) {
	common := annotation.CommonOf(a)
	if m := annotation.MarkupOf(a); m != nil {
		if op := m.PaintOpacity(); op != 1 {
			w.SetAlpha(op, op)
		}
	}
	w.SetLineWidth(borderWidth(common, bs))
	if bs != nil && bs.Style == "D" && len(bs.DashArray) > 0 {
		w.SetLineDash(bs.DashArray, 0)
	}
	w.SetStrokeColor(strokeColor(common.Color))
}

// insetRect returns the annotation rectangle inset by the given margins
// in the order left, bottom, right, top.  A nil slice leaves the
// rectangle unchanged.
func insetRect(r pdf.Rectangle, margin []float64) pdf.Rectangle {
	if len(margin) != 4 {
		return r
	}
	return pdf.Rectangle{
		LLx: r.LLx + margin[0],
		LLy: r.LLy + margin[1],
		URx: r.URx - margin[2],
		URy: r.URy - margin[3],
	}
}
