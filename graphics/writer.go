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

// Package graphics writes PDF content streams.  It implements the subset of
// the content stream operators needed to draw annotation appearance streams.
package graphics

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"

	pdf "github.com/textlayer/pdftext"
)

// Writer writes a PDF content stream.
//
// Most methods do not return errors.  Instead, the first error encountered
// is stored in the Err field, and all subsequent calls are ignored.
type Writer struct {
	Content *bytes.Buffer
	Err     error

	// resources referenced by the stream written so far
	extGState pdf.Dict
	fonts     pdf.Dict

	nestingQ  int
	nestingBT bool
	nextGS    int
}

// NewWriter allocates a new Writer object.
func NewWriter() *Writer {
	return &Writer{
		Content: &bytes.Buffer{},
	}
}

// Resources returns the resource dictionary for the stream written so far,
// or nil if the stream uses no named resources.
func (w *Writer) Resources() pdf.Dict {
	res := pdf.Dict{}
	if len(w.extGState) > 0 {
		res["ExtGState"] = w.extGState
	}
	if len(w.fonts) > 0 {
		res["Font"] = w.fonts
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// Close verifies that all q/Q and BT/ET pairs are balanced and returns the
// first error encountered while writing.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if w.nestingQ != 0 {
		return fmt.Errorf("unbalanced q/Q pairs (%d open)", w.nestingQ)
	}
	if w.nestingBT {
		return fmt.Errorf("unbalanced BT/ET pair")
	}
	return nil
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if w.Err != nil {
		return
	}
	w.nestingQ++
	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if w.Err != nil {
		return
	}
	if w.nestingQ <= 0 {
		w.Err = fmt.Errorf("unexpected operator Q")
		return
	}
	w.nestingQ--
	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// Transform concatenates m to the current transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		format(m[0]), format(m[1]), format(m[2]), format(m[3]),
		format(m[4]), format(m[5]), "cm")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, format(width), "w")
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (w *Writer) SetLineCap(cap LineCapStyle) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, int(cap), "J")
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (w *Writer) SetLineJoin(join LineJoinStyle) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, int(join), "j")
}

// SetLineDash sets the line dash pattern.
//
// This implements the PDF graphics operator "d".
func (w *Writer) SetLineDash(pattern []float64, phase float64) {
	if w.Err != nil {
		return
	}
	buf := &bytes.Buffer{}
	buf.WriteString("[")
	for i, p := range pattern {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(format(p))
	}
	buf.WriteString("]")
	_, w.Err = fmt.Fprintln(w.Content, buf.String(), format(phase), "d")
}

// SetStrokeColor sets the color for stroking operations.
//
// This implements the PDF graphics operators "G", "RG" and "K".
func (w *Writer) SetStrokeColor(c Color) {
	w.writeColor(c, "G", "RG", "K")
}

// SetFillColor sets the color for non-stroking operations.
//
// This implements the PDF graphics operators "g", "rg" and "k".
func (w *Writer) SetFillColor(c Color) {
	w.writeColor(c, "g", "rg", "k")
}

func (w *Writer) writeColor(c Color, opGray, opRGB, opCMYK string) {
	if w.Err != nil {
		return
	}
	var op string
	switch len(c) {
	case 0:
		return // transparent, nothing to emit
	case 1:
		op = opGray
	case 3:
		op = opRGB
	case 4:
		op = opCMYK
	default:
		w.Err = fmt.Errorf("invalid number of color components: %d", len(c))
		return
	}
	args := make([]interface{}, 0, len(c)+1)
	for _, v := range c {
		args = append(args, format(v))
	}
	args = append(args, op)
	_, w.Err = fmt.Fprintln(w.Content, args...)
}

// SetAlpha installs an extended graphics state setting the stroking and
// non-stroking alpha values.
//
// This implements the PDF graphics operator "gs".
func (w *Writer) SetAlpha(strokeAlpha, fillAlpha float64) {
	gs := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
		"CA":   pdf.Number(strokeAlpha),
		"ca":   pdf.Number(fillAlpha),
	}
	w.setExtGState(gs)
}

// SetBlendMode installs an extended graphics state setting the blend mode.
//
// This implements the PDF graphics operator "gs".
func (w *Writer) SetBlendMode(mode pdf.Name) {
	gs := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
		"BM":   mode,
	}
	w.setExtGState(gs)
}

func (w *Writer) setExtGState(gs pdf.Dict) {
	if w.Err != nil {
		return
	}
	if w.extGState == nil {
		w.extGState = pdf.Dict{}
	}
	name := pdf.Name("GS" + strconv.Itoa(w.nextGS))
	w.nextGS++
	w.extGState[name] = gs
	_, w.Err = fmt.Fprintln(w.Content, string(pdf.Format(name)), "gs")
}

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, format(x), format(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, format(x), format(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		format(x1), format(y1), format(x2), format(y2), format(x3), format(y3), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, format(x), format(y), format(width), format(height), "re")
}

// Circle appends a circle to the current path as a closed subpath,
// approximated by four Bezier segments.
func (w *Writer) Circle(cx, cy, radius float64) {
	w.Ellipse(cx, cy, radius, radius)
}

// Ellipse appends an axis-aligned ellipse to the current path as a closed
// subpath.
func (w *Writer) Ellipse(cx, cy, rx, ry float64) {
	// magic constant for approximating quarter circles with cubic Beziers
	const k = 0.5522847498307936
	w.MoveTo(cx+rx, cy)
	w.CurveTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	w.CurveTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	w.CurveTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	w.CurveTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	w.ClosePath()
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "S")
}

// Fill fills the current path using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "f")
}

// FillAndStroke fills and then strokes the current path.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "B")
}

// TextBegin starts a text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextBegin() {
	if w.Err != nil {
		return
	}
	if w.nestingBT {
		w.Err = fmt.Errorf("unexpected operator BT")
		return
	}
	w.nestingBT = true
	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends a text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if w.Err != nil {
		return
	}
	if !w.nestingBT {
		w.Err = fmt.Errorf("unexpected operator ET")
		return
	}
	w.nestingBT = false
	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  The font dictionary is stored in
// the resource dictionary under the returned name.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(fontDict pdf.Dict, size float64) pdf.Name {
	if w.Err != nil {
		return ""
	}
	if w.fonts == nil {
		w.fonts = pdf.Dict{}
	}
	name := pdf.Name("F" + strconv.Itoa(len(w.fonts)))
	w.fonts[name] = fontDict
	_, w.Err = fmt.Fprintln(w.Content, string(pdf.Format(name)), format(size), "Tf")
	return name
}

// TextFirstLine moves to the start of the next line of text.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, format(dx), format(dy), "Td")
}

// TextShow shows a string, encoded using the simple one-byte encoding of
// the current font.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) {
	if w.Err != nil {
		return
	}
	bb := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			r = '?'
		}
		bb = append(bb, byte(r))
	}
	_, w.Err = fmt.Fprintln(w.Content, string(pdf.Format(pdf.String(bb))), "Tj")
}

// LineCapStyle is the style used for the endpoints of stroked paths.
type LineCapStyle int

// The valid line cap styles.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style used where stroked path segments meet.
type LineJoinStyle int

// The valid line join styles.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// format converts a coordinate to the string representation used in content
// streams.  Coordinates are rounded to four decimal digits.
func format(x float64) string {
	x = math.Round(x*10000) / 10000
	if x == 0 { // avoid "-0"
		x = 0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
