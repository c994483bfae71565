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
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
	"github.com/textlayer/pdftext/graphics"
)

var testRect = pdf.Rectangle{LLx: 100, LLy: 600, URx: 200, URy: 650}

func newQuad() annotation.QuadPoint {
	return annotation.QuadFromRect(testRect.AsRect())
}

// drawable returns one annotation of every type the style can draw.
func drawable() []annotation.Annotation {
	return []annotation.Annotation{
		&annotation.Square{
			Common:    annotation.Common{Rect: testRect},
			Markup:    annotation.NewMarkup(),
			FillColor: graphics.Color{0.9, 0.9, 1},
		},
		&annotation.Circle{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
		},
		&annotation.Line{
			Common:       annotation.Common{Rect: testRect},
			Markup:       annotation.NewMarkup(),
			Start:        vec.Vec2{X: 110, Y: 610},
			End:          vec.Vec2{X: 190, Y: 640},
			HasEndpoints: true,
			LineEndings: [2]pdf.Name{
				annotation.LineEndingCircle,
				annotation.LineEndingClosedArrow,
			},
		},
		&annotation.Polygon{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
			Vertices: []vec.Vec2{
				{X: 110, Y: 610}, {X: 190, Y: 610}, {X: 150, Y: 640},
			},
		},
		&annotation.PolyLine{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
			Vertices: []vec.Vec2{
				{X: 110, Y: 610}, {X: 150, Y: 640}, {X: 190, Y: 610},
			},
		},
		&annotation.Ink{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
			InkList: [][]vec.Vec2{
				{{X: 110, Y: 610}, {X: 150, Y: 640}},
			},
		},
		&annotation.TextMarkup{
			Common:     annotation.Common{Rect: testRect, Color: graphics.Color{1, 1, 0}},
			Markup:     annotation.NewMarkup(),
			MarkupType: "Highlight",
			QuadPoints: []annotation.QuadPoint{newQuad()},
		},
		&annotation.FreeText{
			Common:            annotation.Common{Rect: testRect, Contents: "two words"},
			Markup:            annotation.NewMarkup(),
			DefaultAppearance: "0 g /Helv 12 Tf",
		},
		&annotation.Text{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
		},
		&annotation.Caret{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
		},
		&annotation.Link{
			Common: annotation.Common{Rect: testRect},
			URI:    "https://example.com/",
		},
	}
}

func TestGenerateDeterministic(t *testing.T) {
	s := NewStyle(nil)
	for _, a := range drawable() {
		form1, err := s.Generate(a)
		if err != nil {
			t.Fatalf("%s: %v", a.AnnotationType(), err)
		}
		if len(form1.Content) == 0 {
			t.Errorf("%s: empty appearance stream", a.AnnotationType())
		}
		if form1.BBox != annotation.CommonOf(a).Rect {
			t.Errorf("%s: BBox = %v", a.AnnotationType(), form1.BBox)
		}

		// the same annotation yields byte-identical output
		form2, err := s.Generate(a)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(form1.Content, form2.Content) {
			t.Errorf("%s: appearance stream not deterministic", a.AnnotationType())
		}
	}
}

func TestSquareMarginEdges(t *testing.T) {
	// margins are [left, bottom, right, top]; asymmetric insets must land
	// on the right edges
	s := NewStyle(nil)
	a := &annotation.Square{
		Common: annotation.Common{Rect: pdf.Rectangle{LLx: 0, LLy: 0, URx: 10, URy: 10}},
		Markup: annotation.NewMarkup(),
		Margin: []float64{0, 4, 0, 0},
	}
	form, err := s.Generate(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(form.Content); !strings.Contains(got, "0.5 4.5 9 5 re") {
		t.Errorf("bottom margin:\n%s", got)
	}

	a.Margin = []float64{0, 0, 0, 4}
	form, err = s.Generate(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(form.Content); !strings.Contains(got, "0.5 0.5 9 5 re") {
		t.Errorf("top margin:\n%s", got)
	}
}

func TestGeneratePreconditions(t *testing.T) {
	s := NewStyle(nil)
	missing := []annotation.Annotation{
		&annotation.Line{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
		},
		&annotation.Polygon{
			Common:   annotation.Common{Rect: testRect},
			Markup:   annotation.NewMarkup(),
			Vertices: []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}},
		},
		&annotation.PolyLine{
			Common:   annotation.Common{Rect: testRect},
			Markup:   annotation.NewMarkup(),
			Vertices: []vec.Vec2{{X: 1, Y: 1}},
		},
		&annotation.Ink{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
		},
		&annotation.TextMarkup{
			Common:     annotation.Common{Rect: testRect},
			Markup:     annotation.NewMarkup(),
			MarkupType: "Underline",
		},
		&annotation.Stamp{
			Common: annotation.Common{Rect: testRect},
			Markup: annotation.NewMarkup(),
		},
	}
	for _, a := range missing {
		if _, err := s.Generate(a); !errors.Is(err, pdf.ErrPrecondition) {
			t.Errorf("%T: err = %v, want precondition failure", a, err)
		}
	}
}

func TestZeroOpacityDrawsOpaque(t *testing.T) {
	s := NewStyle(nil)
	zero := &annotation.Square{
		Common: annotation.Common{Rect: testRect},
	}
	opaque := &annotation.Square{
		Common: annotation.Common{Rect: testRect},
		Markup: annotation.NewMarkup(),
	}
	formZero, err := s.Generate(zero)
	if err != nil {
		t.Fatal(err)
	}
	formOpaque, err := s.Generate(opaque)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(formZero.Content, formOpaque.Content) {
		t.Errorf("unset opacity drawn differently:\n%s\nvs\n%s",
			formZero.Content, formOpaque.Content)
	}
}

func TestGenerateUnsupported(t *testing.T) {
	s := NewStyle(nil)
	a := &annotation.Popup{Common: annotation.Common{Rect: testRect}}
	if _, err := s.Generate(a); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("err = %v, want unsupported", err)
	}
}

func TestStampImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 0xff, A: 0xff})

	s := NewStyle(nil)
	a := &annotation.Stamp{
		Common: annotation.Common{Rect: testRect},
		Markup: annotation.NewMarkup(),
		Image:  img,
	}
	form, err := s.Generate(a)
	if err != nil {
		t.Fatal(err)
	}
	content := string(form.Content)
	if !strings.Contains(content, "BI") || !strings.Contains(content, "EI") {
		t.Error("stamp appearance has no inline image")
	}
}

type testIcons struct{}

func (testIcons) Icon(name pdf.Name) *Icon {
	if name != "Approved" {
		return nil
	}
	return &Icon{
		BBox: pdf.Rectangle{LLx: 0, LLy: 0, URx: 10, URy: 10},
		Draw: func(w *graphics.Writer) {
			w.SetFillColor(graphics.Color{0, 0.5, 0})
			w.Rectangle(0, 0, 10, 10)
			w.Fill()
		},
	}
}

func TestStampIcons(t *testing.T) {
	s := NewStyle(testIcons{})

	// a known icon name uses the provider's drawing
	a := &annotation.Stamp{
		Common:   annotation.Common{Rect: testRect},
		Markup:   annotation.NewMarkup(),
		IconName: "Approved",
	}
	form, err := s.Generate(a)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(form.Content), "0 0.5 0 rg") {
		t.Error("icon drawing not used")
	}

	// unknown names fall back to a text stamp
	a.IconName = "TopSecret"
	form, err = s.Generate(a)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(form.Content), "(TopSecret) Tj") {
		t.Error("fallback stamp does not show the icon name")
	}
}

func TestTextMarkupVariants(t *testing.T) {
	s := NewStyle(nil)
	for _, typ := range []pdf.Name{"Highlight", "Underline", "StrikeOut", "Squiggly"} {
		a := &annotation.TextMarkup{
			Common:     annotation.Common{Rect: testRect, Color: graphics.Color{1, 0, 0}},
			Markup:     annotation.NewMarkup(),
			MarkupType: typ,
			QuadPoints: []annotation.QuadPoint{newQuad()},
		}
		form, err := s.Generate(a)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if len(form.Content) == 0 {
			t.Errorf("%s: empty appearance stream", typ)
		}
	}
}

func TestTextWidthMonotone(t *testing.T) {
	short := textWidth("abc", 12)
	long := textWidth("abcdef", 12)
	if !(short > 0 && long > short) {
		t.Errorf("textWidth: short = %g, long = %g", short, long)
	}
	if w12, w24 := textWidth("abc", 12), textWidth("abc", 24); w24 <= w12 {
		t.Errorf("textWidth does not scale with size: %g vs %g", w12, w24)
	}
}
