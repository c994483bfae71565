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

package textpage

import (
	"errors"
	"testing"

	"seehuhn.de/go/geom/rect"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
)

// highlightOver builds a highlight annotation covering r.
func highlightOver(r rect.Rect) *annotation.TextMarkup {
	return &annotation.TextMarkup{
		Common: annotation.Common{
			Rect: pdf.Rectangle{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: r.URy},
		},
		Markup:     annotation.NewMarkup(),
		MarkupType: "Highlight",
		QuadPoints: []annotation.QuadPoint{annotation.QuadFromRect(r)},
	}
}

func TestTextUnderAnnotation(t *testing.T) {
	tp := singleLine(t, "Hello World")

	// covers "World" (x 136..166)
	hl := highlightOver(rect.Rect{LLx: 134, LLy: 690, URx: 170, URy: 715})
	got, err := tp.TextUnderAnnotation(hl)
	if err != nil {
		t.Fatal(err)
	}
	if got != "World" {
		t.Errorf("TextUnderAnnotation = %q", got)
	}

	// a quad away from the text covers nothing
	hl = highlightOver(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	got, err = tp.TextUnderAnnotation(hl)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("TextUnderAnnotation = %q, want empty", got)
	}
}

func TestTextUnderAnnotationKeepsGeneratedSpace(t *testing.T) {
	// two words separated by a layout gap; the quad covers both
	tp := mustPage(t, ParseNormal,
		lineGlyphs("Hello", 100, 700),
		lineGlyphs("World", 140, 700),
	)
	hl := highlightOver(rect.Rect{LLx: 98, LLy: 690, URx: 172, URy: 715})
	got, err := tp.TextUnderAnnotation(hl)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello World" {
		t.Errorf("TextUnderAnnotation = %q", got)
	}
}

func TestTextUnderAnnotationWrongType(t *testing.T) {
	tp := singleLine(t, "abc")
	link := &annotation.Link{
		Common: annotation.Common{Rect: pdf.Rectangle{LLx: 0, LLy: 0, URx: 10, URy: 10}},
	}
	if _, err := tp.TextUnderAnnotation(link); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("err = %v", err)
	}
	if _, err := NewAnnotationSearch(tp, link); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("NewAnnotationSearch: err = %v", err)
	}
}

func TestAnnotationSearch(t *testing.T) {
	tp := singleLine(t, "Hello World")
	hl := highlightOver(rect.Rect{LLx: 134, LLy: 690, URx: 170, URy: 715})

	s, err := NewAnnotationSearch(tp, hl)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPattern("World"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 6 {
		t.Errorf("match = %v at %d", ok, s.MatchStartCharIndex())
	}

	// text outside the covered region is not searched
	s, err = NewAnnotationSearch(tp, hl)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPattern("Hello"); err != nil {
		t.Fatal(err)
	}
	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("match outside the annotation region")
	}

	// page offsets are not meaningful for annotation search
	if err := s.SetStartCharacter(0); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("SetStartCharacter: err = %v", err)
	}
}

func TestAnnotationSearchEmptyRegion(t *testing.T) {
	tp := singleLine(t, "Hello World")
	hl := highlightOver(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})

	s, err := NewAnnotationSearch(tp, hl)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPattern("Hello"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("match in empty region")
	}
}
