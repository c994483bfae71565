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
	"errors"
	"testing"
	"time"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

// stubGenerator draws a fixed rectangle covering the annotation.
type stubGenerator struct {
	calls int
}

func (g *stubGenerator) Generate(a Annotation) (*graphics.Form, error) {
	g.calls++
	r := CommonOf(a).Rect
	return graphics.Draw(r, func(w *graphics.Writer) {
		w.SetFillColor(graphics.Color{0.5})
		w.Rectangle(r.LLx, r.LLy, r.Width(), r.Height())
		w.Fill()
	})
}

func TestAppearanceStale(t *testing.T) {
	sq := newTestSquare()
	if sq.AppearanceStale() {
		t.Error("fresh annotation must not be stale")
	}

	// visual setters mark the appearance stale
	sq.SetBorderColor(graphics.Color{1, 0, 0})
	if !sq.AppearanceStale() {
		t.Error("SetBorderColor did not mark the appearance stale")
	}

	// only regeneration clears the mark
	sq.SetContents("hello")
	store := pdf.NewStore()
	gen := &stubGenerator{}
	if err := ResetAppearanceStream(sq, gen, store, true); err != nil {
		t.Fatal(err)
	}
	if sq.AppearanceStale() {
		t.Error("annotation still stale after regeneration")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if sq.Appearance == nil || sq.Appearance.Normal == 0 {
		t.Fatal("no normal appearance stream after regeneration")
	}
}

func TestNonVisualSettersNotStale(t *testing.T) {
	sq := newTestSquare()
	sq.SetModifiedDate(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	if sq.AppearanceStale() {
		t.Error("SetModifiedDate must not mark the appearance stale")
	}
}

func TestResetKeepsReference(t *testing.T) {
	store := pdf.NewStore()
	sq := newTestSquare()
	gen := &stubGenerator{}

	if err := ResetAppearanceStream(sq, gen, store, false); err != nil {
		t.Fatal(err)
	}
	ref := sq.Appearance.Normal

	obj1, err := store.Get(ref)
	if err != nil {
		t.Fatal(err)
	}
	stream1 := obj1.(*pdf.Stream)

	// with newObject=false the stream object is rewritten in place
	sq.SetBorderColor(graphics.Color{0, 0, 1})
	sq.Move(pdf.Rectangle{LLx: 0, LLy: 0, URx: 50, URy: 25})
	if err := ResetAppearanceStream(sq, gen, store, false); err != nil {
		t.Fatal(err)
	}
	if sq.Appearance.Normal != ref {
		t.Error("reference changed although newObject was false")
	}
	obj2, err := store.Get(ref)
	if err != nil {
		t.Fatal(err)
	}
	stream2 := obj2.(*pdf.Stream)
	if string(stream1.Data) == string(stream2.Data) {
		t.Error("stream content unchanged after regeneration")
	}

	// with newObject=true a fresh object is allocated
	sq.SetBorderColor(graphics.Color{1, 1, 0})
	if err := ResetAppearanceStream(sq, gen, store, true); err != nil {
		t.Fatal(err)
	}
	if sq.Appearance.Normal == ref {
		t.Error("reference unchanged although newObject was true")
	}
}

func TestMoveAndResetRestoresOnFailure(t *testing.T) {
	store := pdf.NewStore()
	ink := &Ink{
		Common: Common{Rect: testRect},
		Markup: NewMarkup(),
	}
	// an ink annotation without strokes cannot be drawn
	gen := failingGenerator{}
	err := MoveAndReset(ink, pdf.Rectangle{LLx: 0, LLy: 0, URx: 10, URy: 10}, gen, store)
	if err == nil {
		t.Fatal("expected generation failure")
	}
	if ink.Rect != testRect {
		t.Error("rectangle not restored after failed regeneration")
	}
}

type failingGenerator struct{}

func (failingGenerator) Generate(a Annotation) (*graphics.Form, error) {
	return nil, pdf.Preconditionf("nothing to draw")
}

func TestSetOpacity(t *testing.T) {
	sq := newTestSquare()
	if err := SetOpacity(sq, 0.5); err != nil {
		t.Fatal(err)
	}
	if sq.Opacity != 0.5 {
		t.Errorf("opacity = %g, want 0.5", sq.Opacity)
	}
	if !sq.AppearanceStale() {
		t.Error("SetOpacity did not mark the appearance stale")
	}

	if err := SetOpacity(sq, 1.5); !errors.Is(err, pdf.ErrInvalidArgument) {
		t.Errorf("out of range opacity: err = %v", err)
	}

	link := &Link{Common: Common{Rect: testRect}}
	if err := SetOpacity(link, 0.5); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("opacity on non-markup annotation: err = %v", err)
	}
}
