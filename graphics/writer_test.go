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
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "github.com/textlayer/pdftext"
)

func TestWriterOps(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	w.SetLineWidth(2)
	w.SetStrokeColor(DeviceRGB(1, 0, 0))
	w.MoveTo(0, 0)
	w.LineTo(100, 50.5)
	w.Stroke()
	w.PopGraphicsState()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := "q\n2 w\n1 0 0 RG\n0 0 m\n100 50.5 l\nS\nQ\n"
	if d := cmp.Diff(want, w.Content.String()); d != "" {
		t.Errorf("content differs (-want +got):\n%s", d)
	}
}

func TestWriterUnbalanced(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	if err := w.Close(); err == nil {
		t.Error("expected error for unbalanced q")
	}

	w = NewWriter()
	w.PopGraphicsState()
	if w.Err == nil {
		t.Error("expected error for stray Q")
	}
}

func TestWriterTransparentColor(t *testing.T) {
	w := NewWriter()
	w.SetFillColor(Transparent)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if w.Content.Len() != 0 {
		t.Errorf("transparent color emitted %q", w.Content.String())
	}
}

func TestWriterExtGState(t *testing.T) {
	w := NewWriter()
	w.SetAlpha(0.5, 0.25)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := "/GS0 gs\n"
	if got := w.Content.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	res := w.Resources()
	gs, _ := res["ExtGState"].(pdf.Dict)
	state, _ := gs["GS0"].(pdf.Dict)
	if state["CA"] != pdf.Number(0.5) || state["ca"] != pdf.Number(0.25) {
		t.Errorf("unexpected ExtGState %v", state)
	}
}

func TestFormAsStream(t *testing.T) {
	form, err := Draw(pdf.Rectangle{URx: 10, URy: 10}, func(w *Writer) {
		w.Rectangle(0, 0, 10, 10)
		w.Fill()
	})
	if err != nil {
		t.Fatal(err)
	}

	stm := form.AsStream()
	if stm.Dict["Subtype"] != pdf.Name("Form") {
		t.Errorf("unexpected dict %v", stm.Dict)
	}
	if string(stm.Data) != "0 0 10 10 re\nf\n" {
		t.Errorf("unexpected content %q", stm.Data)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{-0.00001, "0"},
		{1.5, "1.5"},
		{2.00004, "2"},
		{-3.25, "-3.25"},
	}
	for _, c := range cases {
		if got := format(c.in); got != c.out {
			t.Errorf("format(%v) = %q, want %q", c.in, got, c.out)
		}
	}
}
