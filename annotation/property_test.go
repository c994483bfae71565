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

func TestHasProperty(t *testing.T) {
	sq := newTestSquare()
	sq.ModifiedDate = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sq.Color = graphics.Color{1, 0, 0}
	sq.FillColor = graphics.Color{0, 1, 0}

	for _, p := range []Property{
		PropertyModifiedDate, PropertyCreationDate,
		PropertyBorderColor, PropertyFillColor,
	} {
		got, err := HasProperty(sq, p)
		if err != nil {
			t.Fatal(err)
		}
		want := p != PropertyCreationDate // CreationDate was never set
		if got != want {
			t.Errorf("HasProperty(%d) = %t, want %t", p, got, want)
		}
	}
}

func TestPropertyUnsupported(t *testing.T) {
	// Link is not a markup annotation and has no interior
	link := &Link{Common: Common{Rect: testRect}}

	if _, err := HasProperty(link, PropertyCreationDate); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("HasProperty(CreationDate) error = %v", err)
	}
	if _, err := HasProperty(link, PropertyFillColor); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("HasProperty(FillColor) error = %v", err)
	}
	if err := RemoveProperty(link, PropertyFillColor); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("RemoveProperty(FillColor) error = %v", err)
	}

	// removing never-settable properties fails, settable ones succeed
	if err := RemoveProperty(link, PropertyModifiedDate); err != nil {
		t.Errorf("RemoveProperty(ModifiedDate) error = %v", err)
	}
}

func TestRemoveProperty(t *testing.T) {
	sq := newTestSquare()
	sq.Color = graphics.Color{1, 0, 0}
	sq.FillColor = graphics.Color{0, 1, 0}

	if err := RemoveProperty(sq, PropertyBorderColor); err != nil {
		t.Fatal(err)
	}
	if sq.Color != nil {
		t.Error("border color still set")
	}
	if err := RemoveProperty(sq, PropertyFillColor); err != nil {
		t.Fatal(err)
	}
	if sq.FillColor != nil {
		t.Error("fill color still set")
	}

	// removing an unset property is a no-op, not an error
	if err := RemoveProperty(sq, PropertyBorderColor); err != nil {
		t.Errorf("second removal failed: %v", err)
	}
}
