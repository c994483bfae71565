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
	"testing"

	pdf "github.com/textlayer/pdftext"
)

func newTestSquare() *Square {
	return &Square{
		Common: Common{Rect: testRect},
		Markup: NewMarkup(),
	}
}

func TestGroup(t *testing.T) {
	page := NewPage(pdf.NewStore())
	a := newTestSquare()
	b := newTestSquare()
	c := newTestSquare()
	page.Add(a)
	page.Add(b)
	page.Add(c)

	if err := page.Group(a, b, c); err != nil {
		t.Fatal(err)
	}

	for _, x := range []Annotation{a, b, c} {
		if !page.IsGrouped(x) {
			t.Errorf("expected %p to be grouped", x)
		}
	}
	if a.InReplyTo != 0 {
		t.Error("group header must not point anywhere")
	}
	if b.InReplyTo != page.Ref(a) || b.ReplyType != ReplyTypeGroup {
		t.Error("member must point at the header with reply type Group")
	}

	// every element resolves to the same group, header first
	for _, x := range []Annotation{a, b, c} {
		els := page.GroupElements(x)
		if len(els) != 3 || els[0] != Annotation(a) {
			t.Errorf("GroupElements(%p) = %v", x, els)
		}
	}
}

func TestUngroupMember(t *testing.T) {
	page := NewPage(pdf.NewStore())
	a := newTestSquare()
	b := newTestSquare()
	c := newTestSquare()
	page.Add(a)
	page.Add(b)
	page.Add(c)
	if err := page.Group(a, b, c); err != nil {
		t.Fatal(err)
	}

	// detaching one member leaves the rest of the group intact
	if !page.Ungroup(b) {
		t.Fatal("Ungroup(member) = false")
	}
	if page.IsGrouped(b) {
		t.Error("detached member still grouped")
	}
	els := page.GroupElements(a)
	if len(els) != 2 || els[0] != Annotation(a) || els[1] != Annotation(c) {
		t.Errorf("remaining group = %v", els)
	}
}

func TestUngroupHeader(t *testing.T) {
	page := NewPage(pdf.NewStore())
	a := newTestSquare()
	b := newTestSquare()
	page.Add(a)
	page.Add(b)
	if err := page.Group(a, b); err != nil {
		t.Fatal(err)
	}

	// ungrouping the header disbands the whole group
	if !page.Ungroup(a) {
		t.Fatal("Ungroup(header) = false")
	}
	for _, x := range []Annotation{a, b} {
		if page.IsGrouped(x) {
			t.Errorf("%p still grouped after disband", x)
		}
		if page.GroupElements(x) != nil {
			t.Errorf("GroupElements(%p) not nil after disband", x)
		}
	}
}

func TestUngroupUngrouped(t *testing.T) {
	page := NewPage(pdf.NewStore())
	a := newTestSquare()
	page.Add(a)
	if page.Ungroup(a) {
		t.Error("Ungroup on an ungrouped annotation must report false")
	}
}

func TestGroupErrors(t *testing.T) {
	page := NewPage(pdf.NewStore())
	a := newTestSquare()
	b := newTestSquare()
	page.Add(a)
	page.Add(b)

	// non-markup annotations cannot be grouped
	link := &Link{Common: Common{Rect: testRect}}
	page.Add(link)
	if err := page.Group(a, link); err == nil {
		t.Error("expected error when grouping a non-markup annotation")
	}

	// annotations not on the page cannot be grouped
	stray := newTestSquare()
	if err := page.Group(a, stray); err == nil {
		t.Error("expected error when grouping a stray annotation")
	}

	// members cannot be in two groups at once
	if err := page.Group(a, b); err != nil {
		t.Fatal(err)
	}
	c := newTestSquare()
	page.Add(c)
	if err := page.Group(c, b); err == nil {
		t.Error("expected error when grouping a grouped member again")
	}
}
