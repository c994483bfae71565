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

package pdftext

import (
	"errors"
	"testing"
)

func TestResolveChain(t *testing.T) {
	s := NewStore()
	refA := s.Alloc()
	refB := s.Alloc()
	s.Put(refA, refB)
	s.Put(refB, Integer(42))

	obj, err := Resolve(s, refA)
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(42) {
		t.Errorf("got %v, want 42", obj)
	}
}

func TestResolveLoop(t *testing.T) {
	s := NewStore()
	refA := s.Alloc()
	refB := s.Alloc()
	s.Put(refA, refB)
	s.Put(refB, refA)

	_, err := Resolve(s, refA)
	var mErr *MalformedDataError
	if !errors.As(err, &mErr) {
		t.Errorf("got %v, want MalformedDataError", err)
	}
}

func TestResolveMissing(t *testing.T) {
	s := NewStore()
	obj, err := Resolve(s, NewReference(99, 0))
	if err != nil {
		t.Fatal(err)
	}
	if obj != nil {
		t.Errorf("got %v, want null", obj)
	}
}

func TestGetHelpers(t *testing.T) {
	s := NewStore()
	ref := s.Alloc()
	s.Put(ref, Dict{"Type": Name("Page")})

	d, err := GetDictTyped(s, ref, "Page")
	if err != nil {
		t.Fatal(err)
	}
	if d["Type"] != Name("Page") {
		t.Errorf("unexpected dict %v", d)
	}

	_, err = GetDictTyped(s, ref, "Annot")
	if err == nil {
		t.Error("expected type mismatch error")
	}

	_, err = GetName(s, Integer(3))
	var mErr *MalformedDataError
	if !errors.As(err, &mErr) {
		t.Errorf("got %v, want MalformedDataError", err)
	}
}
