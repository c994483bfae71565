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

// Store is a minimal in-memory implementation of the document store.
// The real store lives in the host application; Store stands in for it in
// tests and small tools.
//
// A Store is not safe for concurrent mutation.
type Store struct {
	objects map[Reference]Object
	nextNum uint32
}

var (
	_ Getter = (*Store)(nil)
	_ Putter = (*Store)(nil)
)

// NewStore creates a new, empty store.
func NewStore() *Store {
	return &Store{
		objects: make(map[Reference]Object),
		nextNum: 1,
	}
}

// Alloc reserves a reference for a new indirect object.
func (s *Store) Alloc() Reference {
	ref := NewReference(s.nextNum, 0)
	s.nextNum++
	return ref
}

// Get returns the object stored under the given reference.
// Unknown references resolve to null, mirroring PDF semantics.
func (s *Store) Get(ref Reference) (Object, error) {
	return s.objects[ref], nil
}

// Put stores an object under the given reference.
func (s *Store) Put(ref Reference, obj Object) error {
	if ref == 0 {
		return Invalidf("cannot store object under the null reference")
	}
	if ref.Number() >= s.nextNum {
		s.nextNum = ref.Number() + 1
	}
	s.objects[ref] = obj
	return nil
}

// Len returns the number of objects in the store.
func (s *Store) Len() int {
	return len(s.objects)
}
