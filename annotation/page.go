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
	pdf "github.com/textlayer/pdftext"
)

// Page holds the annotations of one page, in the order of the page's
// /Annots array.  Reply and group relations between the annotations of
// the page are maintained through the object references of the
// underlying store.
type Page struct {
	store  pdf.Putter
	annots []Annotation
	refs   map[Annotation]pdf.Reference
}

// NewPage returns an empty annotation list backed by the given store.
func NewPage(store pdf.Putter) *Page {
	return &Page{
		store: store,
		refs:  make(map[Annotation]pdf.Reference),
	}
}

// ReadPage decodes the annotations listed in the /Annots array of a
// page dictionary.
func ReadPage(r pdf.Getter, store pdf.Putter, annots pdf.Object) (*Page, error) {
	arr, err := pdf.GetArray(r, annots)
	if err != nil {
		return nil, err
	}
	page := NewPage(store)
	for _, elem := range arr {
		a, err := Decode(r, elem)
		if err != nil {
			return nil, err
		}
		ref, _ := elem.(pdf.Reference)
		if ref == 0 {
			ref = store.Alloc()
		}
		page.annots = append(page.annots, a)
		page.refs[a] = ref
	}
	return page, nil
}

// Add appends an annotation to the page and returns the object
// reference allocated for it.
func (p *Page) Add(a Annotation) pdf.Reference {
	ref := p.store.Alloc()
	p.annots = append(p.annots, a)
	p.refs[a] = ref
	return ref
}

// Len returns the number of annotations on the page.
func (p *Page) Len() int {
	return len(p.annots)
}

// At returns the i-th annotation of the page.
func (p *Page) At(i int) (Annotation, error) {
	if i < 0 || i >= len(p.annots) {
		return nil, pdf.Invalidf("annotation index %d out of range [0,%d)", i, len(p.annots))
	}
	return p.annots[i], nil
}

// Annotations returns the annotations of the page in page order.  The
// returned slice is shared with the page; callers must not modify it.
func (p *Page) Annotations() []Annotation {
	return p.annots
}

// Ref returns the object reference of an annotation, or 0 if the
// annotation is not on this page.
func (p *Page) Ref(a Annotation) pdf.Reference {
	return p.refs[a]
}

// byRef returns the annotation with the given object reference, or nil.
func (p *Page) byRef(ref pdf.Reference) Annotation {
	if ref == 0 {
		return nil
	}
	for _, a := range p.annots {
		if p.refs[a] == ref {
			return a
		}
	}
	return nil
}

// remove deletes an annotation from the page list.
func (p *Page) remove(a Annotation) {
	for i, b := range p.annots {
		if b == a {
			p.annots = append(p.annots[:i], p.annots[i+1:]...)
			delete(p.refs, a)
			return
		}
	}
}

// Flush encodes all annotations of the page into the store and returns
// the /Annots array referring to them.
func (p *Page) Flush() (pdf.Array, error) {
	arr := make(pdf.Array, len(p.annots))
	for i, a := range p.annots {
		dict, err := a.Encode()
		if err != nil {
			return nil, err
		}
		ref := p.refs[a]
		if err := p.store.Put(ref, dict); err != nil {
			return nil, err
		}
		arr[i] = ref
	}
	return arr, nil
}
