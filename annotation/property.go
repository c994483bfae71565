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
	"time"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

// Property identifies an optional annotation property which can be
// queried and removed generically.
type Property int

const (
	// PropertyModifiedDate is the modification timestamp, available on
	// all annotation types.
	PropertyModifiedDate Property = iota

	// PropertyCreationDate is the creation timestamp, available on
	// markup annotation types only.
	PropertyCreationDate

	// PropertyBorderColor is the border color, available on all
	// annotation types.
	PropertyBorderColor

	// PropertyFillColor is the interior color, available on the shape
	// types (Square, Circle, Polygon, PolyLine), Line and Redact.
	PropertyFillColor
)

// fillColorHolder is implemented by the annotation types which have an
// interior color.
type fillColorHolder interface {
	Annotation
	fillColor() graphics.Color
	setFillColor(graphics.Color)
}

// HasProperty reports whether the annotation currently has a value for
// the given property.  The call fails if the annotation type can never
// carry the property.
func HasProperty(a Annotation, p Property) (bool, error) {
	switch p {
	case PropertyModifiedDate:
		return !a.common().ModifiedDate.IsZero(), nil
	case PropertyCreationDate:
		m := markupOf(a)
		if m == nil {
			return false, pdf.Unsupportedf("%s annotation has no creation date", a.AnnotationType())
		}
		return !m.CreationDate.IsZero(), nil
	case PropertyBorderColor:
		return a.common().Color != nil, nil
	case PropertyFillColor:
		h, ok := a.(fillColorHolder)
		if !ok {
			return false, pdf.Unsupportedf("%s annotation has no fill color", a.AnnotationType())
		}
		return h.fillColor() != nil, nil
	default:
		return false, pdf.Invalidf("unknown property %d", p)
	}
}

// RemoveProperty removes the given property from the annotation.
// Removing a property which is currently unset succeeds as a no-op; the
// call only fails if the annotation type can never carry the property.
func RemoveProperty(a Annotation, p Property) error {
	c := a.common()
	switch p {
	case PropertyModifiedDate:
		c.ModifiedDate = time.Time{}
		return nil
	case PropertyCreationDate:
		m := markupOf(a)
		if m == nil {
			return pdf.Unsupportedf("%s annotation has no creation date", a.AnnotationType())
		}
		m.CreationDate = time.Time{}
		return nil
	case PropertyBorderColor:
		if c.Color != nil {
			c.Color = nil
			c.markStale()
		}
		return nil
	case PropertyFillColor:
		h, ok := a.(fillColorHolder)
		if !ok {
			return pdf.Unsupportedf("%s annotation has no fill color", a.AnnotationType())
		}
		if h.fillColor() != nil {
			h.setFillColor(nil)
			c.markStale()
		}
		return nil
	default:
		return pdf.Invalidf("unknown property %d", p)
	}
}
