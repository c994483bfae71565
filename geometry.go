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
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// A Number is either an Integer or a Real.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	var obj Object
	if i := Integer(x); Number(i) == x {
		obj = i
	} else {
		obj = Real(x)
	}
	return obj.PDF(w)
}

// GetNumber is a helper function for reading numeric values from the store.
// This resolves indirect references and makes sure the resulting object is
// an Integer or a Real.
func GetNumber(r Getter, obj Object) (Number, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	switch x := obj.(type) {
	case Integer:
		return Number(x), nil
	case Real:
		return Number(x), nil
	default:
		return 0, &MalformedDataError{
			Err: fmt.Errorf("expected number but got %T", obj),
		}
	}
}

// Rectangle represents a PDF rectangle, given by the coordinates of two
// diagonally opposite corners.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

var errNoRectangle = errors.New("not a valid PDF rectangle")

// GetRectangle resolves references to indirect objects and makes sure the
// resulting object is a PDF rectangle object.
// If the object is null, nil is returned.
func GetRectangle(r Getter, obj Object) (*Rectangle, error) {
	a, err := GetArray(r, obj)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	if len(a) != 4 {
		return nil, errNoRectangle
	}
	values := [4]float64{}
	for i, obj := range a {
		xi, err := GetNumber(r, obj)
		if err != nil {
			return nil, err
		}
		values[i] = float64(xi)
	}
	return &Rectangle{
		LLx: math.Min(values[0], values[2]),
		LLy: math.Min(values[1], values[3]),
		URx: math.Max(values[0], values[2]),
		URy: math.Max(values[1], values[3]),
	}, nil
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.LLx, r.LLy, r.URx, r.URy)
}

// PDF implements the [Object] interface.
func (r *Rectangle) PDF(w io.Writer) error {
	res := Array{}
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		x = math.Round(100*x) / 100
		res = append(res, Number(x))
	}
	return res.PDF(w)
}

// IsZero is true if the rectangle is the zero rectangle object.
func (r Rectangle) IsZero() bool {
	return r.LLx == 0 && r.LLy == 0 && r.URx == 0 && r.URy == 0
}

// Width returns the width of the rectangle.
func (r *Rectangle) Width() float64 {
	return r.URx - r.LLx
}

// Height returns the height of the rectangle.
func (r *Rectangle) Height() float64 {
	return r.URy - r.LLy
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than `eps`.
func (r *Rectangle) NearlyEqual(other *Rectangle, eps float64) bool {
	return (math.Abs(r.LLx-other.LLx) < eps &&
		math.Abs(r.LLy-other.LLy) < eps &&
		math.Abs(r.URx-other.URx) < eps &&
		math.Abs(r.URy-other.URy) < eps)
}

// XPos interpolates between the left and right edge of the rectangle.
func (r *Rectangle) XPos(rel float64) float64 {
	return r.LLx + rel*(r.URx-r.LLx)
}

// YPos interpolates between the bottom and top edge of the rectangle.
func (r *Rectangle) YPos(rel float64) float64 {
	return r.LLy + rel*(r.URy-r.LLy)
}

// Extend enlarges the rectangle to also cover `other`.
func (r *Rectangle) Extend(other *Rectangle) {
	if other.IsZero() {
		return
	}
	if r.IsZero() {
		*r = *other
		return
	}
	if other.LLx < r.LLx {
		r.LLx = other.LLx
	}
	if other.LLy < r.LLy {
		r.LLy = other.LLy
	}
	if other.URx > r.URx {
		r.URx = other.URx
	}
	if other.URy > r.URy {
		r.URy = other.URy
	}
}

// ExtendVec enlarges the rectangle to also cover the given point.
func (r *Rectangle) ExtendVec(p vec.Vec2) {
	if p.X < r.LLx {
		r.LLx = p.X
	}
	if p.Y < r.LLy {
		r.LLy = p.Y
	}
	if p.X > r.URx {
		r.URx = p.X
	}
	if p.Y > r.URy {
		r.URy = p.Y
	}
}

// Round rounds the corner coordinates outward to the given number of decimal
// digits, so that the rounded rectangle covers the original one.
func (r *Rectangle) Round(digits int) {
	scale := math.Pow(10, float64(digits))
	r.LLx = math.Floor(r.LLx*scale) / scale
	r.LLy = math.Floor(r.LLy*scale) / scale
	r.URx = math.Ceil(r.URx*scale) / scale
	r.URy = math.Ceil(r.URy*scale) / scale
}

// AsRect converts the rectangle to a [rect.Rect] for computation.
func (r *Rectangle) AsRect() rect.Rect {
	return rect.Rect{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: r.URy}
}

// FromRect converts a [rect.Rect] to a Rectangle.
func FromRect(r rect.Rect) *Rectangle {
	return &Rectangle{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: r.URy}
}
