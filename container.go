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
)

// Getter is the read-only view of the external document store.
type Getter interface {
	Get(Reference) (Object, error)
}

// Putter is the writable view of the external document store.  Appearance
// regeneration uses it to allocate stream objects.
type Putter interface {
	Getter
	Alloc() Reference
	Put(ref Reference, obj Object) error
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function reads the corresponding object from
// the store and returns the result.  If obj is not a [Reference], it is
// returned unchanged.  The function recursively follows chains of references
// until it resolves to a non-reference object.
//
// If a reference loop is encountered, the function returns an error of type
// [MalformedDataError].
func Resolve(r Getter, obj Object) (Object, error) {
	origObj := obj

	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			break
		}
		count++
		if count > 16 {
			return nil, &MalformedDataError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + origObj.(Reference).String()},
			}
		}

		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	var isCorrectType bool
	x, isCorrectType = obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, &MalformedDataError{
		Err: fmt.Errorf("expected %T but got %T", x, obj),
	}
}

// Helper functions for getting objects of a specific type.  Each of these
// functions calls Resolve on the object before attempting to convert it to
// the desired type.  If the object is `null`, a zero object is returned
// without error.  If the object is of the wrong type, an error is returned.
//
// The signature of these functions is
//
//	func GetT(r Getter, obj Object) (x T, err error)
//
// where T is the type of the object to be returned.
var (
	GetArray  = resolveAndCast[Array]
	GetBool   = resolveAndCast[Bool]
	GetDict   = resolveAndCast[Dict]
	GetInt    = resolveAndCast[Integer]
	GetName   = resolveAndCast[Name]
	GetReal   = resolveAndCast[Real]
	GetStream = resolveAndCast[*Stream]
	GetString = resolveAndCast[String]
)

// GetDictTyped resolves a dictionary and verifies its /Type entry, if
// present.
func GetDictTyped(r Getter, obj Object, tp Name) (Dict, error) {
	dict, err := GetDict(r, obj)
	if err != nil {
		return nil, err
	}
	if dict == nil {
		return nil, nil
	}
	have, err := GetName(r, dict["Type"])
	if err != nil {
		return nil, err
	}
	if have != "" && have != tp {
		return nil, &MalformedDataError{
			Err: fmt.Errorf("expected dict type %q but got %q", tp, have),
		}
	}
	return dict, nil
}

// GetTextString resolves obj and decodes it as a PDF text string.
func GetTextString(r Getter, obj Object) (string, error) {
	s, err := GetString(r, obj)
	if err != nil {
		return "", err
	}
	return s.AsTextString(), nil
}

// Optional suppresses [MalformedDataError] when reading optional fields:
// a malformed value reads as absent instead of failing the whole object.
func Optional[T any](x T, err error) (T, error) {
	if err != nil {
		var m *MalformedDataError
		if errors.As(err, &m) {
			var zero T
			return zero, nil
		}
		return x, err
	}
	return x, nil
}

// GetFloatArray resolves obj to an array of numbers.
func GetFloatArray(r Getter, obj Object) ([]float64, error) {
	arr, err := GetArray(r, obj)
	if err != nil || arr == nil {
		return nil, err
	}
	res := make([]float64, len(arr))
	for i, elem := range arr {
		x, err := GetNumber(r, elem)
		if err != nil {
			return nil, err
		}
		res[i] = float64(x)
	}
	return res, nil
}
