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
	"github.com/textlayer/pdftext/graphics"
)

// AppearanceDict holds the appearance streams of an annotation.  Each of
// the three appearance types is either a single form XObject reference
// or, for annotations with several appearance states, a map from state
// name to reference.
type AppearanceDict struct {
	// Normal is the normal appearance of the annotation.
	Normal pdf.Reference

	// Rollover (optional) is the appearance used while the pointer
	// hovers over the annotation.
	Rollover pdf.Reference

	// Down (optional) is the appearance used while the annotation is
	// being clicked.
	Down pdf.Reference

	// NormalMap, RolloverMap and DownMap replace the corresponding
	// single references for annotations with appearance states.  The
	// applicable state is selected by Common.AppearanceState.
	NormalMap, RolloverMap, DownMap map[pdf.Name]pdf.Reference
}

func (d *AppearanceDict) hasStates() bool {
	return len(d.NormalMap) > 0 || len(d.RolloverMap) > 0 || len(d.DownMap) > 0
}

// Encode converts the appearance dictionary to a PDF dictionary.
func (d *AppearanceDict) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{}
	entries := []struct {
		key    pdf.Name
		single pdf.Reference
		states map[pdf.Name]pdf.Reference
	}{
		{"N", d.Normal, d.NormalMap},
		{"R", d.Rollover, d.RolloverMap},
		{"D", d.Down, d.DownMap},
	}
	for _, e := range entries {
		if e.single != 0 && len(e.states) > 0 {
			return nil, pdf.Invalidf("appearance %q has both a single stream and states", e.key)
		}
		if e.single != 0 {
			dict[e.key] = e.single
		} else if len(e.states) > 0 {
			sub := pdf.Dict{}
			for state, ref := range e.states {
				sub[state] = ref
			}
			dict[e.key] = sub
		}
	}
	if _, ok := dict["N"]; !ok {
		return nil, pdf.Invalidf("missing normal appearance")
	}
	return dict, nil
}

// decodeAppearanceDict reads an appearance dictionary.
func decodeAppearanceDict(r pdf.Getter, obj pdf.Object) (*AppearanceDict, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil || dict == nil {
		return nil, err
	}
	d := &AppearanceDict{}
	read := func(obj pdf.Object, single *pdf.Reference, states *map[pdf.Name]pdf.Reference) {
		if ref, ok := obj.(pdf.Reference); ok {
			*single = ref
			return
		}
		if sub, err := pdf.GetDict(r, obj); err == nil && sub != nil {
			m := make(map[pdf.Name]pdf.Reference)
			for state, v := range sub {
				if ref, ok := v.(pdf.Reference); ok {
					m[state] = ref
				}
			}
			if len(m) > 0 {
				*states = m
			}
		}
	}
	read(dict["N"], &d.Normal, &d.NormalMap)
	read(dict["R"], &d.Rollover, &d.RolloverMap)
	read(dict["D"], &d.Down, &d.DownMap)
	return d, nil
}

// Generator produces appearance forms for annotations.  Implementations
// return an error wrapping [pdf.ErrPrecondition] if the annotation lacks
// the geometry required by its type, and an error wrapping
// [pdf.ErrUnsupported] for types they cannot draw.
type Generator interface {
	Generate(a Annotation) (*graphics.Form, error)
}

// ResetAppearanceStream regenerates the normal appearance stream of the
// annotation from its current property values and clears the staleness
// mark.
//
// If newObject is false and the annotation already has a normal
// appearance stream, the stream object is rewritten in place, keeping
// its reference.  Otherwise a new object is allocated.
func ResetAppearanceStream(a Annotation, gen Generator, s pdf.Putter, newObject bool) error {
	form, err := gen.Generate(a)
	if err != nil {
		return err
	}

	c := a.common()
	ref := pdf.Reference(0)
	if !newObject && c.Appearance != nil {
		ref = c.Appearance.Normal
	}
	if ref == 0 {
		ref = s.Alloc()
	}
	if err := s.Put(ref, form.AsStream()); err != nil {
		return err
	}

	if c.Appearance == nil {
		c.Appearance = &AppearanceDict{}
	}
	c.Appearance.Normal = ref
	c.Appearance.NormalMap = nil
	c.stale = false
	return nil
}

// MoveAndReset relocates the annotation rectangle and regenerates the
// appearance in one step.
func MoveAndReset(a Annotation, r pdf.Rectangle, gen Generator, s pdf.Putter) error {
	c := a.common()
	old := c.Rect
	c.Move(r)
	if err := ResetAppearanceStream(a, gen, s, false); err != nil {
		c.Rect = old
		return err
	}
	return nil
}
