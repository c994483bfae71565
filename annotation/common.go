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
	"time"

	"golang.org/x/text/language"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

var errMissingDict = errors.New("missing annotation dictionary")

// Common holds the fields shared by all annotation types.
type Common struct {
	// Rect is the annotation rectangle: the location of the annotation
	// on the page, in page space.
	//
	// This corresponds to the /Rect entry in the PDF annotation dictionary.
	Rect pdf.Rectangle

	// Contents (optional) is the text of the annotation, or a
	// description of its contents for annotation types which do not
	// display text.
	Contents string

	// Name (optional) is a name uniquely identifying the annotation
	// among all annotations of its page.
	//
	// This corresponds to the /NM entry in the PDF annotation dictionary.
	Name string

	// ModifiedDate (optional) is the date and time the annotation was
	// most recently modified.  The zero value means unset.
	//
	// This corresponds to the /M entry in the PDF annotation dictionary.
	ModifiedDate time.Time

	// Flags is the annotation flags bitmask.
	Flags Flags

	// Appearance (optional) holds the appearance streams of the
	// annotation.
	//
	// This corresponds to the /AP entry in the PDF annotation dictionary.
	Appearance *AppearanceDict

	// AppearanceState (optional) selects the applicable appearance
	// stream when the appearance dictionary contains state
	// subdictionaries.
	//
	// This corresponds to the /AS entry in the PDF annotation dictionary.
	AppearanceState pdf.Name

	// Border (optional) describes the annotation border using the
	// legacy border array.  If BorderStyle is set on a type which has
	// one, this field is ignored.
	Border *Border

	// Color (optional) is the border color.  Depending on the
	// annotation type this is also used as the background color of the
	// annotation icon or the title bar of the popup window.
	//
	// Only DeviceGray, DeviceRGB and DeviceCMYK colors, and
	// [graphics.Transparent], are allowed.
	//
	// This corresponds to the /C entry in the PDF annotation dictionary.
	Color graphics.Color

	// Lang (optional) specifies the language of the annotation.
	Lang language.Tag

	// stale records that an appearance-affecting property changed after
	// the appearance streams were last generated.
	stale bool
}

func (c *Common) common() *Common { return c }

// AppearanceStale reports whether an appearance-affecting property has
// been changed since the appearance streams were last generated.
func (c *Common) AppearanceStale() bool {
	return c.stale
}

// markStale records an appearance-affecting change.  Type-specific
// setters call this.
func (c *Common) markStale() {
	c.stale = true
}

// SetContents changes the annotation text.  The displayed appearance of
// text-bearing annotation types is not updated until the appearance is
// regenerated.
func (c *Common) SetContents(s string) {
	c.Contents = s
	c.stale = true
}

// SetBorderColor changes the border color.  The stored appearance streams
// are left untouched until the appearance is regenerated.
func (c *Common) SetBorderColor(col graphics.Color) {
	c.Color = col
	c.stale = true
}

// BorderColor returns the border color, or nil if unset.
func (c *Common) BorderColor() graphics.Color {
	return c.Color
}

// SetBorder changes the legacy border settings.
func (c *Common) SetBorder(b *Border) {
	c.Border = b
	c.stale = true
}

// SetModifiedDate updates the modification timestamp.  This has no
// effect on the appearance.
func (c *Common) SetModifiedDate(t time.Time) {
	c.ModifiedDate = t
}

// Move relocates the annotation rectangle.  The appearance streams keep
// describing the old geometry until the appearance is regenerated; use
// [MoveAndReset] to do both in one step.
func (c *Common) Move(r pdf.Rectangle) {
	c.Rect = r
	c.stale = true
}

// decodeCommon reads the shared annotation fields from dict.
func decodeCommon(r pdf.Getter, c *Common, dict pdf.Dict) error {
	rect, err := pdf.GetRectangle(r, dict["Rect"])
	if err != nil {
		return err
	}
	if rect != nil {
		c.Rect = *rect
	}

	if contents, err := pdf.Optional(pdf.GetTextString(r, dict["Contents"])); err != nil {
		return err
	} else {
		c.Contents = contents
	}

	if name, err := pdf.Optional(pdf.GetTextString(r, dict["NM"])); err != nil {
		return err
	} else {
		c.Name = name
	}

	if m, err := pdf.Optional(pdf.GetDate(r, dict["M"])); err != nil {
		return err
	} else {
		c.ModifiedDate = m
	}

	if f, err := pdf.Optional(pdf.GetInt(r, dict["F"])); err != nil {
		return err
	} else {
		c.Flags = Flags(f)
	}

	if ap, err := pdf.Optional(decodeAppearanceDict(r, dict["AP"])); err != nil {
		return err
	} else {
		c.Appearance = ap
	}

	if as, err := pdf.Optional(pdf.GetName(r, dict["AS"])); err != nil {
		return err
	} else {
		c.AppearanceState = as
	}

	if b, err := pdf.Optional(decodeBorder(r, dict["Border"])); err != nil {
		return err
	} else {
		c.Border = b
	}

	if col, err := pdf.Optional(extractColor(r, dict["C"])); err != nil {
		return err
	} else {
		c.Color = col
	}

	if lang, err := pdf.Optional(pdf.GetTextString(r, dict["Lang"])); err != nil {
		return err
	} else if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			c.Lang = tag
		}
	}

	return nil
}

// fillDict writes the shared annotation fields into dict.
func (c *Common) fillDict(dict pdf.Dict, isMarkup bool) error {
	if c.Rect.IsZero() {
		return pdf.Invalidf("missing annotation rectangle")
	}

	dict["Type"] = pdf.Name("Annot")
	rect := c.Rect
	rect.Round(2)
	dict["Rect"] = &rect

	if c.Contents != "" {
		dict["Contents"] = pdf.TextString(c.Contents)
	}
	if c.Name != "" {
		dict["NM"] = pdf.TextString(c.Name)
	}
	if !c.ModifiedDate.IsZero() {
		dict["M"] = pdf.Date(c.ModifiedDate)
	}
	if c.Flags != 0 {
		dict["F"] = pdf.Integer(c.Flags)
	}
	if c.Appearance != nil {
		ap, err := c.Appearance.Encode()
		if err != nil {
			return err
		}
		dict["AP"] = ap
		if c.Appearance.hasStates() {
			if c.AppearanceState == "" {
				return pdf.Invalidf("missing appearance state")
			}
			dict["AS"] = c.AppearanceState
		}
	}
	if c.Border != nil {
		dict["Border"] = c.Border.Encode()
	}
	if c.Color != nil {
		col, err := encodeColor(c.Color)
		if err != nil {
			return err
		}
		dict["C"] = col
	}
	if c.Lang != language.Und {
		dict["Lang"] = pdf.TextString(c.Lang.String())
	}

	return nil
}
