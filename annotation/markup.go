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
)

// ReplyType describes how an annotation relates to the annotation named
// by its InReplyTo field.
type ReplyType pdf.Name

const (
	// ReplyTypeReply marks the annotation as a reply to the parent.
	ReplyTypeReply ReplyType = "R"

	// ReplyTypeGroup marks the annotation as a subordinate member of a
	// group whose header is the parent.
	ReplyTypeGroup ReplyType = "Group"
)

// Markup holds the fields shared by all markup annotation types.
type Markup struct {
	// Author (optional) is the text label shown in the title bar of the
	// annotation's popup window, by convention the name of the author.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	Author string

	// Popup (optional) refers to a popup annotation for entering or
	// editing the text of the annotation.
	Popup pdf.Reference

	// Opacity is the constant opacity used when painting the
	// annotation, in the range 0 to 1.  The default is 1; a zero value
	// is treated as unset, so a literally constructed Markup paints
	// fully opaque.
	//
	// This corresponds to the /CA entry in the PDF annotation dictionary.
	Opacity float64

	// CreationDate (optional) is the date and time the annotation was
	// created.  The zero value means unset.
	CreationDate time.Time

	// InReplyTo (optional) refers to the annotation this one is in
	// reply to, or to the group header if ReplyType is
	// [ReplyTypeGroup].
	//
	// This corresponds to the /IRT entry in the PDF annotation dictionary.
	InReplyTo pdf.Reference

	// ReplyType distinguishes replies from group membership.  The
	// default is [ReplyTypeReply].
	ReplyType ReplyType

	// Subject (optional) is a short description of the subject
	// addressed by the annotation.
	//
	// This corresponds to the /Subj entry in the PDF annotation dictionary.
	Subject string

	// Intent (optional) describes the intent of the annotation, for
	// types which distinguish several uses of the same subtype.
	//
	// This corresponds to the /IT entry in the PDF annotation dictionary.
	Intent pdf.Name
}

func (m *Markup) markupFields() *Markup { return m }

// PaintOpacity returns the opacity to paint with, mapping the unset zero
// value to the default of 1.
func (m *Markup) PaintOpacity() float64 {
	if m.Opacity == 0 {
		return 1
	}
	return m.Opacity
}

// NewMarkup returns markup fields with the default opacity.
func NewMarkup() Markup {
	return Markup{Opacity: 1}
}

// SetOpacity changes the painting opacity of a markup annotation.  The
// stored appearance streams are left untouched until the appearance is
// regenerated.  An opacity of exactly zero is the unset value and paints
// fully opaque, see [Markup.Opacity].
func SetOpacity(a Annotation, opacity float64) error {
	m := markupOf(a)
	if m == nil {
		return pdf.Unsupportedf("%s annotation has no opacity", a.AnnotationType())
	}
	if opacity < 0 || opacity > 1 {
		return pdf.Invalidf("opacity %g outside [0,1]", opacity)
	}
	m.Opacity = opacity
	a.common().markStale()
	return nil
}

// decodeMarkup reads the shared markup fields from dict.
func decodeMarkup(r pdf.Getter, m *Markup, dict pdf.Dict) error {
	m.Opacity = 1

	if t, err := pdf.Optional(pdf.GetTextString(r, dict["T"])); err != nil {
		return err
	} else {
		m.Author = t
	}

	if ref, ok := dict["Popup"].(pdf.Reference); ok {
		m.Popup = ref
	}

	if ca, err := pdf.Optional(pdf.GetNumber(r, dict["CA"])); err != nil {
		return err
	} else if _, present := dict["CA"]; present {
		m.Opacity = float64(ca)
	}

	if d, err := pdf.Optional(pdf.GetDate(r, dict["CreationDate"])); err != nil {
		return err
	} else {
		m.CreationDate = d
	}

	if ref, ok := dict["IRT"].(pdf.Reference); ok {
		m.InReplyTo = ref
	}

	if rt, err := pdf.Optional(pdf.GetName(r, dict["RT"])); err != nil {
		return err
	} else if rt != "" {
		m.ReplyType = ReplyType(rt)
	}

	if subj, err := pdf.Optional(pdf.GetTextString(r, dict["Subj"])); err != nil {
		return err
	} else {
		m.Subject = subj
	}

	if it, err := pdf.Optional(pdf.GetName(r, dict["IT"])); err != nil {
		return err
	} else {
		m.Intent = it
	}

	return nil
}

// fillDict writes the shared markup fields into dict.
func (m *Markup) fillDict(dict pdf.Dict) error {
	if m.Author != "" {
		dict["T"] = pdf.TextString(m.Author)
	}
	if m.Popup != 0 {
		dict["Popup"] = m.Popup
	}
	if m.Opacity != 0 && m.Opacity != 1 {
		if m.Opacity < 0 || m.Opacity > 1 {
			return pdf.Invalidf("opacity %g outside [0,1]", m.Opacity)
		}
		dict["CA"] = pdf.Number(m.Opacity)
	}
	if !m.CreationDate.IsZero() {
		dict["CreationDate"] = pdf.Date(m.CreationDate)
	}
	if m.InReplyTo != 0 {
		dict["IRT"] = m.InReplyTo
	}
	if m.ReplyType != "" && m.ReplyType != ReplyTypeReply {
		dict["RT"] = pdf.Name(m.ReplyType)
	}
	if m.Subject != "" {
		dict["Subj"] = pdf.TextString(m.Subject)
	}
	if m.Intent != "" {
		dict["IT"] = m.Intent
	}
	return nil
}
