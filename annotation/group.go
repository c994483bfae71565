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

// A group of markup annotations consists of one header annotation and
// one or more subordinate members.  The members carry a "Group" reply
// reference to the header; all group-level attributes (contents, color,
// author and so on) are authoritative on the header, and consumers must
// ignore them on the members.

// Group makes header the head of a group containing the given members.
// All annotations must be markup annotations on this page; the members
// must not already belong to a group.
func (p *Page) Group(header Annotation, members ...Annotation) error {
	if len(members) == 0 {
		return pdf.Invalidf("group without members")
	}
	headerRef := p.refs[header]
	if headerRef == 0 {
		return pdf.Invalidf("group header not on page")
	}
	hm := markupOf(header)
	if hm == nil {
		return pdf.Unsupportedf("%s annotation cannot head a group", header.AnnotationType())
	}
	if hm.ReplyType == ReplyTypeGroup && hm.InReplyTo != 0 {
		return pdf.Invalidf("group header is a member of another group")
	}

	for _, member := range members {
		if member == header {
			return pdf.Invalidf("group header listed as member")
		}
		if p.refs[member] == 0 {
			return pdf.Invalidf("group member not on page")
		}
		m := markupOf(member)
		if m == nil {
			return pdf.Unsupportedf("%s annotation cannot join a group", member.AnnotationType())
		}
		if m.InReplyTo != 0 {
			return pdf.Invalidf("group member already grouped or in reply")
		}
	}

	for _, member := range members {
		m := markupOf(member)
		m.InReplyTo = headerRef
		m.ReplyType = ReplyTypeGroup
	}
	return nil
}

// groupMembers returns the members pointing at the given header.
func (p *Page) groupMembers(header Annotation) []Annotation {
	headerRef := p.refs[header]
	if headerRef == 0 {
		return nil
	}
	var members []Annotation
	for _, a := range p.annots {
		m := markupOf(a)
		if m != nil && m.ReplyType == ReplyTypeGroup && m.InReplyTo == headerRef {
			members = append(members, a)
		}
	}
	return members
}

// IsGrouped reports whether the annotation belongs to a group, either
// as header or as member.
func (p *Page) IsGrouped(a Annotation) bool {
	m := markupOf(a)
	if m == nil {
		return false
	}
	if m.ReplyType == ReplyTypeGroup && m.InReplyTo != 0 {
		return true
	}
	return len(p.groupMembers(a)) > 0
}

// GroupElements returns the annotations of the group containing a,
// header first, in page order.  It returns nil if a is not grouped.
func (p *Page) GroupElements(a Annotation) []Annotation {
	header := a
	if m := markupOf(a); m != nil && m.ReplyType == ReplyTypeGroup && m.InReplyTo != 0 {
		header = p.byRef(m.InReplyTo)
		if header == nil {
			return nil
		}
	}
	members := p.groupMembers(header)
	if len(members) == 0 {
		return nil
	}
	return append([]Annotation{header}, members...)
}

// Ungroup removes the annotation from its group.  Called on the group
// header it disbands the whole group; called on a member it detaches
// only that member.  It returns false if the annotation is not grouped.
func (p *Page) Ungroup(a Annotation) bool {
	m := markupOf(a)
	if m != nil && m.ReplyType == ReplyTypeGroup && m.InReplyTo != 0 {
		m.InReplyTo = 0
		m.ReplyType = ""
		return true
	}
	members := p.groupMembers(a)
	if len(members) == 0 {
		return false
	}
	for _, member := range members {
		mm := markupOf(member)
		mm.InReplyTo = 0
		mm.ReplyType = ""
	}
	return true
}
