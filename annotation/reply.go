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

// AddReply appends a reply to a markup annotation.  The reply is a text
// annotation added to the page, referring back to the parent.
func (p *Page) AddReply(parent Annotation, author, contents string) (*Text, error) {
	parentRef := p.refs[parent]
	if parentRef == 0 {
		return nil, pdf.Invalidf("parent annotation not on page")
	}
	if markupOf(parent) == nil {
		return nil, pdf.Unsupportedf("%s annotation cannot have replies", parent.AnnotationType())
	}

	reply := &Text{
		Common: Common{
			Rect:     parent.common().Rect,
			Contents: contents,
			Flags:    FlagNoView | FlagPrint,
		},
		Markup: Markup{
			Author:       author,
			Opacity:      1,
			CreationDate: time.Now(),
			InReplyTo:    parentRef,
			ReplyType:    ReplyTypeReply,
		},
	}
	p.Add(reply)
	return reply, nil
}

// Replies returns the direct replies to an annotation, in page order.
// State records are not included.
func (p *Page) Replies(parent Annotation) []*Text {
	parentRef := p.refs[parent]
	if parentRef == 0 {
		return nil
	}
	var replies []*Text
	for _, a := range p.annots {
		t, ok := a.(*Text)
		if !ok || t.InReplyTo != parentRef || t.ReplyType == ReplyTypeGroup {
			continue
		}
		if t.StateModel != "" {
			continue
		}
		replies = append(replies, t)
	}
	return replies
}

// RemoveReply removes the index-th reply of an annotation, together
// with all sub-replies and state records anchored at it.
func (p *Page) RemoveReply(parent Annotation, index int) error {
	replies := p.Replies(parent)
	if index < 0 || index >= len(replies) {
		return pdf.Invalidf("reply index %d out of range [0,%d)", index, len(replies))
	}
	p.removeSubtree(replies[index])
	return nil
}

// removeSubtree removes an annotation and, recursively, everything
// anchored at it through reply references.
func (p *Page) removeSubtree(a Annotation) {
	ref := p.refs[a]
	var children []Annotation
	for _, b := range p.annots {
		if m := markupOf(b); m != nil && m.InReplyTo == ref && m.ReplyType != ReplyTypeGroup {
			children = append(children, b)
		}
	}
	for _, child := range children {
		p.removeSubtree(child)
	}
	p.remove(a)
}

// AddStateAnnot sets the state of an annotation on behalf of the user
// identified by title.
//
// In the review model every call appends a new state record, preserving
// the review history.  In the marked model the most recent state record
// with the same title is updated in place instead, so each user has at
// most one marked record per annotation.
func (p *Page) AddStateAnnot(parent Annotation, title string, model StateModel, state State) (*Text, error) {
	parentRef := p.refs[parent]
	if parentRef == 0 {
		return nil, pdf.Invalidf("parent annotation not on page")
	}
	if markupOf(parent) == nil {
		return nil, pdf.Unsupportedf("%s annotation cannot have state", parent.AnnotationType())
	}
	if !validState(model, state) {
		return nil, pdf.Invalidf("state %q not valid in model %q", state, model)
	}

	if model == StateModelMarked {
		records := p.StateAnnots(parent, model)
		for i := len(records) - 1; i >= 0; i-- {
			if records[i].Author == title {
				records[i].State = state
				records[i].ModifiedDate = time.Now()
				return records[i], nil
			}
		}
	}

	record := &Text{
		Common: Common{
			Rect:     parent.common().Rect,
			Contents: string(state),
			Flags:    FlagNoView | FlagPrint,
		},
		Markup: Markup{
			Author:       title,
			Opacity:      1,
			CreationDate: time.Now(),
			InReplyTo:    parentRef,
			ReplyType:    ReplyTypeReply,
		},
		State:      state,
		StateModel: model,
	}
	p.Add(record)
	return record, nil
}

// StateAnnots returns the state records of an annotation within the
// given model, in page order.
func (p *Page) StateAnnots(parent Annotation, model StateModel) []*Text {
	parentRef := p.refs[parent]
	if parentRef == 0 {
		return nil
	}
	var records []*Text
	for _, a := range p.annots {
		t, ok := a.(*Text)
		if !ok || t.InReplyTo != parentRef || t.StateModel != model {
			continue
		}
		records = append(records, t)
	}
	return records
}
