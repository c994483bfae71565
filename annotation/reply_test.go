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
	"testing"

	pdf "github.com/textlayer/pdftext"
)

func TestAddReply(t *testing.T) {
	page := NewPage(pdf.NewStore())
	parent := newTestSquare()
	page.Add(parent)

	r1, err := page.AddReply(parent, "alice", "first")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := page.AddReply(parent, "bob", "second")
	if err != nil {
		t.Fatal(err)
	}

	if r1.InReplyTo != page.Ref(parent) || r1.ReplyType != ReplyTypeReply {
		t.Error("reply does not refer back to the parent")
	}
	if r1.Flags&FlagNoView == 0 || r1.Flags&FlagPrint == 0 {
		t.Error("reply must be hidden on screen but printable")
	}

	replies := page.Replies(parent)
	if len(replies) != 2 || replies[0] != r1 || replies[1] != r2 {
		t.Errorf("Replies = %v", replies)
	}

	// nested replies are not direct replies of the parent
	if _, err := page.AddReply(r1, "carol", "nested"); err != nil {
		t.Fatal(err)
	}
	if got := len(page.Replies(parent)); got != 2 {
		t.Errorf("got %d direct replies, want 2", got)
	}
}

func TestRemoveReplyCascades(t *testing.T) {
	page := NewPage(pdf.NewStore())
	parent := newTestSquare()
	page.Add(parent)

	r1, err := page.AddReply(parent, "alice", "first")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := page.AddReply(r1, "bob", "answer"); err != nil {
		t.Fatal(err)
	}
	if _, err := page.AddStateAnnot(r1, "carol", StateModelReview, StateAccepted); err != nil {
		t.Fatal(err)
	}

	before := page.Len()
	if err := page.RemoveReply(parent, 0); err != nil {
		t.Fatal(err)
	}
	// the reply, its sub-reply and its state record all disappear
	if got := page.Len(); got != before-3 {
		t.Errorf("page has %d annotations, want %d", got, before-3)
	}
	if len(page.Replies(parent)) != 0 {
		t.Error("reply still listed after removal")
	}

	if err := page.RemoveReply(parent, 0); err == nil {
		t.Error("expected error for reply index out of range")
	}
}

func TestRepliesExcludeGroupsAndStates(t *testing.T) {
	page := NewPage(pdf.NewStore())
	parent := newTestSquare()
	member := newTestSquare()
	page.Add(parent)
	page.Add(member)
	if err := page.Group(parent, member); err != nil {
		t.Fatal(err)
	}
	if _, err := page.AddStateAnnot(parent, "alice", StateModelReview, StateRejected); err != nil {
		t.Fatal(err)
	}

	if got := page.Replies(parent); len(got) != 0 {
		t.Errorf("Replies = %v, want none", got)
	}
}

func TestReviewStatesAppend(t *testing.T) {
	page := NewPage(pdf.NewStore())
	parent := newTestSquare()
	page.Add(parent)

	// in the review model, the full history is preserved
	for _, state := range []State{StateAccepted, StateRejected, StateCompleted} {
		if _, err := page.AddStateAnnot(parent, "alice", StateModelReview, state); err != nil {
			t.Fatal(err)
		}
	}
	records := page.StateAnnots(parent, StateModelReview)
	if len(records) != 3 {
		t.Fatalf("got %d review records, want 3", len(records))
	}
	if records[2].State != StateCompleted {
		t.Errorf("latest state = %q, want %q", records[2].State, StateCompleted)
	}
}

func TestMarkedStateUpserts(t *testing.T) {
	page := NewPage(pdf.NewStore())
	parent := newTestSquare()
	page.Add(parent)

	// in the marked model, each user has at most one record
	if _, err := page.AddStateAnnot(parent, "alice", StateModelMarked, StateMarked); err != nil {
		t.Fatal(err)
	}
	if _, err := page.AddStateAnnot(parent, "alice", StateModelMarked, StateUnmarked); err != nil {
		t.Fatal(err)
	}
	records := page.StateAnnots(parent, StateModelMarked)
	if len(records) != 1 {
		t.Fatalf("got %d marked records, want 1", len(records))
	}
	if records[0].State != StateUnmarked {
		t.Errorf("state = %q, want %q", records[0].State, StateUnmarked)
	}

	// a different user gets a separate record
	if _, err := page.AddStateAnnot(parent, "bob", StateModelMarked, StateMarked); err != nil {
		t.Fatal(err)
	}
	if got := len(page.StateAnnots(parent, StateModelMarked)); got != 2 {
		t.Errorf("got %d marked records, want 2", got)
	}
}

func TestInvalidState(t *testing.T) {
	page := NewPage(pdf.NewStore())
	parent := newTestSquare()
	page.Add(parent)

	if _, err := page.AddStateAnnot(parent, "alice", StateModelMarked, StateAccepted); err == nil {
		t.Error("expected error for state outside the model")
	}
	if _, err := page.AddStateAnnot(parent, "alice", StateModelReview, StateMarked); err == nil {
		t.Error("expected error for state outside the model")
	}
}
