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

package textpage

import (
	"errors"
	"testing"

	pdf "github.com/textlayer/pdftext"
)

// findAll drains the cursor and returns all match start offsets.
func findAll(t *testing.T, s *Search) []int {
	t.Helper()
	var starts []int
	for {
		ok, err := s.FindNext()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			return starts
		}
		starts = append(starts, s.MatchStartCharIndex())
	}
}

func TestFindBasic(t *testing.T) {
	tp := singleLine(t, "one two one")
	s := NewSearch(tp)

	// before the first match the accessors return sentinels
	if i := s.MatchStartCharIndex(); i != -1 {
		t.Errorf("MatchStartCharIndex before find = %d", i)
	}
	if i := s.MatchEndCharIndex(); i != -1 {
		t.Errorf("MatchEndCharIndex before find = %d", i)
	}
	if i := s.MatchPageIndex(); i != -1 {
		t.Errorf("MatchPageIndex before find = %d", i)
	}
	if rr := s.MatchRects(); rr != nil {
		t.Errorf("MatchRects before find = %v", rr)
	}

	if err := s.SetPattern("one"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no match")
	}
	if s.MatchStartCharIndex() != 0 || s.MatchEndCharIndex() != 3 {
		t.Errorf("match at [%d,%d)", s.MatchStartCharIndex(), s.MatchEndCharIndex())
	}
	if s.MatchPageIndex() != 0 {
		t.Errorf("MatchPageIndex = %d", s.MatchPageIndex())
	}
	if rr := s.MatchRects(); len(rr) != 1 {
		t.Errorf("MatchRects = %v", rr)
	}

	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 8 {
		t.Errorf("second match at %d", s.MatchStartCharIndex())
	}
}

func TestFindErrors(t *testing.T) {
	tp := singleLine(t, "abc")
	s := NewSearch(tp)

	if _, err := s.FindNext(); !errors.Is(err, pdf.ErrPrecondition) {
		t.Errorf("FindNext without pattern: err = %v", err)
	}
	if err := s.SetPattern(""); !errors.Is(err, pdf.ErrInvalidArgument) {
		t.Errorf("SetPattern(\"\"): err = %v", err)
	}
	if err := s.SetStartPage(0); !errors.Is(err, pdf.ErrUnsupported) {
		t.Errorf("SetStartPage on page search: err = %v", err)
	}
	if err := s.SetStartCharacter(-1); !errors.Is(err, pdf.ErrInvalidArgument) {
		t.Errorf("SetStartCharacter(-1): err = %v", err)
	}
}

func TestMatchCaseFlag(t *testing.T) {
	tp := singleLine(t, "Step step STEP")
	s := NewSearch(tp)
	if err := s.SetPattern("step"); err != nil {
		t.Fatal(err)
	}
	if got := findAll(t, s); len(got) != 3 {
		t.Errorf("case-insensitive matches at %v", got)
	}

	s = NewSearch(tp)
	s.SetFlags(MatchCase)
	if err := s.SetPattern("step"); err != nil {
		t.Fatal(err)
	}
	if got := findAll(t, s); len(got) != 1 || got[0] != 5 {
		t.Errorf("case-sensitive matches at %v", got)
	}
}

func TestWholeWordFlag(t *testing.T) {
	tp := singleLine(t, "This is it")
	s := NewSearch(tp)
	if err := s.SetPattern("is"); err != nil {
		t.Fatal(err)
	}
	if got := findAll(t, s); len(got) != 2 {
		t.Fatalf("substring matches at %v", got)
	}

	s = NewSearch(tp)
	s.SetFlags(MatchWholeWord)
	if err := s.SetPattern("is"); err != nil {
		t.Fatal(err)
	}
	got := findAll(t, s)
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("whole-word matches at %v", got)
	}
}

func TestConsecutiveFlag(t *testing.T) {
	tp := singleLine(t, "CCC")

	s := NewSearch(tp)
	if err := s.SetPattern("CC"); err != nil {
		t.Fatal(err)
	}
	if got := findAll(t, s); len(got) != 1 || got[0] != 0 {
		t.Errorf("non-overlapping matches at %v", got)
	}

	s = NewSearch(tp)
	s.SetFlags(Consecutive)
	if err := s.SetPattern("CC"); err != nil {
		t.Fatal(err)
	}
	got := findAll(t, s)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("overlapping matches at %v", got)
	}
}

func TestIgnoreWidthFlag(t *testing.T) {
	// full-width letters on the page, half-width pattern
	tp := singleLine(t, "ＡＢＣ")

	s := NewSearch(tp)
	if err := s.SetPattern("ABC"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("match without width folding")
	}

	s = NewSearch(tp)
	s.SetFlags(IgnoreWidth)
	if err := s.SetPattern("ABC"); err != nil {
		t.Fatal(err)
	}
	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 0 {
		t.Errorf("match = %v at %d", ok, s.MatchStartCharIndex())
	}
}

func TestPatternSpaceMatchesLineBreak(t *testing.T) {
	// layout inserts a generated newline between the lines
	tp := mustPage(t, ParseNormal,
		lineGlyphs("Hello", 100, 700),
		lineGlyphs("World", 100, 688),
	)
	s := NewSearch(tp)
	if err := s.SetPattern("Hello World"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 0 {
		t.Errorf("match = %v at %d", ok, s.MatchStartCharIndex())
	}
	// the match spans two lines, so it needs two rectangles
	if rr := s.MatchRects(); len(rr) != 2 {
		t.Errorf("MatchRects = %v", rr)
	}
}

func TestExhaustionAndResume(t *testing.T) {
	tp := singleLine(t, "ab X cd X ef")
	s := NewSearch(tp)
	if err := s.SetPattern("X"); err != nil {
		t.Fatal(err)
	}

	for want := 0; want < 2; want++ {
		ok, err := s.FindNext()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("match %d not found", want)
		}
	}
	// exhausted; repeated calls stay exhausted
	for range 2 {
		ok, err := s.FindNext()
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("match after exhaustion")
		}
		if i := s.MatchStartCharIndex(); i != -1 {
			t.Errorf("MatchStartCharIndex after exhaustion = %d", i)
		}
	}
	// the opposite direction resumes from the end
	ok, err := s.FindPrev()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 8 {
		t.Errorf("FindPrev after exhaustion: %v at %d", ok, s.MatchStartCharIndex())
	}
}

func TestFindPrevFirst(t *testing.T) {
	tp := singleLine(t, "ab X cd X ef")
	s := NewSearch(tp)
	if err := s.SetPattern("X"); err != nil {
		t.Fatal(err)
	}
	// an unstarted backward search begins at the end of the page
	ok, err := s.FindPrev()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 8 {
		t.Errorf("first FindPrev: %v at %d", ok, s.MatchStartCharIndex())
	}
	ok, err = s.FindPrev()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 3 {
		t.Errorf("second FindPrev: %v at %d", ok, s.MatchStartCharIndex())
	}
}

func TestSetStartCharacter(t *testing.T) {
	tp := singleLine(t, "ab X cd X ef")
	s := NewSearch(tp)
	if err := s.SetPattern("X"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStartCharacter(4); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 8 {
		t.Errorf("match = %v at %d", ok, s.MatchStartCharIndex())
	}
}

func TestCancellation(t *testing.T) {
	tp := singleLine(t, "ab X cd")
	s := NewSearch(tp)
	if err := s.SetPattern("X"); err != nil {
		t.Fatal(err)
	}

	cancelled := true
	s.SetCancel(func() bool { return cancelled })
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("match despite cancellation")
	}
	if i := s.MatchStartCharIndex(); i != -1 {
		t.Errorf("MatchStartCharIndex after cancel = %d", i)
	}

	// the cursor keeps its place; the retry finds the match
	cancelled = false
	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchStartCharIndex() != 3 {
		t.Errorf("retry: %v at %d", ok, s.MatchStartCharIndex())
	}
}

// stubPages serves a fixed list of pages for document search.
type stubPages struct {
	tps []*TextPage
}

func (p *stubPages) PageCount() int { return len(p.tps) }

func (p *stubPages) Page(i int) (*TextPage, error) {
	if i < 0 || i >= len(p.tps) {
		return nil, pdf.Invalidf("page index %d out of range", i)
	}
	return p.tps[i], nil
}

func TestDocumentSearch(t *testing.T) {
	doc := &stubPages{tps: []*TextPage{
		singleLine(t, "nothing here"),
		singleLine(t, "the word target"),
		singleLine(t, "target again"),
	}}
	s := NewDocumentSearch(doc)
	if err := s.SetPattern("target"); err != nil {
		t.Fatal(err)
	}

	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchPageIndex() != 1 || s.MatchStartCharIndex() != 9 {
		t.Errorf("first match: page %d at %d", s.MatchPageIndex(), s.MatchStartCharIndex())
	}

	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchPageIndex() != 2 || s.MatchStartCharIndex() != 0 {
		t.Errorf("second match: page %d at %d", s.MatchPageIndex(), s.MatchStartCharIndex())
	}

	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("match after last page")
	}
}

func TestDocumentSearchPageRange(t *testing.T) {
	doc := &stubPages{tps: []*TextPage{
		singleLine(t, "target one"),
		singleLine(t, "target two"),
		singleLine(t, "target three"),
	}}
	s := NewDocumentSearch(doc)
	if err := s.SetPattern("target"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStartPage(1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetEndPage(1); err != nil {
		t.Fatal(err)
	}

	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || s.MatchPageIndex() != 1 {
		t.Errorf("match on page %d", s.MatchPageIndex())
	}
	ok, err = s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("match outside the page range")
	}

	if err := s.SetStartPage(3); !errors.Is(err, pdf.ErrInvalidArgument) {
		t.Errorf("SetStartPage(3): err = %v", err)
	}
	if err := s.SetEndPage(-1); !errors.Is(err, pdf.ErrInvalidArgument) {
		t.Errorf("SetEndPage(-1): err = %v", err)
	}
}

func TestMatchSentence(t *testing.T) {
	tp := singleLine(t, "One two. Three four. Five.")
	s := NewSearch(tp)
	if err := s.SetPattern("four"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.FindNext()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no match")
	}
	if got := s.MatchSentence(); got != "Three four." {
		t.Errorf("MatchSentence = %q", got)
	}
	if i := s.MatchSentenceStartIndex(); i != 6 {
		t.Errorf("MatchSentenceStartIndex = %d", i)
	}
	if i := s.MatchSentenceEndIndex(); i != 10 {
		t.Errorf("MatchSentenceEndIndex = %d", i)
	}
}
