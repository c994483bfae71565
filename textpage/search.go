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
	"strings"
	"unicode"

	"seehuhn.de/go/geom/rect"

	pdf "github.com/textlayer/pdftext"
)

// SearchFlags configure pattern matching in a [Search].
type SearchFlags int

const (
	// MatchCase makes the search case-sensitive.
	MatchCase SearchFlags = 1 << iota

	// MatchWholeWord restricts matches to whole words, using the same
	// word boundary rules as [TextPage.WordRangeAtPosition].
	MatchWholeWord

	// Consecutive allows overlapping matches: after a match the scan
	// resumes one character after the match start instead of after the
	// match end.
	Consecutive

	// IgnoreWidth folds full-width and half-width forms before comparing.
	IgnoreWidth
)

// Pages yields the text pages of a document for cross-page search.
// Page may parse lazily; errors abort the running Find call.
type Pages interface {
	PageCount() int
	Page(i int) (*TextPage, error)
}

// searchState tracks the lifecycle of a Search cursor.
type searchState int

const (
	stateUnstarted searchState = iota
	stateConfigured
	stateMatched
	stateExhausted
)

// cancelStep is the number of candidate positions scanned between
// cancellation checks.  It bounds cancellation latency independently of
// document size.
const cancelStep = 64

// Search is a stateful cursor over the matches of a pattern in the text
// of a page, a document, or the region of a text markup annotation.
//
// A fresh Search is unstarted; configure it with SetPattern and
// optionally SetFlags, SetStartCharacter, SetStartPage/SetEndPage and
// SetCancel, then iterate with FindNext or FindPrev.  The Match*
// accessors report on the current match and return sentinel values
// whenever the cursor does not currently sit on a match.
type Search struct {
	pages    Pages
	single   *TextPage // page- and annotation-sourced search
	restrict []Range   // annotation-sourced search: allowed spans

	rawPattern string
	pat        []rune
	flags      SearchFlags
	cancel     func() bool

	startPage, endPage int
	startChar          int

	state   searchState
	started bool
	page    int // current page index
	fwd     int // next forward candidate start on page
	bwd     int // next backward candidate start on page

	matchTP    *TextPage
	matchPage  int
	matchStart int
	matchEnd   int
}

// NewSearch returns a search cursor over the text of a single page.
func NewSearch(tp *TextPage) *Search {
	return &Search{single: tp}
}

// NewDocumentSearch returns a search cursor over all pages of a document.
func NewDocumentSearch(pages Pages) *Search {
	return &Search{
		pages:   pages,
		endPage: pages.PageCount() - 1,
	}
}

// newRestrictedSearch returns a cursor over the given spans of a page.
// Used for annotation-sourced search.
func newRestrictedSearch(tp *TextPage, spans []Range) *Search {
	return &Search{single: tp, restrict: spans}
}

// SetPattern sets the text to search for.  The pattern must not be empty.
// Setting a new pattern does not reset the cursor position.
func (s *Search) SetPattern(pattern string) error {
	if pattern == "" {
		return pdf.Invalidf("empty search pattern")
	}
	s.rawPattern = pattern
	s.foldPattern()
	if s.state == stateUnstarted {
		s.state = stateConfigured
	}
	return nil
}

// SetFlags sets the match flags.  Changing flags re-folds the pattern but
// does not reset the cursor position.
func (s *Search) SetFlags(flags SearchFlags) {
	s.flags = flags
	if s.rawPattern != "" {
		s.foldPattern()
	}
	if s.state == stateUnstarted {
		s.state = stateConfigured
	}
}

// SetCancel installs a cancellation callback.  The callback is polled
// during FindNext and FindPrev; when it returns true the running call
// stops, returns false, and the cursor keeps its position so that a later
// Find call retries from the same place.
func (s *Search) SetCancel(cancel func() bool) {
	s.cancel = cancel
}

// SetStartPage limits the search to pages starting at index i.  Only
// document-sourced searches have pages to select.
func (s *Search) SetStartPage(i int) error {
	if s.pages == nil {
		return pdf.Unsupportedf("page range on single-page search")
	}
	if i < 0 || i >= s.pages.PageCount() {
		return pdf.Invalidf("start page %d out of range [0,%d)", i, s.pages.PageCount())
	}
	s.startPage = i
	return nil
}

// SetEndPage limits the search to pages up to and including index i.
// Only document-sourced searches have pages to select.
func (s *Search) SetEndPage(i int) error {
	if s.pages == nil {
		return pdf.Unsupportedf("page range on single-page search")
	}
	if i < 0 || i >= s.pages.PageCount() {
		return pdf.Invalidf("end page %d out of range [0,%d)", i, s.pages.PageCount())
	}
	s.endPage = i
	return nil
}

// SetStartCharacter sets the character offset on the start page at which
// the first FindNext call begins.  Later Find calls advance from the last
// match instead.  Annotation-sourced searches do not support this.
func (s *Search) SetStartCharacter(i int) error {
	if s.restrict != nil {
		return pdf.Unsupportedf("start character on annotation search")
	}
	if i < 0 {
		return pdf.Invalidf("negative start character %d", i)
	}
	s.startChar = i
	return nil
}

// FindNext advances the cursor to the next match.  It returns true if a
// match was found.  After the matches are exhausted it keeps returning
// false; a FindPrev call then resumes from the end.
func (s *Search) FindNext() (bool, error) {
	if err := s.checkConfigured(); err != nil {
		return false, err
	}
	if !s.started {
		s.page = s.firstPage()
		s.fwd = s.startChar
		s.started = true
	}
	cnt := 0
	for s.page <= s.lastPage() {
		tp, err := s.textPage(s.page)
		if err != nil {
			return false, err
		}
		n := len(tp.chars)
		for i := s.fwd; i+len(s.pat) <= n; i++ {
			if cnt%cancelStep == 0 && s.cancelled(i, true) {
				return false, nil
			}
			cnt++
			if s.matchAt(tp, i) {
				s.recordMatch(tp, s.page, i)
				return true, nil
			}
		}
		s.page++
		s.fwd = 0
	}
	s.state = stateExhausted
	s.page = s.lastPage()
	if tp, err := s.textPage(s.page); err == nil {
		s.fwd = len(tp.chars)
		s.bwd = len(tp.chars) - 1
	}
	return false, nil
}

// FindPrev moves the cursor to the previous match.  It returns true if a
// match was found.  After the matches are exhausted it keeps returning
// false; a FindNext call then resumes from the beginning.
func (s *Search) FindPrev() (bool, error) {
	if err := s.checkConfigured(); err != nil {
		return false, err
	}
	if !s.started {
		s.page = s.lastPage()
		tp, err := s.textPage(s.page)
		if err != nil {
			return false, err
		}
		s.bwd = len(tp.chars) - 1
		s.started = true
	}
	cnt := 0
	for s.page >= s.firstPage() {
		tp, err := s.textPage(s.page)
		if err != nil {
			return false, err
		}
		for i := s.bwd; i >= 0; i-- {
			if cnt%cancelStep == 0 && s.cancelled(i, false) {
				return false, nil
			}
			cnt++
			if s.matchAt(tp, i) {
				s.recordMatch(tp, s.page, i)
				return true, nil
			}
		}
		s.page--
		if s.page >= s.firstPage() {
			prev, err := s.textPage(s.page)
			if err != nil {
				return false, err
			}
			s.bwd = len(prev.chars) - 1
		}
	}
	s.state = stateExhausted
	s.page = s.firstPage()
	s.fwd = 0
	s.bwd = -1
	return false, nil
}

// MatchStartCharIndex returns the character index of the first character
// of the current match, or -1 if there is no current match.
func (s *Search) MatchStartCharIndex() int {
	if s.state != stateMatched {
		return -1
	}
	return s.matchStart
}

// MatchEndCharIndex returns the character index one past the last
// character of the current match, or -1 if there is no current match.
func (s *Search) MatchEndCharIndex() int {
	if s.state != stateMatched {
		return -1
	}
	return s.matchEnd
}

// MatchPageIndex returns the page index of the current match.  For
// single-page searches the index is always 0.  It returns -1 if there is
// no current match.
func (s *Search) MatchPageIndex() int {
	if s.state != stateMatched {
		return -1
	}
	return s.matchPage
}

// MatchRects returns the visual rectangles covering the current match,
// or nil if there is no current match.
func (s *Search) MatchRects() []rect.Rect {
	if s.state != stateMatched {
		return nil
	}
	return s.matchTP.RectsForRange(Range{
		Start: s.matchStart,
		Count: s.matchEnd - s.matchStart,
	})
}

// MatchSentence returns the sentence containing the current match, or ""
// if there is no current match.
func (s *Search) MatchSentence() string {
	if s.state != stateMatched {
		return ""
	}
	lo, hi := s.matchTP.sentenceBounds(s.matchStart, s.matchEnd)
	var b strings.Builder
	for _, c := range s.matchTP.chars[lo:hi] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// MatchSentenceStartIndex returns the offset of the match start within
// the sentence returned by MatchSentence, or -1 if there is no current
// match.
func (s *Search) MatchSentenceStartIndex() int {
	if s.state != stateMatched {
		return -1
	}
	lo, _ := s.matchTP.sentenceBounds(s.matchStart, s.matchEnd)
	return s.matchStart - lo
}

// MatchSentenceEndIndex returns the offset one past the match end within
// the sentence returned by MatchSentence, or -1 if there is no current
// match.
func (s *Search) MatchSentenceEndIndex() int {
	if s.state != stateMatched {
		return -1
	}
	lo, _ := s.matchTP.sentenceBounds(s.matchStart, s.matchEnd)
	return s.matchEnd - lo
}

func (s *Search) checkConfigured() error {
	if len(s.pat) == 0 {
		return pdf.Preconditionf("no search pattern set")
	}
	return nil
}

func (s *Search) firstPage() int {
	if s.pages == nil {
		return 0
	}
	return s.startPage
}

func (s *Search) lastPage() int {
	if s.pages == nil {
		return 0
	}
	return s.endPage
}

func (s *Search) textPage(i int) (*TextPage, error) {
	if s.pages == nil {
		return s.single, nil
	}
	return s.pages.Page(i)
}

// cancelled polls the cancellation callback.  On cancellation the cursor
// keeps the current scan position and drops back to the configured state.
func (s *Search) cancelled(i int, forward bool) bool {
	if s.cancel == nil || !s.cancel() {
		return false
	}
	if forward {
		s.fwd = i
	} else {
		s.bwd = i
	}
	s.state = stateConfigured
	return true
}

// matchAt reports whether the pattern matches at character index i.
func (s *Search) matchAt(tp *TextPage, i int) bool {
	m := len(s.pat)
	if i < 0 || i+m > len(tp.chars) {
		return false
	}
	for k, pr := range s.pat {
		r := s.foldRune(tp.chars[i+k].Rune)
		if pr == ' ' {
			if !unicode.IsSpace(tp.chars[i+k].Rune) {
				return false
			}
		} else if r != pr {
			return false
		}
	}
	if s.flags&MatchWholeWord != 0 {
		if !tp.isWordBoundary(i) || !tp.isWordBoundary(i+m) {
			return false
		}
	}
	if s.restrict != nil && !s.inRestriction(i, i+m) {
		return false
	}
	return true
}

// inRestriction reports whether [start,end) lies entirely within one of
// the allowed spans.
func (s *Search) inRestriction(start, end int) bool {
	for _, sp := range s.restrict {
		if start >= sp.Start && end <= sp.Start+sp.Count {
			return true
		}
	}
	return false
}

func (s *Search) recordMatch(tp *TextPage, page, start int) {
	m := len(s.pat)
	s.matchTP = tp
	s.matchPage = page
	s.matchStart = start
	s.matchEnd = start + m
	if s.flags&Consecutive != 0 {
		s.fwd = start + 1
	} else {
		s.fwd = start + m
	}
	s.bwd = start - 1
	s.state = stateMatched
}
