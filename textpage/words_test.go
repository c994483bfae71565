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
	"testing"
)

func TestWordRangeAtPosition(t *testing.T) {
	tp := singleLine(t, "Hello World")

	// point on the 'o' of "Hello" (index 4, x 124..130)
	got, err := tp.WordRangeAtPosition(127, 700, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Range{Start: 0, Count: 5}) {
		t.Errorf("word at 'o' = %v", got)
	}

	// the space between the words is a one-character "word"
	got, err = tp.WordRangeAtPosition(133, 700, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Range{Start: 5, Count: 1}) {
		t.Errorf("word at space = %v", got)
	}

	// nothing within reach
	got, err = tp.WordRangeAtPosition(400, 400, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() || got.Start != -1 {
		t.Errorf("word off the text = %v", got)
	}
}

func TestWordRangeCJK(t *testing.T) {
	// each ideograph is its own word, even in a run
	tp := singleLine(t, "漢字です")
	got, err := tp.WordRangeAtPosition(109, 700, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Range{Start: 1, Count: 1}) {
		t.Errorf("word at ideograph = %v", got)
	}
}

func TestWordStopsAtLineBreak(t *testing.T) {
	// adjacent word characters on different lines are different words
	tp := mustPage(t, ParseNormal,
		lineGlyphs("abc", 100, 700),
		lineGlyphs("def", 100, 688),
	)
	got, err := tp.WordRangeAtPosition(103, 700, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Range{Start: 0, Count: 3}) {
		t.Errorf("word on first line = %v", got)
	}
}
