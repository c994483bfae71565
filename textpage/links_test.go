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

func TestLinksBareHost(t *testing.T) {
	tp := singleLine(t, "Visit www.example.com today")
	links := tp.Links()
	if len(links) != 1 {
		t.Fatalf("Links = %v", links)
	}
	l := links[0]
	if l.URI != "http://www.example.com" {
		t.Errorf("URI = %q", l.URI)
	}
	if l.Chars != (Range{Start: 6, Count: 15}) {
		t.Errorf("Chars = %v", l.Chars)
	}
	if len(l.Rects) != 1 {
		t.Errorf("Rects = %v", l.Rects)
	}
}

func TestLinksFullURL(t *testing.T) {
	tp := singleLine(t, "see https://x.io/a?b=1 there")
	links := tp.Links()
	if len(links) != 1 {
		t.Fatalf("Links = %v", links)
	}
	if links[0].URI != "https://x.io/a?b=1" {
		t.Errorf("URI = %q", links[0].URI)
	}
}

func TestLinksTrailingPunctuation(t *testing.T) {
	tp := singleLine(t, "see www.example.com.")
	links := tp.Links()
	if len(links) != 1 {
		t.Fatalf("Links = %v", links)
	}
	l := links[0]
	if l.URI != "http://www.example.com" {
		t.Errorf("URI = %q", l.URI)
	}
	// the sentence-final period is not part of the link text
	if l.Chars != (Range{Start: 4, Count: 15}) {
		t.Errorf("Chars = %v", l.Chars)
	}
}

func TestLinksEmail(t *testing.T) {
	tp := singleLine(t, "mail bob@example.org now")
	links := tp.Links()
	if len(links) != 1 {
		t.Fatalf("Links = %v", links)
	}
	if links[0].URI != "mailto:bob@example.org" {
		t.Errorf("URI = %q", links[0].URI)
	}
}

func TestLinksNotAcrossLines(t *testing.T) {
	// the generated line break splits the URL, so it is not recognised
	tp := mustPage(t, ParseNormal,
		lineGlyphs("www.exam", 100, 700),
		lineGlyphs("ple.com", 100, 688),
	)
	if links := tp.Links(); links != nil {
		t.Errorf("Links = %v", links)
	}
}
