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
	"regexp"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// TextLink is a web link recognised in the text of a page.
type TextLink struct {
	// URI is the link target.  Bare host names are completed to http://
	// URLs, e-mail addresses to mailto: URIs.
	URI string

	// Chars is the character index range of the link text.
	Chars Range

	// Rects are the visual rectangles covering the link text.
	Rects []rect.Rect
}

var (
	urlPat = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,8}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&/=]*)`)
	mailPat = regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)
)

// Links scans the page text for URLs and e-mail addresses and returns the
// recognised links in reading order.  Generated characters never form part
// of a link, so a URL broken across lines is not recognised.
func (tp *TextPage) Links() []TextLink {
	text, idx := tp.linkText()

	type hit struct {
		lo, hi int
		uri    string
	}
	var hits []hit
	for _, m := range urlPat.FindAllStringIndex(text, -1) {
		s := trimLinkPunct(text[m[0]:m[1]])
		uri := s
		if !strings.Contains(strings.ToLower(s), "://") {
			uri = "http://" + s
		}
		hits = append(hits, hit{lo: m[0], hi: m[0] + len(s), uri: uri})
	}
	for _, m := range mailPat.FindAllStringIndex(text, -1) {
		inURL := false
		for _, h := range hits {
			if m[0] >= h.lo && m[0] < h.hi {
				inURL = true
				break
			}
		}
		if inURL {
			continue
		}
		s := text[m[0]:m[1]]
		hits = append(hits, hit{lo: m[0], hi: m[1], uri: "mailto:" + s})
	}

	var links []TextLink
	for _, h := range hits {
		start := idx[h.lo]
		end := idx[h.hi-1]
		r := Range{Start: start, Count: end - start + 1}
		links = append(links, TextLink{
			URI:   h.uri,
			Chars: r,
			Rects: tp.RectsForRange(r),
		})
	}
	return links
}

// linkText renders the non-generated characters of the page as a string
// and returns, for each byte of the string, the character index it came
// from.  Generated characters are replaced by a single space so that they
// break link candidates without shifting indices into adjacent words.
func (tp *TextPage) linkText() (string, []int) {
	var b strings.Builder
	var idx []int
	for i, c := range tp.chars {
		r := c.Rune
		if c.Kind == KindGenerated {
			r = ' '
		}
		n := b.Len()
		b.WriteRune(r)
		for ; n < b.Len(); n++ {
			idx = append(idx, i)
		}
	}
	return b.String(), idx
}

// trimLinkPunct removes trailing punctuation which is more likely sentence
// structure than part of the URL.
func trimLinkPunct(s string) string {
	for len(s) > 0 {
		last := s[len(s)-1]
		switch last {
		case '.', ',', ';', ':', '!', '?', '\'', '"':
			s = s[:len(s)-1]
			continue
		case ')':
			if strings.Count(s, "(") < strings.Count(s, ")") {
				s = s[:len(s)-1]
				continue
			}
		}
		break
	}
	return s
}
