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

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/annotation"
)

// TextUnderAnnotation returns the text covered by a text markup
// annotation.  A character counts as covered if its box has majority
// overlap with one of the annotation's quadrilaterals.
//
// Only the text markup annotation types (Highlight, Underline,
// StrikeOut, Squiggly) can be queried this way; for any other type the
// call fails.
func (tp *TextPage) TextUnderAnnotation(a annotation.Annotation) (string, error) {
	spans, err := tp.spansUnderAnnotation(a)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, span := range spans {
		for _, c := range tp.chars[span.Start : span.Start+span.Count] {
			b.WriteRune(c.Rune)
		}
	}
	return b.String(), nil
}

// NewAnnotationSearch returns a search cursor restricted to the text
// covered by a text markup annotation.
func NewAnnotationSearch(tp *TextPage, a annotation.Annotation) (*Search, error) {
	spans, err := tp.spansUnderAnnotation(a)
	if err != nil {
		return nil, err
	}
	if spans == nil {
		spans = []Range{}
	}
	return newRestrictedSearch(tp, spans), nil
}

// spansUnderAnnotation returns the maximal character index ranges
// covered by the annotation's quadrilaterals.
func (tp *TextPage) spansUnderAnnotation(a annotation.Annotation) ([]Range, error) {
	tm, ok := a.(*annotation.TextMarkup)
	if !ok {
		return nil, pdf.Unsupportedf("cannot extract text under %s annotation", a.AnnotationType())
	}

	var spans []Range
	var cur *Range
	for i, c := range tp.chars {
		covered := false
		if c.Kind != KindGenerated {
			for _, q := range tm.QuadPoints {
				if overlapFraction(c.Box, q.Rect()) >= minOverlapR {
					covered = true
					break
				}
			}
		} else if cur != nil && i == cur.Start+cur.Count {
			// generated separators inside a covered run stay part of it
			if i+1 < len(tp.chars) {
				next := tp.chars[i+1]
				if next.Kind != KindGenerated {
					for _, q := range tm.QuadPoints {
						if overlapFraction(next.Box, q.Rect()) >= minOverlapR {
							covered = true
							break
						}
					}
				}
			}
		}
		if covered {
			if cur != nil && i == cur.Start+cur.Count {
				cur.Count++
			} else {
				spans = append(spans, Range{Start: i, Count: 1})
				cur = &spans[len(spans)-1]
			}
		}
	}
	return spans, nil
}
