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

// Movie represents an annotation which embeds a movie in the page.
// Movie annotations are deprecated in PDF 2.0.
type Movie struct {
	Common

	// Title (optional) is the title by which the movie can be
	// referenced from actions.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	Title string

	// Movie is the movie dictionary describing the movie to play.
	Movie pdf.Dict

	// Play specifies whether the movie plays automatically when the
	// annotation is activated.
	//
	// This corresponds to the /A entry in the PDF annotation dictionary.
	Play bool
}

var _ Annotation = (*Movie)(nil)

// AnnotationType returns "Movie".
// This implements the [Annotation] interface.
func (m *Movie) AnnotationType() pdf.Name {
	return "Movie"
}

func decodeMovie(r pdf.Getter, dict pdf.Dict) (*Movie, error) {
	movie := &Movie{Play: true}
	if err := decodeCommon(r, &movie.Common, dict); err != nil {
		return nil, err
	}

	if t, err := pdf.Optional(pdf.GetTextString(r, dict["T"])); err != nil {
		return nil, err
	} else {
		movie.Title = t
	}

	if mv, err := pdf.Optional(pdf.GetDict(r, dict["Movie"])); err != nil {
		return nil, err
	} else {
		movie.Movie = mv
	}

	if a, err := pdf.Optional(pdf.GetBool(r, dict["A"])); err != nil {
		return nil, err
	} else if _, present := dict["A"]; present {
		movie.Play = bool(a)
	}

	return movie, nil
}

func (m *Movie) Encode() (pdf.Dict, error) {
	if m.Movie == nil {
		return nil, pdf.Invalidf("movie annotation without movie dictionary")
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Movie"),
		"Movie":   m.Movie,
	}
	if err := m.Common.fillDict(dict, isMarkup(m)); err != nil {
		return nil, err
	}

	if m.Title != "" {
		dict["T"] = pdf.TextString(m.Title)
	}
	if !m.Play {
		dict["A"] = pdf.Bool(false)
	}

	return dict, nil
}
