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

// Package annotation provides a typed model for PDF annotations.
//
// Each annotation subtype is represented by its own struct type; all
// types embed [Common], and the markup annotation types additionally
// embed [Markup].  [Decode] reads an annotation dictionary from an
// object store into the matching Go type, and the Encode method of each
// type writes it back.
//
// Property setters which affect the visual appearance of an annotation
// never touch the stored appearance streams.  They only mark the
// annotation as stale; callers regenerate the appearance explicitly with
// [ResetAppearanceStream].
package annotation
