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

// Package textpage builds a per-character index over the text of one PDF
// page and answers position, range, and text queries against it.
//
// A [TextPage] is built from the glyphs produced by the external content
// parser for one page snapshot.  Character indices are dense, zero-based
// and stable for the lifetime of the TextPage; re-parsing the page or
// mutating its annotation list invalidates all TextPage, [Search] and
// [TextLink] values built from the old snapshot, and callers must rebuild.
//
// None of the types in this package are safe for concurrent mutation.
// Read-only use of distinct instances from multiple goroutines is safe.
package textpage
