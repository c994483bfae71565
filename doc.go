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

// Package pdftext provides the PDF value types and object-store interfaces
// shared by the text-page index in [github.com/textlayer/pdftext/textpage]
// and the annotation model in [github.com/textlayer/pdftext/annotation].
//
// The package does not read or write PDF files.  Parsed page content and
// annotation dictionaries are handed to this module by an external document
// store; the [Getter] interface is the view of that store used here, and
// [Store] is a simple in-memory implementation used by the factories and in
// tests.
package pdftext
