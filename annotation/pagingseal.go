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

// PagingSeal represents a seal stamped across the edges of consecutive
// pages, so that part of the seal image appears on each page.  This is
// a vendor extension, not part of the PDF standard.
type PagingSeal struct {
	Common

	// Seal (optional) refers to the image XObject holding the full seal
	// image.
	Seal pdf.Reference

	// Part is the zero-based index of the seal segment displayed by
	// this annotation.
	Part int

	// Total is the number of segments the seal is split into.
	Total int
}

var _ Annotation = (*PagingSeal)(nil)

// AnnotationType returns "PagingSeal".
// This implements the [Annotation] interface.
func (p *PagingSeal) AnnotationType() pdf.Name {
	return "PagingSeal"
}

func decodePagingSeal(r pdf.Getter, dict pdf.Dict) (*PagingSeal, error) {
	seal := &PagingSeal{Total: 1}
	if err := decodeCommon(r, &seal.Common, dict); err != nil {
		return nil, err
	}

	if ref, ok := dict["Seal"].(pdf.Reference); ok {
		seal.Seal = ref
	}
	if part, err := pdf.Optional(pdf.GetInt(r, dict["Part"])); err != nil {
		return nil, err
	} else {
		seal.Part = int(part)
	}
	if total, err := pdf.Optional(pdf.GetInt(r, dict["Total"])); err != nil {
		return nil, err
	} else if total > 0 {
		seal.Total = int(total)
	}

	return seal, nil
}

func (p *PagingSeal) Encode() (pdf.Dict, error) {
	if p.Part < 0 || p.Total < 1 || p.Part >= p.Total {
		return nil, pdf.Invalidf("paging seal segment %d of %d", p.Part, p.Total)
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("PagingSeal"),
	}
	if err := p.Common.fillDict(dict, isMarkup(p)); err != nil {
		return nil, err
	}

	if p.Seal != 0 {
		dict["Seal"] = p.Seal
	}
	if p.Part != 0 {
		dict["Part"] = pdf.Integer(p.Part)
	}
	if p.Total != 1 {
		dict["Total"] = pdf.Integer(p.Total)
	}

	return dict, nil
}
