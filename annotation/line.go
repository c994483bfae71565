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
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

// Line ending styles for [Line] and [PolyLine] annotations.
const (
	LineEndingNone         pdf.Name = "None"
	LineEndingSquare       pdf.Name = "Square"
	LineEndingCircle       pdf.Name = "Circle"
	LineEndingDiamond      pdf.Name = "Diamond"
	LineEndingOpenArrow    pdf.Name = "OpenArrow"
	LineEndingClosedArrow  pdf.Name = "ClosedArrow"
	LineEndingButt         pdf.Name = "Butt"
	LineEndingROpenArrow   pdf.Name = "ROpenArrow"
	LineEndingRClosedArrow pdf.Name = "RClosedArrow"
	LineEndingSlash        pdf.Name = "Slash"
)

// Line represents an annotation which displays a single straight line on
// the page.
type Line struct {
	Common
	Markup

	// Start and End are the endpoints of the line, in page space.
	//
	// These correspond to the /L entry in the PDF annotation dictionary.
	Start, End vec.Vec2

	// HasEndpoints records whether Start and End have been set.  A line
	// without endpoints cannot be drawn.
	HasEndpoints bool

	// BorderStyle (optional) specifies the line width and dash pattern.
	// If set, Common.Border is ignored.
	BorderStyle *BorderStyle

	// LineEndings are the line ending styles for the start and end of
	// the line.  The default is [LineEndingNone] for both.
	//
	// This corresponds to the /LE entry in the PDF annotation dictionary.
	LineEndings [2]pdf.Name

	// FillColor (optional) is the interior color of the line endings.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor graphics.Color

	// LeaderLength (optional) is the length of the leader lines
	// extending from the endpoints perpendicular to the line.  Positive
	// values extend to the left of the direction of travel, negative
	// values to the right.
	//
	// This corresponds to the /LL entry in the PDF annotation dictionary.
	LeaderLength float64

	// LeaderExtend (optional) is the non-negative length of the leader
	// line extensions beyond the line itself.
	//
	// This corresponds to the /LLE entry in the PDF annotation dictionary.
	LeaderExtend float64

	// LeaderOffset (optional) is the non-negative gap between the
	// endpoints and the start of the leader lines.
	//
	// This corresponds to the /LLO entry in the PDF annotation dictionary.
	LeaderOffset float64

	// Caption specifies whether the annotation text is replicated as a
	// caption of the line.
	//
	// This corresponds to the /Cap entry in the PDF annotation dictionary.
	Caption bool

	// CaptionPosition (optional) positions the caption either "Inline"
	// (centered inside the line, the default) or "Top" (above the
	// line).
	//
	// This corresponds to the /CP entry in the PDF annotation dictionary.
	CaptionPosition pdf.Name

	// CaptionOffset (optional) shifts the caption from its normal
	// position.
	//
	// This corresponds to the /CO entry in the PDF annotation dictionary.
	CaptionOffset vec.Vec2
}

var _ Annotation = (*Line)(nil)

// AnnotationType returns "Line".
// This implements the [Annotation] interface.
func (l *Line) AnnotationType() pdf.Name {
	return "Line"
}

func (l *Line) fillColor() graphics.Color     { return l.FillColor }
func (l *Line) setFillColor(c graphics.Color) { l.FillColor = c }

// SetFillColor changes the interior color of the line endings.  The
// stored appearance streams are left untouched until the appearance is
// regenerated.
func (l *Line) SetFillColor(c graphics.Color) {
	l.FillColor = c
	l.markStale()
}

// SetEndpoints changes the line geometry.  The stored appearance streams
// are left untouched until the appearance is regenerated.
func (l *Line) SetEndpoints(start, end vec.Vec2) {
	l.Start = start
	l.End = end
	l.HasEndpoints = true
	l.markStale()
}

func decodeLine(r pdf.Getter, dict pdf.Dict) (*Line, error) {
	line := &Line{}
	if err := decodeCommon(r, &line.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &line.Markup, dict); err != nil {
		return nil, err
	}

	if coords, err := pdf.GetFloatArray(r, dict["L"]); err == nil && len(coords) == 4 {
		line.Start = vec.Vec2{X: coords[0], Y: coords[1]}
		line.End = vec.Vec2{X: coords[2], Y: coords[3]}
		line.HasEndpoints = true
	}

	if bs, err := pdf.Optional(decodeBorderStyle(r, dict["BS"])); err != nil {
		return nil, err
	} else {
		line.BorderStyle = bs
	}

	if le, err := pdf.Optional(pdf.GetArray(r, dict["LE"])); err != nil {
		return nil, err
	} else if len(le) == 2 {
		for i := range le {
			if name, err := pdf.GetName(r, le[i]); err == nil {
				line.LineEndings[i] = name
			}
		}
	}

	if ic, err := pdf.Optional(extractColor(r, dict["IC"])); err != nil {
		return nil, err
	} else {
		line.FillColor = ic
	}

	if ll, err := pdf.Optional(pdf.GetNumber(r, dict["LL"])); err != nil {
		return nil, err
	} else {
		line.LeaderLength = float64(ll)
	}
	if lle, err := pdf.Optional(pdf.GetNumber(r, dict["LLE"])); err != nil {
		return nil, err
	} else {
		line.LeaderExtend = float64(lle)
	}
	if llo, err := pdf.Optional(pdf.GetNumber(r, dict["LLO"])); err != nil {
		return nil, err
	} else {
		line.LeaderOffset = float64(llo)
	}

	if capt, err := pdf.Optional(pdf.GetBool(r, dict["Cap"])); err != nil {
		return nil, err
	} else {
		line.Caption = bool(capt)
	}
	if cp, err := pdf.Optional(pdf.GetName(r, dict["CP"])); err != nil {
		return nil, err
	} else {
		line.CaptionPosition = cp
	}
	if co, err := pdf.GetFloatArray(r, dict["CO"]); err == nil && len(co) == 2 {
		line.CaptionOffset = vec.Vec2{X: co[0], Y: co[1]}
	}

	return line, nil
}

func (l *Line) Encode() (pdf.Dict, error) {
	if !l.HasEndpoints {
		return nil, pdf.Invalidf("line annotation without endpoints")
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Line"),
		"L": pdf.Array{
			pdf.Number(l.Start.X), pdf.Number(l.Start.Y),
			pdf.Number(l.End.X), pdf.Number(l.End.Y),
		},
	}
	if err := l.Common.fillDict(dict, isMarkup(l)); err != nil {
		return nil, err
	}
	if err := l.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if l.BorderStyle != nil {
		bs, err := l.BorderStyle.Encode()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
		delete(dict, "Border")
	}

	if l.LineEndings[0] != "" || l.LineEndings[1] != "" {
		le := make(pdf.Array, 2)
		for i, name := range l.LineEndings {
			if name == "" {
				name = LineEndingNone
			}
			le[i] = name
		}
		dict["LE"] = le
	}

	if l.FillColor != nil {
		ic, err := encodeColor(l.FillColor)
		if err != nil {
			return nil, err
		}
		dict["IC"] = ic
	}

	if l.LeaderLength != 0 {
		dict["LL"] = pdf.Number(l.LeaderLength)
	}
	if l.LeaderExtend != 0 {
		if l.LeaderExtend < 0 {
			return nil, pdf.Invalidf("negative leader line extension")
		}
		if l.LeaderLength == 0 {
			return nil, pdf.Invalidf("leader line extension without leader lines")
		}
		dict["LLE"] = pdf.Number(l.LeaderExtend)
	}
	if l.LeaderOffset != 0 {
		if l.LeaderOffset < 0 {
			return nil, pdf.Invalidf("negative leader line offset")
		}
		dict["LLO"] = pdf.Number(l.LeaderOffset)
	}

	if l.Caption {
		dict["Cap"] = pdf.Bool(true)
		if l.CaptionPosition != "" && l.CaptionPosition != "Inline" {
			dict["CP"] = l.CaptionPosition
		}
		if l.CaptionOffset != (vec.Vec2{}) {
			dict["CO"] = pdf.Array{
				pdf.Number(l.CaptionOffset.X),
				pdf.Number(l.CaptionOffset.Y),
			}
		}
	}

	return dict, nil
}
