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

// Border describes an annotation border using the legacy border array.
type Border struct {
	// HCornerRadius and VCornerRadius are the horizontal and vertical
	// corner radii of the border.
	HCornerRadius, VCornerRadius float64

	// Width is the border width.  A width of 0 disables the border.
	Width float64

	// DashArray (optional) defines a dash pattern for the border.
	DashArray []float64
}

// Encode converts the border to a PDF border array.
func (b *Border) Encode() pdf.Array {
	arr := pdf.Array{
		pdf.Number(b.HCornerRadius),
		pdf.Number(b.VCornerRadius),
		pdf.Number(b.Width),
	}
	if len(b.DashArray) > 0 {
		dash := make(pdf.Array, len(b.DashArray))
		for i, x := range b.DashArray {
			dash[i] = pdf.Number(x)
		}
		arr = append(arr, dash)
	}
	return arr
}

// decodeBorder reads a legacy border array.
func decodeBorder(r pdf.Getter, obj pdf.Object) (*Border, error) {
	arr, err := pdf.GetArray(r, obj)
	if err != nil || len(arr) < 3 {
		return nil, err
	}
	b := &Border{}
	if x, err := pdf.GetNumber(r, arr[0]); err == nil {
		b.HCornerRadius = float64(x)
	}
	if x, err := pdf.GetNumber(r, arr[1]); err == nil {
		b.VCornerRadius = float64(x)
	}
	if x, err := pdf.GetNumber(r, arr[2]); err == nil {
		b.Width = float64(x)
	}
	if len(arr) > 3 {
		if dash, err := pdf.GetFloatArray(r, arr[3]); err == nil {
			b.DashArray = dash
		}
	}
	return b, nil
}

// BorderStyle is a border style dictionary, specifying the line width
// and dash pattern used in drawing the annotation border.
type BorderStyle struct {
	// Width is the border width in points.
	Width float64

	// Style is the border style:
	//   - "S": solid
	//   - "D": dashed, using DashArray
	//   - "B": beveled
	//   - "I": inset
	//   - "U": underline
	Style pdf.Name

	// DashArray (optional) defines the dash pattern for style "D".
	DashArray []float64
}

// Encode converts the border style to a PDF dictionary.
func (bs *BorderStyle) Encode() (pdf.Dict, error) {
	if bs.Style == "D" && len(bs.DashArray) == 0 {
		return nil, pdf.Invalidf("dashed border style without dash array")
	}
	if bs.Style != "D" && len(bs.DashArray) > 0 {
		return nil, pdf.Invalidf("dash array for border style %q", bs.Style)
	}
	dict := pdf.Dict{"Type": pdf.Name("Border")}
	if bs.Width != 1 {
		dict["W"] = pdf.Number(bs.Width)
	}
	if bs.Style != "" && bs.Style != "S" {
		dict["S"] = bs.Style
	}
	if len(bs.DashArray) > 0 {
		dash := make(pdf.Array, len(bs.DashArray))
		for i, x := range bs.DashArray {
			dash[i] = pdf.Number(x)
		}
		dict["D"] = dash
	}
	return dict, nil
}

// decodeBorderStyle reads a border style dictionary.
func decodeBorderStyle(r pdf.Getter, obj pdf.Object) (*BorderStyle, error) {
	dict, err := pdf.GetDictTyped(r, obj, "Border")
	if err != nil || dict == nil {
		return nil, err
	}
	bs := &BorderStyle{Width: 1, Style: "S"}
	if w, err := pdf.GetNumber(r, dict["W"]); err == nil {
		if _, present := dict["W"]; present {
			bs.Width = float64(w)
		}
	}
	if s, err := pdf.GetName(r, dict["S"]); err == nil && s != "" {
		bs.Style = s
	}
	if dash, err := pdf.GetFloatArray(r, dict["D"]); err == nil && len(dash) > 0 {
		bs.DashArray = dash
	}
	return bs, nil
}

// BorderEffect is a border effect dictionary, used together with a
// border style dictionary.
type BorderEffect struct {
	// Style is the border effect:
	//   - "S": no effect
	//   - "C": "cloudy" border
	Style pdf.Name

	// Intensity is the intensity of the effect, in the range 0 to 2.
	// Values outside the range are clamped.
	Intensity float64
}

// Encode converts the border effect to a PDF dictionary.
func (be *BorderEffect) Encode() pdf.Dict {
	dict := pdf.Dict{}
	if be.Style != "" && be.Style != "S" {
		dict["S"] = be.Style
	}
	intensity := be.Intensity
	if intensity < 0 {
		intensity = 0
	} else if intensity > 2 {
		intensity = 2
	}
	if intensity != 0 {
		dict["I"] = pdf.Number(intensity)
	}
	return dict
}

// decodeBorderEffect reads a border effect dictionary.
func decodeBorderEffect(r pdf.Getter, obj pdf.Object) (*BorderEffect, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil || dict == nil {
		return nil, err
	}
	be := &BorderEffect{Style: "S"}
	if s, err := pdf.GetName(r, dict["S"]); err == nil && s != "" {
		be.Style = s
	}
	if x, err := pdf.GetNumber(r, dict["I"]); err == nil {
		be.Intensity = float64(x)
		if be.Intensity < 0 {
			be.Intensity = 0
		} else if be.Intensity > 2 {
			be.Intensity = 2
		}
	}
	return be, nil
}
