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

package graphics

// Color represents a device color.  The number of components determines the
// color space: one component is DeviceGray, three components are DeviceRGB,
// and four components are DeviceCMYK.
//
// A nil Color means "no color set".  The empty (but non-nil) [Transparent]
// value means that a color entry is present but denotes full transparency.
type Color []float64

// Transparent is the color given by an empty PDF color array.
var Transparent = Color{}

// Black is a convenience value for DeviceGray black.
var Black = DeviceGray(0)

// DeviceGray returns a gray-scale color.
func DeviceGray(g float64) Color {
	return Color{clamp01(g)}
}

// DeviceRGB returns an RGB color.
func DeviceRGB(r, g, b float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b)}
}

// DeviceCMYK returns a CMYK color.
func DeviceCMYK(c, m, y, k float64) Color {
	return Color{clamp01(c), clamp01(m), clamp01(y), clamp01(k)}
}

// IsSet reports whether a color value is present (possibly transparent).
func (c Color) IsSet() bool {
	return c != nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
