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

import "strings"

// Flags is the annotation flags bitmask.
type Flags uint16

const (
	// FlagInvisible hides the annotation if its subtype is unknown to
	// the viewer.
	FlagInvisible Flags = 1 << iota

	// FlagHidden hides the annotation unconditionally.
	FlagHidden

	// FlagPrint includes the annotation when the page is printed.
	FlagPrint

	// FlagNoZoom keeps the annotation's on-screen size fixed during
	// zooming.
	FlagNoZoom

	// FlagNoRotate keeps the annotation's orientation fixed when the
	// page is rotated.
	FlagNoRotate

	// FlagNoView hides the annotation on screen but not when printing.
	FlagNoView

	// FlagReadOnly prevents user interaction with the annotation.
	FlagReadOnly

	// FlagLocked prevents the annotation from being deleted or its
	// properties from being modified by the user.
	FlagLocked

	// FlagToggleNoView inverts the NoView flag for certain events.
	FlagToggleNoView

	// FlagLockedContents prevents the contents of the annotation from
	// being modified by the user.
	FlagLockedContents
)

var flagNames = []string{
	"Invisible",
	"Hidden",
	"Print",
	"NoZoom",
	"NoRotate",
	"NoView",
	"ReadOnly",
	"Locked",
	"ToggleNoView",
	"LockedContents",
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
			f &^= 1 << i
		}
	}
	if f != 0 {
		parts = append(parts, "?")
	}
	return strings.Join(parts, "|")
}
