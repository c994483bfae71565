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
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	pdf "github.com/textlayer/pdftext"
	"github.com/textlayer/pdftext/graphics"
)

var testRect = pdf.Rectangle{LLx: 72, LLy: 600, URx: 172, URy: 650}

type testCase struct {
	name       string
	annotation Annotation
}

var testCases = map[pdf.Name][]testCase{
	"Text": {
		{
			name: "minimal",
			annotation: &Text{
				Common: Common{Rect: testRect},
				Markup: Markup{Opacity: 1},
			},
		},
		{
			name: "full",
			annotation: &Text{
				Common: Common{
					Rect:         testRect,
					Contents:     "remember to fix this",
					Name:         "note-1",
					ModifiedDate: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
					Flags:        FlagPrint | FlagNoZoom,
					Color:        graphics.Color{1, 0.85, 0.3},
					Lang:         language.MustParse("en-US"),
				},
				Markup: Markup{
					Author:       "N. Wirth",
					Opacity:      0.8,
					CreationDate: time.Date(2026, 3, 13, 17, 0, 0, 0, time.UTC),
					Subject:      "review",
				},
				Open:     true,
				IconName: "Comment",
			},
		},
		{
			name: "with state",
			annotation: &Text{
				Common:     Common{Rect: testRect},
				Markup:     Markup{Author: "reviewer", Opacity: 1},
				State:      StateAccepted,
				StateModel: StateModelReview,
			},
		},
	},
	"Link": {
		{
			name: "uri",
			annotation: &Link{
				Common:    Common{Rect: testRect},
				URI:       "https://example.com/",
				Highlight: "O",
			},
		},
		{
			name: "quad points",
			annotation: &Link{
				Common: Common{Rect: testRect},
				URI:    "mailto:someone@example.com",
				QuadPoints: []QuadPoint{
					QuadFromRect(testRect.AsRect()),
				},
			},
		},
	},
	"FreeText": {
		{
			name: "callout",
			annotation: &FreeText{
				Common:            Common{Rect: testRect},
				Markup:            Markup{Opacity: 1},
				DefaultAppearance: "0 g /Helv 12 Tf",
				Quadding:          QuaddingCentered,
				CalloutLine: []vec.Vec2{
					{X: 20, Y: 500}, {X: 72, Y: 620},
				},
				LineEnding: LineEndingOpenArrow,
			},
		},
	},
	"Line": {
		{
			name: "arrow",
			annotation: &Line{
				Common:       Common{Rect: testRect},
				Markup:       Markup{Opacity: 1},
				Start:        vec.Vec2{X: 80, Y: 610},
				End:          vec.Vec2{X: 160, Y: 640},
				HasEndpoints: true,
				LineEndings:  [2]pdf.Name{LineEndingNone, LineEndingClosedArrow},
				FillColor:    graphics.Color{1, 0, 0},
			},
		},
		{
			name: "dimension",
			annotation: &Line{
				Common:       Common{Rect: testRect},
				Markup:       Markup{Opacity: 1},
				Start:        vec.Vec2{X: 80, Y: 610},
				End:          vec.Vec2{X: 160, Y: 610},
				HasEndpoints: true,
				LeaderLength: 10,
				LeaderExtend: 3,
				LeaderOffset: 2,
				Caption:      true,
			},
		},
	},
	"Square": {
		{
			name: "filled",
			annotation: &Square{
				Common:      Common{Rect: testRect, Color: graphics.Color{0, 0, 1}},
				Markup:      Markup{Opacity: 1},
				Margin:      []float64{2, 2, 2, 2},
				FillColor:   graphics.Color{0.9, 0.9, 1},
				BorderStyle: &BorderStyle{Width: 2, Style: "S"},
			},
		},
	},
	"Circle": {
		{
			name: "dashed",
			annotation: &Circle{
				Common: Common{Rect: testRect},
				Markup: Markup{Opacity: 1},
				BorderStyle: &BorderStyle{
					Width: 1, Style: "D", DashArray: []float64{3, 2},
				},
			},
		},
	},
	"Polygon": {
		{
			name: "triangle",
			annotation: &Polygon{
				Common: Common{Rect: testRect},
				Markup: Markup{Opacity: 1},
				Vertices: []vec.Vec2{
					{X: 80, Y: 605}, {X: 160, Y: 605}, {X: 120, Y: 645},
				},
				FillColor: graphics.Color{0.5},
			},
		},
	},
	"PolyLine": {
		{
			name: "open",
			annotation: &PolyLine{
				Common: Common{Rect: testRect},
				Markup: Markup{Opacity: 1},
				Vertices: []vec.Vec2{
					{X: 80, Y: 605}, {X: 120, Y: 645}, {X: 160, Y: 605},
				},
				LineEndings: [2]pdf.Name{LineEndingButt, LineEndingButt},
			},
		},
	},
	"Highlight": {
		{
			name: "one quad",
			annotation: &TextMarkup{
				Common:     Common{Rect: testRect, Color: graphics.Color{1, 1, 0}},
				Markup:     Markup{Opacity: 0.5},
				MarkupType: "Highlight",
				QuadPoints: []QuadPoint{QuadFromRect(testRect.AsRect())},
			},
		},
	},
	"Underline": {
		{
			name: "one quad",
			annotation: &TextMarkup{
				Common:     Common{Rect: testRect},
				Markup:     Markup{Opacity: 1},
				MarkupType: "Underline",
				QuadPoints: []QuadPoint{QuadFromRect(testRect.AsRect())},
			},
		},
	},
	"StrikeOut": {
		{
			name: "one quad",
			annotation: &TextMarkup{
				Common:     Common{Rect: testRect},
				Markup:     Markup{Opacity: 1},
				MarkupType: "StrikeOut",
				QuadPoints: []QuadPoint{QuadFromRect(testRect.AsRect())},
			},
		},
	},
	"Squiggly": {
		{
			name: "one quad",
			annotation: &TextMarkup{
				Common:     Common{Rect: testRect},
				Markup:     Markup{Opacity: 1},
				MarkupType: "Squiggly",
				QuadPoints: []QuadPoint{QuadFromRect(testRect.AsRect())},
			},
		},
	},
	"Stamp": {
		{
			name: "approved",
			annotation: &Stamp{
				Common:   Common{Rect: testRect},
				Markup:   Markup{Opacity: 1},
				IconName: "Approved",
			},
		},
	},
	"Caret": {
		{
			name: "pilcrow",
			annotation: &Caret{
				Common: Common{Rect: testRect},
				Markup: Markup{Opacity: 1},
				Symbol: "P",
			},
		},
	},
	"Ink": {
		{
			name: "two strokes",
			annotation: &Ink{
				Common: Common{Rect: testRect},
				Markup: Markup{Opacity: 1},
				InkList: [][]vec.Vec2{
					{{X: 80, Y: 610}, {X: 100, Y: 630}, {X: 120, Y: 610}},
					{{X: 130, Y: 620}, {X: 150, Y: 620}},
				},
			},
		},
	},
	"Popup": {
		{
			name: "open",
			annotation: &Popup{
				Common: Common{Rect: testRect},
				Parent: pdf.Reference(7),
				Open:   true,
			},
		},
	},
	"FileAttachment": {
		{
			name: "tag icon",
			annotation: &FileAttachment{
				Common:   Common{Rect: testRect},
				Markup:   Markup{Opacity: 1},
				File:     pdf.Reference(12),
				IconName: "Tag",
			},
		},
	},
	"Sound": {
		{
			name: "microphone",
			annotation: &Sound{
				Common:   Common{Rect: testRect},
				Markup:   Markup{Opacity: 1},
				Sound:    pdf.Reference(13),
				IconName: "Mic",
			},
		},
	},
	"Movie": {
		{
			name: "autoplay",
			annotation: &Movie{
				Common: Common{Rect: testRect},
				Title:  "intro",
				Movie:  pdf.Dict{"F": pdf.TextString("movie.mpg")},
				Play:   true,
			},
		},
	},
	"Widget": {
		{
			name: "push button",
			annotation: &Widget{
				Common:    Common{Rect: testRect},
				Highlight: "P",
				Characteristics: &AppearanceCharacteristics{
					Rotation:        90,
					BorderColor:     graphics.Color{0},
					BackgroundColor: graphics.Color{0.9, 0.9, 0.9},
					NormalCaption:   "OK",
					IconFit: &IconFit{
						ScaleWhen:    "B",
						Proportional: true,
						Left:         0.5,
						Bottom:       0.5,
					},
				},
				BorderStyle: &BorderStyle{Width: 1, Style: "B"},
			},
		},
	},
	"Screen": {
		{
			name: "with action",
			annotation: &Screen{
				Common: Common{Rect: testRect},
				Title:  "media",
				Action: pdf.Reference(21),
			},
		},
	},
	"PrinterMark": {
		{
			name: "registration",
			annotation: &PrinterMark{
				Common:    Common{Rect: testRect},
				MarkStyle: "Registration",
			},
		},
	},
	"TrapNet": {
		{
			name: "with fonts",
			annotation: &TrapNet{
				Common:       Common{Rect: testRect},
				LastModified: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				Fonts:        []pdf.Reference{3, 4},
			},
		},
	},
	"Watermark": {
		{
			name: "shifted",
			annotation: &Watermark{
				Common:  Common{Rect: testRect},
				Matrix:  matrix.Identity,
				HOffset: 10,
				VOffset: -5,
			},
		},
	},
	"3D": {
		{
			name: "interactive",
			annotation: &Annot3D{
				Common:      Common{Rect: testRect},
				Artwork:     pdf.Reference(31),
				Interactive: true,
				ViewBox:     &pdf.Rectangle{LLx: 0, LLy: 0, URx: 100, URy: 50},
			},
		},
	},
	"Redact": {
		{
			name: "overlay text",
			annotation: &Redact{
				Common:            Common{Rect: testRect},
				Markup:            Markup{Opacity: 1},
				QuadPoints:        []QuadPoint{QuadFromRect(testRect.AsRect())},
				FillColor:         graphics.Color{0, 0, 0},
				OverlayText:       "REDACTED",
				Repeat:            true,
				DefaultAppearance: "1 1 1 rg /Helv 10 Tf",
				Quadding:          QuaddingCentered,
			},
		},
	},
	"RichMedia": {
		{
			name: "with settings",
			annotation: &RichMedia{
				Common:   Common{Rect: testRect},
				Content:  pdf.Reference(41),
				Settings: pdf.Reference(42),
			},
		},
	},
	"PagingSeal": {
		{
			name: "second of three",
			annotation: &PagingSeal{
				Common: Common{Rect: testRect},
				Seal:   pdf.Reference(51),
				Part:   1,
				Total:  3,
			},
		},
	},
	"FooBar": {
		{
			name: "unknown subtype",
			annotation: &Unknown{
				Common:  Common{Rect: testRect, Contents: "mystery"},
				Subtype: "FooBar",
				Data:    pdf.Dict{"X": pdf.Integer(5)},
			},
		},
	},
}

// cmpOpts makes cmp.Diff work on annotation values.
var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(Common{}),
	cmpopts.EquateComparable(language.Tag{}),
}

func TestRoundTrip(t *testing.T) {
	store := pdf.NewStore()
	for annotationType, cases := range testCases {
		for _, tc := range cases {
			t.Run(fmt.Sprintf("%s-%s", annotationType, tc.name), func(t *testing.T) {
				dict, err := tc.annotation.Encode()
				if err != nil {
					t.Fatal(err)
				}

				if _, hasBorder := dict["Border"]; hasBorder {
					if _, hasBS := dict["BS"]; hasBS {
						t.Errorf("%T annotation has both Border and BS entries", tc.annotation)
					}
				}

				got, err := Decode(store, dict)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(tc.annotation, got, cmpOpts...); diff != "" {
					t.Errorf("round trip failed (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestAnnotationTypes(t *testing.T) {
	for annotationType, cases := range testCases {
		for _, tc := range cases {
			if tc.annotation.AnnotationType() != annotationType {
				t.Errorf("expected annotation type %q, got %q",
					annotationType, tc.annotation.AnnotationType())
			}
		}
	}
}

func TestRoundTripIndirect(t *testing.T) {
	// annotations decode from an indirect reference as well
	store := pdf.NewStore()
	a := &Text{
		Common: Common{Rect: testRect, Contents: "indirect"},
		Markup: Markup{Opacity: 1},
	}
	dict, err := a.Encode()
	if err != nil {
		t.Fatal(err)
	}
	ref := store.Alloc()
	if err := store.Put(ref, dict); err != nil {
		t.Fatal(err)
	}

	got, err := Decode(store, ref)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Annotation(a), got, cmpOpts...); diff != "" {
		t.Errorf("round trip failed (-want +got):\n%s", diff)
	}
}

func TestZeroOpacityIsDefault(t *testing.T) {
	// a literally constructed Markup has Opacity 0, which must behave
	// like the fully opaque default
	sq := &Square{Common: Common{Rect: testRect}}
	if got := sq.PaintOpacity(); got != 1 {
		t.Errorf("PaintOpacity = %g", got)
	}

	dict, err := sq.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dict["CA"]; ok {
		t.Errorf("CA entry written for unset opacity: %v", dict["CA"])
	}

	store := pdf.NewStore()
	got, err := Decode(store, dict)
	if err != nil {
		t.Fatal(err)
	}
	if m := MarkupOf(got); m.Opacity != 1 {
		t.Errorf("decoded Opacity = %g", m.Opacity)
	}
}

func TestDecodeMissingDict(t *testing.T) {
	store := pdf.NewStore()
	_, err := Decode(store, nil)
	if err == nil {
		t.Error("expected error for missing annotation dictionary")
	}
}

func TestEncodeWithoutRect(t *testing.T) {
	a := &Text{Markup: Markup{Opacity: 1}}
	if _, err := a.Encode(); err == nil {
		t.Error("expected error for annotation without rectangle")
	}
}
