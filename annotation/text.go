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

// StateModel selects one of the two annotation state models.
type StateModel pdf.Name

const (
	// StateModelMarked tracks whether an annotation is marked.
	StateModelMarked StateModel = "Marked"

	// StateModelReview tracks the review status of an annotation.
	StateModelReview StateModel = "Review"
)

// State is an annotation state within one of the state models.
type State pdf.Name

// The valid states.  Marked and Unmarked belong to the marked model,
// the others to the review model.
const (
	StateMarked    State = "Marked"
	StateUnmarked  State = "Unmarked"
	StateAccepted  State = "Accepted"
	StateRejected  State = "Rejected"
	StateCancelled State = "Cancelled"
	StateCompleted State = "Completed"
	StateNone      State = "None"
)

// validState reports whether state belongs to model.
func validState(model StateModel, state State) bool {
	switch model {
	case StateModelMarked:
		return state == StateMarked || state == StateUnmarked
	case StateModelReview:
		switch state {
		case StateAccepted, StateRejected, StateCancelled, StateCompleted, StateNone:
			return true
		}
	}
	return false
}

// defaultState returns the default state of a model.
func defaultState(model StateModel) State {
	if model == StateModelMarked {
		return StateUnmarked
	}
	return StateNone
}

// Text represents a "sticky note" annotation.  When closed, the
// annotation is displayed as an icon; when open, it displays a popup
// window containing the text of the note.
type Text struct {
	Common
	Markup

	// Open specifies whether the annotation is initially displayed
	// open.
	Open bool

	// IconName (optional) is the name of the icon used to display the
	// closed annotation.  Standard names are Comment, Key, Note, Help,
	// NewParagraph, Paragraph and Insert.  The default is Note.
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	IconName pdf.Name

	// State (optional) is the state of the annotation identified by
	// InReplyTo, within the model given by StateModel.
	State State

	// StateModel (optional) is the state model of the State field.
	StateModel StateModel
}

var _ Annotation = (*Text)(nil)

// AnnotationType returns "Text".
// This implements the [Annotation] interface.
func (t *Text) AnnotationType() pdf.Name {
	return "Text"
}

// SetIconName changes the icon of the annotation.  The stored appearance
// streams are left untouched until the appearance is regenerated.
func (t *Text) SetIconName(name pdf.Name) {
	t.IconName = name
	t.markStale()
}

func decodeText(r pdf.Getter, dict pdf.Dict) (*Text, error) {
	text := &Text{}
	if err := decodeCommon(r, &text.Common, dict); err != nil {
		return nil, err
	}
	if err := decodeMarkup(r, &text.Markup, dict); err != nil {
		return nil, err
	}

	if open, err := pdf.Optional(pdf.GetBool(r, dict["Open"])); err != nil {
		return nil, err
	} else {
		text.Open = bool(open)
	}

	if icon, err := pdf.Optional(pdf.GetName(r, dict["Name"])); err != nil {
		return nil, err
	} else {
		text.IconName = icon
	}

	if model, err := pdf.Optional(pdf.GetTextString(r, dict["StateModel"])); err != nil {
		return nil, err
	} else if model != "" {
		text.StateModel = StateModel(model)
	}

	if state, err := pdf.Optional(pdf.GetTextString(r, dict["State"])); err != nil {
		return nil, err
	} else if state != "" {
		text.State = State(state)
	} else if text.StateModel != "" {
		text.State = defaultState(text.StateModel)
	}

	return text, nil
}

func (t *Text) Encode() (pdf.Dict, error) {
	dict := pdf.Dict{
		"Subtype": pdf.Name("Text"),
	}
	if err := t.Common.fillDict(dict, isMarkup(t)); err != nil {
		return nil, err
	}
	if err := t.Markup.fillDict(dict); err != nil {
		return nil, err
	}

	if t.Open {
		dict["Open"] = pdf.Bool(true)
	}
	if t.IconName != "" && t.IconName != "Note" {
		dict["Name"] = t.IconName
	}
	if t.StateModel != "" {
		if t.State != "" && !validState(t.StateModel, t.State) {
			return nil, pdf.Invalidf("state %q not valid in model %q", t.State, t.StateModel)
		}
		dict["StateModel"] = pdf.TextString(string(t.StateModel))
		state := t.State
		if state == "" {
			state = defaultState(t.StateModel)
		}
		dict["State"] = pdf.TextString(string(state))
	} else if t.State != "" {
		return nil, pdf.Invalidf("state without state model")
	}

	return dict, nil
}
