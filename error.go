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

package pdftext

import (
	"errors"
	"fmt"
	"strings"
)

// Error values returned by this module.  Queries which may legitimately come
// up empty (no character at a point, no match yet, no color set) do not
// return errors; they use sentinel results (-1, "", nil) instead.
var (
	// ErrUnsupported indicates that an operation was invoked on a type or
	// source combination that can never support it.
	ErrUnsupported = errors.New("operation not supported")

	// ErrInvalidArgument indicates an out-of-range index, an empty required
	// string, or otherwise malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPrecondition indicates that an operation was invoked before the
	// data it requires was set, e.g. appearance regeneration for a line
	// annotation without endpoints.
	ErrPrecondition = errors.New("precondition not met")
)

// Unsupportedf returns an error wrapping [ErrUnsupported].
func Unsupportedf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrUnsupported}, a...)...)
}

// Invalidf returns an error wrapping [ErrInvalidArgument].
func Invalidf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, a...)...)
}

// Preconditionf returns an error wrapping [ErrPrecondition].
func Preconditionf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrPrecondition}, a...)...)
}

// MalformedDataError indicates that malformed data was found in the document
// store.
type MalformedDataError struct {
	Err error
	Loc []string
}

func (err *MalformedDataError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if len(err.Loc) > 0 {
		tail = " (at " + strings.Join(err.Loc, "/") + ")"
	}
	return "malformed PDF data" + middle + tail
}

func (err *MalformedDataError) Unwrap() error {
	return err.Err
}

var errInvalidDate = errors.New("invalid date string")
