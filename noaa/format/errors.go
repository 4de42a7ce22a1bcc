package format

import (
	"errors"
	"fmt"
)

// Returned (wrapped) by the decoders when a field cannot be parsed as its declared type
var ErrMalformedField = errors.New("malformed field")

// MalformedFieldError is scoped to a single line. File and Line are filled in by
// the caller reading the file, the decoders only know about the line content.
type MalformedFieldError struct {
	File      string
	Line      int
	StationID string
	Field     string
	Raw       string
	Err       error
}

func (e *MalformedFieldError) Error() string {
	location := ""
	if e.File != "" {
		location = fmt.Sprintf("%s:%d: ", e.File, e.Line)
	}
	return fmt.Sprintf("%s[%s] could not parse %s from %q: %v", location, e.StationID, e.Field, e.Raw, e.Err)
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}

// Input file could not be opened or read. Fatal for the whole run.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("could not read file '%s': %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// Station mode was pointed to a directory instead of a single file
type InvalidModeInputError struct {
	Path string
}

func (e *InvalidModeInputError) Error() string {
	return fmt.Sprintf("'%s' is a directory: when decoding stations a file must be specified", e.Path)
}
