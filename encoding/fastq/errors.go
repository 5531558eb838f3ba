// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fastq

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the ways loading or decoding a FASTQ record can fail.
type ErrorKind int

const (
	// Unknown is the kind of errors that did not originate in this package.
	Unknown ErrorKind = iota
	// InvalidExtension is returned when the path does not end in ".fastq".
	InvalidExtension
	// OpenFailure is returned when the file could not be opened.
	OpenFailure
	// ReadFailure is returned when the file was opened but its contents could
	// not be read in full.
	ReadFailure
	// MalformedRecord is returned when the record has fewer than four lines, or
	// when its sequence and quality lines differ in length.
	MalformedRecord
	// MalformedQuality is returned when a quality byte is below the Phred+33
	// floor.
	MalformedQuality
)

var kindNames = [...]string{
	Unknown:          "unknown error",
	InvalidExtension: "file does not have extension " + Extension,
	OpenFailure:      "unable to open FASTQ file",
	ReadFailure:      "unable to read FASTQ file",
	MalformedRecord:  "malformed FASTQ record",
	MalformedQuality: "malformed FASTQ quality",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is the error type returned by this package. Path is empty for errors
// raised while decoding an in-memory buffer.
type Error struct {
	Kind ErrorKind
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func newError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Error implements error.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err. Errors wrapped with github.com/pkg/errors are
// unwrapped first. KindOf returns Unknown for errors not produced by this
// package.
func KindOf(err error) ErrorKind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err is a FASTQ error of the given kind.
func Is(kind ErrorKind, err error) bool {
	return err != nil && KindOf(err) == kind
}
