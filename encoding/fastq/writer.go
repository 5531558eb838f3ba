// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fastq

import "io"

var (
	newline   = []byte{'\n'}
	separator = []byte{'+'}
)

// Writer writes FASTQ records.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a new FASTQ writer that writes records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes f as a four-line record. The quality line is re-encoded from
// f.Scores; f.Qual is ignored. Once a write fails, every later call returns
// the same error.
func (w *Writer) Write(f Fields) error {
	w.writeln([]byte(f.ID))
	w.writeln(f.Seq)
	w.writeln(separator)
	w.writeln(EncodeQuality(f.Scores))
	return w.err
}

func (w *Writer) writeln(line []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
