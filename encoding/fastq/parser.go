// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fastq

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/zstd"
)

// Extension is the path suffix NewParser accepts.
const Extension = ".fastq"

// linesPerRecord is the number of lines in a FASTQ record: ID, sequence,
// separator and quality.
const linesPerRecord = 4

// zstdMagic is the frame header of a zstd stream. github.com/grailbio/base/compress
// only recognizes gzip and bzip2.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Fields holds one decoded FASTQ record. Every slice is owned by the caller.
type Fields struct {
	// ID is the first line of the record, including the leading '@'.
	ID string
	// Seq is the nucleotide sequence, exactly as it appears in the file.
	Seq []byte
	// Qual is the raw Phred+33 quality line.
	Qual []byte
	// Scores holds the decoded quality scores, one per base.
	Scores []byte
}

// OpenFunc opens path for reading. The returned reader is closed by the
// caller once it has been read in full.
type OpenFunc func(ctx context.Context, path string) (io.ReadCloser, error)

// DiagnosticFunc receives each record decoded by Parser.Parse.
type DiagnosticFunc func(path string, f Fields)

// Opts configures a Parser. The zero value is ready to use.
type Opts struct {
	// Open overrides how files are opened. It defaults to OpenFile.
	Open OpenFunc
	// Diagnostic, if set, is called with every record Parse decodes.
	Diagnostic DiagnosticFunc
}

// Parser holds the full contents of a single-record FASTQ file.
type Parser struct {
	path string
	data []byte
	opts Opts
}

type fileReader struct {
	io.Reader
	ctx context.Context
	f   file.File
}

func (r *fileReader) Close() error { return r.f.Close(r.ctx) }

// OpenFile opens path using github.com/grailbio/base/file, so any scheme
// registered there (local paths, s3://, ...) can be read.
func OpenFile(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &fileReader{Reader: f.Reader(ctx), ctx: ctx, f: f}, nil
}

// NewParser validates the path suffix, then reads the whole file into memory.
// Compressed contents (gzip, bzip2, zstd) are uncompressed transparently.
//
// A path without the ".fastq" suffix fails with InvalidExtension before the
// file system is touched. Failure to open the file yields OpenFailure, and
// failure to read or close it yields ReadFailure.
func NewParser(ctx context.Context, path string, opts Opts) (*Parser, error) {
	if !strings.HasSuffix(path, Extension) {
		return nil, newError(InvalidExtension, path, nil)
	}
	open := opts.Open
	if open == nil {
		open = OpenFile
	}
	in, err := open(ctx, path)
	if err != nil {
		return nil, newError(OpenFailure, path, errors.E(err, "open", path))
	}
	data, err := readAll(in)
	if err != nil {
		return nil, newError(ReadFailure, path, errors.E(err, "read", path))
	}
	return &Parser{path: path, data: data, opts: opts}, nil
}

func readAll(in io.ReadCloser) (data []byte, err error) {
	defer func() {
		if e := in.Close(); e != nil && err == nil {
			err = e
		}
	}()
	var r io.ReadCloser
	br := bufio.NewReader(in)
	if magic, _ := br.Peek(len(zstdMagic)); bytes.Equal(magic, zstdMagic) {
		dec, e := zstd.NewReader(br)
		if e != nil {
			return nil, e
		}
		r = dec.IOReadCloser()
	} else {
		r, _ = compress.NewReader(br)
	}
	defer func() {
		if e := r.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return ioutil.ReadAll(r)
}

// Path returns the path the parser was created with.
func (p *Parser) Path() string { return p.path }

// Len returns the size of the uncompressed file contents in bytes.
func (p *Parser) Len() int { return len(p.data) }

// Parse decodes the record held by the parser. Errors carry the parser's path.
func (p *Parser) Parse() (Fields, error) {
	f, err := ParseRecord(p.data)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = p.path
		}
		return Fields{}, err
	}
	if p.opts.Diagnostic != nil {
		p.opts.Diagnostic(p.path, f)
	}
	return f, nil
}

// ParseRecord decodes a single FASTQ record from data. Lines are separated by
// '\n'; a trailing '\r' on a line is dropped. Only the first four lines are
// examined. The ID and separator markers ('@', '+') are not enforced. Each
// byte of the ID that is not part of valid UTF-8 becomes one U+FFFD.
//
// ParseRecord fails with MalformedRecord if data holds fewer than four lines or
// if the sequence and quality lines differ in length, and with
// MalformedQuality if the quality line holds a byte below '!'.
func ParseRecord(data []byte) (Fields, error) {
	lines := bytes.SplitN(data, []byte{'\n'}, linesPerRecord+1)
	if len(lines) < linesPerRecord {
		return Fields{}, newError(MalformedRecord, "",
			fmt.Errorf("too few lines in FASTQ record: want %d, got %d", linesPerRecord, len(lines)))
	}
	for i := range lines[:linesPerRecord] {
		lines[i] = bytes.TrimSuffix(lines[i], []byte{'\r'})
	}
	id, seq, qual := lines[0], lines[1], lines[3]
	if len(seq) != len(qual) {
		return Fields{}, newError(MalformedRecord, "",
			fmt.Errorf("sequence and quality lengths differ: %d vs %d", len(seq), len(qual)))
	}
	scores, err := DecodeQuality(qual)
	if err != nil {
		return Fields{}, err
	}
	return Fields{
		ID:     string(bytes.Runes(id)),
		Seq:    append([]byte(nil), seq...),
		Qual:   append([]byte(nil), qual...),
		Scores: scores,
	}, nil
}
