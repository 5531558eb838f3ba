// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package seqrec holds a decoded sequencing read and the strand transforms
// that operate on its bases.
package seqrec

import (
	"github.com/grailbio/genomic/biosimd"
	"github.com/grailbio/genomic/encoding/fastq"
)

// Record is an immutable read: an identifier, its nucleotide sequence and
// one quality score per base. Accessors and transforms return fresh copies,
// so callers can never modify a Record.
type Record struct {
	id     string
	seq    []byte
	scores []byte
}

// New creates a Record, taking ownership of seq and scores. The caller must
// not modify them afterwards.
func New(id string, seq, scores []byte) *Record {
	return &Record{id: id, seq: seq, scores: scores}
}

// FromFields creates a Record from a decoded FASTQ record. The raw quality
// line is dropped; only the decoded scores are kept.
func FromFields(f fastq.Fields) *Record {
	return New(f.ID, f.Seq, f.Scores)
}

// ID returns the sequence identifier, including the leading '@' if the
// source file had one.
func (r *Record) ID() string { return r.id }

// Len returns the number of bases.
func (r *Record) Len() int { return len(r.seq) }

// Sequence returns a copy of the nucleotide sequence.
func (r *Record) Sequence() []byte { return clone(r.seq) }

// Quality returns a copy of the quality scores.
func (r *Record) Quality() []byte { return clone(r.scores) }

// Reverse returns the sequence in reverse order.
func (r *Record) Reverse() []byte {
	dst := make([]byte, len(r.seq))
	biosimd.Reverse8(dst, r.seq)
	return dst
}

// Complement returns the base-wise complement of the sequence. Only
// uppercase A, C, G and T are substituted; N, lowercase (soft-masked) bases
// and any other bytes are passed through unchanged.
func (r *Record) Complement() []byte {
	dst := make([]byte, len(r.seq))
	biosimd.Complement8(dst, r.seq)
	return dst
}

// ReverseComplement returns the complement of the reversed sequence, i.e. the
// opposite strand read 5' to 3'. It uses the same table as Complement.
func (r *Record) ReverseComplement() []byte {
	dst := make([]byte, len(r.seq))
	biosimd.ReverseComp8(dst, r.seq)
	return dst
}

// Flip returns the read as it would appear on the opposite strand: the
// reverse-complemented sequence with the quality scores reversed to match.
func (r *Record) Flip() *Record {
	scores := make([]byte, len(r.scores))
	biosimd.Reverse8(scores, r.scores)
	return New(r.id, r.ReverseComplement(), scores)
}

// Fields converts r back into FASTQ fields, suitable for fastq.Writer.
func (r *Record) Fields() fastq.Fields {
	return fastq.Fields{
		ID:     r.id,
		Seq:    r.Sequence(),
		Qual:   fastq.EncodeQuality(r.scores),
		Scores: r.Quality(),
	}
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
