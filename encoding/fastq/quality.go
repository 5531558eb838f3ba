// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fastq

import "fmt"

const (
	// PhredOffset is the Phred+33 (Sanger) offset between a quality score and
	// the ASCII byte that encodes it.
	PhredOffset = 33
	// MaxPhred is the largest score that encodes to a printable byte ('~').
	MaxPhred = '~' - PhredOffset
)

// DecodeQuality converts a Phred+33 quality line into numeric scores. The
// result is newly allocated and has the same length as line. A byte below '!'
// cannot encode a score and yields a MalformedQuality error.
func DecodeQuality(line []byte) ([]byte, error) {
	scores := make([]byte, len(line))
	for i, b := range line {
		if b < PhredOffset {
			return nil, newError(MalformedQuality, "",
				fmt.Errorf("byte %#02x at offset %d is below the Phred+33 floor", b, i))
		}
		scores[i] = b - PhredOffset
	}
	return scores, nil
}

// EncodeQuality is the inverse of DecodeQuality. Scores above MaxPhred are
// clamped so that the output stays printable.
func EncodeQuality(scores []byte) []byte {
	line := make([]byte, len(scores))
	for i, s := range scores {
		if s > MaxPhred {
			s = MaxPhred
		}
		line[i] = s + PhredOffset
	}
	return line
}
