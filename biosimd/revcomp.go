// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"github.com/grailbio/base/simd"
)

// comp8Table maps 'A'<->'T' and 'C'<->'G'. Every other byte, including 'N'
// and lowercase bases, maps to itself.
var comp8Table [256]byte

func init() {
	for i := range comp8Table {
		comp8Table[i] = byte(i)
	}
	comp8Table['A'] = 'T'
	comp8Table['T'] = 'A'
	comp8Table['C'] = 'G'
	comp8Table['G'] = 'C'
}

// Reverse8 saves the reverse of src[] to dst[].
// It panics if len(dst) != len(src).
func Reverse8(dst, src []byte) {
	if len(dst) != len(src) {
		panic("Reverse8() requires len(dst) == len(src).")
	}
	simd.Reverse8(dst, src)
}

// Complement8Inplace complements ascii8[]. Only uppercase 'A', 'C', 'G' and
// 'T' are changed.
func Complement8Inplace(ascii8 []byte) {
	for i, b := range ascii8 {
		ascii8[i] = comp8Table[b]
	}
}

// Complement8 saves the complement of src[] to dst[]. Only uppercase 'A',
// 'C', 'G' and 'T' are changed.
// It panics if len(dst) != len(src).
func Complement8(dst, src []byte) {
	if len(dst) != len(src) {
		panic("Complement8() requires len(dst) == len(src).")
	}
	for i, b := range src {
		dst[i] = comp8Table[b]
	}
}

// ReverseComp8 saves the reverse-complement of src[] to dst[]: src is
// reversed into dst, then dst is complemented in place with the same table as
// Complement8.
// It panics if len(dst) != len(src).
func ReverseComp8(dst, src []byte) {
	if len(dst) != len(src) {
		panic("ReverseComp8() requires len(dst) == len(src).")
	}
	Reverse8(dst, src)
	Complement8Inplace(dst)
}
