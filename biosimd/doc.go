// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides byte-array kernels for ASCII nucleotide
// sequences: reversal, complementation and reverse-complementation.
// Reversal is delegated to github.com/grailbio/base/simd.
package biosimd
