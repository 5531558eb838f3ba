// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fastq reads and writes single FASTQ records. A record consists of
// four lines:
//
//  @NB500956:89:HW2FHBGX2:1:11101:25648:1069 1:N:0:ATCACG
//  ATACAGGCCTGANCCA
//  +
//  AAAAAEEEEEEE#EEA
//
// The first line identifies the read, the second holds the bases, the third
// is a separator, and the fourth holds one Phred+33 encoded quality byte per
// base.
package fastq
