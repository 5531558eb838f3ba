// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fastq

import "github.com/grailbio/base/log"

// LogDiagnostic is a DiagnosticFunc that logs the decoded fields at debug
// level.
func LogDiagnostic(path string, f Fields) {
	log.Debug.Printf("%s: sequence id: %s", path, f.ID)
	log.Debug.Printf("%s: nucleotide sequence: %s", path, f.Seq)
	log.Debug.Printf("%s: quality scores: %v", path, f.Scores)
}
