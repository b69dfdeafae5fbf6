// ===========================================================================
//
//                            PUBLIC DOMAIN NOTICE
//            National Center for Biotechnology Information (NCBI)
//
//  This software/database is a "United States Government Work" under the
//  terms of the United States Copyright Act. It was written as part of
//  the author's official duties as a United States Government employee and
//  thus cannot be copyrighted. This software/database is freely available
//  to the public for use. The National Library of Medicine and the U.S.
//  Government do not place any restriction on its use or reproduction.
//  We would, however, appreciate having the NCBI and the author cited in
//  any work or product based on this material.
//
//  Although all reasonable efforts have been taken to ensure the accuracy
//  and reliability of the software and data, the NLM and the U.S.
//  Government do not and cannot warrant the performance or results that
//  may be obtained by using this software or data. The NLM and the U.S.
//  Government disclaim all warranties, express or implied, including
//  warranties of performance, merchantability or fitness for any particular
//  purpose.
//
// ===========================================================================
//
// File Name:  process.go
//
// ==========================================================================

package gafutils

import (
	"fmt"
	"os"
)

// ProcessOptions controls ProcessGafFile
type ProcessOptions struct {
	// force compressed output even without a ".gz" suffix
	Compress bool
}

// Summary describes one completed run
type Summary struct {
	Input     string
	Output    string
	Headers   int
	Records   int
	Relocated int
	Bytes     int
}

// ProcessGafFile reads a PHI-base GAF file, relocates host and symbiont
// species into the taxon column, and writes the result. An empty output
// name overwrites the input file. Nothing is written unless every record
// could be processed.
func ProcessGafFile(inPath, outPath string, opts ProcessOptions) (Summary, []Relocation, error) {

	if outPath == "" {
		outPath = inPath
	}

	sum := Summary{Input: inPath, Output: outPath}

	doc, err := ReadGafFile(inPath)
	if err != nil {
		return sum, nil, err
	}

	sum.Headers = len(doc.Header)
	sum.Records = len(doc.Records)

	moved, err := RelocateHostTaxa(doc)
	if err != nil {
		return sum, nil, fmt.Errorf("%s: %w", inPath, err)
	}

	sum.Relocated = len(moved)

	if err := WriteGafFile(outPath, doc, opts.Compress); err != nil {
		return sum, nil, err
	}

	if fi, err := os.Stat(outPath); err == nil {
		sum.Bytes = int(fi.Size())
	}

	return sum, moved, nil
}
