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
// File Name:  reader.go
//
// ==========================================================================

package gafutils

import (
	"bufio"
	"fmt"
	"github.com/klauspost/pgzip"
	"github.com/pbnjay/memory"
	"io"
	"os"
	"strings"
)

// ReadGaf splits GAF text into the leading run of '!' header lines and the annotation rows that follow
func ReadGaf(inp io.Reader) (*GafDocument, error) {

	if inp == nil {
		return nil, fmt.Errorf("no GAF input supplied")
	}

	doc := &GafDocument{}

	rdr := bufio.NewReader(inp)

	inHeader := true
	lineNum := 0

	for {

		line, err := rdr.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("unable to read line %d: %w", lineNum+1, err)
		}
		if line == "" && err == io.EOF {
			break
		}

		lineNum++

		if inHeader {
			if line[0] == headerSentinel {
				// keep terminator so header is written back verbatim
				doc.Header = append(doc.Header, line)
				if err == io.EOF {
					break
				}
				continue
			}
			// first data row, parse it below without consuming another line
			inHeader = false
		}

		text := strings.TrimSuffix(line, "\n")
		text = strings.TrimSuffix(text, "\r")

		// blank rows carry no annotation
		if text != "" {
			cols := strings.Split(text, "\t")
			if len(cols) != NumFields {
				return nil, &ParseError{Line: lineNum, Count: len(cols), Text: text}
			}

			rec := Record{Line: lineNum}
			copy(rec.Fields[:], cols)
			doc.Records = append(doc.Records, rec)
		}

		if err == io.EOF {
			break
		}
	}

	return doc, nil
}

// ReadGafFile reads a GAF file, using the parallel decompressor if the name ends in ".gz"
func ReadGafFile(fileName string) (*GafDocument, error) {

	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to open input file '%s': %w", fileName, err)
	}

	// close input file when all records have been read
	defer f.Close()

	// whole document is held in memory until written
	fi, err := f.Stat()
	if err == nil {
		total := memory.TotalMemory()
		if total > 0 && uint64(fi.Size()) > total/2 {
			DisplayWarning("Input file '%s' is %d MB, more than half of physical memory", fileName, fi.Size()/(1024*1024))
		}
	}

	var in io.Reader

	in = f

	// if suffix is ".gz", use decompressor
	if strings.HasSuffix(fileName, ".gz") {

		brd := bufio.NewReader(f)

		// using parallel pgzip for better performance on large files
		zpr, err := pgzip.NewReaderN(brd, blockSize, numBlocks)
		if err != nil {
			return nil, fmt.Errorf("unable to create decompressor on '%s': %w", fileName, err)
		}

		// close decompressor when all records have been read
		defer zpr.Close()

		in = zpr
	}

	doc, err := ReadGaf(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	return doc, nil
}
