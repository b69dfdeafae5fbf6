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
// File Name:  writer.go
//
// ==========================================================================

package gafutils

import (
	"bufio"
	"fmt"
	"github.com/klauspost/pgzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteGaf writes the header lines verbatim, then one tab-delimited row per
// record. Fields are never quoted or escaped.
func WriteGaf(out io.Writer, doc *GafDocument) error {

	if out == nil || doc == nil {
		return fmt.Errorf("no GAF output or document supplied")
	}

	wrtr := bufio.NewWriter(out)

	for _, line := range doc.Header {
		if _, err := wrtr.WriteString(line); err != nil {
			return err
		}
	}

	for i := range doc.Records {
		wrtr.WriteString(doc.Records[i].String())
		if err := wrtr.WriteByte('\n'); err != nil {
			return err
		}
	}

	return wrtr.Flush()
}

// WriteGafFile writes the document to a temporary file next to the destination,
// then renames it into place, so a failed run never leaves a partial file. The
// output is compressed if zipp is set or the name ends in ".gz".
func WriteGafFile(fileName string, doc *GafDocument, zipp bool) (err error) {

	if strings.HasSuffix(fileName, ".gz") {
		zipp = true
	}

	// write through a symbolic link, replacing the file it points to
	target := fileName
	if resolved, rerr := filepath.EvalSymlinks(fileName); rerr == nil {
		target = resolved
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}

	// existing destination keeps its permissions
	perm := os.FileMode(0644)
	if fi, serr := os.Stat(target); serr == nil {
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("output '%s' is not a regular file", fileName)
		}
		perm = fi.Mode().Perm()
	}

	fl, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create output file '%s': %w", fileName, err)
	}
	tmpName := fl.Name()

	// remove temporary file unless it was renamed into place
	defer func() {
		if err != nil {
			fl.Close()
			os.Remove(tmpName)
		}
	}()

	var out io.Writer

	out = fl

	var zpr *pgzip.Writer

	if zipp {

		// using parallel pgzip for better performance on large files
		zpr, err = pgzip.NewWriterLevel(fl, pgzip.BestSpeed)
		if err != nil {
			return fmt.Errorf("unable to create compressor on '%s': %w", fileName, err)
		}
		if err = zpr.SetConcurrency(blockSize, numBlocks); err != nil {
			return fmt.Errorf("unable to set compressor concurrency: %w", err)
		}

		out = zpr
	}

	if err = WriteGaf(out, doc); err != nil {
		return fmt.Errorf("unable to write output file '%s': %w", fileName, err)
	}

	if zpr != nil {
		if err = zpr.Close(); err != nil {
			return fmt.Errorf("unable to compress output file '%s': %w", fileName, err)
		}
	}

	if err = fl.Chmod(perm); err != nil {
		return fmt.Errorf("unable to set permissions on '%s': %w", fileName, err)
	}
	if err = fl.Sync(); err != nil {
		return fmt.Errorf("unable to flush output file '%s': %w", fileName, err)
	}
	if err = fl.Close(); err != nil {
		return fmt.Errorf("unable to close output file '%s': %w", fileName, err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("unable to replace output file '%s': %w", fileName, err)
	}

	return nil
}
