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
// File Name:  utils.go
//
// ==========================================================================

package gafutils

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"os"
	"runtime"
	"time"
)

// PhigafVersion is the current release number
const PhigafVersion = "1.0.1"

// PERFORMANCE PARAMETERS

// performance tuning variables, only consumed by the parallel gzip layer
var (
	nCPU      int
	numProcs  int
	blockSize int
	numBlocks int
)

// program execution timer
var (
	startTime time.Time
)

// diagnostic output, replaced by tests and by the command
var (
	errOut io.Writer = os.Stderr
)

// SetTunings sets performance parameters for compressed input and output
func SetTunings(nmProcs, blkSize int) {

	nCPU = runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}

	if nmProcs < 1 {
		// compression scales with physical cores, not hyperthreads
		nmProcs = nCPU
		if cpuid.CPU.ThreadsPerCore > 1 {
			cores := nCPU / cpuid.CPU.ThreadsPerCore
			if cores > 0 {
				nmProcs = cores
			}
		}
	}

	if nmProcs > nCPU {
		nmProcs = nCPU
	}

	numProcs = nmProcs

	// pgzip block size in bytes, default 1 MB
	if blkSize < 1<<16 || blkSize > 1<<24 {
		blkSize = 1 << 20
	}

	blockSize = blkSize

	// two blocks in flight per processor
	numBlocks = numProcs * 2
}

// GetTunings returns performance parameter values
func GetTunings() (nmProcs, blkSize, nmBlocks int) {

	return numProcs, blockSize, numBlocks
}

// SetDiagnosticWriter redirects errors, warnings, and reports, returning the previous writer
func SetDiagnosticWriter(w io.Writer) io.Writer {

	prev := errOut
	if w == nil {
		w = os.Stderr
	}
	errOut = w

	return prev
}

// DisplayError prints a highlighted error message
func DisplayError(format string, params ...interface{}) {

	str := fmt.Sprintf(format, params...)
	loud := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(errOut, "\n%s %s\n", loud.Sprint("ERROR:"), str)
}

// DisplayWarning prints a highlighted warning message
func DisplayWarning(format string, params ...interface{}) {

	str := fmt.Sprintf(format, params...)
	warn := color.New(color.FgBlue, color.Bold)
	fmt.Fprintf(errOut, "\n%s %s\n", warn.Sprint("WARNING:"), str)
}

// CountNoun returns the count with thousands separators and a singular or plural noun
func CountNoun(count int, noun string) string {

	// used for adding commas every 3 digits
	p := message.NewPrinter(language.English)

	if count != 1 {
		noun = inflector.Pluralize(noun)
	}

	return p.Sprintf("%d %s", count, noun)
}

// PrintDuration prints processing rate and program duration
func PrintDuration(name string, recordCount, byteCount int) {

	stopTime := time.Now()
	duration := stopTime.Sub(startTime)
	seconds := float64(duration.Nanoseconds()) / 1e9

	prec := 3
	if seconds >= 100 {
		prec = 1
	} else if seconds >= 10 {
		prec = 2
	}

	p := message.NewPrinter(language.English)

	if recordCount > 0 {
		fmt.Fprintf(errOut, "\nProcessed %s in %.*f seconds", CountNoun(recordCount, name), prec, seconds)
	} else {
		fmt.Fprintf(errOut, "\nProcessing completed in %.*f seconds", prec, seconds)
	}

	if seconds >= 0.001 && recordCount > 0 {
		rate := int(float64(recordCount) / seconds)
		fmt.Fprintf(errOut, " (%s/second", p.Sprintf("%d %s", rate, inflector.Pluralize(name)))
		if byteCount > 0 {
			rate := int(float64(byteCount) / seconds)
			if rate >= 1000000 {
				fmt.Fprintf(errOut, ", %d megabytes/second", rate/1000000)
			} else if rate >= 1000 {
				fmt.Fprintf(errOut, ", %d kilobytes/second", rate/1000)
			} else {
				fmt.Fprintf(errOut, ", %d bytes/second", rate)
			}
		}
		fmt.Fprintf(errOut, ")")
	}

	fmt.Fprintf(errOut, "\n\n")
}

// PrintStats prints machine characteristics and performance tuning parameters
func PrintStats() {

	fmt.Fprintf(errOut, "Thrd %d\n", nCPU)
	if cpuid.CPU.ThreadsPerCore > 0 {
		fmt.Fprintf(errOut, "Core %d\n", nCPU/cpuid.CPU.ThreadsPerCore)
	}
	if cpuid.CPU.LogicalCores > 0 {
		fmt.Fprintf(errOut, "Sock %d\n", nCPU/cpuid.CPU.LogicalCores)
	}
	fmt.Fprintf(errOut, "Mmry %d\n", memory.TotalMemory()/(1024*1024*1024))

	nmProcs, blkSize, nmBlocks := GetTunings()

	fmt.Fprintf(errOut, "Proc %d\n", nmProcs)
	fmt.Fprintf(errOut, "Blck %d\n", blkSize)
	fmt.Fprintf(errOut, "Nblk %d\n", nmBlocks)

	fmt.Fprintf(errOut, "\n")
}

func init() {

	startTime = time.Now()

	// initialize performance tuning variables with default values
	SetTunings(0, 0)
}
