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
// File Name:  phigaf.go
//
// ==========================================================================

package main

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"io"
	"os"
	"phigaf/gafutils"
	"strconv"
	"strings"
)

const usage = `Usage: phigaf [-proc N] [-gzip] [-report FILE] [-timer] [-stats] [--] GAF_FILE [-o OUT_FILE]

Process the PHI-base GAF file to ensure it passes the checks done by the
GO Annotation Database. Host and symbiont species annotation extensions
are moved into the taxon column.

  GAF_FILE            path to the PHI-base GAF file (".gz" is decompressed)
  -o, -output FILE    path to write the processed file, if not specified
                      the input file is overwritten
  -gzip               compress output even without a ".gz" suffix
  -report FILE        write a YAML list of relocated taxa
  -proc N             number of processors for compression
  -timer              print processing rate and duration
  -stats              print processor and memory statistics
  -version            print version number
  -help               print this message
  --                  treat remaining arguments as file names
`

// phigafArgs holds parsed command-line arguments
type phigafArgs struct {
	input    string
	output   string
	report   string
	numProcs int
	zipp     bool
	timr     bool
	stts     bool
	help     bool
	vers     bool
}

// parseArgs accepts arguments in any order, with single or double dash
func parseArgs(args []string) (phigafArgs, error) {

	var pa phigafArgs

	nextArg := func(name string) (string, error) {
		if len(args) < 2 || args[1] == "" {
			return "", fmt.Errorf("%s is missing", name)
		}
		val := args[1]
		args = args[1:]
		return val, nil
	}

	// "--" ends switch parsing, so file names may start with a dash
	noMoreSwitches := false

	for len(args) > 0 {

		arg := args[0]
		val := ""
		hasVal := false

		if noMoreSwitches || arg == "--" {
			if arg == "--" && !noMoreSwitches {
				noMoreSwitches = true
			} else if pa.input != "" {
				return pa, fmt.Errorf("unexpected extra argument '%s'", arg)
			} else {
				pa.input = arg
			}
			args = args[1:]
			continue
		}

		// allow --output=FILE form
		if strings.HasPrefix(arg, "-") {
			if idx := strings.Index(arg, "="); idx > 0 {
				arg, val, hasVal = arg[:idx], arg[idx+1:], true
			}
		}

		var err error

		switch arg {
		case "-o", "-output", "--output":
			if !hasVal {
				val, err = nextArg("output file name")
			}
			pa.output = val
		case "-report", "--report":
			if !hasVal {
				val, err = nextArg("report file name")
			}
			pa.report = val
		case "-proc", "--proc":
			if !hasVal {
				val, err = nextArg("number of processors")
			}
			if err == nil {
				pa.numProcs, err = strconv.Atoi(val)
				if err != nil {
					err = fmt.Errorf("number of processors (%s) is not an integer", val)
				}
			}
		case "-gzip", "--gzip":
			pa.zipp = true
		case "-timer", "--timer":
			pa.timr = true
		case "-stats", "-stat", "--stats":
			pa.stts = true
		case "-version", "--version":
			pa.vers = true
		case "-help", "-h", "help", "--help":
			pa.help = true
		default:
			if strings.HasPrefix(arg, "-") {
				return pa, fmt.Errorf("unrecognized argument '%s'", arg)
			}
			if pa.input != "" {
				return pa, fmt.Errorf("unexpected extra argument '%s'", arg)
			}
			pa.input = arg
		}

		if err != nil {
			return pa, err
		}

		// skip past argument
		args = args[1:]
	}

	return pa, nil
}

func run(args []string, stdout, stderr io.Writer) int {

	prev := gafutils.SetDiagnosticWriter(stderr)
	defer gafutils.SetDiagnosticWriter(prev)

	pa, err := parseArgs(args)
	if err != nil {
		gafutils.DisplayError("%s", err.Error())
		return 1
	}

	// DOCUMENTATION COMMANDS

	if pa.vers {
		fmt.Fprintf(stdout, "%s\n", gafutils.PhigafVersion)
		return 0
	}
	if pa.help {
		fmt.Fprintf(stdout, "phigaf %s\n\n%s", gafutils.PhigafVersion, usage)
		return 0
	}

	gafutils.SetTunings(pa.numProcs, 0)

	// -stats prints number of CPUs and performance tuning values if no input file
	if pa.stts && pa.input == "" {
		gafutils.PrintStats()
		return 0
	}

	if pa.input == "" {
		gafutils.DisplayError("No GAF file supplied to phigaf")
		fmt.Fprintf(stderr, "\n%s", usage)
		return 1
	}

	sum, moved, err := gafutils.ProcessGafFile(pa.input, pa.output, gafutils.ProcessOptions{Compress: pa.zipp})
	if err != nil {
		gafutils.DisplayError("%s", err.Error())
		return 1
	}

	if pa.report != "" {
		err = gafutils.WriteRelocationReportFile(pa.report, sum, moved)
		if err != nil {
			gafutils.DisplayError("%s", err.Error())
			return 1
		}
	}

	if pa.stts {
		gafutils.PrintStats()
	}

	if pa.timr {
		fmt.Fprintf(stderr, "\nMoved host or symbiont taxa from %s into taxon column\n", gafutils.CountNoun(sum.Relocated, "extension"))
		gafutils.PrintDuration("record", sum.Records, sum.Bytes)
	}

	return 0
}

func main() {

	// drop escape sequences when errors are redirected to a file
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	// skip past executable name
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
