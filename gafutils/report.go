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
// File Name:  report.go
//
// ==========================================================================

package gafutils

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"io"
	"os"
)

// relocationReport is the YAML layout of the -report file
type relocationReport struct {
	Version     string       `yaml:"version"`
	Input       string       `yaml:"input"`
	Output      string       `yaml:"output"`
	Records     int          `yaml:"records"`
	Relocated   int          `yaml:"relocated"`
	Relocations []Relocation `yaml:"relocations"`
}

// WriteRelocationReport lists every taxon moved out of an annotation extension
func WriteRelocationReport(out io.Writer, sum Summary, moved []Relocation) error {

	if out == nil {
		return fmt.Errorf("no report output supplied")
	}

	if moved == nil {
		moved = []Relocation{}
	}

	rpt := relocationReport{
		Version:     PhigafVersion,
		Input:       sum.Input,
		Output:      sum.Output,
		Records:     sum.Records,
		Relocated:   len(moved),
		Relocations: moved,
	}

	data, err := yaml.Marshal(&rpt)
	if err != nil {
		return fmt.Errorf("unable to encode relocation report: %w", err)
	}

	_, err = out.Write(data)

	return err
}

// WriteRelocationReportFile writes the relocation report, overwriting any existing file
func WriteRelocationReportFile(fileName string, sum Summary, moved []Relocation) error {

	fl, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create report file '%s': %w", fileName, err)
	}

	err = WriteRelocationReport(fl, sum, moved)

	cerr := fl.Close()
	if err == nil && cerr != nil {
		err = fmt.Errorf("unable to close report file '%s': %w", fileName, cerr)
	}

	return err
}
