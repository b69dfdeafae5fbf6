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
// File Name:  gaf.go
//
// ==========================================================================

package gafutils

import (
	"fmt"
	"strings"
)

// GAF 2.x column positions
const (
	DB = iota
	DBObjectID
	DBObjectSymbol
	Qualifier
	GoID
	DBReference
	EvidenceCode
	WithFrom
	Aspect
	DBObjectName
	DBObjectSynonym
	DBObjectType
	Taxon
	Date
	AssignedBy
	AnnotationExtension
	GeneProductFormID
	NumFields
)

// FieldNames holds the column names in file order
var FieldNames = [NumFields]string{
	"db",
	"db_object_id",
	"db_object_symbol",
	"qualifier",
	"go_id",
	"db_reference",
	"evidence_code",
	"with_from",
	"aspect",
	"db_object_name",
	"db_object_synonym",
	"db_object_type",
	"taxon",
	"date",
	"assigned_by",
	"annotation_extension",
	"gene_product_form_id",
}

// header lines start with this character
const headerSentinel = '!'

// HeaderBlock holds raw comment lines, each with its original line terminator
type HeaderBlock []string

// Record is one annotation row. Line is the 1-based line number in the source file.
type Record struct {
	Line   int
	Fields [NumFields]string
}

// GafDocument is a header block followed by annotation rows
type GafDocument struct {
	Header  HeaderBlock
	Records []Record
}

// String returns the record as a tab-delimited row without terminator
func (r *Record) String() string {

	return strings.Join(r.Fields[:], "\t")
}

// ParseError reports a data row with the wrong number of columns
type ParseError struct {
	Line  int
	Count int
	Text  string
}

func (e *ParseError) Error() string {

	return fmt.Sprintf("line %d has %d tab-delimited fields, expected %d - '%s'", e.Line, e.Count, NumFields, e.Text)
}

// Reasons for a FormatViolation
const (
	MultipleTokens   = "multiple host or symbiont species tokens in annotation extension"
	MultiValuedTaxon = "taxon column already holds more than one taxon"
	RedundantTaxon   = "host or symbiont taxon already present in taxon column"
)

// FormatViolation reports an annotation row the taxon relocation cannot handle
type FormatViolation struct {
	Line      int
	Reason    string
	Taxon     string
	Extension string
}

func (e *FormatViolation) Error() string {

	return fmt.Sprintf("line %d: %s (%s '%s', %s '%s')", e.Line, e.Reason, FieldNames[Taxon], e.Taxon, FieldNames[AnnotationExtension], e.Extension)
}
