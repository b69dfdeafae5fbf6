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
// File Name:  relocate.go
//
// ==========================================================================

package gafutils

import (
	"regexp"
	"strings"
)

// PHI-base records host and symbiont species as annotation extensions, which
// the GO Annotation Database rejects. The standard place for the second
// organism of an interaction is the pipe-separated taxon column.

// matches with_host_species(NNN) or with_symbiont_species(NNN), plus one trailing comma
var speciesToken = regexp.MustCompile(`with_(?:host|symbiont)_species\((\d+?)\),?`)

const taxonPrefix = "taxon:"

// Relocation records one taxon moved out of an annotation extension
type Relocation struct {
	Line         int    `yaml:"line"`
	ObjectID     string `yaml:"db_object_id"`
	Symbol       string `yaml:"db_object_symbol"`
	OldTaxon     string `yaml:"old_taxon"`
	NewTaxon     string `yaml:"new_taxon"`
	OldExtension string `yaml:"old_extension"`
	NewExtension string `yaml:"new_extension"`
}

// RelocateTaxon moves a host or symbiont species token from the annotation
// extension into the taxon column of a single record. It reports whether the
// record was changed.
func RelocateTaxon(rec *Record) (bool, error) {

	if rec == nil {
		return false, nil
	}

	taxon := rec.Fields[Taxon]
	extension := rec.Fields[AnnotationExtension]

	if extension == "" {
		return false, nil
	}

	matches := speciesToken.FindAllStringSubmatch(extension, -1)
	if len(matches) == 0 {
		return false, nil
	}

	violation := func(reason string) error {
		return &FormatViolation{Line: rec.Line, Reason: reason, Taxon: taxon, Extension: extension}
	}

	if len(matches) > 1 {
		return false, violation(MultipleTokens)
	}
	if strings.Contains(taxon, "|") {
		return false, violation(MultiValuedTaxon)
	}

	withTaxon := matches[0][1]
	if strings.Contains(taxon, withTaxon) {
		return false, violation(RedundantTaxon)
	}

	rec.Fields[Taxon] = taxon + "|" + taxonPrefix + withTaxon
	rec.Fields[AnnotationExtension] = stripSpeciesTokens(extension)

	return true, nil
}

// stripSpeciesTokens removes every species token, leaving any other extension
// text untouched except for a comma or pipe separator left dangling at either
// end by the removal
func stripSpeciesTokens(extension string) string {

	str := speciesToken.ReplaceAllLiteralString(extension, "")

	for _, sep := range []string{",", "|"} {
		if strings.HasSuffix(str, sep) && !strings.HasSuffix(extension, sep) {
			str = strings.TrimSuffix(str, sep)
		}
		if strings.HasPrefix(str, sep) && !strings.HasPrefix(extension, sep) {
			str = strings.TrimPrefix(str, sep)
		}
	}

	return str
}

// RelocateHostTaxa applies RelocateTaxon to every record in the document,
// stopping at the first record that violates the GAF taxon rules
func RelocateHostTaxa(doc *GafDocument) ([]Relocation, error) {

	if doc == nil {
		return nil, nil
	}

	var moved []Relocation

	for i := range doc.Records {

		rec := &doc.Records[i]

		oldTaxon := rec.Fields[Taxon]
		oldExtension := rec.Fields[AnnotationExtension]

		changed, err := RelocateTaxon(rec)
		if err != nil {
			return nil, err
		}
		if !changed {
			continue
		}

		moved = append(moved, Relocation{
			Line:         rec.Line,
			ObjectID:     rec.Fields[DBObjectID],
			Symbol:       rec.Fields[DBObjectSymbol],
			OldTaxon:     oldTaxon,
			NewTaxon:     rec.Fields[Taxon],
			OldExtension: oldExtension,
			NewExtension: rec.Fields[AnnotationExtension],
		})
	}

	return moved, nil
}
