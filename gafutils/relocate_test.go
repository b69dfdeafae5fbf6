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
// File Name:  relocate_test.go
//
// ==========================================================================

package gafutils

import (
	"errors"
	"strings"
	"testing"
)

func makeRecord(taxon, extension string) Record {

	rec := Record{Line: 1}
	rec.Fields[DBObjectID] = "Q4HYQ8"
	rec.Fields[DBObjectSymbol] = "TRI5"
	rec.Fields[Taxon] = taxon
	rec.Fields[AnnotationExtension] = extension

	return rec
}

func TestRelocateTaxon(t *testing.T) {

	tests := []struct {
		taxon     string
		extension string
		newTaxon  string
		newExt    string
		changed   bool
	}{
		{"taxon:999", "comment(foo),with_host_species(12345)", "taxon:999|taxon:12345", "comment(foo)", true},
		{"taxon:5518", "with_host_species(4565)", "taxon:5518|taxon:4565", "", true},
		{"taxon:5518", "with_symbiont_species(4565)", "taxon:5518|taxon:4565", "", true},
		{"taxon:5518", "with_host_species(4565),occurs_in(CL:0000000)", "taxon:5518|taxon:4565", "occurs_in(CL:0000000)", true},
		{"taxon:5518", "part_of(GO:0001),with_host_species(4565),occurs_in(CL:0000000)", "taxon:5518|taxon:4565", "part_of(GO:0001),occurs_in(CL:0000000)", true},
		{"taxon:5518", "", "taxon:5518", "", false},
		{"taxon:5518", "occurs_in(CL:0000000)", "taxon:5518", "occurs_in(CL:0000000)", false},
		{"taxon:5518", "with_host_species()", "taxon:5518", "with_host_species()", false},
		{"taxon:5518", "with_host_species(abc)", "taxon:5518", "with_host_species(abc)", false},
		{"taxon:5518", "with_parasite_species(4565)", "taxon:5518", "with_parasite_species(4565)", false},
	}

	for _, test := range tests {
		rec := makeRecord(test.taxon, test.extension)
		before := rec

		changed, err := RelocateTaxon(&rec)
		if err != nil {
			t.Errorf("RelocateTaxon(%s, %s): %v", test.taxon, test.extension, err)
			continue
		}
		if changed != test.changed {
			t.Errorf("RelocateTaxon(%s, %s) changed = %v, expected %v", test.taxon, test.extension, changed, test.changed)
		}
		if rec.Fields[Taxon] != test.newTaxon {
			t.Errorf("RelocateTaxon(%s, %s) taxon = %s, expected %s", test.taxon, test.extension, rec.Fields[Taxon], test.newTaxon)
		}
		if rec.Fields[AnnotationExtension] != test.newExt {
			t.Errorf("RelocateTaxon(%s, %s) extension = %s, expected %s", test.taxon, test.extension, rec.Fields[AnnotationExtension], test.newExt)
		}

		// only the two relocation columns may change
		for i := range rec.Fields {
			if i == Taxon || i == AnnotationExtension {
				continue
			}
			if rec.Fields[i] != before.Fields[i] {
				t.Errorf("column %s changed from %q to %q", FieldNames[i], before.Fields[i], rec.Fields[i])
			}
		}
	}
}

func TestStripSpeciesTokens(t *testing.T) {

	stringTestMatch(t, "stripSpeciesTokens,",
		stripSpeciesTokens,
		[]stringTable{
			{"with_host_species(1)", ""},
			{"with_host_species(1),", ""},
			{"a,with_host_species(1)", "a"},
			{"with_host_species(1),a", "a"},
			{"a,with_symbiont_species(22),b", "a,b"},
			{"a|with_host_species(1),b", "a|b"},
			{"a,b,", "a,b,"},
			{"a|with_host_species(1)", "a"},
			{"with_host_species(1)|a", "a"},
			{"a|b|", "a|b|"},
		})
}

func TestRelocateTaxonViolations(t *testing.T) {

	tests := []struct {
		taxon     string
		extension string
		reason    string
	}{
		{"taxon:1|taxon:2", "with_symbiont_species(3)", MultiValuedTaxon},
		{"taxon:999", "with_host_species(1),with_host_species(2)", MultipleTokens},
		{"taxon:999", "with_host_species(1),with_symbiont_species(2)", MultipleTokens},
		{"taxon:1|taxon:2", "with_host_species(3),with_host_species(4)", MultipleTokens},
		{"taxon:5518", "with_host_species(5518)", RedundantTaxon},
		{"taxon:45651", "with_host_species(4565)", RedundantTaxon},
	}

	for _, test := range tests {
		rec := makeRecord(test.taxon, test.extension)
		rec.Line = 12

		changed, err := RelocateTaxon(&rec)
		var fv *FormatViolation
		if !errors.As(err, &fv) {
			t.Errorf("RelocateTaxon(%s, %s): expected FormatViolation, got %v", test.taxon, test.extension, err)
			continue
		}
		if changed {
			t.Errorf("RelocateTaxon(%s, %s) reported a change on failure", test.taxon, test.extension)
		}
		if fv.Reason != test.reason {
			t.Errorf("RelocateTaxon(%s, %s) reason = %s, expected %s", test.taxon, test.extension, fv.Reason, test.reason)
		}
		if fv.Line != 12 {
			t.Errorf("FormatViolation line = %d, expected 12", fv.Line)
		}
		if rec.Fields[Taxon] != test.taxon || rec.Fields[AnnotationExtension] != test.extension {
			t.Errorf("record modified despite violation: %s / %s", rec.Fields[Taxon], rec.Fields[AnnotationExtension])
		}
	}
}

func TestRelocateHostTaxa(t *testing.T) {

	input := sampleHeader +
		gafRow("Q4HYQ8", "taxon:5518", "") + "\n" +
		gafRow("P13513", "taxon:5507", "occurs_in(CL:0000000),with_host_species(4565)") + "\n" +
		gafRow("Q00900", "taxon:5518", "with_symbiont_species(4081)") + "\n"

	doc, err := ReadGaf(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGaf: %v", err)
	}

	moved, err := RelocateHostTaxa(doc)
	if err != nil {
		t.Fatalf("RelocateHostTaxa: %v", err)
	}
	if len(moved) != 2 {
		t.Fatalf("expected 2 relocations, got %d", len(moved))
	}
	if len(doc.Records) != 3 {
		t.Fatalf("record count changed to %d", len(doc.Records))
	}

	rel := moved[0]
	if rel.Line != 5 || rel.ObjectID != "P13513" || rel.OldTaxon != "taxon:5507" || rel.NewTaxon != "taxon:5507|taxon:4565" {
		t.Errorf("unexpected relocation %+v", rel)
	}
	if rel.OldExtension != "occurs_in(CL:0000000),with_host_species(4565)" || rel.NewExtension != "occurs_in(CL:0000000)" {
		t.Errorf("unexpected relocation extensions %+v", rel)
	}
	if doc.Records[2].Fields[Taxon] != "taxon:5518|taxon:4081" {
		t.Errorf("third record taxon = %s", doc.Records[2].Fields[Taxon])
	}

	// second pass finds nothing left to move
	again, err := RelocateHostTaxa(doc)
	if err != nil || len(again) != 0 {
		t.Errorf("second pass moved %d taxa, err %v", len(again), err)
	}
}

func TestRelocateHostTaxaStopsAtViolation(t *testing.T) {

	input := gafRow("Q4HYQ8", "taxon:5518", "with_host_species(4565)") + "\n" +
		gafRow("P13513", "taxon:1|taxon:2", "with_symbiont_species(3)") + "\n"

	doc, err := ReadGaf(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGaf: %v", err)
	}

	moved, err := RelocateHostTaxa(doc)
	var fv *FormatViolation
	if !errors.As(err, &fv) {
		t.Fatalf("expected FormatViolation, got %v", err)
	}
	if fv.Line != 2 || fv.Reason != MultiValuedTaxon {
		t.Errorf("unexpected violation %+v", fv)
	}
	if moved != nil {
		t.Errorf("expected no relocations on failure, got %d", len(moved))
	}
}
