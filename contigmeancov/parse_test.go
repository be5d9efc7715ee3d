package contigmeancov

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"
)

const sampleReport = `chr1,11292297134,48.9945
chr3,6482885699,48.6473
chr2,11581710318,48.8013
chrM,4521301,13744.1
MT,0,0
chrUn_GL000218v1,20750824,128.77
chr6_GL000250v2_alt,11224,0.0024
chrX,3590295769,23.1792
chrY,42229820,1.5987
chrY_KI270740v1_random,0,0
Autosomal regions ,130912665915,47.4953
`

func TestParseCoverageFiltersAndOrders(t *testing.T) {
	cov, err := ParseCoverage(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"chr1", "chr2", "chr3", "Autosomal regions", "chrX", "chrY"}
	if got := cov.Contigs(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", got, expected)
	}

	for _, v := range []struct {
		Contig   string
		Coverage float64
	}{
		{"chr1", 48.9945},
		{"chr3", 48.6473},
		{"chrX", 23.1792},
		{"Autosomal regions", 47.4953},
	} {
		got, ok := cov.Get(v.Contig)
		if !ok || got != v.Coverage {
			t.Fatalf("%s: got (%v, %v), expected %v", v.Contig, got, ok, v.Coverage)
		}
	}

	for _, excluded := range []string{"chrM", "MT", "chrUn_GL000218v1", "chr6_GL000250v2_alt", "chrY_KI270740v1_random"} {
		if _, ok := cov.Get(excluded); ok {
			t.Fatalf("%s should have been excluded", excluded)
		}
	}
}

func TestParseCoverageOrdering(t *testing.T) {
	input := "chr2,1,2\nchr1,1,1\nchrX,1,3\nAutosomal regions ,1,4\n"
	cov, err := ParseCoverage(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"chr1", "chr2", "Autosomal regions", "chrX"}
	if got := cov.Contigs(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", got, expected)
	}
}

func TestParseCoverageStableForNonNumeric(t *testing.T) {
	input := "chrY,1,1\nchrEBV,1,1\nchrX,1,1\n3,1,1\n"
	cov, err := ParseCoverage(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"3", "chrY", "chrEBV", "chrX"}
	if got := cov.Contigs(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", got, expected)
	}
}

func TestParseCoverageIntegerValuedAndCRLF(t *testing.T) {
	cov, err := ParseCoverage(strings.NewReader("chr1,100,30\r\n\r\nchr2,100,0\r\n"))
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := cov.Get("chr1"); v != 30 {
		t.Fatalf("chr1: got %v", v)
	}
	if len(cov) != 2 {
		t.Fatalf("expected 2 contigs, got %d", len(cov))
	}
}

func TestParseCoverageDuplicateContig(t *testing.T) {
	cov, err := ParseCoverage(strings.NewReader("chrX,1,1\nchr1,1,2\nchrX,1,9\n"))
	if err != nil {
		t.Fatal(err)
	}

	expected := CoverageMap{{"chr1", 2}, {"chrX", 9}}
	if !reflect.DeepEqual(cov, expected) {
		t.Fatalf("\nGot:      %+v\nExpected: %+v", cov, expected)
	}
}

func TestParseCoverageIdempotent(t *testing.T) {
	a, err := ParseCoverage(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseCoverage(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("\n%+v\n%+v", a, b)
	}
}

func TestParseCoverageMalformed(t *testing.T) {
	for _, v := range []struct {
		Input string
		Line  int
		Field string
	}{
		{"chr1,1,1\nchr2,1\n", 2, ""},
		{"chr1,1,1,1\n", 1, ""},
		{"chr1\n", 1, ""},
		{"chr1,1,abc\n", 1, "coverage"},
		{"chr1,1,\n", 1, "coverage"},
		{"chr1,1,NaN\n", 1, "coverage"},
		{"chr1,1,nan\n", 1, "coverage"},
		{"chr1,1,Inf\n", 1, "coverage"},
		{"chr1,1,-Infinity\n", 1, "coverage"},
		{"chr1,1,0x1p4\n", 1, "coverage"},
		{"chr1,1,1e400\n", 1, "coverage"},
		{"chr1,1,1\n\nchrM,1,x\n", 3, "coverage"},
	} {
		cov, err := ParseCoverage(strings.NewReader(v.Input))
		if cov != nil {
			t.Fatalf("%q: expected no partial map, got %+v", v.Input, cov)
		}

		var mle *MalformedLineError
		if !errors.As(err, &mle) {
			t.Fatalf("%q: expected *MalformedLineError, got %v", v.Input, err)
		}
		if mle.Line != v.Line || mle.Field != v.Field {
			t.Fatalf("%q: got line %d field %q, expected line %d field %q", v.Input, mle.Line, mle.Field, v.Line, v.Field)
		}
	}
}

func TestParse(t *testing.T) {
	rep, err := Parse(strings.NewReader(sampleReport), "/data/T_SRR7890936_50pc.wgs_contig_mean_cov_tumor.csv")
	if err != nil {
		t.Fatal(err)
	}

	if rep.Sample != "T_SRR7890936_50pc" || rep.Phenotype != "tumor" {
		t.Fatalf("unexpected identity %+v", rep.FileName)
	}
	if len(rep.Coverage) != 6 {
		t.Fatalf("expected 6 contigs, got %d", len(rep.Coverage))
	}
}

func TestParseRejectsBadNameBeforeReading(t *testing.T) {
	_, err := Parse(strings.NewReader("not,a,report,at all"), "coverage.csv")

	var nfe *NameFormatError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NameFormatError, got %v", err)
	}
}

func TestCoverageMapMarshalJSONKeepsOrder(t *testing.T) {
	cov := CoverageMap{{"chr2", 1.5}, {"chr10", 2}, {"Autosomal regions", 3.25}}

	b, err := json.Marshal(cov)
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte(`{"chr2":1.5,"chr10":2,"Autosomal regions":3.25}`)
	if !bytes.Equal(b, expected) {
		t.Fatalf("\nGot:      %s\nExpected: %s", b, expected)
	}
}

func TestParseCoverageLexicographicInput(t *testing.T) {
	// DRAGEN writes contigs in lexicographic order: chr1, chr10, chr11, ...
	names := make([]string, 0, 22)
	for i := 1; i <= 22; i++ {
		names = append(names, "chr"+strconv.Itoa(i))
	}
	lexical := append([]string(nil), names...)
	sort.Strings(lexical)

	var b strings.Builder
	for _, name := range lexical {
		b.WriteString(name + ",1000,30.5\n")
	}
	b.WriteString("chrM,10,9000\nchrX,1000,15\nchrY,1000,14\nAutosomal regions ,22000,30.5\n")

	cov, err := ParseCoverage(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}

	expected := append(names, "Autosomal regions", "chrX", "chrY")
	if got := cov.Contigs(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", got, expected)
	}
}

func TestAlignedBasesIsBestEffort(t *testing.T) {
	for _, v := range []struct {
		Input string
		Bases int64
	}{
		{"chr1,11292297134,48.9945\n", 11292297134},
		{"chr1,1.5e10,30\n", 15000000000},
		{"chr1,,30\n", 0},
		{"chr1,lots,30\n", 0},
		{"chr1,NaN,30\n", 0},
	} {
		rdr := NewReader(strings.NewReader(v.Input))
		row := rdr.Read()
		if err := rdr.Err(); err != nil {
			t.Fatalf("%q: %v", v.Input, err)
		}
		if row == nil || row.AlignedBases != v.Bases || row.Coverage == 0 {
			t.Fatalf("%q: got %+v, expected %d aligned bases", v.Input, row, v.Bases)
		}
	}

	cov, err := ParseCoverage(strings.NewReader("chr1,,30\nchr2,1.5e10,31\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := cov.Get("chr2"); v != 31 {
		t.Fatalf("chr2: got %v", v)
	}
}

func TestParseCoverageMarshalsAfterParse(t *testing.T) {
	cov, err := ParseCoverage(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := json.Marshal(cov); err != nil {
		t.Fatalf("a parsed map should always encode: %v", err)
	}
}

func TestParseCoverageNumberedAboveCount(t *testing.T) {
	// With only two retained contigs, chr5 gets 5-2=3, which is above the
	// key of non-numeric contigs.
	cov, err := ParseCoverage(strings.NewReader("chr5,1,1\nchrX,1,2\n"))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"chrX", "chr5"}
	if got := cov.Contigs(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", got, expected)
	}
}
