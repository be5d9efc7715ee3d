package discover

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const tumor = "chr1,100,40.5\nchrX,100,20\n"

func writeFile(t *testing.T, p string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, content, 0644); err != nil {
		t.Fatal(err)
	}
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestMatch(t *testing.T) {
	for p, expected := range map[string]bool{
		"S1.wgs_contig_mean_cov_tumor.csv":          true,
		"/a/b/S1.wgs_contig_mean_cov_normal.csv.gz": true,
		"S1.wgs_contig_mean_cov_tumor.csv.xz":       true,
		"S1.wgs_contig_mean_cov_tumor.csv.Z":        false,
		"S1.wgs_coverage_metrics_tumor.csv":         false,
		"S1.wgs_contig_mean_cov_tumor.txt":          false,
	} {
		if got := Match(p); got != expected {
			t.Fatalf("Match(%s) = %v", p, got)
		}
	}
}

func TestPathsAndLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "S1.wgs_contig_mean_cov_tumor.csv"), []byte(tumor))
	writeFile(t, filepath.Join(dir, "a", "S1.wgs_contig_mean_cov_normal.csv.gz"), gzipped(t, tumor))
	writeFile(t, filepath.Join(dir, "a", "S1.wgs_coverage_metrics.csv"), []byte("x"))
	single := filepath.Join(t.TempDir(), "S2.wgs_contig_mean_cov_tumor.csv")
	writeFile(t, single, []byte(tumor))

	f := &Finder{}
	ctx := context.Background()

	paths, err := f.Paths(ctx, dir, single)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		filepath.Join(dir, "a", "S1.wgs_contig_mean_cov_normal.csv.gz"),
		filepath.Join(dir, "b", "S1.wgs_contig_mean_cov_tumor.csv"),
		single,
	}
	if !reflect.DeepEqual(paths, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", paths, expected)
	}

	plain, err := f.Load(ctx, paths[1])
	if err != nil {
		t.Fatal(err)
	}
	compressed, err := f.Load(ctx, paths[0])
	if err != nil {
		t.Fatal(err)
	}

	if compressed.Name != "S1.wgs_contig_mean_cov_normal.csv" {
		t.Fatalf("compression suffix not removed: %s", compressed.Name)
	}
	if string(compressed.Content) != tumor || string(plain.Content) != tumor {
		t.Fatalf("unexpected content %q / %q", compressed.Content, plain.Content)
	}
	if plain.Digest == "" || plain.Digest != compressed.Digest {
		t.Fatalf("digests should match for identical content: %s / %s", plain.Digest, compressed.Digest)
	}
}

func TestWalkOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "S2.wgs_contig_mean_cov_tumor.csv"), []byte(tumor))
	writeFile(t, filepath.Join(dir, "S1.wgs_contig_mean_cov_tumor.csv"), []byte(tumor))

	var names []string
	err := (&Finder{}).Walk(context.Background(), []string{dir}, func(rf ReportFile) error {
		names = append(names, rf.Name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"S1.wgs_contig_mean_cov_tumor.csv", "S2.wgs_contig_mean_cov_tumor.csv"}
	if !reflect.DeepEqual(names, expected) {
		t.Fatalf("\nGot:      %v\nExpected: %v", names, expected)
	}
}

func TestMissingInput(t *testing.T) {
	if _, err := (&Finder{}).Paths(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing input")
	}
}

func TestDigest(t *testing.T) {
	a, err := Digest([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Digest([]byte("b"))

	if len(a) != 64 || a == b {
		t.Fatalf("unexpected digests %s %s", a, b)
	}
}
