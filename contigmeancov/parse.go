// Package contigmeancov parses the DRAGEN contig mean coverage report
// (*.wgs_contig_mean_cov_<phenotype>.csv). Each file holds one line per contig:
//
//	chr1,11292297134,48.9945
//	chrUn_GL000218v1,20750824,128.77
//	chrX,3590295769,23.1792
//	Autosomal regions ,130912665915,47.4953
//
// The columns are the contig name, the number of bases aligned to it, and the
// estimated coverage (aligned bases over the contig or target region length).
package contigmeancov

import (
	"io"
	"sort"

	"github.com/carbocation/contigcov/chrpos"
)

// Report is one parsed file.
type Report struct {
	FileName
	Coverage CoverageMap
}

// Parse reads one report. name is the file name (or path) the content came
// from; it supplies the sample and phenotype. No partial result is returned
// on error.
func Parse(r io.Reader, name string) (Report, error) {
	fn, err := ParseFileName(name)
	if err != nil {
		return Report{}, err
	}

	cov, err := ParseCoverage(r)
	if err != nil {
		return Report{}, err
	}

	return Report{FileName: fn, Coverage: cov}, nil
}

// ParseCoverage reads the contig lines of a report, drops the contigs that
// chrpos.Excluded rejects, and orders the rest by chrpos.SortKey. Contigs with
// equal keys keep their file order. If a contig appears twice, it keeps its
// first position and takes its last value.
func ParseCoverage(r io.Reader) (CoverageMap, error) {
	rdr := NewReader(r)

	out := make(CoverageMap, 0)
	seen := make(map[string]int)

	for row := rdr.Read(); row != nil; row = rdr.Read() {
		if chrpos.Excluded(row.Contig) {
			continue
		}

		if i, exists := seen[row.Contig]; exists {
			out[i].Coverage = row.Coverage
			continue
		}

		seen[row.Contig] = len(out)
		out = append(out, Entry{Contig: row.Contig, Coverage: row.Coverage})
	}

	if err := rdr.Err(); err != nil {
		return nil, err
	}

	total := len(out)
	sort.SliceStable(out, func(i, j int) bool {
		return chrpos.SortKey(out[i].Contig, total) < chrpos.SortKey(out[j].Contig, total)
	})

	return out, nil
}
