package contigmeancov

import (
	"bytes"
	"encoding/json"
)

// Map columns in the contig mean coverage file to their positions
const (
	ColContig int = iota
	ColAlignedBases
	ColCoverage

	nColumns
)

// ContigRecord is one line of a *.wgs_contig_mean_cov_*.csv file.
type ContigRecord struct {
	Contig       string  // Trimmed; "Autosomal regions " loses its trailing space
	AlignedBases int64   // Excludes duplicate-marked reads, MAPQ=0 reads and clipped bases. 0 if unreadable
	Coverage     float64 // AlignedBases divided by the contig (or target region) length
}

// Entry is a single contig of a CoverageMap.
type Entry struct {
	Contig   string
	Coverage float64
}

// CoverageMap is an ordered mapping of contig name to mean coverage. Contig
// names are unique within a map.
type CoverageMap []Entry

// Get returns the coverage recorded for contig.
func (m CoverageMap) Get(contig string) (float64, bool) {
	for _, e := range m {
		if e.Contig == contig {
			return e.Coverage, true
		}
	}

	return 0, false
}

// Contigs returns the contig names in map order.
func (m CoverageMap) Contigs() []string {
	out := make([]string, 0, len(m))
	for _, e := range m {
		out = append(out, e.Contig)
	}

	return out
}

// Values returns the coverage values in map order.
func (m CoverageMap) Values() []float64 {
	out := make([]float64, 0, len(m))
	for _, e := range m {
		out = append(out, e.Coverage)
	}

	return out
}

// MarshalJSON writes the map as a JSON object whose keys keep map order.
func (m CoverageMap) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Contig)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Coverage)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
