package aggregate

import (
	"bytes"
	"encoding/json"

	"github.com/carbocation/contigcov/contigmeancov"
)

const (
	// NormalPhenotype is the secondary phenotype of a tumor/normal pair.
	NormalPhenotype = "normal"

	// NormalSuffix is appended to the sample name of NormalPhenotype runs.
	NormalSuffix = " " + NormalPhenotype
)

// DisplayName is the series label for a sample's phenotype. Only the normal
// run is renamed; every other phenotype, including an empty one, keeps the
// bare sample name.
func DisplayName(sample, phenotype string) string {
	if phenotype == NormalPhenotype {
		return sample + NormalSuffix
	}

	return sample
}

// Series is one line of the per-contig coverage chart.
type Series struct {
	Name     string
	Coverage contigmeancov.CoverageMap
}

// Merged is the chart-ready dataset: display name -> coverage, in order.
type Merged []Series

func (m Merged) Get(name string) (contigmeancov.CoverageMap, bool) {
	for _, s := range m {
		if s.Name == name {
			return s.Coverage, true
		}
	}

	return nil, false
}

func (m Merged) Names() []string {
	out := make([]string, 0, len(m))
	for _, s := range m {
		out = append(out, s.Name)
	}

	return out
}

// MarshalJSON writes {"<display name>": {"<contig>": coverage, ...}, ...}
// with both levels in order.
func (m Merged) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, s := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.Coverage)
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
