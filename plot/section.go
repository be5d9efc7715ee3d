package plot

import (
	"encoding/json"
	"io"

	"github.com/carbocation/contigcov/aggregate"
	"github.com/carbocation/pfx"
)

const coveragePerContigDescription = "Average coverage per contig or chromosome. Calculated as the number of bases " +
	"(excluding duplicate marked reads, reads with MAPQ=0, and clipped bases), divided by the length of the " +
	"contig or (if a target bed is used) the total length of the target region spanning that contig."

// Source is a data source entry listed alongside a section.
type Source struct {
	Sample    string `json:"sample"`
	Phenotype string `json:"phenotype"`
	Path      string `json:"path"`
	Digest    string `json:"digest,omitempty"`
}

// Section is one report section: a described line graph over merged data.
type Section struct {
	Name        string           `json:"name"`
	Anchor      string           `json:"anchor"`
	Description string           `json:"description"`
	Plot        LineGraphConfig  `json:"pconfig"`
	Data        aggregate.Merged `json:"data"`
	Sources     []Source         `json:"sources,omitempty"`
}

// NewCoveragePerContigSection wraps merged data in the per-contig coverage
// section.
func NewCoveragePerContigSection(merged aggregate.Merged, pconfig LineGraphConfig) Section {
	return Section{
		Name:        "Coverage per contig",
		Anchor:      "dragen-coverage-per-contig",
		Description: coveragePerContigDescription,
		Plot:        pconfig,
		Data:        merged,
	}
}

// SourcesFromDataset lists the file behind every (sample, phenotype) entry.
func SourcesFromDataset(d *aggregate.Dataset) []Source {
	out := make([]Source, 0)
	for _, sample := range d.Samples() {
		for _, phenotype := range d.Phenotypes(sample) {
			src, _ := d.Source(sample, phenotype)
			out = append(out, Source{
				Sample:    sample,
				Phenotype: phenotype,
				Path:      src.Path,
				Digest:    src.Digest,
			})
		}
	}

	return out
}

// Write encodes the section as indented JSON.
func (s Section) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return pfx.Err(enc.Encode(s))
}
