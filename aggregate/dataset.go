// Package aggregate collects parsed contig mean coverage reports across files
// and merges the tumor and normal runs of each sample into one set of series.
package aggregate

import "github.com/carbocation/contigcov/contigmeancov"

// Source records where a (sample, phenotype) entry came from.
type Source struct {
	Path   string
	Digest string // Hex content digest; may be empty
}

// Dataset maps sample -> phenotype -> coverage. Samples, and phenotypes within
// a sample, are kept in the order they were first seen.
type Dataset struct {
	samples    []string
	phenotypes map[string][]string
	coverage   map[string]map[string]contigmeancov.CoverageMap
	sources    map[string]map[string]Source
}

func NewDataset() *Dataset {
	return &Dataset{
		samples:    make([]string, 0),
		phenotypes: make(map[string][]string),
		coverage:   make(map[string]map[string]contigmeancov.CoverageMap),
		sources:    make(map[string]map[string]Source),
	}
}

// set stores cov under (sample, phenotype) and reports whether an earlier
// entry was replaced, along with that entry's source.
func (d *Dataset) set(sample, phenotype string, cov contigmeancov.CoverageMap, src Source) (replaced bool, previous Source) {
	byPheno, exists := d.coverage[sample]
	if !exists {
		byPheno = make(map[string]contigmeancov.CoverageMap)
		d.coverage[sample] = byPheno
		d.sources[sample] = make(map[string]Source)
		d.samples = append(d.samples, sample)
	}

	if _, replaced = byPheno[phenotype]; replaced {
		previous = d.sources[sample][phenotype]
	} else {
		d.phenotypes[sample] = append(d.phenotypes[sample], phenotype)
	}

	byPheno[phenotype] = cov
	d.sources[sample][phenotype] = src

	return replaced, previous
}

// Len is the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

func (d *Dataset) Samples() []string {
	return append([]string(nil), d.samples...)
}

func (d *Dataset) Phenotypes(sample string) []string {
	return append([]string(nil), d.phenotypes[sample]...)
}

func (d *Dataset) Coverage(sample, phenotype string) (contigmeancov.CoverageMap, bool) {
	cov, exists := d.coverage[sample][phenotype]
	return cov, exists
}

func (d *Dataset) Source(sample, phenotype string) (Source, bool) {
	src, exists := d.sources[sample][phenotype]
	return src, exists
}

// Filter returns a new Dataset holding only the samples for which keep
// returns true, with all of their phenotypes.
func (d *Dataset) Filter(keep func(sample string) bool) *Dataset {
	out := NewDataset()
	for _, sample := range d.samples {
		if !keep(sample) {
			continue
		}
		for _, phenotype := range d.phenotypes[sample] {
			out.set(sample, phenotype, d.coverage[sample][phenotype], d.sources[sample][phenotype])
		}
	}

	return out
}
