package aggregate

import (
	"github.com/carbocation/contigcov/contigmeancov"
)

// Logger receives diagnostics. It is never consulted for control flow.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Excluder drops ignored samples, across all of their phenotypes.
type Excluder interface {
	Exclude(d *Dataset) *Dataset
}

// Accumulator gathers reports for one report-generation run. Reports must be
// added in discovery order: a later report for the same sample and phenotype
// replaces the earlier one.
type Accumulator struct {
	log  Logger
	data *Dataset
}

// NewAccumulator starts a run. A nil logger discards diagnostics.
func NewAccumulator(log Logger) *Accumulator {
	if log == nil {
		log = discard{}
	}

	return &Accumulator{
		log:  log,
		data: NewDataset(),
	}
}

// Add records one parsed report.
func (a *Accumulator) Add(rep contigmeancov.Report, src Source) {
	replaced, previous := a.data.set(rep.Sample, rep.Phenotype, rep.Coverage, src)
	if !replaced {
		return
	}

	note := ""
	if previous.Digest != "" && previous.Digest == src.Digest {
		note = " (identical content)"
	}
	a.log.Printf("Duplicate sample name found! Overwriting: %s phenotype %q from %s with %s%s\n", rep.Sample, rep.Phenotype, previous.Path, src.Path, note)
}

// Dataset exposes what has been accumulated so far.
func (a *Accumulator) Dataset() *Dataset {
	return a.data
}

// Merge applies ex (if not nil) and flattens the remaining samples into one
// series per display name. ok is false when nothing is left to report, in
// which case no chart should be requested.
func (a *Accumulator) Merge(ex Excluder) (merged Merged, ok bool) {
	data := a.data
	if ex != nil {
		data = ex.Exclude(data)
		if dropped := a.data.Len() - data.Len(); dropped > 0 {
			a.log.Printf("Ignoring %d of %d samples\n", dropped, a.data.Len())
		}
	}

	merged = make(Merged, 0, data.Len())
	index := make(map[string]int)

	for _, sample := range data.Samples() {
		for _, phenotype := range data.Phenotypes(sample) {
			cov, _ := data.Coverage(sample, phenotype)
			name := DisplayName(sample, phenotype)

			if i, exists := index[name]; exists {
				a.log.Printf("Display name %q is used by more than one sample; keeping %s phenotype %q\n", name, sample, phenotype)
				merged[i].Coverage = cov
				continue
			}

			index[name] = len(merged)
			merged = append(merged, Series{Name: name, Coverage: cov})
		}
	}

	if len(merged) == 0 {
		return nil, false
	}

	a.log.Printf("Found DRAGEN per-contig coverage for %d DRAGEN output prefixes\n", len(merged))

	return merged, true
}
