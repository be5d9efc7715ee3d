package aggregate

import (
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// Summary describes one series for the run log.
type Summary struct {
	Name    string
	Contigs int
	Mean    float64
	Median  float64
}

// Summarize computes per-series coverage statistics over the retained
// contigs. Series without contigs get zero statistics.
func Summarize(m Merged) ([]Summary, error) {
	out := make([]Summary, 0, len(m))

	for _, s := range m {
		sum := Summary{Name: s.Name, Contigs: len(s.Coverage)}

		if sum.Contigs > 0 {
			data := stats.LoadRawData(s.Coverage.Values())

			mean, err := data.Mean()
			if err != nil {
				return nil, pfx.Err(err)
			}
			median, err := data.Median()
			if err != nil {
				return nil, pfx.Err(err)
			}

			sum.Mean, sum.Median = mean, median
		}

		out = append(out, sum)
	}

	return out, nil
}

// LogSummary writes one diagnostic line per series.
func LogSummary(log Logger, m Merged) error {
	summaries, err := Summarize(m)
	if err != nil {
		return err
	}

	for _, s := range summaries {
		log.Printf("%s: %d contigs, mean %.1fx, median %.1fx\n", s.Name, s.Contigs, s.Mean, s.Median)
	}

	return nil
}
