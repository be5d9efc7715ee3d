// Package report runs one per-contig coverage report: discovery, parsing,
// aggregation and the section handed to the renderer.
package report

import (
	"bytes"
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/carbocation/contigcov/aggregate"
	"github.com/carbocation/contigcov/contigmeancov"
	"github.com/carbocation/contigcov/discover"
	"github.com/carbocation/contigcov/plot"
)

type Options struct {
	Inputs []string

	// Ignore drops samples before merging. May be nil.
	Ignore aggregate.Excluder

	Plot plot.LineGraphConfig

	// SkipInvalid logs and skips matching files that cannot be read,
	// decompressed or parsed, instead of aborting the run. A missing input
	// always aborts.
	SkipInvalid bool

	Client *storage.Client
	Log    aggregate.Logger
}

// Build produces the coverage-per-contig section. ok is false when there is
// nothing to report, in which case no chart should be generated.
func Build(ctx context.Context, opts Options) (section plot.Section, ok bool, err error) {
	if opts.Log == nil {
		opts.Log = discard{}
	}

	finder := &discover.Finder{Client: opts.Client, Log: opts.Log}
	acc := aggregate.NewAccumulator(opts.Log)

	paths, err := finder.Paths(ctx, opts.Inputs...)
	if err != nil {
		return plot.Section{}, false, err
	}

	for _, p := range paths {
		rep, rf, err := load(ctx, finder, p)
		if err != nil {
			if opts.SkipInvalid {
				opts.Log.Printf("Skipping %s: %v\n", p, err)
				continue
			}
			return plot.Section{}, false, fmt.Errorf("%s: %w", p, err)
		}

		acc.Add(rep, aggregate.Source{Path: rf.Path, Digest: rf.Digest})
	}

	merged, ok := acc.Merge(opts.Ignore)
	if !ok {
		return plot.Section{}, false, nil
	}

	if err := aggregate.LogSummary(opts.Log, merged); err != nil {
		return plot.Section{}, false, err
	}

	sources := acc.Dataset()
	if opts.Ignore != nil {
		sources = opts.Ignore.Exclude(sources)
	}

	section = plot.NewCoveragePerContigSection(merged, plot.CoveragePerContig().Override(opts.Plot))
	section.Sources = plot.SourcesFromDataset(sources)

	return section, true, nil
}

// load reads and parses one discovered report.
func load(ctx context.Context, finder *discover.Finder, p string) (contigmeancov.Report, discover.ReportFile, error) {
	rf, err := finder.Load(ctx, p)
	if err != nil {
		return contigmeancov.Report{}, rf, err
	}

	rep, err := contigmeancov.Parse(bytes.NewReader(rf.Content), rf.Name)
	return rep, rf, err
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}
