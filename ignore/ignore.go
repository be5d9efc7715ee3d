// Package ignore implements the sample ignore-list: samples whose name matches
// any shell glob pattern are dropped before merging.
package ignore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/carbocation/contigcov/aggregate"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type Rules struct {
	patterns []string
}

// New validates the glob patterns. Empty patterns are skipped.
func New(patterns ...string) (*Rules, error) {
	r := &Rules{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, p)
	}

	return r, nil
}

func (r *Rules) Patterns() []string {
	return append([]string(nil), r.patterns...)
}

// Match reports whether sample is ignored.
func (r *Rules) Match(sample string) bool {
	for _, p := range r.patterns {
		if ok, _ := path.Match(p, sample); ok {
			return true
		}
	}

	return false
}

// Exclude satisfies aggregate.Excluder.
func (r *Rules) Exclude(d *aggregate.Dataset) *aggregate.Dataset {
	return d.Filter(func(sample string) bool {
		return !r.Match(sample)
	})
}

type rule struct {
	Pattern string `csv:"pattern"`
}

// ReadRules reads a tab-delimited rules file with a "pattern" header column.
// Lines starting with # are comments. An input with no rows at all, not even
// a header, holds no rules.
func ReadRules(in io.Reader) ([]string, error) {
	body, err := io.ReadAll(in)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rows, err := newRulesReader(body).ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	records := []*rule{}
	if err := gocsv.UnmarshalCSV(newRulesReader(body), &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Pattern)
	}

	return out, nil
}

func newRulesReader(body []byte) *csv.Reader {
	rdr := csv.NewReader(bytes.NewReader(body))
	rdr.Comma = '\t'
	rdr.Comment = '#'
	rdr.FieldsPerRecord = -1

	return rdr
}

func ReadRulesFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadRules(f)
}
