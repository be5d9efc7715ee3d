// Package plot describes the chart request handed to the report renderer. It
// does not draw anything.
package plot

// LineGraphConfig is the set of options the renderer recognizes for a line
// graph.
type LineGraphConfig struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	YLab  string `json:"ylab"`
	XLab  string `json:"xlab"`

	// Categories renders the x axis as discrete contig labels rather than
	// as numbers.
	Categories bool `json:"categories"`

	// TTLabel is the tooltip format string.
	TTLabel string `json:"tt_label"`
}

// CoveragePerContig is the chart for the per-contig mean coverage section.
func CoveragePerContig() LineGraphConfig {
	return LineGraphConfig{
		ID:         "dragen_coverage_per_contig",
		Title:      "Average coverage per contig or chromosome",
		YLab:       "Average coverage",
		XLab:       "Region",
		Categories: true,
		TTLabel:    "<b>{point.x}</b>: {point.y:.1f}x",
	}
}

// Override replaces every non-empty field of c with the one in o. Categories
// is only ever switched on by an override.
func (c LineGraphConfig) Override(o LineGraphConfig) LineGraphConfig {
	if o.ID != "" {
		c.ID = o.ID
	}
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.YLab != "" {
		c.YLab = o.YLab
	}
	if o.XLab != "" {
		c.XLab = o.XLab
	}
	if o.TTLabel != "" {
		c.TTLabel = o.TTLabel
	}
	c.Categories = c.Categories || o.Categories

	return c
}
