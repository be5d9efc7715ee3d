// Package chrpos holds the contig-name policy applied to per-contig coverage
// reports: which contigs are dropped, and how the survivors are ordered.
package chrpos

import (
	"strconv"
	"strings"
)

// AutosomalRegions is the pseudo-contig that DRAGEN emits for the average
// coverage over all autosomes. The raw label carries a trailing space; callers
// compare against the trimmed name.
const AutosomalRegions = "Autosomal regions"

const (
	unplacedPrefix = "chrUn_"
	randomSuffix   = "_random"
	altSuffix      = "_alt"
)

// Sort keys for contigs that are not numbered autosomes. Numbered autosomes
// sort below these because their key is n minus the contig count.
const (
	KeyAutosomalRegions = 0
	KeyOther            = 1
)

// Excluded reports whether a (trimmed) contig name should be dropped from a
// coverage map: unplaced, random and alt contigs, and the mitochondrion,
// which can attract orders of magnitude more coverage than nuclear
// chromosomes.
func Excluded(contig string) bool {
	switch {
	case strings.HasPrefix(contig, unplacedPrefix):
		return true
	case strings.HasSuffix(contig, randomSuffix):
		return true
	case strings.HasSuffix(contig, altSuffix):
		return true
	case contig == "chrM", contig == "MT":
		return true
	}

	return false
}

// Number returns the chromosome number of a numbered contig such as "chr7" or
// "7". ok is false for anything else ("chrX", "chrY", "Autosomal regions").
func Number(contig string) (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(contig, "chr"))
	if err != nil {
		return 0, false
	}

	return n, true
}

// SortKey gives the ascending order position class of a contig within a map
// of total contigs. Numbered autosomes get n-total, which is negative for any
// real genome, so they come first in numeric order. "Autosomal regions" comes right after
// them, and everything else comes last.
func SortKey(contig string, total int) int {
	if contig == AutosomalRegions {
		return KeyAutosomalRegions
	}

	if n, ok := Number(contig); ok {
		return n - total
	}

	return KeyOther
}
