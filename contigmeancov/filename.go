package contigmeancov

import (
	"path/filepath"
	"strings"
	"unicode"
)

const (
	// FileNameMarker separates the DRAGEN output prefix from the phenotype.
	FileNameMarker = ".wgs_contig_mean_cov_"

	FileNameExtension = ".csv"

	// FileNamePattern is the grammar that ParseFileName accepts. E.g.,
	// T_SRR7890936_50pc.wgs_contig_mean_cov_tumor.csv
	FileNamePattern = "<prefix>" + FileNameMarker + "<phenotype>" + FileNameExtension
)

// FileName is the identity carried by a report's file name.
type FileName struct {
	Sample    string // The output prefix, shared by the tumor and normal runs
	Phenotype string // Usually "tumor" or "normal"; may be empty
}

// ParseFileName splits the base name of path into its sample and phenotype.
// The last occurrence of FileNameMarker is used, the prefix may not be empty,
// and the phenotype may not contain whitespace.
func ParseFileName(path string) (FileName, error) {
	name := filepath.Base(path)

	stem := strings.TrimSuffix(name, FileNameExtension)
	if stem == name {
		return FileName{}, &NameFormatError{Name: name}
	}

	i := strings.LastIndex(stem, FileNameMarker)
	if i <= 0 {
		return FileName{}, &NameFormatError{Name: name}
	}

	out := FileName{
		Sample:    stem[:i],
		Phenotype: stem[i+len(FileNameMarker):],
	}

	if strings.IndexFunc(out.Phenotype, unicode.IsSpace) >= 0 {
		return FileName{}, &NameFormatError{Name: name}
	}

	return out, nil
}

// MatchFileName reports whether ParseFileName would accept path.
func MatchFileName(path string) bool {
	_, err := ParseFileName(path)
	return err == nil
}
