package contigcov

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in content, assuming a CSV-like file. It falls back to a comma.
func DetermineDelimiter(content []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(content), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
