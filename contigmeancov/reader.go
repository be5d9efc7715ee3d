package contigmeancov

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Reader streams ContigRecords out of a contig mean coverage file.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	err     error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Err returns the first error that stopped the reader. A *MalformedLineError
// means the file is not a valid report.
func (r *Reader) Err() error {
	if r.err != nil {
		return r.err
	}

	return r.scanner.Err()
}

// Read returns the next record, or nil once the input is exhausted or an
// error was encountered. Blank lines are skipped.
func (r *Reader) Read() *ContigRecord {
	if r.err != nil {
		return nil
	}

	for r.scanner.Scan() {
		r.line++

		data := strings.TrimSuffix(r.scanner.Text(), "\r")
		if strings.TrimSpace(data) == "" {
			continue
		}

		row, err := parseRecord(r.line, data)
		if err != nil {
			r.err = err
			return nil
		}

		return row
	}

	return nil
}

func parseRecord(line int, data string) (*ContigRecord, error) {
	cols := strings.Split(data, ",")
	if len(cols) != nColumns {
		return nil, &MalformedLineError{
			Line: line,
			Text: data,
			Err:  errFieldCount(len(cols)),
		}
	}

	row := &ContigRecord{
		Contig: strings.TrimSpace(cols[ColContig]),
	}

	row.AlignedBases = parseCount(strings.TrimSpace(cols[ColAlignedBases]))

	coverage, err := parseCoverage(strings.TrimSpace(cols[ColCoverage]))
	if err != nil {
		return nil, &MalformedLineError{Line: line, Text: data, Field: "coverage", Err: err}
	}
	row.Coverage = coverage

	return row, nil
}

// parseCount reads the aligned bases column. It is informational only, so
// anything that is not a finite number becomes 0 rather than an error.
func parseCount(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0
	}

	return int64(f)
}

// parseCoverage accepts finite decimal numbers only.
func parseCoverage(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}

	return f, nil
}
