package contigmeancov

import "fmt"

// MalformedLineError is returned when a report line does not split into
// exactly three comma-separated fields, or when the coverage field is not a
// finite decimal number. The whole file is rejected.
type MalformedLineError struct {
	Line  int    // 1-based
	Text  string // The offending line, without its line terminator
	Field string // Empty when the field count was wrong
	Err   error
}

func (e *MalformedLineError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed line %d %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("malformed line %d %q: field %s: %v", e.Line, e.Text, e.Field, e.Err)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

func errFieldCount(n int) error {
	return fmt.Errorf("expected %d comma-separated fields, found %d", nColumns, n)
}

// NameFormatError is returned when a file name does not follow FileNamePattern.
type NameFormatError struct {
	Name string
}

func (e *NameFormatError) Error() string {
	return fmt.Sprintf("file name %q does not match %s", e.Name, FileNamePattern)
}
