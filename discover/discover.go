// Package discover finds DRAGEN contig mean coverage reports on the local
// filesystem or in Google Storage and loads their content.
package discover

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"cloud.google.com/go/storage"
	"github.com/carbocation/contigcov"
	"github.com/carbocation/contigcov/contigmeancov"
	"github.com/carbocation/pfx"
	"github.com/minio/blake2b-simd"
)

// ReportFile is one discovered report.
type ReportFile struct {
	Name    string // Base name with any compression suffix removed
	Path    string // Local path or gs:// URL
	Content []byte // Decompressed
	Digest  string // Hex BLAKE2b-256 of Content
}

type Logger interface {
	Printf(format string, v ...interface{})
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Finder walks inputs for reports. Client is only needed for gs:// inputs.
type Finder struct {
	Client *storage.Client
	Log    Logger
}

// Match reports whether a path looks like a contig mean coverage report,
// optionally compressed.
func Match(p string) bool {
	return contigmeancov.MatchFileName(reportName(p))
}

func reportName(p string) string {
	return contigcov.TrimCompressionSuffix(path.Base(filepath.ToSlash(p)))
}

// Paths lists the matching report paths under each input, in input order and
// lexical order within an input. An input may be a file, a directory, a gs://
// object or a gs:// prefix.
func (f *Finder) Paths(ctx context.Context, inputs ...string) ([]string, error) {
	out := make([]string, 0)
	skipped := 0

	for _, input := range inputs {
		var candidates []string
		var err error

		if contigcov.IsGoogleStoragePath(input) {
			candidates, err = contigcov.ListGoogleStorage(ctx, input, f.Client)
		} else {
			candidates, err = listLocal(input)
		}
		if err != nil {
			return nil, err
		}

		for _, c := range candidates {
			if !Match(c) {
				skipped++
				continue
			}
			out = append(out, c)
		}
	}

	f.logger().Printf("Found %d contig mean coverage reports (%d other files ignored)\n", len(out), skipped)

	return out, nil
}

func listLocal(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	out := make([]string, 0)
	err = filepath.WalkDir(input, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, pfx.Err(err)
	}

	// WalkDir is already lexical within a directory; this makes the order
	// independent of directory nesting as well.
	sort.Strings(out)

	return out, nil
}

// Load reads and decompresses one report.
func (f *Finder) Load(ctx context.Context, p string) (ReportFile, error) {
	rc, err := contigcov.MaybeOpenFromGoogleStorage(ctx, p, f.Client)
	if err != nil {
		return ReportFile{}, err
	}
	defer rc.Close()

	dr, _, err := contigcov.MaybeDecompress(rc)
	if err != nil {
		return ReportFile{}, fmt.Errorf("%s: %w", p, err)
	}
	defer dr.Close()

	content, err := io.ReadAll(dr)
	if err != nil {
		return ReportFile{}, pfx.Err(fmt.Errorf("%s: %w", p, err))
	}

	digest, err := Digest(content)
	if err != nil {
		return ReportFile{}, err
	}

	if len(content) > 0 {
		if d := contigcov.DetermineDelimiter(content); d != ',' {
			f.logger().Printf("%s does not look comma-delimited (detected %q)\n", p, d)
		}
	}

	return ReportFile{
		Name:    reportName(p),
		Path:    p,
		Content: content,
		Digest:  digest,
	}, nil
}

// Walk calls fn with each report under inputs, in discovery order. It stops
// at the first error from loading or from fn.
func (f *Finder) Walk(ctx context.Context, inputs []string, fn func(ReportFile) error) error {
	paths, err := f.Paths(ctx, inputs...)
	if err != nil {
		return err
	}

	for _, p := range paths {
		rf, err := f.Load(ctx, p)
		if err != nil {
			return err
		}
		if err := fn(rf); err != nil {
			return err
		}
	}

	return nil
}

// Digest is the hex BLAKE2b-256 of content.
func Digest(content []byte) (string, error) {
	h, err := blake2b.New(&blake2b.Config{Size: 32})
	if err != nil {
		return "", pfx.Err(err)
	}
	if _, err := h.Write(content); err != nil {
		return "", pfx.Err(err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func (f *Finder) logger() Logger {
	if f.Log == nil {
		return discard{}
	}
	return f.Log
}
