// Package compileinfo reports the module version and VCS state a binary was
// built from.
package compileinfo

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
)

type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%s %s", c.Package, c.Version)

	if c.Commit != "" {
		fmt.Fprintf(&b, " (commit %s at %s", c.Commit, c.CommitTime)
		if c.Modified {
			b.WriteString(", modified")
		}
		b.WriteString(")")
	}

	fmt.Fprintf(&b, " built with %s", c.GoVersion)

	return b.String()
}

// FromBuildInfo extracts a CompileInfo from build metadata.
func FromBuildInfo(bi *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		Package:   bi.Path,
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Get describes the running binary. It is empty when the binary carries no
// build information.
func Get() CompileInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return FromBuildInfo(bi)
}

func Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", Get())
}
