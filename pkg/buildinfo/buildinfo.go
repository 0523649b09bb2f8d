// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.lambda.sh/pkg/buildinfo.Var=value" to "go build" or
// "go get".
package buildinfo

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"src.lambda.sh/pkg/prog"
)

// VersionBase identifies the version of lambda. On development commits, it
// identifies the next release.
const VersionBase = "0.3.0"

// VersionSuffix is appended to VersionBase to build the full version string.
// It can be overridden when building lambda.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible. It can be
// overridden when building lambda.
var Reproducible = "false"

// Type contains all the build information fields.
type Type struct {
	Version      string `json:"version" yaml:"version"`
	GoVersion    string `json:"goversion" yaml:"goversion"`
	Reproducible bool   `json:"reproducible" yaml:"reproducible"`
}

// Value contains all the build information.
var Value = Type{
	Version:      VersionBase + VersionSuffix,
	GoVersion:    runtime.Version(),
	Reproducible: Reproducible == "true",
}

// Program is the buildinfo subprogram.
type Program struct {
	version, buildinfo bool
	out                *prog.Output
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.out = fs.Output()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		return p.out.Write(fds[1], Value, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Version: %v\nGo version: %v\nReproducible build: %v\n",
				Value.Version, Value.GoVersion, Value.Reproducible)
			return err
		})
	case p.version:
		return p.out.Write(fds[1], Value.Version, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, Value.Version)
			return err
		})
	default:
		return prog.ErrNotSuitable
	}
}
