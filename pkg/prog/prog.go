// Package prog supports building testable, composable programs.
//
// The main abstraction of this package is the [Program] interface, which can
// be combined using [Composite]. The lambda binary is a composite of all the
// demonstration subprograms and the buildinfo subprogram; [Run] parses the
// command line and runs the first one that is suitable.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"src.lambda.sh/pkg/errutil"
	"src.lambda.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Can be overridden in tests.
var (
	closeLog       = logutil.Close
	stopCPUProfile = func(f *os.File) error {
		pprof.StopCPUProfile()
		return f.Close()
	}
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers subprogram-specific flags.
	RegisterFlags(f *FlagSet)
	// Run runs the subprogram. It may return ErrNotSuitable to let the next
	// program in a Composite run instead.
	Run(fds [3]*os.File, args []string) error
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: lambda [flags] command [args...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	var log, cpuProfile string
	var help bool

	fs := flag.NewFlagSet("lambda", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)
	fs.StringVar(&log, "log", "", "a file to write debug log to")
	fs.StringVar(&cpuProfile, "cpuprofile", "", "write CPU profile to file")
	fs.BoolVar(&help, "help", false, "show usage help and quit")
	p.RegisterFlags(&FlagSet{FlagSet: fs})

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	// Cleanup functions run in reverse order; their errors are reported
	// together as a single warning.
	var cleanups []func() error
	defer func() {
		var errs []error
		for i := len(cleanups) - 1; i >= 0; i-- {
			errs = append(errs, cleanups[i]())
		}
		if err := errutil.Multi(errs...); err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		}
	}()

	if log != "" {
		if err := logutil.SetOutputFile(log); err != nil {
			fmt.Fprintln(fds[2], err)
		} else {
			cleanups = append(cleanups, func() error {
				if err := closeLog(); err != nil {
					return fmt.Errorf("cannot close log: %w", err)
				}
				return nil
			})
		}
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot create CPU profile:", err)
			fmt.Fprintln(fds[2], "Continuing without CPU profiling.")
		} else {
			pprof.StartCPUProfile(f)
			cleanups = append(cleanups, func() error {
				if err := stopCPUProfile(f); err != nil {
					return fmt.Errorf("cannot close CPU profile: %w", err)
				}
				return nil
			})
		}
	}

	logger.Printf("running with args %q", fs.Args())
	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var bue badUsageError
	var ee exitError
	switch {
	case errors.As(err, &bue):
		usage(fds[2], fs)
	case errors.As(err, &ee):
		return ee.exit
	}
	return 2
}

// Composite returns a Program made up from other programs. It runs the first
// one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) RegisterFlags(f *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(f)
	}
}

func (cp compositeProgram) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
