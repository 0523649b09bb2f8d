// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"

	"src.lambda.sh/pkg/must"
	"src.lambda.sh/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args      []string
	stdin     string
	ttyStderr bool
	want      result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// ThatLambda returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "lambda -bad-flag" exits with 2 reads
// like:
//
//	ThatLambda("-bad-flag").ExitsWith(2)
func ThatLambda(args ...string) *Case {
	return &Case{args: append([]string{"lambda"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// WithTTYStderr returns an altered Case that connects stderr of the program to
// a pseudo-terminal. Since the terminal translates newlines, "\r\n" in the
// output is normalized to "\n" before being checked. The test is skipped if
// no pseudo-terminal is available.
func (c *Case) WithTTYStderr() *Case {
	c.ttyStderr = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	ThatLambda("-log", "log").DoesNothing()
func (c *Case) DoesNothing() *Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c *Case) ExitsWith(code int) *Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c *Case) WritesStdout(s string) *Case {
	c.want.stdout = output{s, false}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.want.stdout = output{s, true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c *Case) WritesStderr(s string) *Case {
	c.want.stderr = output{s, false}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.want.stderr = output{s, true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			stderr := stderrSetup(t, c.ttyStderr)
			r := run(p, c.args, c.stdin, stderr)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments. It returns the exit code and
// output to stdout and stderr.
func Run(p prog.Program, args ...string) (exit int, stdout, stderr string) {
	r := run(p, append([]string{"lambda"}, args...), "", pipeStderr())
	return r.exitCode, r.stdout.content, r.stderr.content
}

// A stderr for the program: the file to pass, a function that reads
// everything written to it after the file is closed, and a cleanup function.
type stderrFixture struct {
	w       *os.File
	read    func() string
	cleanup func()
}

func stderrSetup(t *testing.T, tty bool) stderrFixture {
	if !tty {
		return pipeStderr()
	}
	ptm, tty2, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	out := make(chan string, 1)
	go func() {
		// Reading from the master returns an error (EIO on Linux) once the
		// slave is closed; the data read so far is still valid.
		bs, _ := io.ReadAll(ptm)
		out <- strings.ReplaceAll(string(bs), "\r\n", "\n")
	}()
	return stderrFixture{tty2, func() string { return <-out }, func() { ptm.Close() }}
}

func pipeStderr() stderrFixture {
	r, w := must.Pipe()
	out := readAllAsync(r)
	return stderrFixture{w, func() string { return <-out }, func() {}}
}

func run(p prog.Program, args []string, stdin string, stderr stderrFixture) result {
	r0, w0 := must.Pipe()
	// TODO: This will block if stdin is larger than the pipe buffer; no test
	// needs that much input yet.
	must.OK1(w0.WriteString(stdin))
	must.OK(w0.Close())
	defer r0.Close()

	r1, w1 := must.Pipe()
	stdout := readAllAsync(r1)

	exit := prog.Run([3]*os.File{r0, w1, stderr.w}, args, p)
	w1.Close()
	stderr.w.Close()
	defer stderr.cleanup()

	return result{exit, output{content: <-stdout}, output{content: stderr.read()}}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
