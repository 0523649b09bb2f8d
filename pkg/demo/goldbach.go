package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"src.lambda.sh/pkg/env"
	"src.lambda.sh/pkg/goldbach"
	"src.lambda.sh/pkg/prog"
	"src.lambda.sh/pkg/sys"
)

// Goldbach is the "goldbach" subprogram. It searches for an even number that
// is not the sum of two primes, and exits with 1 if it finds one.
//
// Without -to, the search only stops when it finds a counterexample or is
// interrupted. An interrupted search still reports how far it got.
type Goldbach struct {
	from, to, workers, chunk int
	out                      *prog.Output
}

func (p *Goldbach) RegisterFlags(fs *prog.FlagSet) {
	fs.IntVar(&p.from, "from", 4, "goldbach: smallest number to check")
	fs.IntVar(&p.to, "to", 0, "goldbach: largest number to check; 0 for no limit")
	fs.IntVar(&p.workers, "workers", defaultWorkers(),
		"goldbach: number of workers; 0 for one per CPU (default from $"+env.LAMBDA_WORKERS+")")
	fs.IntVar(&p.chunk, "chunk", goldbach.DefaultChunkSize, "goldbach: even numbers per unit of work")
	p.out = fs.Output()
}

// Can be overridden in tests.
var search = goldbach.Search

func defaultWorkers() int {
	n, err := strconv.Atoi(os.Getenv(env.LAMBDA_WORKERS))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (p *Goldbach) Run(fds [3]*os.File, args []string) error {
	args, ok := command(args, "goldbach")
	if !ok {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("goldbach: no arguments allowed; use -from and -to")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := goldbach.Options{
		From: p.from, To: p.to, Workers: p.workers, ChunkSize: p.chunk,
	}
	tty := sys.IsTerminal(fds[2])
	if tty {
		opts.Progress = func(upTo int) {
			fmt.Fprintf(fds[2], "\rchecked up to %d", upTo)
		}
	}
	result, err := search(ctx, opts)
	if tty {
		fmt.Fprintln(fds[2])
	}
	if err == goldbach.ErrBadRange {
		return prog.BadUsage(fmt.Sprintf("goldbach: -to %d is below -from %d", p.to, p.from))
	}
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	werr := p.out.Write(fds[1], result, func(w io.Writer) error {
		switch {
		case result.Found:
			_, err := fmt.Fprintf(w,
				"%d can not be expressed as the sum of two primes, Goldbach is disproven\n",
				result.Counterexample)
			return err
		case interrupted:
			_, err := fmt.Fprintf(w, "interrupted; no counterexample from %d (%d even numbers checked)\n",
				result.From, result.Checked)
			return err
		}
		_, err := fmt.Fprintf(w, "no counterexample from %d to %d (%d even numbers checked)\n",
			result.From, result.To, result.Checked)
		return err
	})
	if werr != nil {
		return werr
	}
	if result.Found {
		return prog.Exit(1)
	}
	if interrupted {
		return prog.Exit(exitInterrupted)
	}
	return nil
}

// Conventional exit status of a process stopped by SIGINT.
const exitInterrupted = 130
