package goldbach

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"src.lambda.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[goldbach] ")

// ErrBadRange is returned by Search when the upper bound is below the lower
// bound.
var ErrBadRange = errors.New("upper bound is below lower bound")

// DefaultChunkSize is the number of even numbers checked by one unit of work
// when Options.ChunkSize is not positive.
const DefaultChunkSize = 1000

// Options controls Search.
type Options struct {
	// Smallest number to check. Values below 4 are treated as 4, and odd
	// values are rounded up.
	From int
	// Largest number to check. Zero means no upper bound other than the
	// largest even int.
	To int
	// Maximum number of goroutines checking numbers. Defaults to
	// runtime.GOMAXPROCS(0).
	Workers int
	// Number of even numbers checked by one unit of work. Defaults to
	// DefaultChunkSize.
	ChunkSize int
	// If not nil, called after each unit of work, with the largest number
	// it checked. Calls are never concurrent, but may be out of order.
	Progress func(upTo int)
}

// Result is the outcome of a Search.
type Result struct {
	// The first even number checked, after applying the rules of
	// Options.From.
	From int `json:"from" yaml:"from"`
	// Options.To.
	To int `json:"to" yaml:"to"`
	// Whether a counterexample was found.
	Found bool `json:"found" yaml:"found"`
	// The smallest counterexample, if Found.
	Counterexample int `json:"counterexample,omitempty" yaml:"counterexample,omitempty"`
	// Number of even numbers checked.
	Checked int64 `json:"checked" yaml:"checked"`
}

// Search checks every even number in the range given by opts, returning the
// smallest one that is not the sum of two primes.
//
// If ctx is cancelled, Search returns the partial result along with ctx.Err().
// With no upper bound, Search only returns when it finds a counterexample or
// ctx is cancelled.
func Search(ctx context.Context, opts Options) (Result, error) {
	if opts.To != 0 && opts.To < opts.From {
		return Result{}, ErrBadRange
	}
	last := opts.To
	if last == 0 {
		last = math.MaxInt
	}
	last -= last % 2
	from := opts.From
	if from < 4 {
		from = 4
	}
	if from%2 != 0 && from < last {
		from++
	}
	if from > last {
		return Result{From: from, To: opts.To}, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	} else if chunkSize > math.MaxInt/4 {
		chunkSize = math.MaxInt / 4
	}
	// Distance between the first and last number of a chunk.
	span := 2 * (chunkSize - 1)
	logger.Printf("searching from %d to %d with %d workers", from, last, workers)

	var (
		checked  atomic.Int64
		mu       sync.Mutex
		found    bool
		smallest int
	)
	hasFound := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return found
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	// Bounds are compared by difference so that nothing overflows near
	// math.MaxInt.
	for start := from; ; start += span + 2 {
		if gctx.Err() != nil || hasFound() {
			break
		}
		end := last
		if last-start > span {
			end = start + span
		}
		start := start
		g.Go(func() error {
			n, counterexample, err := checkRange(gctx, start, end)
			checked.Add(n)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if counterexample != 0 {
				logger.Printf("counterexample: %d", counterexample)
				if !found || counterexample < smallest {
					found, smallest = true, counterexample
				}
			}
			if opts.Progress != nil {
				opts.Progress(end)
			}
			return nil
		})
		if end == last {
			break
		}
	}
	err := g.Wait()
	if err == nil {
		// The loop may have stopped dispatching because the parent context
		// was cancelled without any worker noticing.
		err = ctx.Err()
	}
	result := Result{
		From: from, To: opts.To,
		Found: found, Counterexample: smallest, Checked: checked.Load(),
	}
	if err != nil && !found {
		logger.Printf("search stopped: %v", err)
		return result, err
	}
	return result, nil
}

// Can be overridden in tests.
var hasWitness = func(n int) bool {
	_, _, ok := Witness(n)
	return ok
}

// Checks even numbers in [start, end], stopping at the first counterexample.
// It returns how many numbers were checked and the counterexample, or 0. The
// caller ensures that start <= end and both are even.
func checkRange(ctx context.Context, start, end int) (int64, int, error) {
	var n int64
	for i := start; ; i += 2 {
		if err := ctx.Err(); err != nil {
			return n, 0, err
		}
		n++
		if !hasWitness(i) {
			return n, i, nil
		}
		if i == end {
			return n, 0, nil
		}
	}
}
