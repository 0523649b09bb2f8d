package demo

import (
	"fmt"
	"io"
	"os"

	"src.lambda.sh/pkg/fix"
	"src.lambda.sh/pkg/prog"
)

// Factorial is the "factorial N..." subprogram. It computes each factorial
// with named recursion, self-passing recursion and the fixed-point combinator.
type Factorial struct {
	out *prog.Output
}

// FactorialResult is the output for one input of Factorial.
type FactorialResult struct {
	Input       int `json:"input" yaml:"input"`
	Named       int `json:"named" yaml:"named"`
	SelfPassing int `json:"self_passing" yaml:"self_passing"`
	Combinator  int `json:"combinator" yaml:"combinator"`
}

func (p *Factorial) RegisterFlags(fs *prog.FlagSet) {
	p.out = fs.Output()
}

func (p *Factorial) Run(fds [3]*os.File, args []string) error {
	args, ok := command(args, "factorial")
	if !ok {
		return prog.ErrNotSuitable
	}
	if len(args) == 0 {
		return prog.BadUsage("factorial: need at least one argument")
	}
	ns, err := parseInts("factorial", args)
	if err != nil {
		return err
	}
	results := make([]FactorialResult, len(ns))
	for i, n := range ns {
		results[i] = FactorialResult{
			Input:       n,
			Named:       fix.NamedFactorial(n),
			SelfPassing: fix.Factorial(n),
			Combinator:  fix.YFactorial(n),
		}
	}
	return p.out.Write(fds[1], results, func(w io.Writer) error {
		for _, r := range results {
			if r.Named == r.SelfPassing && r.Named == r.Combinator {
				fmt.Fprintf(w, "%d! = %d\n", r.Input, r.Named)
			} else {
				fmt.Fprintf(w, "%d! = %d (self-passing: %d, combinator: %d)\n",
					r.Input, r.Named, r.SelfPassing, r.Combinator)
			}
		}
		return nil
	})
}
