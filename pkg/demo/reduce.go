package demo

import (
	"fmt"
	"io"
	"os"

	"src.lambda.sh/pkg/church"
	"src.lambda.sh/pkg/persistent/list"
	"src.lambda.sh/pkg/prog"
)

// Reduce is the "reduce X..." subprogram. It encodes the integer arguments as a
// Church list and folds it with church.Reduce.
type Reduce struct {
	out *prog.Output
}

// ReduceResult is the output of Reduce.
type ReduceResult struct {
	Input   []int `json:"input" yaml:"input"`
	Sum     int   `json:"sum" yaml:"sum"`
	Length  int   `json:"length" yaml:"length"`
	Rebuilt []int `json:"rebuilt" yaml:"rebuilt"`
}

func (p *Reduce) RegisterFlags(fs *prog.FlagSet) {
	p.out = fs.Output()
}

func (p *Reduce) Run(fds [3]*os.File, args []string) error {
	args, ok := command(args, "reduce")
	if !ok {
		return prog.ErrNotSuitable
	}
	ns, err := parseInts("reduce", args)
	if err != nil {
		return err
	}
	l := church.Encode(ns)

	sum := church.Reduce(func(x any, acc int) int { return x.(int) + acc })(0)(l)
	rebuilt, err := church.ToList[int](church.Reduce(church.Cons)(church.Nil)(l))
	if err != nil {
		return err
	}
	result := ReduceResult{
		Input: ns, Sum: sum, Length: church.Len(l), Rebuilt: list.Slice(rebuilt)}

	return p.out.Write(fds[1], result, func(w io.Writer) error {
		fmt.Fprintf(w, "input:   %v\n", result.Input)
		fmt.Fprintf(w, "sum:     %d\n", result.Sum)
		fmt.Fprintf(w, "length:  %d\n", result.Length)
		fmt.Fprintf(w, "rebuilt: %v\n", result.Rebuilt)
		return nil
	})
}
