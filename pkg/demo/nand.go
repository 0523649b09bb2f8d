package demo

import (
	"io"
	"os"

	"src.lambda.sh/pkg/nand"
	"src.lambda.sh/pkg/prog"
)

// NAND is the "nand" subprogram. It shows truth tables of the operators
// derived from NAND.
type NAND struct {
	out *prog.Output
}

func (p *NAND) RegisterFlags(fs *prog.FlagSet) {
	p.out = fs.Output()
}

func (p *NAND) Run(fds [3]*os.File, args []string) error {
	args, ok := command(args, "nand")
	if !ok {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("nand: no arguments allowed")
	}
	tables := nand.Operators()
	return p.out.Write(fds[1], tables, func(w io.Writer) error {
		return writeTables(w, tables)
	})
}
