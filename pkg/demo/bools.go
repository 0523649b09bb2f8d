package demo

import (
	"fmt"
	"io"
	"os"

	"src.lambda.sh/pkg/church"
	"src.lambda.sh/pkg/nand"
	"src.lambda.sh/pkg/prog"
)

// Bools is the "bools" subprogram. It shows truth tables of the Church-encoded
// boolean operators.
type Bools struct {
	out *prog.Output
}

func (p *Bools) RegisterFlags(fs *prog.FlagSet) {
	p.out = fs.Output()
}

func (p *Bools) Run(fds [3]*os.File, args []string) error {
	args, ok := command(args, "bools")
	if !ok {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("bools: no arguments allowed")
	}
	tables, err := churchTables()
	if err != nil {
		return err
	}
	return p.out.Write(fds[1], tables, func(w io.Writer) error {
		return writeTables(w, tables)
	})
}

func churchTables() ([]nand.Table, error) {
	unary := func(op func(church.Fn) church.Fn) func(bool) bool {
		return func(a bool) bool {
			return church.EvalBool(op(church.FromBool(a)))
		}
	}
	binary := func(op func(church.Fn, church.Fn) church.Fn) func(bool, bool) bool {
		return func(a, b bool) bool {
			return church.EvalBool(op(church.FromBool(a), church.FromBool(b)))
		}
	}
	ifElse := func(a, b, c bool) bool {
		return church.IfElse(church.FromBool(a),
			func() bool { return b }, func() bool { return c })
	}
	ops := []struct {
		name string
		op   any
	}{
		{"NOT", unary(church.Not)},
		{"AND", binary(church.And)},
		{"OR", binary(church.Or)},
		{"XOR", binary(church.Xor)},
		{"NAND", binary(church.Nand)},
		{"IF", ifElse},
	}
	tables := make([]nand.Table, len(ops))
	for i, op := range ops {
		table, err := nand.TruthTable(op.name, op.op)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}
	return tables, nil
}

func writeTables(w io.Writer, tables []nand.Table) error {
	for i, table := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := io.WriteString(w, table.String()); err != nil {
			return err
		}
	}
	return nil
}
