package nand

import (
	"fmt"
	"strings"
)

// Row is one row of a truth table.
type Row struct {
	In  []bool `json:"in" yaml:"in"`
	Out bool   `json:"out" yaml:"out"`
}

// Table is the truth table of a boolean function.
type Table struct {
	Name string `json:"name" yaml:"name"`
	Rows []Row  `json:"rows" yaml:"rows"`
}

// TruthTable enumerates all inputs of op, which must be a func(bool) bool,
// func(bool, bool) bool or func(bool, bool, bool) bool. Inputs are enumerated
// in counting order with false before true.
func TruthTable(name string, op any) (Table, error) {
	var arity int
	var eval func(in []bool) bool
	switch op := op.(type) {
	case func(bool) bool:
		arity, eval = 1, func(in []bool) bool { return op(in[0]) }
	case func(bool, bool) bool:
		arity, eval = 2, func(in []bool) bool { return op(in[0], in[1]) }
	case func(bool, bool, bool) bool:
		arity, eval = 3, func(in []bool) bool { return op(in[0], in[1], in[2]) }
	default:
		return Table{}, fmt.Errorf("unsupported operator type %T", op)
	}
	table := Table{Name: name}
	for i := 0; i < 1<<arity; i++ {
		in := make([]bool, arity)
		for j := range in {
			in[j] = i&(1<<(arity-1-j)) != 0
		}
		table.Rows = append(table.Rows, Row{in, eval(in)})
	}
	return table, nil
}

// String formats the table with one row per line, using 0 and 1 for false and
// true.
func (t Table) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for _, in := range row.In {
			sb.WriteString(bit(in))
			sb.WriteString(" ")
		}
		sb.WriteString("| ")
		sb.WriteString(bit(row.Out))
		sb.WriteString("\n")
	}
	return sb.String()
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Operators returns the truth tables of every operator in this package.
func Operators() []Table {
	ops := []struct {
		name string
		op   any
	}{
		{"NAND", Nand},
		{"NOT", Not},
		{"AND", And},
		{"OR", Or},
		{"IF", If},
		{"NOT2", Not2},
		{"XOR", Xor},
	}
	tables := make([]Table, len(ops))
	for i, op := range ops {
		// All operators have supported types.
		tables[i], _ = TruthTable(op.name, op.op)
	}
	return tables
}
