// Package demo contains the subprograms of the lambda binary, one for each
// demonstration.
//
// Each subprogram is selected by its command name, the first non-flag
// argument. All of them support the -json and -yaml output flags.
package demo

import (
	"fmt"
	"strconv"

	"src.lambda.sh/pkg/logutil"
	"src.lambda.sh/pkg/prog"
)

var logger = logutil.GetLogger("[demo] ")

// Programs returns all the demonstration subprograms.
func Programs() []prog.Program {
	return []prog.Program{
		&Factorial{}, &Reduce{}, &Bools{}, &NAND{}, &Goldbach{},
	}
}

// Returns the arguments after the command if the command matches name.
func command(args []string, name string) ([]string, bool) {
	if len(args) == 0 || args[0] != name {
		return nil, false
	}
	logger.Printf("running %s with %q", name, args[1:])
	return args[1:], true
}

func parseInts(cmd string, args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, prog.BadUsage(fmt.Sprintf("%s: %q is not an integer", cmd, arg))
		}
		ns[i] = n
	}
	return ns, nil
}
