// Lambda demonstrates computation built from functions alone: Church-encoded
// booleans and lists, anonymous recursion through a fixed-point combinator,
// boolean logic from NAND gates, and a search for a counterexample to
// Goldbach's conjecture.
package main

import (
	"os"

	"src.lambda.sh/pkg/buildinfo"
	"src.lambda.sh/pkg/demo"
	"src.lambda.sh/pkg/prog"
)

func main() {
	programs := append([]prog.Program{&buildinfo.Program{}}, demo.Programs()...)
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(programs...)))
}
