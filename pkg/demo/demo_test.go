package demo

import (
	"context"
	"testing"

	"src.lambda.sh/pkg/env"
	"src.lambda.sh/pkg/goldbach"
	"src.lambda.sh/pkg/prog"
	. "src.lambda.sh/pkg/prog/progtest"
	"src.lambda.sh/pkg/testutil"
)

func programs() prog.Program {
	return prog.Composite(Programs()...)
}

func TestUnknownCommand(t *testing.T) {
	Test(t, programs(),
		ThatLambda("frobnicate").
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestFactorial(t *testing.T) {
	Test(t, programs(),
		ThatLambda("factorial", "0", "5", "-3", "15").
			WritesStdout("0! = 1\n5! = 120\n-3! = 1\n15! = 1307674368000\n"),
		ThatLambda("-json", "factorial", "5").
			WritesStdout(`[{"input":5,"named":120,"self_passing":120,"combinator":120}]`+"\n"),
		ThatLambda("-yaml", "factorial", "3").
			WritesStdout("- input: 3\n  named: 6\n  self_passing: 6\n  combinator: 6\n"),

		ThatLambda("factorial").
			ExitsWith(2).
			WritesStderrContaining("factorial: need at least one argument\nUsage:"),
		ThatLambda("factorial", "x").
			ExitsWith(2).
			WritesStderrContaining(`factorial: "x" is not an integer`),
	)
}

func TestReduce(t *testing.T) {
	Test(t, programs(),
		ThatLambda("reduce", "1", "2", "3").
			WritesStdout("input:   [1 2 3]\nsum:     6\nlength:  3\nrebuilt: [1 2 3]\n"),
		ThatLambda("-json", "reduce", "3", "-1").
			WritesStdout(`{"input":[3,-1],"sum":2,"length":2,"rebuilt":[3,-1]}`+"\n"),
		ThatLambda("-json", "reduce").
			WritesStdout(`{"input":[],"sum":0,"length":0,"rebuilt":[]}`+"\n"),
		ThatLambda("reduce", "1", "two").
			ExitsWith(2).
			WritesStderrContaining(`reduce: "two" is not an integer`),
	)
}

func TestBools(t *testing.T) {
	Test(t, programs(),
		ThatLambda("bools").
			WritesStdoutContaining("NOT\n0 | 1\n1 | 0\n\nAND\n"),
		ThatLambda("bools").
			WritesStdoutContaining("XOR\n0 0 | 0\n0 1 | 1\n1 0 | 1\n1 1 | 0\n"),
		ThatLambda("bools").
			WritesStdoutContaining("IF\n0 0 0 | 0\n0 0 1 | 1\n"),
		ThatLambda("-json", "bools").
			WritesStdoutContaining(`{"name":"NOT","rows":[{"in":[false],"out":true},{"in":[true],"out":false}]}`),
		ThatLambda("bools", "extra").
			ExitsWith(2).
			WritesStderrContaining("bools: no arguments allowed"),
	)
}

func TestNAND(t *testing.T) {
	Test(t, programs(),
		ThatLambda("nand").
			WritesStdoutContaining("NAND\n0 0 | 1\n0 1 | 1\n1 0 | 1\n1 1 | 0\n"),
		ThatLambda("nand").
			WritesStdoutContaining("NOT2\n0 | 1\n1 | 0\n"),
		ThatLambda("-yaml", "nand").
			WritesStdoutContaining("- name: NAND\n"),
		ThatLambda("nand", "extra").
			ExitsWith(2).
			WritesStderrContaining("nand: no arguments allowed"),
	)
}

func TestGoldbach(t *testing.T) {
	Test(t, programs(),
		ThatLambda("-to", "100", "goldbach").
			WritesStdout("no counterexample from 4 to 100 (49 even numbers checked)\n"),
		ThatLambda("-from", "-5", "-to", "100", "goldbach").
			WritesStdout("no counterexample from 4 to 100 (49 even numbers checked)\n"),
		ThatLambda("-from", "11", "-to", "20", "goldbach").
			WritesStdout("no counterexample from 12 to 20 (5 even numbers checked)\n"),
		ThatLambda("-json", "-from", "10", "-to", "20", "-workers", "2", "goldbach").
			WritesStdout(`{"from":10,"to":20,"found":false,"checked":6}`+"\n"),
		ThatLambda("-from", "100", "-to", "50", "goldbach").
			ExitsWith(2).
			WritesStderrContaining("goldbach: -to 50 is below -from 100\nUsage:"),
		ThatLambda("goldbach", "100").
			ExitsWith(2).
			WritesStderrContaining("goldbach: no arguments allowed"),
	)
}

func TestGoldbach_ProgressOnTerminal(t *testing.T) {
	Test(t, programs(),
		ThatLambda("-to", "100", "-chunk", "10", "-workers", "1", "goldbach").
			WithTTYStderr().
			WritesStdoutContaining("no counterexample").
			WritesStderrContaining("checked up to 100\n"),
	)
}

func TestGoldbach_Counterexample(t *testing.T) {
	testutil.Set(t, &search, func(ctx context.Context, opts goldbach.Options) (goldbach.Result, error) {
		return goldbach.Result{From: 4, Found: true, Counterexample: 1234, Checked: 616}, nil
	})
	Test(t, programs(),
		ThatLambda("goldbach").
			ExitsWith(1).
			WritesStdout("1234 can not be expressed as the sum of two primes, Goldbach is disproven\n"),
		ThatLambda("-json", "goldbach").
			ExitsWith(1).
			WritesStdout(`{"from":4,"to":0,"found":true,"counterexample":1234,"checked":616}`+"\n"),
	)
}

func TestDefaultWorkers(t *testing.T) {
	testutil.Setenv(t, env.LAMBDA_WORKERS, "3")
	if got := defaultWorkers(); got != 3 {
		t.Errorf("defaultWorkers() = %d, want 3", got)
	}
	testutil.Setenv(t, env.LAMBDA_WORKERS, "bad")
	if got := defaultWorkers(); got != 0 {
		t.Errorf("defaultWorkers() = %d, want 0", got)
	}
	testutil.Unsetenv(t, env.LAMBDA_WORKERS)
	if got := defaultWorkers(); got != 0 {
		t.Errorf("defaultWorkers() with $%s unset = %d, want 0", env.LAMBDA_WORKERS, got)
	}
}

func TestGoldbach_Interrupted(t *testing.T) {
	testutil.Set(t, &search, func(ctx context.Context, opts goldbach.Options) (goldbach.Result, error) {
		return goldbach.Result{From: 4, Checked: 42}, context.Canceled
	})
	Test(t, programs(),
		ThatLambda("goldbach").
			ExitsWith(130).
			WritesStdout("interrupted; no counterexample from 4 (42 even numbers checked)\n"),
		ThatLambda("-json", "goldbach").
			ExitsWith(130).
			WritesStdout(`{"from":4,"to":0,"found":false,"checked":42}`+"\n"),
	)
}

func TestGoldbach_SearchError(t *testing.T) {
	testutil.Set(t, &search, func(ctx context.Context, opts goldbach.Options) (goldbach.Result, error) {
		return goldbach.Result{}, context.DeadlineExceeded
	})
	Test(t, programs(),
		ThatLambda("goldbach").
			ExitsWith(2).
			WritesStderr("context deadline exceeded\n"),
	)
}
