package testutil

import (
	"os"

	"src.lambda.sh/pkg/must"
)

// InTempDir creates a temporary directory, changes into it for the duration of
// the test, and returns its path.
func InTempDir(c interface {
	Cleanuper
	TempDirer
}) string {
	dir := c.TempDir()
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}
