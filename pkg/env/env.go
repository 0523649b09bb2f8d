// Package env keeps names of environment variables with special significance to
// lambda.
package env

// Environment variables with special significance to lambda.
const (
	// Scales all timeouts used in tests. See testutil.Scaled.
	LAMBDA_TEST_TIME_SCALE = "LAMBDA_TEST_TIME_SCALE"
	// Overrides the default number of goldbach search workers.
	LAMBDA_WORKERS = "LAMBDA_WORKERS"
)
