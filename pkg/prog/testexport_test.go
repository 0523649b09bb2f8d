package prog

// Pointers to functions that can be mutated for testing.
var (
	CloseLog       = &closeLog
	StopCPUProfile = &stopCPUProfile
)
