// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	logFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix. All loggers returned by GetLogger
// write to the same sink, which is discarded until SetOutput or SetOutputFile
// is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.Lmsgprefix|log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(newout)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Close discards the output of all loggers obtained with GetLogger. If the old
// output was a file opened by SetOutputFile, it is closed and any error from
// closing it is returned.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	setOutput(io.Discard)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. If the file already exists, it is truncated. An empty name
// discards all output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	SetOutput(file)
	mu.Lock()
	logFile = file
	mu.Unlock()
	return nil
}

func setOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
