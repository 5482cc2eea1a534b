// Package logging builds the charmbracelet logger used by the CLI and drivers.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options selects the level and destination of the log.
type Options struct {
	Level    string
	File     string
	ToStderr bool
}

var openFile = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// New builds a logger. The terminal driver owns stdout and stderr, so
// without File and ToStderr everything is discarded. The returned close
// func is never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	switch {
	case opts.File != "":
		f, err := openFile(opts.File)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		w = f
		closeFn = f.Close
	case opts.ToStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lanerun",
		Level:           level,
	})
	return logger, closeFn, nil
}

// With runs fn with a logger built from opts. The log file is closed when fn
// returns, on error paths too.
func With(opts Options, fn func(*log.Logger) error) error {
	logger, closeLog, err := New(opts)
	if err != nil {
		return err
	}

	err = fn(logger)
	if cerr := closeLog(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close log file: %w", cerr)
	}
	return err
}
