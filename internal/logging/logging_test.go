package logging

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFile struct {
	bytes.Buffer
	closed int
}

func (f *recordingFile) Close() error {
	f.closed++
	return nil
}

func useRecordingFile(t *testing.T) *recordingFile {
	t.Helper()
	f := &recordingFile{}
	orig := openFile
	openFile = func(string) (io.WriteCloser, error) { return f, nil }
	t.Cleanup(func() { openFile = orig })
	return f
}

func TestWithClosesLogFileOnError(t *testing.T) {
	f := useRecordingFile(t)
	errRun := errors.New("run failed")

	err := With(Options{Level: "info", File: "run.log"}, func(logger *log.Logger) error {
		logger.Info("run started")
		return errRun
	})

	require.ErrorIs(t, err, errRun)
	assert.Equal(t, 1, f.closed, "log file closed exactly once")
	assert.Contains(t, f.String(), "run started")
}

func TestWithClosesLogFileOnSuccess(t *testing.T) {
	f := useRecordingFile(t)

	err := With(Options{Level: "info", File: "run.log"}, func(*log.Logger) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 1, f.closed)
}

func TestWithInvalidLevel(t *testing.T) {
	called := false
	err := With(Options{Level: "loud"}, func(*log.Logger) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "invalid --log-level")
	assert.False(t, called)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanerun.log")

	logger, closeLog, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)
	logger.Debug("tick", "frame", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lanerun")
	assert.Contains(t, string(data), "tick")
}

func TestNewDiscardsByDefault(t *testing.T) {
	logger, closeLog, err := New(Options{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, closeLog)
	assert.NoError(t, closeLog())
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
