package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"INFO":    logging.LevelInfo,
		"":        logging.LevelInfo,
		"warning": logging.LevelWarn,
		" error ": logging.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.True(t, errors.Is(err, logging.ErrUnknownLevel))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", logging.LevelDebug.String())
	assert.Equal(t, "ERROR", logging.LevelError.String())
	assert.Equal(t, "UNKNOWN", logging.Level(42).String())
}

// TestNew_JSONFiltersByLevel checks that entries below the configured level are dropped.
func TestNew_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: logging.LevelWarn, Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.With("run_id", "r1").Warn("shown", "explored", 7)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "r1", entry["run_id"])
	assert.EqualValues(t, 7, entry["explored"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"})
	assert.True(t, errors.Is(err, logging.ErrUnknownFormat))
}

func TestNoOpLogger(t *testing.T) {
	var l logging.Logger = logging.NoOpLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x", "k", 1)
		l.Warn("x")
		l.Error("x")
	})
}
