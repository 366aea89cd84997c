package obslog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/internal/obslog"
)

func TestNewJSONFormatWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger := obslog.New("debug", "json", &buf)

	logger.Info().Str("activity", "a").Msg("hello")
	require.Contains(t, buf.String(), `"activity":"a"`)
	require.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := obslog.New("not-a-level", "json", &buf)

	logger.Debug().Msg("should be suppressed")
	require.Empty(t, buf.String())

	logger.Info().Msg("should appear")
	require.Contains(t, buf.String(), "should appear")
}

func TestNewConsoleFormatDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := obslog.New("info", "console", &buf)

	logger.Info().Msg("hello")
	require.NotEmpty(t, buf.String())
}
