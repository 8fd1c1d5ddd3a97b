package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestLoggerWritesToConfiguredOutput(t *testing.T) {
	var buf strings.Builder

	log, ok := New().(*Logger)
	require.True(t, ok)
	log.SetOutput(&buf)

	log.Info("startup complete")
	log.Warn("running under sudo")
	log.Error(zerr.New("probe failed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "startup complete")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "running under sudo")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "probe failed")
}
