package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureEntry(t *testing.T, l *Logger, emit func(l *Logger)) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	emit(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	entry := captureEntry(t, NewLogger("paperdesk-test"), func(l *Logger) {
		l.Info().Msg("привет")
	})

	assert.Equal(t, "paperdesk-test", entry["role"])
	assert.Equal(t, "привет", entry["message"])
	assert.Contains(t, entry, "time")
	// caller записывается полным именем функции
	assert.Contains(t, entry["func"], "logger.TestNewLogger_EntryShape")
}

func TestNop_DiscardsEverything(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("должно пропасть")

	assert.Zero(t, buf.Len())
}

func TestFromContext_RoundTrip(t *testing.T) {
	l := NewLogger("ctx-role")
	ctx := l.WithContext(context.Background())

	entry := captureEntry(t, FromContext(ctx), func(l *Logger) {
		l.Info().Msg("scoped")
	})

	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromContext_BareContextIsSafe(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Debug().Msg("fallback") })
}
