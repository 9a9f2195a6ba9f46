package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_WritesLevelMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "c", 3)

	out := buf.String()
	for _, s := range []string{"DBG", "dbg", "a=1", "INF", "inf", "b=two", "WRN", "wrn", "ERR", "err", "c=3"} {
		assert.Contains(t, out, s)
	}
}

func TestConsoleLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleLogger_With_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info").With("component", "session")

	log.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "component=session")
}

func TestFieldsFromArgs_OddCountKeepsBadKey(t *testing.T) {
	f := fieldsFromArgs([]any{"k", "v", "dangling"})
	require.Len(t, f, 2)
	assert.Equal(t, "v", f["k"])
	assert.Equal(t, "dangling", f["!BADKEY"])
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New(FormatConsole, "info", &buf).(*ZerologLogger)
	assert.True(t, ok)

	_, ok = New(FormatJSON, "info", &buf).(*SlogLogger)
	assert.True(t, ok)

	_, ok = New("whatever", "info", &buf).(*SlogLogger)
	assert.True(t, ok)
}

func TestNew_JSONFormatEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	New(FormatJSON, "info", &buf).Info(context.Background(), "hi", "k", "v")

	assert.Contains(t, buf.String(), `"msg":"hi"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
