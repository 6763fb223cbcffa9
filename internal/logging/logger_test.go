package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("imported", "slug", "hello-world")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "imported", entry["msg"])
	assert.Equal(t, "hello-world", entry["slug"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	logger.Debug("parsing", "file", "a.md")
	assert.Contains(t, buf.String(), "msg=parsing")
	assert.Contains(t, buf.String(), "file=a.md")
	assert.Contains(t, buf.String(), "source=")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}

func TestContextLogger(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)
	ctx := WithLogger(context.Background(), logger)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, logger, got)

	_, ok = FromContext(WithLogger(context.Background(), nil))
	assert.False(t, ok, "a nil logger is treated as absent")
}
