package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"real-estate-agency/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPost struct {
	tag  string
	data port.Fields
}

type fakeFluent struct {
	posts  []recordedPost
	closed bool
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.posts = append(f.posts, recordedPost{tag: tag, data: message.(port.Fields)})
	return nil
}

func (f *fakeFluent) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelInfo, IsJSON: true})

	logger.WithFields(port.Fields{"component": "test"}).Error("Request failed", errors.New("boom"), port.Fields{"status": 500})
	logger.Debug("hidden", nil)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "Request failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, float64(500), entry["status"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestFluentLoggerAdapter(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, "listing-service", slog.LevelInfo)
	require.NoError(t, err)

	scoped := adapter.WithFields(port.Fields{"trace_id": "abc"})
	scoped.Debug("dropped", nil)
	scoped.Warn("Slow query", port.Fields{"ms": 950})
	scoped.Error("Failed", errors.New("boom"), nil)

	require.Len(t, client.posts, 2)
	assert.Equal(t, "listing-service.warn", client.posts[0].tag)
	assert.Equal(t, "abc", client.posts[0].data["trace_id"])
	assert.Equal(t, 950, client.posts[0].data["ms"])
	assert.Equal(t, "Slow query", client.posts[0].data["message"])
	assert.Equal(t, "boom", client.posts[1].data["error"])

	// поля родителя не меняются
	adapter.Info("plain", nil)
	_, has := client.posts[2].data["trace_id"]
	assert.False(t, has)

	require.NoError(t, adapter.Close())
	assert.True(t, client.closed)
}

func TestFluentLoggerAdapter_NoPrefix(t *testing.T) {
	client := &fakeFluent{}
	adapter, _ := NewFluentLoggerAdapter(client, "", nil)

	adapter.Info("hello", nil)

	assert.Equal(t, "info", client.posts[0].tag)
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, "x", slog.LevelInfo)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	first, second := &fakeFluent{}, &fakeFluent{}
	a, _ := NewFluentLoggerAdapter(first, "a", slog.LevelDebug)
	b, _ := NewFluentLoggerAdapter(second, "b", slog.LevelWarn)

	multi, err := NewMultiLoggerAdapter(a, nil, b)
	require.NoError(t, err)

	scoped := multi.WithFields(port.Fields{"service_name": "listing-service"})
	scoped.Info("started", nil)
	scoped.Warn("careful", nil)

	assert.Len(t, first.posts, 2)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "listing-service", second.posts[0].data["service_name"])

	_, err = NewMultiLoggerAdapter()
	assert.Error(t, err)
}
