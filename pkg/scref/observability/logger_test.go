package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *testHandler) getLastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) > 0 {
			var m map[string]any
			if err := json.Unmarshal(lines[i], &m); err == nil {
				return m
			}
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds slot and guard_id", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		enriched := EnrichLogger(logger, 2, "grd-abc")
		enriched.Info("test message")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, float64(2), record["slot"]) // JSON decodes ints as float64
		assert.Equal(t, "grd-abc", record["guard_id"])
		assert.Equal(t, "test message", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, 0, "grd-abc"))
	})
}

func TestLogRegister(t *testing.T) {
	t.Run("logs at DEBUG level", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogRegister(logger, 1, "grd-123")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "capability registered", record["msg"])
		assert.Equal(t, float64(1), record["slot"])
		assert.Equal(t, "grd-123", record["guard_id"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogRegister(nil, 0, "grd-123")
		})
	})
}

func TestLogRelease(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogRelease(logger, 3, "grd-456")

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "capability released", record["msg"])
	assert.Equal(t, float64(3), record["slot"])
}

func TestLogRegistryFull(t *testing.T) {
	t.Run("logs at WARN level with capacity", func(t *testing.T) {
		h := newTestHandler()
		logger := slog.New(h)

		LogRegistryFull(logger, 8)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "registry full", record["msg"])
		assert.Equal(t, float64(8), record["capacity"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogRegistryFull(nil, 8)
		})
	})
}

func TestLogNotifyComplete(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogNotifyComplete(logger, 5, 12.5)

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "notify completed", record["msg"])
	assert.Equal(t, float64(5), record["delivered"])
	assert.Equal(t, 12.5, record["duration_ms"])
}

func TestLogNotifyError(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogNotifyError(logger, 2, errors.New("subscriber exploded"))

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "capability failed", record["msg"])
	assert.Equal(t, float64(2), record["slot"])
	assert.Equal(t, "subscriber exploded", record["error"])
}

func TestLogJournalError(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogJournalError(logger, "register", errors.New("disk full"))

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "journal append failed", record["msg"])
	assert.Equal(t, "register", record["operation"])
	assert.Equal(t, "disk full", record["error"])
}

func TestTimedOperation(t *testing.T) {
	t.Run("measures duration", func(t *testing.T) {
		done := TimedOperation()
		time.Sleep(10 * time.Millisecond)
		duration := done()

		assert.GreaterOrEqual(t, duration, 10.0)
		assert.Less(t, duration, 100.0)
	})

	t.Run("can be called multiple times", func(t *testing.T) {
		done := TimedOperation()
		time.Sleep(5 * time.Millisecond)
		d1 := done()
		time.Sleep(5 * time.Millisecond)
		d2 := done()

		assert.Greater(t, d2, d1)
	})
}
