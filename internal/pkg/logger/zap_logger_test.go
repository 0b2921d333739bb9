package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core)

	l.Info("chat", "message created", map[string]interface{}{"session_id": "s-1"})
	l.Warn("character", "update denied", nil)
	l.Error("chat", "store failure", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	assert.Len(t, entries, 3)

	first := entries[0]
	assert.Equal(t, "message created", first.Message)
	assert.Equal(t, "chat", first.ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{"session_id": "s-1"}, first.ContextMap()["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("test", "ignored", nil)
	assert.NoError(t, l.Sync())
}
