package logger

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(&buf)
	assert.NotPanics(t, func() {
		l.Debug("nodes %d", 128)
		l.Info("node %s", "127.0.0.1:1030")
		l.Warn("node %s removed", "127.0.0.1:1030")
		l.Error("lookup failed: %d", 404)
	})
}

func TestSetOpenLogger(t *testing.T) {
	old := DefaultLogger
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewStd(&buf))
	SetOpenLogger(false)
	DefaultLogger.Info("hidden")
	DefaultLogger.Error("hidden")
	assert.Equal(t, 0, buf.Len())
	SetOpenLogger(true)
	assert.True(t, DefaultLogger.(*bilogLogger).isOpen())

	SetDefault(nil)
	assert.Equal(t, NilLogger{}, DefaultLogger)
	assert.NotPanics(t, func() {
		SetOpenLogger(false)
		DefaultLogger.Info("nothing")
	})
}
