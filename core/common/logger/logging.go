package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/zbh255/bilog"
)

const (
	OpenLogger  int64 = 1 << 10
	CloseLogger int64 = 1 << 11
)

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

var DefaultLogger Logger = NewStd(os.Stdout)

type bilogLogger struct {
	status  int64
	logging bilog.Logger
}

// New 包装一个bilog.Logger, 默认处于打开状态
func New(l bilog.Logger) Logger {
	return &bilogLogger{status: OpenLogger, logging: l}
}

// NewStd builds the default bilog configuration on top of w.
func NewStd(w io.Writer) Logger {
	return New(bilog.NewLogger(
		w, bilog.PANIC,
		bilog.WithTimes(),
		bilog.WithCaller(1),
		bilog.WithLowBuffer(0),
		bilog.WithTopBuffer(0),
	))
}

func (l *bilogLogger) Debug(format string, v ...interface{}) {
	if !l.isOpen() {
		return
	}
	l.logging.Debug(fmt.Sprintf(format, v...))
}

func (l *bilogLogger) Info(format string, v ...interface{}) {
	if !l.isOpen() {
		return
	}
	l.logging.Info(fmt.Sprintf(format, v...))
}

func (l *bilogLogger) Warn(format string, v ...interface{}) {
	if !l.isOpen() {
		return
	}
	l.logging.Trace(fmt.Sprintf(format, v...))
}

func (l *bilogLogger) Error(format string, v ...interface{}) {
	if !l.isOpen() {
		return
	}
	l.logging.ErrorFromString(fmt.Sprintf(format, v...))
}

func (l *bilogLogger) isOpen() bool {
	return atomic.LoadInt64(&l.status) == OpenLogger
}

// SetOpenLogger switches DefaultLogger on or off. Loggers that were not
// built by New are left alone.
func SetOpenLogger(ok bool) {
	l, typeOk := DefaultLogger.(*bilogLogger)
	if !typeOk {
		return
	}
	if ok {
		atomic.StoreInt64(&l.status, OpenLogger)
	} else {
		atomic.StoreInt64(&l.status, CloseLogger)
	}
}

// SetDefault replaces DefaultLogger, nil installs NilLogger.
// It is meant to be called during initialization.
func SetDefault(l Logger) {
	if l == nil {
		l = NilLogger{}
	}
	DefaultLogger = l
}
