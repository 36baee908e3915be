package placer

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is the logging surface used throughout the placer. Hosts may pass
// their own implementation.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func (lv level) String() string {
	switch lv {
	case levelDebug:
		return "DEBUG"
	case levelInfo:
		return "INFO"
	case levelWarn:
		return "WARN"
	}
	return "ERROR"
}

// loggerCore is shared by a logger and every logger derived from it with
// Named.
type loggerCore struct {
	mu    sync.Mutex
	debug bool
	out   *log.Logger
	err   *log.Logger
}

// DefaultLogger writes debug and info lines to one writer and warnings and
// errors to another, each prefixed with the component name.
type DefaultLogger struct {
	core   *loggerCore
	prefix string
}

// NewDefaultLogger logs to stdout and stderr.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewDefaultLoggerTo(prefix, debug, os.Stdout, os.Stderr)
}

func NewDefaultLoggerTo(prefix string, debug bool, out, errOut io.Writer) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		core: &loggerCore{
			debug: debug,
			out:   log.New(out, "", flags),
			err:   log.New(errOut, "", flags),
		},
		prefix: prefix,
	}
}

// Named returns a logger for one component. It shares the debug flag and
// outputs with l; its prefix is "<prefix>/<name>".
func (l *DefaultLogger) Named(name string) *DefaultLogger {
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "/" + name
	}
	return &DefaultLogger{core: l.core, prefix: prefix}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	return l.core.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.core.mu.Lock()
	l.core.debug = enabled
	l.core.mu.Unlock()
}

func (l *DefaultLogger) logf(lv level, format string, args ...any) {
	if lv == levelDebug && !l.DebugEnabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = fmt.Sprintf("[%s] %s: %s", l.prefix, lv, msg)
	} else {
		msg = fmt.Sprintf("%s: %s", lv, msg)
	}
	if lv >= levelWarn {
		l.core.err.Print(msg)
		return
	}
	l.core.out.Print(msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.logf(levelDebug, format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any)  { l.logf(levelInfo, format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.logf(levelWarn, format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.logf(levelError, format, args...) }

type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

func loggerOrNop(l Logger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return l
}
