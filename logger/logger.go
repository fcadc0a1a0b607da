// Package logger implements a line-oriented logger writing
// severity-tagged, optionally timestamped text lines to a stream.
//
// The layout is fixed:
//
//	|2021-05-08 20:55:07| [INFO] (My program) Attempting to verify update...
//
// The date stamp, time stamp and logger name can each be switched off
// independently; a disabled segment is omitted together with its
// separator, down to the bare form:
//
//	[ERROR] This is just a very ugly message
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Severity is the ordered severity level of a log entry.
type Severity int

const (
	// Debug is for debugging information that does not reach production.
	Debug Severity = iota
	// Info is for general log messages.
	Info
	// Warn is for things that could cause potential problems.
	Warn
	// Error is for errors the user should fix but the program can
	// recover from, or at least close gracefully after.
	Error
	// Fatal is for problems so severe the program cannot recover.
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "invalid"
	}
}

// Logger writes one formatted line per call to its output stream.
// Methods are not safe for concurrent use of a shared writer unless the
// writer itself is.
type Logger struct {
	out  io.Writer
	name string
	date bool
	time bool

	now func() time.Time // Overridable clock for tests.
}

// New constructs a logger writing to out. With date and time enabled
// the line carries a |DATE TIME| stamp; name, when non-empty, appears
// as a (NAME) segment before the message.
func New(out io.Writer, date, time bool, name string) *Logger {
	return &Logger{out: out, name: name, date: date, time: time}
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger: stdout, date and time
// stamps enabled, named "STDOUT". The same instance is returned on
// every call.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stdout, true, true, "STDOUT")
	})
	return defaultLogger
}

// Log writes msg as one line at the given severity.
func (l *Logger) Log(sev Severity, msg string) {
	var sb strings.Builder
	l.writeHeader(&sb, sev)
	sb.WriteString(msg)
	sb.WriteByte('\n')
	io.WriteString(l.out, sb.String())
}

// Logf formats according to fmt rules and writes the result as one
// line at the given severity.
func (l *Logger) Logf(sev Severity, format string, args ...any) {
	l.Log(sev, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string) { l.Log(Debug, msg) }
func (l *Logger) Info(msg string)  { l.Log(Info, msg) }
func (l *Logger) Warn(msg string)  { l.Log(Warn, msg) }
func (l *Logger) Error(msg string) { l.Log(Error, msg) }
func (l *Logger) Fatal(msg string) { l.Log(Fatal, msg) }

func (l *Logger) writeHeader(sb *strings.Builder, sev Severity) {
	if l.date || l.time {
		t := time.Now()
		if l.now != nil {
			t = l.now()
		}
		sb.WriteByte('|')
		if l.date {
			sb.WriteString(t.Format("2006-01-02"))
			if l.time {
				sb.WriteByte(' ')
			}
		}
		if l.time {
			sb.WriteString(t.Format("15:04:05"))
		}
		sb.WriteString("| ")
	}
	sb.WriteByte('[')
	sb.WriteString(sev.String())
	sb.WriteString("] ")
	if l.name != "" {
		sb.WriteByte('(')
		sb.WriteString(l.name)
		sb.WriteString(") ")
	}
}
