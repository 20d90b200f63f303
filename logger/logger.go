package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// timestampLayout renders the instant with millisecond precision.
// Go truncates fractional seconds when formatting, so 12.3459s prints as 12.345.
const timestampLayout = "2006-01-02 15:04:05.000"

var (
	// ErrOpen is matched by every error returned from Open when the file cannot be opened.
	ErrOpen = errors.New("failed to open logging file")
	// ErrClosed is returned by Output after Close.
	ErrClosed = errors.New("logger is closed")
)

// Dependency injection point for testing the open failure diagnostic.
var outStderr io.Writer = os.Stderr

// Clock returns the current instant. It is called once per line.
type Clock func() time.Time

// OpenError reports the path that could not be opened and why.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrOpen, e.Path, e.Err)
}

func (e *OpenError) Unwrap() []error {
	return []error{ErrOpen, e.Err}
}

// Logger writes timestamped, level-tagged lines to a single file it owns.
// It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	level Level
	file  *os.File
	path  string
	clock Clock
	loc   *time.Location
}

type options struct {
	clock       Clock
	loc         *time.Location
	diagnostics io.Writer
}

// Option configures Open.
type Option func(*options)

// WithClock sets the time source used for line timestamps.
// Default: time.Now
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLocation sets the zone timestamps are rendered in.
// Default: time.UTC
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithDiagnostics sets where the open failure diagnostic is written.
// Default: os.Stderr
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.diagnostics = w
		}
	}
}

// Open creates or truncates the file at path and returns a Logger bound to it.
// The file exists as soon as Open returns successfully, even before any line is written.
//
// If the file cannot be opened, a diagnostic naming the path is written to
// stderr (or the WithDiagnostics writer) and a *OpenError is returned.
func Open(level Level, path string, opts ...Option) (*Logger, error) {
	o := options{
		clock:       time.Now,
		loc:         time.UTC,
		diagnostics: outStderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		diag := clog.NewWithOptions(o.diagnostics, clog.Options{
			Prefix:          "logger",
			ReportTimestamp: true,
		})
		diag.Error(ErrOpen.Error(), "path", path, "err", err)
		return nil, &OpenError{Path: path, Err: err}
	}

	return &Logger{
		level: level,
		file:  f,
		path:  path,
		clock: o.clock,
		loc:   o.loc,
	}, nil
}

// With opens a Logger, passes it to fn and closes it on every exit path, panics included.
// It returns the open error, else fn's error, else the close error.
func With(level Level, path string, fn func(*Logger) error, opts ...Option) (err error) {
	l, err := Open(level, path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := l.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(l)
}

// Path returns the path the Logger was opened with.
func (l *Logger) Path() string {
	return l.path
}

// SetLevel replaces the stored level. It does not filter later writes.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the stored level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// decorate appends the timestamp and level tag to buf.
func (l *Logger) decorate(buf []byte, level Level) []byte {
	buf = l.clock().In(l.loc).AppendFormat(buf, timestampLayout)
	buf = append(buf, ' ')
	buf = append(buf, level.String()...)
	return append(buf, ": "...)
}

// Output appends one line made of the decoration, msg and a newline.
// The line is handed to the file in a single write, so a failed write never
// splits an earlier line. Levels outside the enumeration are written with the
// invalid level tag rather than rejected.
func (l *Logger) Output(level Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return ErrClosed
	}

	buf := make([]byte, 0, len(timestampLayout)+len(invalidLevelName)+len(msg)+4)
	buf = l.decorate(buf, level)
	buf = append(buf, msg...)
	buf = append(buf, '\n')

	_, err := l.file.Write(buf)
	return err
}

// Errorf writes an error line formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	_ = l.Output(ErrorLevel, fmt.Sprintf(format, v...))
}

// Warnf writes a warning line formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	_ = l.Output(WarnLevel, fmt.Sprintf(format, v...))
}

// Infof writes an informational line formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	_ = l.Output(InfoLevel, fmt.Sprintf(format, v...))
}

// Debugf writes a debug line formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	_ = l.Output(DebugLevel, fmt.Sprintf(format, v...))
}

// Close closes the log file.
// Call this when you are done with the Logger, or use With.
// A second call is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
