// Package logger writes leveled, timestamped lines to a single file.
//
// # Line Format
//
// Every call to Output appends exactly one line:
//
//	2024-03-01 14:02:33.105 INFO: Basic message!
//
// The timestamp has millisecond precision and is rendered in UTC unless
// WithLocation says otherwise. The tag is one of ERROR, WARN, INFO or DEBUG.
// A Level outside those four is written as "LOGGING ERROR (Invalid Level)"
// instead of failing.
//
// # Usage
//
// Open the file once. Open truncates an existing file:
//
//	l, err := logger.Open(logger.InfoLevel, "./app.log")
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//
//	l.Output(logger.InfoLevel, "Basic message!")
//	l.Warnf("disk at %d%%", 91)
//
// Or let With close the file on every exit path:
//
//	err := logger.With(logger.InfoLevel, "./app.log", func(l *logger.Logger) error {
//	    return l.Output(logger.InfoLevel, "Basic message!")
//	})
//
// # Levels
//
// The level passed to Open and SetLevel is stored on the Logger but does not
// filter writes: every Output call writes its line.
//
// There is no rotation, buffering or fan-out to other sinks.
package logger
