package logging

import (
	"fmt"
	"log"
	"maps"
	"os"

	"github.com/fatih/color"
)

// DefaultLogger writes through Go's standard log package:
// Debug/Info -> stdout, Warn/Error/Fatal -> stderr (colored when the
// output is a terminal; fatih/color handles TTY detection).
type DefaultLogger struct {
	stdout *log.Logger
	stderr *log.Logger
	level  Level
	fields Fields
}

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
)

// NewDefaultLogger creates a default logger at Info level.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		stdout: log.New(os.Stdout, "", log.LstdFlags),
		stderr: log.New(os.Stderr, "", log.LstdFlags),
		level:  InfoLevel,
		fields: make(Fields),
	}
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields ...Fields) string {
	all := make(Fields)
	maps.Copy(all, d.fields)
	for _, f := range fields {
		maps.Copy(all, f)
	}

	out := fmt.Sprintf("[%s] %s", level, msg)
	if err != nil {
		out += fmt.Sprintf(": %v", err)
	}
	if len(all) > 0 {
		out += fmt.Sprintf(" %+v", all)
	}

	switch level {
	case WarnLevel:
		out = warnColor.Sprint(out)
	case ErrorLevel:
		out = errorColor.Sprint(out)
	case FatalLevel:
		out = fatalColor.Sprint(out)
	}
	return out
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < d.level {
		return
	}

	formatted := d.format(level, err, msg, fields...)

	switch level {
	case DebugLevel, InfoLevel:
		d.stdout.Println(formatted)
	case WarnLevel, ErrorLevel:
		d.stderr.Println(formatted)
	case FatalLevel:
		d.stderr.Println(formatted)
		os.Exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.log(FatalLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)

	return &DefaultLogger{
		stdout: d.stdout,
		stderr: d.stderr,
		level:  d.level,
		fields: merged,
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// NoOpLogger discards everything; installed when logging is disabled.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
