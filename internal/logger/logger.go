// Package logger builds the logrus loggers used by gridpath's commands and server.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init (info level, text, stdout).
var Log = New(Options{})

// Options selects level, format and destination.
//
// Level  – logrus level name; empty or unknown means "info".
// Format – "json" for machine collection, anything else for text.
// Out    – destination; nil means os.Stdout.
type Options struct {
	Level  string
	Format string
	Out    io.Writer
}

// New returns a configured logger.
func New(opts Options) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	l.SetOutput(opts.Out)

	return l
}

// Init replaces Log. It should be called once from main.
func Init(opts Options) *logrus.Logger {
	Log = New(opts)
	return Log
}
