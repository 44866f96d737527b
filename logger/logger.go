// Package logger provides the prefixed, colored logger injected into
// every component as i.Logger.
package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// Logger wraps logrus with a colored component prefix, so interleaved
// output from different components stays readable.
type Logger struct {
	log    *logrus.Logger
	prefix string
}

// New creates a logger for one component. prefix names the component
// (e.g. "APP", "PLANNER"); color is an ANSI escape from the config
// package.
func New(prefix string, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		DisableQuote:    true,
	})

	return &Logger{
		log:    l,
		prefix: fmt.Sprintf("%s[%s]%s", color, prefix, colorReset),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Infof("%s %s", l.prefix, msg)
}

// Warning logs a recoverable anomaly.
func (l *Logger) Warning(msg string) {
	l.log.Warnf("%s %s", l.prefix, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.log.Errorf("%s %s", l.prefix, msg)
}
