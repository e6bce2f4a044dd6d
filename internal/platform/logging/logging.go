package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to stderr. format is "json" or "text".
func New(level, format string) *logrus.Logger {
	return NewWithOutput(os.Stderr, level, format)
}

func NewWithOutput(w io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
