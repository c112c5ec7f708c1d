// Package logger builds the logrus logger shared by the hosts.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger configured from the environment:
// LOG_LEVEL (default "info"; "trace" shows every resolved contact) and
// LOG_FORMAT ("json" or the default "text").
func New() *logrus.Logger {
	return NewWithOutput(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// NewWithOutput is New with explicit settings. An unknown level falls back
// to info.
func NewWithOutput(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()

	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(out)
	return log
}
