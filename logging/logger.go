// Package logging holds the process-wide logrus logger.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// GetLogger returns the shared logger, creating it with info level on first use.
// Packages may cache the pointer in init; InitLogger reconfigures it in place.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return logger
}

// InitLogger sets level and output format ("json" or "text") on the shared logger.
func InitLogger(level logrus.Level, format string) *logrus.Logger {
	l := GetLogger()
	l.SetLevel(level)
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
