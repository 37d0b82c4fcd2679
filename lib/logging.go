package lib

import (
	"github.com/sirupsen/logrus"
)

var (
	// package logger, quiet unless raised to debug
	log = logrus.New()
)

// SetLogLevel changes the logging level of the calculator package.
func SetLogLevel(level logrus.Level) {
	log.Level = level
}

// GetLogLevel returns the current logging level.
func GetLogLevel() logrus.Level {
	return log.Level
}
