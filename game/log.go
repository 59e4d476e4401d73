package game

import "github.com/sirupsen/logrus"

var log = logrus.New()

// Logger returns the logger used by the game package, so callers may adjust
// its level, output or formatter
func Logger() *logrus.Logger {
	return log
}
