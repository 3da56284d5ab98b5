package logger

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance.
var Log = logrus.New()

// Init configures the shared logger. Verbose output is enabled in dev mode.
func Init(dev bool) {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if dev {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
