// Package notify carries transient user notifications, the terminal
// equivalent of the toast messages a web client would show.
package notify

import "github.com/sirupsen/logrus"

// Notifier receives transient user-facing notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications through a logrus logger.
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a logger-backed notifier.
func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info(msg)
}

func (n *LogNotifier) Error(msg string) {
	n.log.Error(msg)
}
