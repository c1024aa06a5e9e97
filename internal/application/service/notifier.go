package service

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Notifier shows transient messages to the user
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NotificationLevel tells a success notification from an error one
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is one message shown to the user
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// LogNotifier writes notifications to the application log
type LogNotifier struct {
	log *logrus.Entry
}

// NewLogNotifier creates a notifier backed by the logger
func NewLogNotifier(log *logrus.Entry) *LogNotifier {
	return &LogNotifier{log: log.WithField("component", "notifier")}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn(message)
}

// NotificationBuffer keeps notifications so a surface can render them after
// the interaction completes
type NotificationBuffer struct {
	mu            sync.Mutex
	notifications []Notification
}

func (b *NotificationBuffer) Success(message string) {
	b.add(NotificationSuccess, message)
}

func (b *NotificationBuffer) Error(message string) {
	b.add(NotificationError, message)
}

func (b *NotificationBuffer) add(level NotificationLevel, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifications = append(b.notifications, Notification{Level: level, Message: message})
}

// Last returns the most recent notification, if any
func (b *NotificationBuffer) Last() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.notifications) == 0 {
		return Notification{}, false
	}
	return b.notifications[len(b.notifications)-1], true
}

// MultiNotifier delivers every notification to each of its notifiers in order
type MultiNotifier []Notifier

func (m MultiNotifier) Success(message string) {
	for _, n := range m {
		n.Success(message)
	}
}

func (m MultiNotifier) Error(message string) {
	for _, n := range m {
		n.Error(message)
	}
}
