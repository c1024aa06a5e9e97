package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the output encoding and minimum level
type Config struct {
	Level  string
	Format string
}

// New builds the application logger tagged with the app name
func New(app string, cfg Config) *logrus.Entry {
	return NewWithWriter(app, cfg, os.Stderr)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(app string, cfg Config, w io.Writer) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(parseLevel(cfg.Level))

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log.WithField("app", app)
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Entry {
	return NewWithWriter("test", Config{Level: "panic"}, io.Discard)
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
