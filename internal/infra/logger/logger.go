// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"telegram_relay/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is shared by every component; Init configures it once at startup.
var Log = logrus.New()

// Init initializes the global logger based on application configuration.
// The CLI writes its own results to stdout, so logs go to stderr.
func Init(cfg *config.AppConfig) {
	InitTo(cfg, os.Stderr)
}

// InitTo is Init with an explicit output.
func InitTo(cfg *config.AppConfig, out io.Writer) {
	Log.SetOutput(out)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.WithError(err).Warnf("Unknown log level %q, using info", cfg.LogLevel)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	env := strings.ToLower(cfg.Environment)
	if env == "production" || env == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Log.WithFields(logrus.Fields{
		"level":       Log.GetLevel().String(),
		"environment": env,
	}).Debug("Logger configured")
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
