package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/infra/config"
)

// Init configures the global logrus logger from application config: JSON
// output in production/staging, colored text everywhere else.
func Init(cfg *config.AppConfig) {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		logrus.Warnf("invalid log level %q, defaulting to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Environment == "production" || cfg.Environment == "staging" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}
