package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
// It discards everything until Init runs, so library code and tests can log freely
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Options configures Init
type Options struct {
	// Level is a logrus level name; empty falls back to LOG_LEVEL, then "info"
	Level string
	// JSON selects the JSON formatter; LOG_FORMAT=json also enables it
	JSON bool
	// Output receives log lines; nil discards them
	Output io.Writer
}

// Init configures the global logger. Call once from main
func Init(opts Options) {
	levelName := opts.Level
	if levelName == "" {
		if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
			levelName = env
		} else {
			levelName = "info"
		}
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if opts.JSON || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		// Log files are read with less/tail; no color codes
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if opts.Output == nil {
		Log.SetOutput(io.Discard)
	} else {
		Log.SetOutput(opts.Output)
	}
}

// For returns an entry tagged with the emitting subsystem
func For(system string) *logrus.Entry {
	return Log.WithField("system", system)
}
