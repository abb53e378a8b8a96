package util

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"os"
	"strings"
)

// SetupLogger configures the standard logrus logger.
// JSON is used when asked for, or when stderr is not a terminal.
func SetupLogger(level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}

		logrus.SetLevel(lvl)
	}

	logrus.SetFormatter(formatter(format, term.IsTerminal(int(os.Stderr.Fd()))))
	return nil
}

func formatter(format string, isTerminal bool) logrus.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{}
	case "text":
		return &logrus.TextFormatter{FullTimestamp: true}
	}

	if !isTerminal {
		return &logrus.JSONFormatter{}
	}

	return &logrus.TextFormatter{FullTimestamp: true}
}
