package cmd

import (
	"os"

	"github.com/jsphweid/tunepack/constants"
	"github.com/sirupsen/logrus"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if lvl := constants.GetLogLevel(); lvl != "" {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			log.SetLevel(parsed)
		} else {
			log.WithField("LOG_LEVEL", lvl).Warn("Unknown log level, using info")
		}
	}
	return log
}
