// Package logging builds the diagnostic logger shared by the store and CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to w at the named level.
// An empty level selects DefaultLevel.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	parsed := DefaultLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		parsed, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	logger.SetLevel(parsed)
	return logger, nil
}
