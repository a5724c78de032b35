// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a text logger writing to out at the given level name (e.g. "debug", "info").
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger, nil
}

// Topic returns an entry tagged with the given topic, e.g. "match" or "input".
func Topic(logger *logrus.Logger, topic string) *logrus.Entry {
	return logger.WithField("topic", topic)
}
