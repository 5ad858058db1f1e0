// Package log configures the process-wide slog logger.
package log

import (
	"fmt"
	"io"
	"log/slog"

	charmlog "charm.land/log/v2"
)

// Setup builds a logger writing to w at the named level, installs it as the
// slog default and returns it.
func Setup(w io.Writer, level string, json bool) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	opts := charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "sqlregex",
	}
	if json {
		opts.Formatter = charmlog.JSONFormatter
	}

	logger := slog.New(charmlog.NewWithOptions(w, opts))
	slog.SetDefault(logger)
	return logger, nil
}
