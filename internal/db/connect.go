// Package db opens SQLite databases with the regex and padding functions
// registered as SQL scalar functions.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const defaultBusyTimeout = 5 * time.Second

// Options tune the connection pragmas. The zero value gives foreign keys on,
// WAL journaling for files and a five second busy timeout.
type Options struct {
	BusyTimeout        time.Duration
	JournalMode        string
	DisableForeignKeys bool
	// ReadOnly rejects every statement that writes to the database.
	ReadOnly bool
}

// Connect opens the database at path. An empty path or ":memory:" opens a
// private in-memory database.
func Connect(ctx context.Context, path string, opts Options) (*sql.DB, error) {
	memory := path == "" || path == ":memory:"
	dsn := buildDSN(path, memory, opts)

	conn, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		// Each pooled connection would otherwise get its own empty database.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	slog.Debug("Opened database", "path", displayPath(path, memory), "driver", DriverName)
	return conn, nil
}

func buildDSN(path string, memory bool, opts Options) string {
	pragmas := make([]string, 0, 4)
	if !opts.DisableForeignKeys {
		pragmas = append(pragmas, "foreign_keys(ON)")
	}
	if !memory {
		journal := opts.JournalMode
		if journal == "" {
			journal = "WAL"
		}
		pragmas = append(pragmas, fmt.Sprintf("journal_mode(%s)", journal))
	}
	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}
	pragmas = append(pragmas, fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	if opts.ReadOnly {
		pragmas = append(pragmas, "query_only(ON)")
	}

	q := make([]string, len(pragmas))
	for i, p := range pragmas {
		q[i] = "_pragma=" + p
	}
	name := path
	if memory {
		name = ":memory:"
	}
	return fmt.Sprintf("file:%s?%s", name, strings.Join(q, "&"))
}

func displayPath(path string, memory bool) string {
	if memory {
		return ":memory:"
	}
	return path
}
