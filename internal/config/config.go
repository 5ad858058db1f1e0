// Package config loads the sqlregex command configuration.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"charm.land/log/v2"
	"github.com/joho/godotenv"
	"github.com/tds-django/sqlregex/internal/db"
	"github.com/tds-django/sqlregex/internal/regex"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no explicit config path is given. It may be
// absent.
const DefaultPath = "sqlregex.yaml"

const envPrefix = "SQLREGEX_"

// Config is the root of the configuration file.
type Config struct {
	// Engine is the regex engine used by the match command.
	Engine string `yaml:"engine,omitempty" json:"engine,omitempty" jsonschema:"description=Regex engine for the match command,enum=dotnet,enum=re2,default=dotnet"`
	// Database configures connections opened by the query command.
	Database DatabaseOptions `yaml:"database,omitempty" json:"database,omitempty" jsonschema:"description=SQLite connection settings"`
	// Migrations is a directory of goose SQL migrations applied before
	// queries run.
	Migrations string `yaml:"migrations,omitempty" json:"migrations,omitempty" jsonschema:"description=Directory of goose SQL migrations applied before queries run"`
	// Log configures the stderr logger.
	Log LogOptions `yaml:"log,omitempty" json:"log,omitempty" jsonschema:"description=Logging settings"`
}

// DatabaseOptions configures SQLite pragmas.
type DatabaseOptions struct {
	Path string `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"description=Database file; empty opens an in-memory database"`
	// BusyTimeout is in milliseconds.
	BusyTimeout int    `yaml:"busy_timeout,omitempty" json:"busy_timeout,omitempty" jsonschema:"description=Busy timeout in milliseconds (default 5000),minimum=0"`
	JournalMode string `yaml:"journal_mode,omitempty" json:"journal_mode,omitempty" jsonschema:"description=SQLite journal mode for file databases (default WAL)"`
	ReadOnly    bool   `yaml:"read_only,omitempty" json:"read_only,omitempty" jsonschema:"description=Reject statements that write"`
}

// LogOptions configures logging.
type LogOptions struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty" jsonschema:"description=Log level: debug info warn or error,default=info"`
	JSON  bool   `yaml:"json,omitempty" json:"json,omitempty" jsonschema:"description=Emit JSON log lines"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Engine: regex.DefaultEngine.String(),
		Database: DatabaseOptions{
			BusyTimeout: 5000,
		},
		Log: LogOptions{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path, a .env
// file in the working directory and SQLREGEX_* environment variables, in
// that order. An empty path reads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	path = cmp.Or(path, DefaultPath)
	file, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	case err != nil:
		return nil, err
	default:
		cfg.merge(*file)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	env, err := fromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	cfg.merge(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func fromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	cfg.Engine = getenv(envPrefix + "ENGINE")
	cfg.Migrations = getenv(envPrefix + "MIGRATIONS")
	cfg.Database.Path = getenv(envPrefix + "DB")
	cfg.Log.Level = getenv(envPrefix + "LOG_LEVEL")
	if v := getenv(envPrefix + "DB_BUSY_TIMEOUT"); v != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("parsing %sDB_BUSY_TIMEOUT: %w", envPrefix, err)
		}
		cfg.Database.BusyTimeout = ms
	}
	return cfg, nil
}

// merge overlays the non-zero fields of t onto c.
func (c *Config) merge(t Config) {
	c.Engine = cmp.Or(t.Engine, c.Engine)
	c.Migrations = cmp.Or(t.Migrations, c.Migrations)
	c.Database.Path = cmp.Or(t.Database.Path, c.Database.Path)
	c.Database.BusyTimeout = cmp.Or(t.Database.BusyTimeout, c.Database.BusyTimeout)
	c.Database.JournalMode = cmp.Or(t.Database.JournalMode, c.Database.JournalMode)
	c.Database.ReadOnly = c.Database.ReadOnly || t.Database.ReadOnly
	c.Log.Level = cmp.Or(t.Log.Level, c.Log.Level)
	c.Log.JSON = c.Log.JSON || t.Log.JSON
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := regex.ParseEngine(c.Engine); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("config: busy_timeout must not be negative, got %d", c.Database.BusyTimeout)
	}
	return nil
}

// RegexEngine returns the configured engine. Validate must have passed.
func (c *Config) RegexEngine() regex.Engine {
	e, _ := regex.ParseEngine(c.Engine)
	return e
}

// DBOptions converts the database section to connection options.
func (c *Config) DBOptions() db.Options {
	return db.Options{
		BusyTimeout: time.Duration(c.Database.BusyTimeout) * time.Millisecond,
		JournalMode: c.Database.JournalMode,
		ReadOnly:    c.Database.ReadOnly,
	}
}
