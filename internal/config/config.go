package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fffcards/fff/internal/deck"
	"github.com/fffcards/fff/internal/source"
)

// DefaultSheetID is the spreadsheet the deck is published from. Empty means
// the embedded deck is the only source unless one is configured.
const DefaultSheetID = ""

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FFF"

var ErrInvalid = errors.New("invalid configuration")

// Config holds settings merged from flags, environment, config file and defaults.
type Config struct {
	Source Source `mapstructure:"source"`
	Deck   Deck   `mapstructure:"deck"`
	UI     UI     `mapstructure:"ui"`
	Log    Log    `mapstructure:"log"`
}

type Source struct {
	URL      string        `mapstructure:"url"`      // explicit CSV URL, wins over SheetID
	SheetID  string        `mapstructure:"sheet_id"` // Google Sheets document id
	GID      string        `mapstructure:"gid"`      // sheet tab id
	Timeout  time.Duration `mapstructure:"timeout"`
	Fallback string        `mapstructure:"fallback"` // local CSV path, empty for the embedded deck
}

type Deck struct {
	Shuffle    bool     `mapstructure:"shuffle"`
	Interleave string   `mapstructure:"interleave"` // category spread evenly through the deck
	Closing    string   `mapstructure:"closing"`    // category placed in the final third
	Categories []string `mapstructure:"categories"` // initial selection, empty for all
}

type UI struct {
	Intro bool `mapstructure:"intro"`
	Mouse bool `mapstructure:"mouse"`
}

type Log struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"source-url": "source.url",
	"sheet-id":   "source.sheet_id",
	"fallback":   "source.fallback",
	"log-level":  "log.level",
}

// Load reads .env, the config file (path, or config.yaml in the working
// directory and the user config directory), FFF_* environment variables and
// the changed flags in flags. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.url", "")
	v.SetDefault("source.sheet_id", DefaultSheetID)
	v.SetDefault("source.gid", "0")
	v.SetDefault("source.timeout", "10s")
	v.SetDefault("source.fallback", "")
	v.SetDefault("deck.shuffle", true)
	v.SetDefault("deck.interleave", "Impuls")
	v.SetDefault("deck.closing", "Abschluss")
	v.SetDefault("deck.categories", []string{})
	v.SetDefault("ui.intro", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", defaultLogPath())
}

// Validate rejects settings the program cannot run with.
func (c *Config) Validate() error {
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("%w: source.timeout must be positive, got %s", ErrInvalid, c.Source.Timeout)
	}
	if c.Log.Level != "off" && c.Log.Path == "" {
		return fmt.Errorf("%w: log.path is required unless log.level is off", ErrInvalid)
	}
	return nil
}

// PrimaryURL returns the remote CSV location, or "" when none is configured.
func (c *Config) PrimaryURL() string {
	if c.Source.URL != "" {
		return c.Source.URL
	}
	if c.Source.SheetID != "" {
		return source.SheetExportURL(c.Source.SheetID, c.Source.GID)
	}
	return ""
}

// Policy returns the deck ordering policy.
func (c *Config) Policy() deck.Policy {
	return deck.Policy{
		Shuffle:    c.Deck.Shuffle,
		Interleave: c.Deck.Interleave,
		Closing:    c.Deck.Closing,
	}
}

// Primary returns the remote source, or nil when none is configured.
func (c *Config) Primary() source.Source {
	u := c.PrimaryURL()
	if u == "" {
		return nil
	}
	return source.NewHTTPSource(u, source.WithTimeout(c.Source.Timeout))
}

// Fallback returns the local source: the configured file or the embedded deck.
func (c *Config) Fallback() source.Source {
	if c.Source.Fallback != "" {
		return source.NewFileSource(c.Source.Fallback)
	}
	return source.Embedded()
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fff")
}

func defaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "fff", "fff.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fff", "fff.log")
	}
	return filepath.Join(home, ".local", "state", "fff", "fff.log")
}
