package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LavenderBridge/problemset/internal/db"
	"github.com/LavenderBridge/problemset/internal/debounce"
	"github.com/LavenderBridge/problemset/internal/paginate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	List    ListConfig    `mapstructure:"list"`
	Search  SearchConfig  `mapstructure:"search"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	// Path of the SQLite file holding user state. Empty means ~/.problemset/state.db.
	Path string `mapstructure:"path"`
}

type CatalogConfig struct {
	// Path of a YAML problem file. Empty means the built-in problems.
	Path string `mapstructure:"path"`
}

type ListConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EnvPrefix prefixes environment overrides, e.g. PROBLEMSET_LIST_PAGE_SIZE.
const EnvPrefix = "PROBLEMSET"

// DefaultPath returns ~/.problemset/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, db.DefaultDir, "config.yaml")
}

// Load reads the YAML file at path on top of the defaults and environment.
// A missing file is not an error; an unreadable or invalid one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	if cfg.List.PageSize < 1 {
		cfg.List.PageSize = paginate.DefaultPageSize
	}
	if cfg.Search.Debounce <= 0 {
		cfg.Search.Debounce = debounce.DefaultDelay
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.path", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("list.page_size", paginate.DefaultPageSize)
	v.SetDefault("search.debounce", debounce.DefaultDelay)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Logger builds the diagnostic logger described by c.
func (c LogConfig) Logger() (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	switch c.Format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", c.Format)
	}
	return log, nil
}
