package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"

	envPrefix = "SITE"
)

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	Table  string `mapstructure:"table"`
}

type AdminConfig struct {
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password_hash"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// ChatConfig configures the upstream providers. Empty endpoints keep the
// public defaults.
type ChatConfig struct {
	UpstreamTimeout time.Duration     `mapstructure:"upstream_timeout"`
	DefaultKeyParam string            `mapstructure:"default_key_param"`
	Endpoints       map[string]string `mapstructure:"endpoints"`
}

type Config struct {
	Addr        string      `mapstructure:"addr"`
	LogLevel    string      `mapstructure:"log_level"`
	ParamPrefix string      `mapstructure:"param_prefix"`
	Store       StoreConfig `mapstructure:"store"`
	Admin       AdminConfig `mapstructure:"admin"`
	JWT         JWTConfig   `mapstructure:"jwt"`
	Chat        ChatConfig  `mapstructure:"chat"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("param_prefix", "/studio-site")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "studio-site.db")
	v.SetDefault("store.table", "")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl", 12*time.Hour)
	v.SetDefault("chat.upstream_timeout", 30*time.Second)
	v.SetDefault("chat.default_key_param", "")
}

// Load reads .env (when present), then the config file, then SITE_*
// environment variables. An empty path searches the working directory for
// sitectl.yaml; a missing file there is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sitectl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment")
	} else {
		slog.Debug("using config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	return cfg, nil
}

// ValidateStore checks the settings every command touching the content
// store needs.
func (c Config) ValidateStore() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Store.Path) == "" {
			return errors.New("config: store.path is required for the sqlite driver")
		}
	case DriverDynamoDB:
		if strings.TrimSpace(c.Store.Table) == "" {
			return errors.New("config: store.table is required for the dynamodb driver")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.ParamPrefix) == "" {
		return errors.New("config: param_prefix is required")
	}
	return nil
}

// ValidateServer checks the settings the HTTP server needs on top of the
// store settings.
func (c Config) ValidateServer() error {
	if err := c.ValidateStore(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Admin.Email) == "" || strings.TrimSpace(c.Admin.PasswordHash) == "" {
		return errors.New("config: admin.email and admin.password_hash are required")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("config: jwt.secret must be at least 32 bytes")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("config: jwt.ttl must be positive")
	}
	if c.Chat.UpstreamTimeout <= 0 {
		return errors.New("config: chat.upstream_timeout must be positive")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
