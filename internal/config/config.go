package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Adda-Baaj/newsfeed/pkg/providers"
)

const envPrefix = "NEWSFEED"

// Config holds runtime settings for the reader.
type Config struct {
	API          APIConfig          `mapstructure:"api"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	Connectivity ConnectivityConfig `mapstructure:"connectivity"`
	Preferences  PreferencesConfig  `mapstructure:"preferences"`
	Log          LogConfig          `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL    string            `mapstructure:"base_url"`
	Key        string            `mapstructure:"key"`
	ShowTags   string            `mapstructure:"show_tags"`
	ShowFields string            `mapstructure:"show_fields"`
	PageSize   int               `mapstructure:"page_size"`
	Headers    map[string]string `mapstructure:"headers"`
}

type HTTPConfig struct {
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

type ConnectivityConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type PreferencesConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads .env (if present), then an optional YAML config file, then NEWSFEED_*
// environment variables. An explicit path that cannot be read is an error; the
// default search locations are optional.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("newsfeed")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "newsfeed"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://content.guardianapis.com/search")
	v.SetDefault("api.key", "test")
	v.SetDefault("api.show_tags", "contributor")
	v.SetDefault("api.show_fields", "thumbnail,trailText")
	v.SetDefault("api.page_size", 10)
	v.SetDefault("http.connect_timeout", 15*time.Second)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.user_agent", "")
	v.SetDefault("connectivity.timeout", 3*time.Second)
	v.SetDefault("preferences.path", defaultPreferencesPath())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "newsfeed", "preferences.db")
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.PageSize < 0 || c.API.PageSize > 200 {
		return fmt.Errorf("api.page_size must be between 0 and 200, got %d", c.API.PageSize)
	}
	if c.HTTP.ConnectTimeout <= 0 || c.HTTP.ReadTimeout <= 0 {
		return errors.New("http timeouts must be positive")
	}
	if strings.TrimSpace(c.Preferences.Path) == "" {
		return errors.New("preferences.path is required")
	}
	return nil
}

// Provider maps the API section onto a provider description.
func (c *Config) Provider() providers.Provider {
	return providers.Provider{
		ID:         providers.GuardianProviderID,
		SourceURL:  c.API.BaseURL,
		APIKey:     c.API.Key,
		ShowTags:   c.API.ShowTags,
		ShowFields: c.API.ShowFields,
		PageSize:   c.API.PageSize,
		Headers:    c.API.Headers,
	}
}
