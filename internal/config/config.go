package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	// DefaultEnv is the environment name used when ENV is unset.
	DefaultEnv = "prod"

	// DefaultHTTPTimeout bounds a single catalog request.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultEnvFile is the dotenv file read from the working directory.
	DefaultEnvFile = ".env"
)

// Config holds all configuration for d360.
type Config struct {
	Env         string        `mapstructure:"env"`
	Debug       bool          `mapstructure:"debug"`
	Source      Endpoint      `mapstructure:"source"`
	Destination Endpoint      `mapstructure:"destination"`
	Logging     LoggingConfig `mapstructure:"logging"`
	HTTP        HTTPConfig    `mapstructure:"http"`
	API         APIConfig     `mapstructure:"api"`
}

// Endpoint locates one catalog instance and carries its credentials.
type Endpoint struct {
	URL       string `mapstructure:"url"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// String returns a safe representation of Endpoint with the credentials masked.
func (e Endpoint) String() string {
	return fmt.Sprintf("Endpoint{URL:%s, APIKey:%s, APISecret:%s}", e.URL, MaskSecret(e.APIKey), MaskSecret(e.APISecret))
}

// GoString keeps %#v from leaking credentials.
func (e Endpoint) GoString() string { return e.String() }

// MaskSecret shows first 4 + last 4 chars, replacing the middle with asterisks.
func MaskSecret(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

// HTTPConfig holds outbound HTTP client settings.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
	AuthToken  string `mapstructure:"auth_token"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envNames maps each config key to the environment variable that sets it.
// The same names are recognised in the dotenv file.
var envNames = map[string]string{
	"env":                    "ENV",
	"debug":                  "DEBUG",
	"source.url":             "SOURCE_URL",
	"source.api_key":         "SOURCE_API_KEY",
	"source.api_secret":      "SOURCE_API_SECRET",
	"destination.url":        "DESTINATION_URL",
	"destination.api_key":    "DESTINATION_API_KEY",
	"destination.api_secret": "DESTINATION_API_SECRET",
	"logging.level":          "LOG_LEVEL",
	"logging.format":         "LOG_FORMAT",
	"http.timeout":           "HTTP_TIMEOUT",
	"api.listen_addr":        "API_LISTEN_ADDR",
	"api.auth_token":         "API_AUTH_TOKEN",
}

// Load reads configuration from file, the .env file in the working directory
// and environment variables.
func Load() (*Config, error) {
	return LoadWithEnvFile(DefaultEnvFile)
}

// LoadWithEnvFile is Load with an explicit dotenv path. A missing file is not
// an error. Precedence, lowest first: defaults, config.yaml, dotenv, environment.
func LoadWithEnvFile(envFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("env", DefaultEnv)
	v.SetDefault("debug", false)
	v.SetDefault("source.url", "")
	v.SetDefault("source.api_key", "")
	v.SetDefault("source.api_secret", "")
	v.SetDefault("destination.url", "")
	v.SetDefault("destination.api_key", "")
	v.SetDefault("destination.api_secret", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	v.SetDefault("api.listen_addr", ":8080")
	v.SetDefault("api.auth_token", "")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".d360"))
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults + env vars
	}

	if err := mergeEnvFile(v, envFile); err != nil {
		return nil, err
	}

	// Environment variables
	for key, name := range envNames {
		_ = v.BindEnv(key, name)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// mergeEnvFile layers the dotenv file over the config file without touching
// the process environment.
func mergeEnvFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	values, err := gotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	overlay := make(map[string]any)
	for key, name := range envNames {
		val, ok := values[name]
		if !ok {
			continue
		}
		section, leaf, nested := strings.Cut(key, ".")
		if !nested {
			overlay[key] = val
			continue
		}
		m, _ := overlay[section].(map[string]any)
		if m == nil {
			m = make(map[string]any)
			overlay[section] = m
		}
		m[leaf] = val
	}
	if err := v.MergeConfigMap(overlay); err != nil {
		return fmt.Errorf("merging %s: %w", path, err)
	}
	return nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if err := validateURL("source.url", c.Source.URL); err != nil {
		return err
	}
	if err := validateURL("destination.url", c.Destination.URL); err != nil {
		return err
	}
	if c.Destination.APIKey == "" {
		return fmt.Errorf("destination.api_key must not be empty")
	}
	if c.Destination.APISecret == "" {
		return fmt.Errorf("destination.api_secret must not be empty")
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must be >= 0")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
