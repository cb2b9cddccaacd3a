// Package config loads the organizer configuration.
//
// Precedence: built-in defaults, then the YAML config file, then
// environment variables named by the `env` struct tags.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
type Config struct {
	Library LibraryConfig `yaml:"library"`
	Scanner ScannerConfig `yaml:"scanner"`
	Catalog CatalogConfig `yaml:"catalog"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// LibraryConfig locates the destination photo library.
type LibraryConfig struct {
	// Root is the destination library root; organized files land under
	// <root>/<YYYY>/<MM>/<DD>/. Required for organize runs.
	Root string `yaml:"root" env:"ORGANIZER_LIBRARY_ROOT"`
}

// ScannerConfig controls file discovery.
type ScannerConfig struct {
	Recursive       bool `yaml:"recursive" env:"ORGANIZER_RECURSIVE"`
	IncludeSidecars bool `yaml:"include_sidecars" env:"ORGANIZER_INCLUDE_SIDECARS"`
}

// CatalogConfig configures the optional run-manifest database.
type CatalogConfig struct {
	// Path to the SQLite catalog file. Empty disables the catalog.
	Path string `yaml:"path" env:"ORGANIZER_CATALOG_PATH"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// SettleSeconds is how long the source directory must stay quiet
	// after a file event before an organize pass is triggered.
	SettleSeconds int `yaml:"settle_seconds" env:"ORGANIZER_WATCH_SETTLE_SECONDS"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level" env:"ORGANIZER_LOG_LEVEL"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Scanner: ScannerConfig{
			Recursive:       true,
			IncludeSidecars: true,
		},
		Watch: WatchConfig{
			SettleSeconds: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the given YAML file (may be
// empty or missing), and environment overrides.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	if err := loadStructFromEnv(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings an organize run depends on.
func (c *Config) Validate() error {
	if c.Library.Root == "" {
		return fmt.Errorf("library.root is not set; configure it or set ORGANIZER_LIBRARY_ROOT")
	}
	if c.Watch.SettleSeconds <= 0 {
		return fmt.Errorf("watch.settle_seconds must be positive")
	}
	return nil
}

func loadStructFromEnv(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := loadStructFromEnv(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("set field %s from %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(intVal)
	case reflect.Bool:
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolVal)
	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
