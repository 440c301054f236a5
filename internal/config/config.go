package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

// Config represents the complete configuration structure
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	API      APIConfig      `yaml:"api"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type SiteConfig struct {
	Name string `yaml:"name" default:"Pressmill Console"`
}

type APIConfig struct {
	// BaseURL is the root of the remote REST API, without a trailing slash.
	BaseURL string `yaml:"base_url" default:"http://localhost:8080/api/v1"`
	// TimeoutSeconds bounds every request made by the API client.
	TimeoutSeconds int `yaml:"timeout_seconds" default:"30"`
}

type AuthConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
	// Type selects the identity provider: "clerk" or "static".
	Type string `yaml:"type" default:"clerk"`
	// StaticUserID is only honored when type is "static".
	StaticUserID string `yaml:"static_user_id" default:""`
}

type StorageConfig struct {
	// Path of the local sqlite database holding drafts and connectivity state.
	Path string `yaml:"path" default:"console.db"`
	// RetentionDays is the max age of a local draft before the sweep removes it.
	RetentionDays int `yaml:"retention_days" default:"7"`
	// SweepIntervalMinutes is how often the daemon runs the retention sweep.
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes" default:"60"`
}

type AutosaveConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
	// DebounceMs is the trailing-edge debounce window for auto-saves.
	DebounceMs int `yaml:"debounce_ms" default:"3000"`
	// ConnectivityPollSeconds is the fallback poll interval of the monitor.
	ConnectivityPollSeconds int `yaml:"connectivity_poll_seconds" default:"30"`
}

type LoggingConfig struct {
	Level string `yaml:"level" default:"info"`
}

var AppConfig *Config

func LoadConfig(path string) error {
	config := &Config{}

	// Apply default values first
	applyDefaults(config)

	// Try to read and parse the config file
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just use defaults
		configLogger.Info().Str("path", path).Msg("Config file not found, using defaults")
		AppConfig = config
		return nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	AppConfig = config
	return nil
}

func ApplyDefaults(config interface{}) {
	applyDefaults(config)
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		// Recursively apply defaults to nested structs
		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Float64:
			if val, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				field.SetFloat(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
