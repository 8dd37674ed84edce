package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"shop-admin/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the admin gateway.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the gateway will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the e-commerce REST API configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Redis holds the cache connection details.
	Redis RedisConfig `mapstructure:",squash"`

	// Forms holds order form session settings.
	Forms FormsConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound HTTP proxy.
	Proxy proxy.Settings `mapstructure:",squash"`
}

// BackendConfig holds the connection details for the e-commerce backend.
type BackendConfig struct {
	// URL is the API base URL, e.g. http://127.0.0.1:8000/api.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// Token seeds the token store on startup when set.
	Token string `mapstructure:"BACKEND_TOKEN"`
	// TimeoutSeconds bounds every backend request.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the request timeout as a duration.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig holds the Redis connection URL.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// FormsConfig holds order form session lifetimes.
type FormsConfig struct {
	// TTLSeconds is how long an untouched form session survives.
	TTLSeconds int `mapstructure:"FORM_TTL_SECONDS" default:"3600"`
	// CatalogTTLSeconds is how long a fetched catalog snapshot is reused for new forms.
	CatalogTTLSeconds int `mapstructure:"CATALOG_TTL_SECONDS" default:"300"`
}

// TTL returns the form session lifetime.
func (c FormsConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// CatalogTTL returns the catalog snapshot lifetime.
func (c FormsConfig) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags walks the struct fields, binding env keys and registering defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
