package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// RedisURL is the optional Redis connection URL used for the computed
	// result cache. When empty, an in-memory cache adapter is used instead.
	RedisURL string `mapstructure:"REDIS_URL"`

	// ResultTTLSeconds is how long computed emission results stay cached.
	// 0 means no expiration.
	ResultTTLSeconds int `mapstructure:"RESULT_TTL_SECONDS" default:"86400"`

	// BatchConcurrency bounds the worker pool for batch calculations.
	BatchConcurrency int `mapstructure:"BATCH_CONCURRENCY" default:"10"`

	// Geocoder holds the Nominatim geocoding configuration.
	Geocoder GeocoderConfig `mapstructure:",squash"`

	// UPS holds the UPS tracking API configuration.
	UPS UPSConfig `mapstructure:",squash"`
}

// GeocoderConfig holds the settings for the Nominatim geocoding service.
type GeocoderConfig struct {
	// BaseURL is the Nominatim endpoint used for forward geocoding.
	BaseURL string `mapstructure:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
	// UserAgent identifies this application to the geocoding service.
	UserAgent string `mapstructure:"GEOCODER_USER_AGENT" default:"greenboard"`
	// TimeoutSeconds is the per-request timeout for geocoding calls.
	TimeoutSeconds int `mapstructure:"GEOCODER_TIMEOUT_SECONDS" default:"10"`
	// MaxRetries is how many times a transient geocoding failure is retried.
	MaxRetries int `mapstructure:"GEOCODER_MAX_RETRIES" default:"3"`
	// RetryDelayMs is the fixed delay between geocoding retries.
	RetryDelayMs int `mapstructure:"GEOCODER_RETRY_DELAY_MS" default:"1000"`
}

// UPSConfig holds the credentials for the UPS tracking API.
type UPSConfig struct {
	// BaseURL is the UPS API host.
	BaseURL string `mapstructure:"UPS_BASE_URL" default:"https://onlinetools.ups.com"`
	// ClientID is the OAuth client ID for API access.
	ClientID string `mapstructure:"UPS_CLIENT_ID" required:"true"`
	// ClientSecret is the OAuth client secret for API access.
	ClientSecret string `mapstructure:"UPS_CLIENT_SECRET" required:"true"`
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

// processTags iterates over the struct fields and sets default values in Viper.
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
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
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

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
