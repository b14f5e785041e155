// Package config loads client settings from a file and the environment.
// Environment variables use the PODIO_ prefix, e.g. PODIO_CLIENT_ID.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/adamwoolhether/podio/auth"
	"github.com/adamwoolhether/podio/transport"
	"github.com/adamwoolhether/podio/transport/throttle"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "PODIO"

// Config holds everything needed to build an authenticated client.
// Either Username and Password or AppID and AppToken must be set; the
// app credentials win when both are present.
type Config struct {
	Domain       string `mapstructure:"domain" validate:"required,url"`
	UserAgent    string `mapstructure:"user_agent"`
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`

	Username string `mapstructure:"username" validate:"required_without=AppID"`
	Password string `mapstructure:"password" validate:"required_with=Username"`
	AppID    string `mapstructure:"app_id"`
	AppToken string `mapstructure:"app_token" validate:"required_with=AppID"`

	Timeout     time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RatePerHour int           `mapstructure:"rate_per_hour" validate:"gte=0"`
	Burst       int           `mapstructure:"burst" validate:"gte=0"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Curl        bool          `mapstructure:"curl"`
	RequestID   bool          `mapstructure:"request_id"`
}

var defaults = map[string]any{
	"domain":        transport.DefaultBaseURL,
	"user_agent":    "",
	"client_id":     "",
	"client_secret": "",
	"username":      "",
	"password":      "",
	"app_id":        "",
	"app_token":     "",
	"timeout":       30 * time.Second,
	"rate_per_hour": 0,
	"burst":         1,
	"log_level":     "info",
	"curl":          false,
	"request_id":    false,
}

// New returns a viper instance with the defaults and environment
// binding in place. Flags can be bound to it before [Load].
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file, if given, into v and returns the validated settings.
// Environment variables and bound flags override the file.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = New()
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Grant returns the OAuth grant the credentials describe.
func (c Config) Grant() auth.Grant {
	if c.AppID != "" {
		return auth.AppGrant{ClientID: c.ClientID, ClientSecret: c.ClientSecret, AppID: c.AppID, AppToken: c.AppToken}
	}
	return auth.PasswordGrant{ClientID: c.ClientID, ClientSecret: c.ClientSecret, Username: c.Username, Password: c.Password}
}

// Level parses LogLevel.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// TransportOptions turns the settings into transport options. The base
// url and headers are left to the client constructors.
func (c Config) TransportOptions(logger *slog.Logger) ([]transport.Option, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}

	opts := []transport.Option{transport.WithLogger(logger)}
	if c.Timeout > 0 {
		opts = append(opts, transport.WithTimeout(c.Timeout))
	}
	if c.RatePerHour > 0 {
		opts = append(opts, transport.WithThrottle(throttle.PerHour(c.RatePerHour, max(c.Burst, 1))))
	}
	if c.Curl {
		opts = append(opts, transport.WithCurlLogging())
	}
	if c.RequestID {
		opts = append(opts, transport.WithRequestID())
	}

	return opts, nil
}
