package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flexprice/mvola-go/internal/types"
	"github.com/flexprice/mvola-go/internal/validator"
	"github.com/spf13/viper"
)

type Configuration struct {
	Environment types.Environment `mapstructure:"environment" validate:"required,oneof=sandbox production"`
	BaseURL     string            `mapstructure:"base_url" validate:"omitempty,url"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Session     SessionConfig     `mapstructure:"session"`
	HTTP        HTTPConfig        `mapstructure:"http" validate:"required"`
	Logging     LoggingConfig     `mapstructure:"logging" validate:"required"`
}

// CredentialsConfig holds the consumer key pair used against /token.
// Both values are secrets and must never be logged.
type CredentialsConfig struct {
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
}

// SessionConfig seeds the RequestOptions of a transaction client
type SessionConfig struct {
	UserLanguage          string `mapstructure:"user_language"`
	UserAccountIdentifier string `mapstructure:"user_account_identifier"`
	PartnerName           string `mapstructure:"partner_name"`
	CallbackURL           string `mapstructure:"callback_url" validate:"omitempty,url"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"required,gt=0"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.mvola")
	v.AddConfigPath("/etc/mvola")

	setDefaults(v)

	// Set up environment variables support
	v.SetEnvPrefix("MVOLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it on Unmarshal
func setDefaults(v *viper.Viper) {
	def := GetDefaultConfig()
	v.SetDefault("environment", string(def.Environment))
	v.SetDefault("base_url", "")
	v.SetDefault("credentials.consumer_key", "")
	v.SetDefault("credentials.consumer_secret", "")
	v.SetDefault("session.user_language", def.Session.UserLanguage)
	v.SetDefault("session.user_account_identifier", "")
	v.SetDefault("session.partner_name", "")
	v.SetDefault("session.callback_url", "")
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("logging.level", string(def.Logging.Level))
}

func (c Configuration) Validate() error {
	if err := validator.ValidateRequest(c); err != nil {
		return err
	}
	return c.Environment.Validate()
}

// GetBaseURL returns the explicit base URL, or the one implied by the environment
func (c Configuration) GetBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return c.Environment.BaseURL()
}

// HasCredentials reports whether both halves of the consumer key pair are set
func (c Configuration) HasCredentials() bool {
	return c.Credentials.ConsumerKey != "" && c.Credentials.ConsumerSecret != ""
}

// RequestOptions builds the session options for correlationID from the configured session
func (c Configuration) RequestOptions(correlationID string) types.RequestOptions {
	opts := types.NewRequestOptions(correlationID, c.Session.UserAccountIdentifier)
	opts.UserLanguage = c.Session.UserLanguage
	opts.PartnerName = c.Session.PartnerName
	opts.CallbackURL = c.Session.CallbackURL
	return opts
}

// GetDefaultConfig returns a sandbox configuration for local use and tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Environment: types.EnvironmentSandbox,
		Session:     SessionConfig{UserLanguage: "FR"},
		HTTP:        HTTPConfig{Timeout: 5 * time.Second},
		Logging:     LoggingConfig{Level: types.LogLevelInfo},
	}
}
