// Package configmanager loads the activities client configuration from
// defaults, an optional config file, a .env file, and environment variables.
package configmanager

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mergington/activities/pkg/client/activities"
)

const (
	// ConfigFileName is the base name of the optional config file
	// (activities.yaml) looked up in the working directory.
	ConfigFileName = "activities"

	// EnvPrefix is the prefix for environment variable overrides, e.g.
	// ACTIVITIES_SERVER_URL.
	EnvPrefix = "ACTIVITIES"

	// DefaultRequestTimeout bounds a single roster request.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultStatusHideDelay is how long a status message stays visible
	// before it is auto-dismissed.
	DefaultStatusHideDelay = 5 * time.Second
)

// Config holds the client settings.
// Configuration priority: defaults < config file < .env < environment.
type Config struct {
	// ServerURL is the base URL of the activities server.
	ServerURL string `mapstructure:"server_url"`
	// RequestTimeout bounds a single HTTP request.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// StatusHideDelay is the auto-dismiss delay for status messages.
	StatusHideDelay time.Duration `mapstructure:"status_hide_delay"`
}

// ConfigManager reads and caches the client configuration.
type ConfigManager struct {
	Viper        *viper.Viper
	Config       *Config
	Writer       io.Writer
	configLoaded bool
}

// NewConfigManager creates a configuration manager writing notifications to
// the provided writer.
func NewConfigManager(writer io.Writer) *ConfigManager {
	return &ConfigManager{
		Viper:  initializeViper(),
		Config: &Config{},
		Writer: writer,
	}
}

// initializeViper sets up the viper instance with defaults, config paths,
// and environment handling.
func initializeViper() *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetConfigName(ConfigFileName)
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	viperInstance.SetDefault("server_url", activities.DefaultBaseURL)
	viperInstance.SetDefault("request_timeout", DefaultRequestTimeout)
	viperInstance.SetDefault("status_hide_delay", DefaultStatusHideDelay)

	return viperInstance
}

// LoadConfig loads the configuration. The result is cached; repeated calls
// return the same Config. A missing config file or .env file is fine; a
// malformed config file is an error.
func (m *ConfigManager) LoadConfig() (*Config, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	// .env values become plain environment variables, which viper picks up
	// through AutomaticEnv. A missing .env file is the normal case.
	_ = godotenv.Load()

	err := m.readConfig()
	if err != nil {
		return nil, err
	}

	err = m.unmarshalConfig()
	if err != nil {
		return nil, err
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig() error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

func (m *ConfigManager) unmarshalConfig() error {
	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		)
	}

	err := m.Viper.Unmarshal(m.Config, decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return nil
}
