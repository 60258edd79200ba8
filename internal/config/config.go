package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	ModsDir     string         `mapstructure:"mods_dir" validate:"required"`
	Loader      string         `mapstructure:"loader" validate:"required"`
	GameVersion string         `mapstructure:"game_version" validate:"required"`
	APIBaseURL  string         `mapstructure:"api_base_url" validate:"required,url"`
	Token       string         `mapstructure:"token"`
	Mods        []string       `mapstructure:"mods" validate:"min=1"`
	Retry       RetryConfig    `mapstructure:"retry"`
	Download    DownloadConfig `mapstructure:"download"`
	Logging     LoggingConfig  `mapstructure:"logging"`
}

// RetryConfig tunes the API client's retry policy.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
	BaseDelay   time.Duration `mapstructure:"base_delay" validate:"min=0"`
	MaxDelay    time.Duration `mapstructure:"max_delay" validate:"min=0"`
	Statuses    []int         `mapstructure:"statuses" validate:"min=1,dive,min=400,max=599"`
}

// DownloadConfig tunes the file fetcher.
type DownloadConfig struct {
	RetryMax     int           `mapstructure:"retry_max" validate:"min=0,max=10"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min" validate:"min=0"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max" validate:"min=0"`
	ShowProgress bool          `mapstructure:"show_progress"`
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mods_dir", "mods")
	v.SetDefault("loader", "fabric")
	v.SetDefault("game_version", "1.21.11")
	v.SetDefault("api_base_url", "https://api.modrinth.com/v2")
	v.SetDefault("token", "")
	v.SetDefault("mods", DefaultMods)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_delay", "250ms")
	v.SetDefault("retry.max_delay", "30s")
	v.SetDefault("retry.statuses", []int{429, 500, 502, 503, 504})
	v.SetDefault("download.retry_max", 3)
	v.SetDefault("download.retry_wait_min", "1s")
	v.SetDefault("download.retry_wait_max", "10s")
	v.SetDefault("download.show_progress", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Load reads configuration from the optional yaml file at path, layered
// over defaults and FASTRINTH_* environment variables. An empty path
// loads pure defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("FASTRINTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the struct tags and cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Retry.MaxDelay < c.Retry.BaseDelay {
		return fmt.Errorf("retry.max_delay %s is below retry.base_delay %s", c.Retry.MaxDelay, c.Retry.BaseDelay)
	}
	if c.Download.RetryWaitMax < c.Download.RetryWaitMin {
		return fmt.Errorf("download.retry_wait_max %s is below download.retry_wait_min %s", c.Download.RetryWaitMax, c.Download.RetryWaitMin)
	}
	return nil
}
