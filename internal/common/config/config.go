// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// StorageConfig holds key-value store settings.
type StorageConfig struct {
	Redis         RedisConfig `mapstructure:"redis"`
	KeyPrefix     string      `mapstructure:"key_prefix"`
	MaxValueBytes int         `mapstructure:"max_value_bytes"` // per-value quota, 0 = unlimited
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DefaultsConfig holds settings for the static defaults provider: where
// the read-only seed documents live and how long to wait for them.
type DefaultsConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	ProfilePath string `mapstructure:"profile_path"`
	JobsPath    string `mapstructure:"jobs_path"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds
}

// MetricsConfig holds the promhttp listener settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
