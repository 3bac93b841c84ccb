// Package config provides YAML configuration with environment variable
// overrides for the content-qa service.
package config

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	defaultServiceName     = "content-qa"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultConcurrency     = 10
	defaultShutdownTimeout = 15 * time.Second
	defaultRateLimit       = 50
	defaultRateBurst       = 100
	defaultDBDriver        = "postgres"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "contentqa"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultSQLitePath      = "contentqa.db"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Config holds all configuration for the content-qa service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"CONTENTQA_PORT"        yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"             yaml:"debug"`
	Concurrency     int           `env:"CONTENTQA_CONCURRENCY" yaml:"concurrency"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimit       float64       `env:"CONTENTQA_RATE_LIMIT"  yaml:"rate_limit"`
	RateBurst       int           `yaml:"rate_burst"`
}

// DatabaseConfig holds history store configuration. Driver selects
// between postgres and sqlite; the sqlite path is only read for the
// sqlite driver.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER"         yaml:"driver"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	SQLitePath      string        `env:"SQLITE_PATH"       yaml:"sqlite_path"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
	Output string `yaml:"output"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults[Config](path, setDefaults)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("database driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("service port out of range: %d", c.Service.Port)
	}
	return nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownTimeout
	}
	if s.RateLimit == 0 {
		s.RateLimit = defaultRateLimit
	}
	if s.RateBurst == 0 {
		s.RateBurst = defaultRateBurst
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.SQLitePath == "" {
		d.SQLitePath = defaultSQLitePath
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
