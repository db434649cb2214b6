// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/repair-cost/pkg/costing"
)

// Price source kinds.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig        `yaml:"server"`
	Database DatabaseConfig      `yaml:"database"`
	Pricing  PricingConfig       `yaml:"pricing"`
	Catalog  []costing.FamilyDef `yaml:"catalog"`
	Recost   RecostConfig        `yaml:"recost"`
	Logging  LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
	if d.PoolSize > 0 {
		dsn += fmt.Sprintf(" pool_max_conns=%d", d.PoolSize)
	}
	return dsn
}

// PricingConfig selects where the price table is loaded from.
type PricingConfig struct {
	Source    string          `yaml:"source"` // file, database
	File      string          `yaml:"file"`
	Sentinels SentinelsConfig `yaml:"sentinels"`
}

// SentinelsConfig names the price cell tokens that stand for the two
// non-numeric price states.
type SentinelsConfig struct {
	NeedsReplacement string `yaml:"needs_replacement"` // default: NTR
	NotAvailable     string `yaml:"not_available"`     // default: NA
}

// RecostConfig defines the scheduled batch recost of inspections.
type RecostConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Interval      time.Duration `yaml:"interval"`
	BatchSize     int           `yaml:"batch_size"`
	RowsPerSecond float64       `yaml:"rows_per_second"` // 0 = unlimited
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// BuildCatalog returns the configured family catalog, or the default one
// when none is configured.
func (c *Config) BuildCatalog() (*costing.Catalog, error) {
	if len(c.Catalog) == 0 {
		return costing.DefaultCatalog(), nil
	}
	return costing.NewCatalog(c.Catalog)
}

// NeedsDatabase reports whether any configured component uses PostgreSQL.
func (c *Config) NeedsDatabase() bool {
	return c.Pricing.Source == SourceDatabase || c.Recost.Enabled
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyPricingDefaults(&cfg.Pricing)
	applyRecostDefaults(&cfg.Recost)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyPricingDefaults(p *PricingConfig) {
	if p.Source == "" {
		p.Source = SourceFile
	}
	if p.Sentinels.NeedsReplacement == "" {
		p.Sentinels.NeedsReplacement = "NTR"
	}
	if p.Sentinels.NotAvailable == "" {
		p.Sentinels.NotAvailable = "NA"
	}
}

func applyRecostDefaults(r *RecostConfig) {
	if r.Interval == 0 {
		r.Interval = time.Hour
	}
	if r.BatchSize == 0 {
		r.BatchSize = 200
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Pricing.Source {
	case SourceFile:
		if cfg.Pricing.File == "" {
			errs = append(
				errs,
				fmt.Errorf("pricing.file is required when source is file"),
			)
		}
	case SourceDatabase:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"pricing.source must be one of: file, database (got %q)",
				cfg.Pricing.Source,
			),
		)
	}

	if cfg.Pricing.Sentinels.NeedsReplacement == cfg.Pricing.Sentinels.NotAvailable {
		errs = append(errs, fmt.Errorf("pricing.sentinels tokens must differ"))
	}

	if cfg.NeedsDatabase() {
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required"))
		}
	}

	if cfg.Recost.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("recost.batch_size must be positive"))
	}

	if cfg.Recost.RowsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("recost.rows_per_second must not be negative"))
	}

	if len(cfg.Catalog) > 0 {
		if _, err := costing.NewCatalog(cfg.Catalog); err != nil {
			errs = append(errs, fmt.Errorf("catalog: %w", err))
		}
	}

	return errors.Join(errs...)
}
