package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// PktDump holds all configuration for the capture decoder.
type PktDump struct {
	LogLevel string `yaml:"log_level"`

	// Database is only used when Mirror.Enabled is set.
	Database DatabaseConfig `yaml:"database"`
	Mirror   Mirror         `yaml:"mirror"`
	Decode   Decode         `yaml:"decode"`
}

// Mirror controls copying capture records into Postgres.
type Mirror struct {
	Enabled       bool          `yaml:"enabled"`
	BatchSize     int           `yaml:"batch_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
}

// Decode controls how records are decoded and logged.
type Decode struct {
	InflateCompressed bool `yaml:"inflate_compressed"`
	LogUnknown        bool `yaml:"log_unknown"`    // log opcodes with no registered parser
	QueueSize         int  `yaml:"queue_size"`     // records buffered between reader and decoder
	HexDumpLimit      int  `yaml:"hex_dump_limit"` // bytes of payload logged at debug level
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string with every part escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// DefaultPktDump returns PktDump config with sensible defaults.
func DefaultPktDump() PktDump {
	return PktDump{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "world",
			Password: "world",
			DBName:   "world",
			SSLMode:  "disable",
		},
		Mirror: Mirror{
			BatchSize:     500,
			FlushInterval: 2 * time.Second,
		},
		Decode: Decode{
			InflateCompressed: true,
			LogUnknown:        true,
			QueueSize:         256,
			HexDumpLimit:      64,
		},
	}
}

// Validate reports settings that would stall or break the pipeline.
func (c PktDump) Validate() error {
	if c.Decode.QueueSize < 1 {
		return fmt.Errorf("decode.queue_size must be positive, got %d", c.Decode.QueueSize)
	}
	if c.Decode.HexDumpLimit < 0 {
		return fmt.Errorf("decode.hex_dump_limit must not be negative, got %d", c.Decode.HexDumpLimit)
	}
	if c.Mirror.Enabled {
		if c.Mirror.BatchSize < 1 {
			return fmt.Errorf("mirror.batch_size must be positive, got %d", c.Mirror.BatchSize)
		}
		if c.Mirror.FlushInterval <= 0 {
			return fmt.Errorf("mirror.flush_interval must be positive, got %s", c.Mirror.FlushInterval)
		}
	}
	return nil
}

// LoadPktDump loads decoder config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadPktDump(path string) (PktDump, error) {
	cfg := DefaultPktDump()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
