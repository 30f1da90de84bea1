package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs. Loaded once at startup;
// the symbol set in particular is fixed for the process lifetime.
type Config struct {
	Symbols []string `yaml:"symbols"`

	Store struct {
		Dir string `yaml:"dir"`
	} `yaml:"store"`

	GRPC struct {
		Addr string `yaml:"addr"`
	} `yaml:"grpc"`

	Kafka struct {
		Brokers  []string      `yaml:"brokers"`
		Topic    string        `yaml:"topic"`
		Interval time.Duration `yaml:"interval"`
	} `yaml:"kafka"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store.Dir == "" {
		c.Store.Dir = "./data"
	}
	if c.GRPC.Addr == "" {
		c.GRPC.Addr = ":50051"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "fills"
	}
	if c.Kafka.Interval == 0 {
		c.Kafka.Interval = 250 * time.Millisecond
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate rejects configs the engine must not boot with.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return errors.New("at least one symbol is required")
	}
	seen := make(map[string]struct{}, len(c.Symbols))
	for _, sym := range c.Symbols {
		if sym == "" {
			return errors.New("empty symbol")
		}
		if _, dup := seen[sym]; dup {
			return fmt.Errorf("duplicate symbol %q", sym)
		}
		seen[sym] = struct{}{}
	}
	if len(c.Kafka.Brokers) == 0 {
		return errors.New("at least one kafka broker is required")
	}
	return nil
}
