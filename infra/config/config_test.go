package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
symbols: [AAPL, GOOGL, MSFT, AMZN]
kafka:
  brokers: ["localhost:9092"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GRPC.Addr != ":50051" {
		t.Errorf("default grpc addr: %q", cfg.GRPC.Addr)
	}
	if cfg.Kafka.Topic != "fills" || cfg.Kafka.Interval != 250*time.Millisecond {
		t.Errorf("kafka defaults: %+v", cfg.Kafka)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsEmptySymbols(t *testing.T) {
	path := writeConfig(t, `
symbols: []
kafka:
  brokers: ["localhost:9092"]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty symbol set")
	}
}

func TestLoadRejectsDuplicateSymbols(t *testing.T) {
	path := writeConfig(t, `
symbols: [AAPL, AAPL]
kafka:
  brokers: ["localhost:9092"]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for duplicate symbol")
	}
}

func TestLoadRejectsMissingBrokers(t *testing.T) {
	path := writeConfig(t, `
symbols: [AAPL]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing brokers")
	}
}
