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
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: test
gig_db:
  storage: memory
auth:
  jwt_secret: secret
business:
  starter_package_id: starter
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "test" {
		t.Errorf("env = %q", cfg.Env)
	}
	if cfg.HTTPServer.Port != "8080" {
		t.Errorf("http port = %q, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Business.MinWithdrawal != "100" {
		t.Errorf("min withdrawal = %q, want 100", cfg.Business.MinWithdrawal)
	}
	if cfg.Scheduler.SweepInterval != time.Minute {
		t.Errorf("sweep interval = %v, want 1m", cfg.Scheduler.SweepInterval)
	}
	if cfg.KafkaService.Topic != "notification-events" {
		t.Errorf("kafka topic = %q", cfg.KafkaService.Topic)
	}
	if cfg.Business.StarterPackageID != "starter" {
		t.Errorf("starter package = %q", cfg.Business.StarterPackageID)
	}
}

func TestLoadRejectsPostgresWithoutDsn(t *testing.T) {
	path := writeConfig(t, `
gig_db:
  storage: postgres
auth:
  jwt_secret: secret
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for missing dsn")
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	path := writeConfig(t, `
gig_db:
  storage: sqlite
auth:
  jwt_secret: secret
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for unknown storage")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
