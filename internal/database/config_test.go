package database

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Driver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.Driver)
	}
	if !strings.Contains(cfg.DSN, "dbname=cornerstore") {
		t.Errorf("DSN missing default dbname: %q", cfg.DSN)
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d, want 25", cfg.MaxOpenConns)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(cfg.DSN, "host=db.internal") {
		t.Errorf("DSN missing overridden host: %q", cfg.DSN)
	}
	if cfg.MaxOpenConns != 5 {
		t.Errorf("MaxOpenConns = %d, want 5", cfg.MaxOpenConns)
	}
}
