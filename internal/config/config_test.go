package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/splitbill.db" {
		t.Errorf("DBPath = %q, want ./data/splitbill.db", cfg.DBPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/events.db")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DBPath != "/tmp/events.db" {
		t.Errorf("DBPath = %q, want /tmp/events.db", cfg.DBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Port: "8080", DBPath: "test.db"}},
		{name: "non-numeric port", cfg: Config{Port: "http", DBPath: "test.db"}, wantErr: true},
		{name: "port out of range", cfg: Config{Port: "70000", DBPath: "test.db"}, wantErr: true},
		{name: "empty db path", cfg: Config{Port: "8080", DBPath: ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreatesDBDirectory(t *testing.T) {
	cfg := Config{Port: "8080", DBPath: filepath.Join(t.TempDir(), "nested", "events.db")}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
