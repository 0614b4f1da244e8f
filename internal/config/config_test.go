package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Archive.Driver != ArchiveMemory {
		t.Errorf("expected memory archive, got %s", cfg.Archive.Driver)
	}
	if cfg.Catalog.Source != SourceEmbedded || cfg.Model.Source != SourceEmbedded {
		t.Errorf("expected embedded sources, got %s / %s", cfg.Catalog.Source, cfg.Model.Source)
	}
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	path := writeConfig(t, `
port: "9000"
jwt_secret: from-file
archive:
  driver: mongo
  mongo_uri: mongodb://file:27017
cors_origins:
  - http://example.com
`)
	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected port from file, got %s", cfg.Port)
	}
	if cfg.Archive.MongoURI != "mongodb://env:27017" {
		t.Errorf("expected env override, got %s", cfg.Archive.MongoURI)
	}
	if cfg.Archive.Database != "diet_tracker" {
		t.Errorf("expected default database to survive, got %s", cfg.Archive.Database)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"unknown driver", func(c *Config) { c.Archive.Driver = "redis" }, true},
		{"mongo without uri", func(c *Config) { c.Archive.Driver = ArchiveMongo }, true},
		{"postgres without url", func(c *Config) { c.Archive.Driver = ArchivePostgres }, true},
		{"postgres catalog without url", func(c *Config) { c.Catalog.Source = SourcePostgres }, true},
		{"s3 model without bucket", func(c *Config) { c.Model.Source = "s3://models/calorie_model.json" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			cfg.JWTSecret = "secret"
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
