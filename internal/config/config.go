package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	ArchiveMongo    = "mongo"
	ArchivePostgres = "postgres"
	ArchiveMemory   = "memory"

	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

type Config struct {
	Env         string         `yaml:"env"`
	Port        string         `yaml:"port"`
	JWTSecret   string         `yaml:"jwt_secret"`
	CORSOrigins []string       `yaml:"cors_origins"`
	Postgres    PostgresConfig `yaml:"postgres"`
	Archive     ArchiveConfig  `yaml:"archive"`
	Catalog     SourceConfig   `yaml:"catalog"`
	Model       SourceConfig   `yaml:"model"`
	Storage     StorageConfig  `yaml:"storage"`
}

type PostgresConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
	MinConns int32  `yaml:"min_conns"`
}

type ArchiveConfig struct {
	Driver     string `yaml:"driver"`
	MongoURI   string `yaml:"mongo_uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// SourceConfig points at static data. Source is "embedded", "postgres"
// (catalog only), a local file path, or "s3://<key>" inside the storage bucket.
type SourceConfig struct {
	Source string `yaml:"source"`
}

type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
}

func defaults() Config {
	return Config{
		Env:         "development",
		Port:        "8080",
		CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		Postgres: PostgresConfig{
			MaxConns: 10,
			MinConns: 2,
		},
		Archive: ArchiveConfig{
			Driver:     ArchiveMemory,
			Database:   "diet_tracker",
			Collection: "daily_logs",
		},
		Catalog: SourceConfig{Source: SourceEmbedded},
		Model:   SourceConfig{Source: SourceEmbedded},
	}
}

// Load reads the optional YAML file at path, then .env (outside production),
// then lets environment variables override individual values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = GetEnv("APP_ENV", cfg.Env)
	cfg.Port = GetEnv("PORT", cfg.Port)
	cfg.JWTSecret = GetEnv("JWT_SECRET", cfg.JWTSecret)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	cfg.Postgres.URL = GetEnv("DATABASE_URL", cfg.Postgres.URL)
	if v, err := strconv.ParseInt(os.Getenv("DATABASE_MAX_CONNS"), 10, 32); err == nil {
		cfg.Postgres.MaxConns = int32(v)
	}

	cfg.Archive.Driver = GetEnv("ARCHIVE_DRIVER", cfg.Archive.Driver)
	cfg.Archive.MongoURI = GetEnv("MONGO_URI", cfg.Archive.MongoURI)
	cfg.Archive.Database = GetEnv("MONGO_DATABASE", cfg.Archive.Database)
	cfg.Archive.Collection = GetEnv("MONGO_COLLECTION", cfg.Archive.Collection)

	cfg.Catalog.Source = GetEnv("CATALOG_SOURCE", cfg.Catalog.Source)
	cfg.Model.Source = GetEnv("MODEL_SOURCE", cfg.Model.Source)

	cfg.Storage.Endpoint = GetEnv("R2_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.AccessKey = GetEnv("R2_ACCESS_KEY", cfg.Storage.AccessKey)
	cfg.Storage.SecretKey = GetEnv("R2_SECRET_KEY", cfg.Storage.SecretKey)
	cfg.Storage.Bucket = GetEnv("R2_BUCKET_NAME", cfg.Storage.Bucket)
	cfg.Storage.PublicBaseURL = GetEnv("R2_PUBLIC_BASE_URL", cfg.Storage.PublicBaseURL)
}

// Validate fails fast on settings the selected drivers cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	switch c.Archive.Driver {
	case ArchiveMongo:
		if c.Archive.MongoURI == "" {
			return errors.New("MONGO_URI is required for the mongo archive")
		}
	case ArchivePostgres, ArchiveMemory:
	default:
		return fmt.Errorf("unknown archive driver %q", c.Archive.Driver)
	}

	if c.NeedsPostgres() && c.Postgres.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.NeedsStorage() && (c.Storage.Endpoint == "" || c.Storage.Bucket == "") {
		return errors.New("R2_ENDPOINT and R2_BUCKET_NAME are required for s3:// sources")
	}
	return nil
}

// NeedsPostgres reports whether any component is backed by Postgres.
// Users are stored in Postgres whenever a DATABASE_URL is given.
func (c *Config) NeedsPostgres() bool {
	return c.Archive.Driver == ArchivePostgres || c.Catalog.Source == SourcePostgres
}

func (c *Config) NeedsStorage() bool {
	return strings.HasPrefix(c.Catalog.Source, "s3://") || strings.HasPrefix(c.Model.Source, "s3://")
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
