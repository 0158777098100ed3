// Package config loads the application configuration via Viper from env
// vars and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Storage backend and catalog source selectors. Backend selection is a
// configuration concern; the reconciliation core never branches on it.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"

	CatalogSourceDB    = "db"    // catalog lives in the active storage backend
	CatalogSourceExcel = "excel" // catalog is a swappable spreadsheet
)

// Config groups the application configuration.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	DB      DBConfig
	Catalog CatalogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selects where reconciliation records (and, for the db
// catalog source, the catalog) live.
type StorageConfig struct {
	Backend    string // BackendPostgres or BackendSQLite
	SQLitePath string // database file for the sqlite backend
}

// DBConfig PostgreSQL settings. If DatabaseURL is set it is used as the full
// connection string (e.g. a hosted Postgres DSN); otherwise the DSN is built
// from the individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DatabaseURL when set, the built DSN otherwise.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// CatalogConfig selects the catalog source for lookups.
type CatalogConfig struct {
	Source    string // CatalogSourceDB or CatalogSourceExcel
	File      string // active spreadsheet for the excel source
	UploadDir string // staging directory for uploaded catalog files
}

// Load reads configuration from env vars and optionally a .env file. Env
// vars win. Expected names: APP_ENV, HTTP_PORT, STORAGE_BACKEND,
// DATABASE_URL, SQLITE_PATH, CATALOG_SOURCE, CATALOG_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stok-opname"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend:    getString(v, "STORAGE_BACKEND", BackendPostgres),
			SQLitePath: getString(v, "SQLITE_PATH", "data/stok_opname.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stok_opname"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Catalog: CatalogConfig{
			Source:    getString(v, "CATALOG_SOURCE", CatalogSourceDB),
			File:      getString(v, "CATALOG_FILE", ""),
			UploadDir: getString(v, "CATALOG_UPLOAD_DIR", "data/uploads"),
		},
	}

	switch cfg.Storage.Backend {
	case BackendPostgres, BackendSQLite:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND tidak dikenal: %q", cfg.Storage.Backend)
	}
	switch cfg.Catalog.Source {
	case CatalogSourceDB:
	case CatalogSourceExcel:
		if cfg.Catalog.File == "" {
			return nil, fmt.Errorf("CATALOG_FILE wajib diisi untuk CATALOG_SOURCE=excel")
		}
	default:
		return nil, fmt.Errorf("CATALOG_SOURCE tidak dikenal: %q", cfg.Catalog.Source)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
