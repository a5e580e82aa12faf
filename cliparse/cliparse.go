package cliparse

import (
	"errors"
	"flag"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port         int    `env:"PORT" env-default:"8080"`
	DatabaseType string `env:"DATABASE_TYPE" env-default:"postgres"`
	SettingsPath string `env:"DB_SETTINGS" env-default:"dbsettings.properties"`
	DataDir      string `env:"DATA_DIR" env-default:"data"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	TrustProxy   bool   `env:"TRUST_PROXY" env-default:"false"`
}

// ParseFlags reads the environment (and an optional .env file) and lets
// command-line flags override it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("glasanje", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.SettingsPath, "c", cfg.SettingsPath, "Database settings properties file")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory holding poll definition files")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", cfg.TrustProxy, "Take client IPs from X-Forwarded-For (only behind a proxy that sets it)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}
	if cfg.SettingsPath == "" {
		return Config{}, errors.New("database settings file required (use -c or DB_SETTINGS env)")
	}
	if cfg.DataDir == "" {
		return Config{}, errors.New("data directory required (use -data or DATA_DIR env)")
	}

	return cfg, nil
}
