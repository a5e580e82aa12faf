// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

An optional .env file is loaded first, then environment variables are read
with defaults, then flags override them.

# CLI Flags

	-p          Server port
	-t          Database type (postgres or sqlite)
	-c          Database settings properties file
	-data       Directory holding poll definition files
	-log-level  Log level
	-trust-proxy  Take client IPs from X-Forwarded-For

# Environment Variables

	PORT          → -p          (default 8080)
	DATABASE_TYPE → -t          (default postgres)
	DB_SETTINGS   → -c          (default dbsettings.properties)
	DATA_DIR      → -data       (default data)
	LOG_LEVEL     → -log-level  (default info)
	TRUST_PROXY   → -trust-proxy (default false)

# Database Settings

LoadDBSettings reads a key=value properties file. host, port, name, user
and password are all required; a missing key fails with ErrMissingSetting
naming every absent key.

	settings, err := cliparse.LoadDBSettings(cfg.SettingsPath)
	conn, err := sql.Open(cliparse.DriverName(cfg.DatabaseType), settings.DSN(cfg.DatabaseType))
*/
package cliparse
