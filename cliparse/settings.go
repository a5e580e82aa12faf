// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingSetting = errors.New("missing database setting")

// RequiredSettings lists the keys every settings file must define.
var RequiredSettings = []string{"host", "port", "name", "user", "password"}

// DBSettings holds the connection properties read from the settings file.
type DBSettings struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// LoadDBSettings parses a key=value properties file. All RequiredSettings
// must be present; an empty value counts as present.
func LoadDBSettings(path string) (DBSettings, error) {
	props, err := godotenv.Read(path)
	if err != nil {
		return DBSettings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return settingsFromMap(props)
}

func settingsFromMap(props map[string]string) (DBSettings, error) {
	var missing []string
	for _, key := range RequiredSettings {
		if _, ok := props[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return DBSettings{}, fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}

	return DBSettings{
		Host:     props["host"],
		Port:     props["port"],
		Name:     props["name"],
		User:     props["user"],
		Password: props["password"],
	}, nil
}

// DSN builds the driver connection string for the given database type.
// For sqlite the database name is the file path.
func (s DBSettings) DSN(databaseType string) string {
	if databaseType == DatabaseSQLite {
		return "file:" + s.Name + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.User, s.Password),
		Host:     net.JoinHostPort(s.Host, s.Port),
		Path:     "/" + s.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// DriverName maps a database type to its registered database/sql driver.
func DriverName(databaseType string) string {
	if databaseType == DatabaseSQLite {
		return "sqlite"
	}
	return "postgres"
}
