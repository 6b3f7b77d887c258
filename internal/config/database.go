// internal/config/database.go
package config

import (
	"fmt"
	"strings"
)

// DSN builds a libpq keyword/value connection string. Values containing
// spaces or quotes are single-quoted as libpq requires.
func (d *DatabaseConfig) DSN() string {
	return d.dsn(d.Password)
}

// RedactedDSN is safe to log.
func (d *DatabaseConfig) RedactedDSN() string {
	if d.Password == "" {
		return d.dsn("")
	}
	return d.dsn("xxxxx")
}

func (d *DatabaseConfig) dsn(password string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		quoteDSN(d.Host), quoteDSN(d.Port), quoteDSN(d.User), quoteDSN(password), quoteDSN(d.Database), quoteDSN(d.SSLMode),
	)
}

func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
