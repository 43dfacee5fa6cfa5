package database

import (
	"strconv"
	"strings"
)

// Driver identifies the SQL dialect behind a DSN
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// DriverForDSN picks the driver from the DSN scheme.
// Anything that is not a postgres URL or key/value DSN is a sqlite path.
func DriverForDSN(dsn string) Driver {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "host=") || strings.Contains(lower, " dbname="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

// sqlName returns the name the driver registered with database/sql
func (d Driver) sqlName() string {
	if d == DriverPostgres {
		return "postgres"
	}
	return "sqlite"
}

// rebind rewrites ? placeholders into $1, $2, ... for postgres
func (d Driver) rebind(query string) string {
	if d != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
