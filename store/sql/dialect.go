package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Dialect returns the bun dialect for a database/sql driver name.
func Dialect(driver string) (schema.Dialect, error) {
	switch normalizeDriver(driver) {
	case DriverPostgres:
		return pgdialect.New(), nil
	case DriverSQLite:
		return sqlitedialect.New(), nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
}

// OpenDB opens dsn with the lib/pq or go-sqlite3 driver and wraps it in bun.
func OpenDB(driver, dsn string) (*bun.DB, error) {
	normalized := normalizeDriver(driver)
	dialect, err := Dialect(normalized)
	if err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open(normalized, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", normalized, err)
	}
	if normalized == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}
	return bun.NewDB(sqlDB, dialect), nil
}

func normalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	case "sqlite", "sqlite3":
		return DriverSQLite
	default:
		return strings.ToLower(strings.TrimSpace(driver))
	}
}
