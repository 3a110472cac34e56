package sqlfx

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// database/sql driver name, DriverPostgres or DriverSQLite
	Driver string
	DSN    string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}
