package storage

import "time"

const (
	DriverBadger   = "badger"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver string

	// badger directory, or sqlite file directory when DSN is empty
	DataDir string
	// keep badger in memory
	InMemory bool

	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}
