package sqlfx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"go.uber.org/zap"
	"modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteLower is a scalar function lower-casing its argument with Unicode
// rules. The builtin LOWER of sqlite folds ASCII only.
const SQLiteLower = "unicode_lower"

var ErrUnknownDriver = errors.New("unknown sql driver")

// sqlite pragmas applied to every new connection
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
}

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(SQLiteLower, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, config Config, logger *zap.Logger) (*sql.DB, error) {
	if config.Driver != DriverPostgres && config.Driver != DriverSQLite {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, config.Driver)
	}

	dsn := config.DSN
	if config.Driver == DriverSQLite {
		dsn = SQLiteDSN(dsn)
	}

	db, err := sql.Open(config.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.Driver == DriverSQLite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	} else if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	logger.Info("database connected", zap.String("driver", config.Driver))

	return db, nil
}

// SQLiteDSN appends the connection pragmas to dsn so that every connection
// the pool opens gets them.
func SQLiteDSN(dsn string) string {
	params := make([]string, 0, len(sqlitePragmas))
	for _, pragma := range sqlitePragmas {
		params = append(params, "_pragma="+pragma)
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	return dsn + separator + strings.Join(params, "&")
}
