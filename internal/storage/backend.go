package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/pkg/badgerfx"
	"github.com/tillbook/tillbook/pkg/sqlfx"
)

const connectTimeout = 10 * time.Second

// Backend is an open database shared by every store of the application.
type Backend struct {
	driver string

	kv *badger.DB

	db      *sql.DB
	dialect dialect

	mu      sync.Mutex
	closers []func() error
}

// Connect opens the database selected by config.Driver.
func Connect(ctx context.Context, config Config, logger *zap.Logger) (*Backend, error) {
	backend := &Backend{
		driver: config.Driver,
	}

	switch config.Driver {
	case DriverBadger, "":
		kv, err := badgerfx.New(badgerfx.Config{
			Dir:      config.DataDir,
			InMemory: config.InMemory,
		}, logger.Named("badger"))
		if err != nil {
			return nil, err
		}
		backend.driver = DriverBadger
		backend.kv = kv
	case DriverPostgres, DriverSQLite:
		db, err := sqlfx.Open(ctx, sqlConfig(config), logger.Named("sql"))
		if err != nil {
			return nil, err
		}
		backend.db = db
		backend.dialect = dialects[config.Driver]
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}

	logger.Info("storage opened", zap.String("driver", backend.driver))

	return backend, nil
}

func NewBackend(config Config, lc fx.Lifecycle, logger *zap.Logger) (*Backend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	backend, err := Connect(ctx, config, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing storage")
			return backend.Close()
		},
	})

	return backend, nil
}

func (b *Backend) Driver() string {
	return b.driver
}

// SQL returns the database handle of SQL backends and nil otherwise.
func (b *Backend) SQL() *sql.DB {
	return b.db
}

// Close releases resources held by stores and closes the database.
func (b *Backend) Close() error {
	b.mu.Lock()
	closers := b.closers
	b.closers = nil
	b.mu.Unlock()

	var errs []error
	for _, closer := range closers {
		errs = append(errs, closer())
	}

	if b.kv != nil {
		if err := b.kv.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close BadgerDB: %w", err))
		}
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (b *Backend) onClose(closer func() error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closers = append(b.closers, closer)
}

func sqlConfig(config Config) sqlfx.Config {
	cfg := sqlfx.Config{
		Driver:          sqlfx.DriverPostgres,
		DSN:             config.DSN,
		MaxOpenConns:    config.MaxOpenConns,
		MaxIdleConns:    config.MaxIdleConns,
		ConnMaxLifetime: config.ConnMaxLifetime,
	}

	if config.Driver == DriverSQLite {
		cfg.Driver = sqlfx.DriverSQLite
		if cfg.DSN == "" {
			cfg.DSN = filepath.Join(config.DataDir, "tillbook.db")
		}
	}

	return cfg
}
