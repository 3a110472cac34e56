package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/pkg/sqlfx"
)

type dialect struct {
	placeholder func(n int) string
	primaryKey  string
	types       map[ColumnType]string
	lockRow     string
	// lower-cases a column with Unicode rules
	lower string
}

var dialects = map[string]dialect{
	DriverPostgres: {
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
		primaryKey:  "BIGSERIAL PRIMARY KEY",
		types: map[ColumnType]string{
			ColumnText:    "TEXT NOT NULL DEFAULT ''",
			ColumnInteger: "BIGINT NOT NULL DEFAULT 0",
			ColumnReal:    "DOUBLE PRECISION NOT NULL DEFAULT 0",
		},
		lockRow: " FOR UPDATE",
		lower:   "LOWER",
	},
	DriverSQLite: {
		placeholder: func(int) string { return "?" },
		primaryKey:  "INTEGER PRIMARY KEY AUTOINCREMENT",
		types: map[ColumnType]string{
			ColumnText:    "TEXT NOT NULL DEFAULT ''",
			ColumnInteger: "INTEGER NOT NULL DEFAULT 0",
			ColumnReal:    "REAL NOT NULL DEFAULT 0",
		},
		lockRow: "",
		lower:   sqlfx.SQLiteLower,
	},
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type sqlQueries struct {
	selectAll    string
	selectByID   string
	selectSearch string
	lockByID     string
	insert       string
	update       string
	deleteByID   string
}

type sqlStore[T any, D any] struct {
	db       *sql.DB
	schema   Schema[T, D]
	queries  sqlQueries
	searches int

	logger *zap.Logger
}

func newSQLStore[T any, D any](ctx context.Context, backend *Backend, schema Schema[T, D], logger *zap.Logger) (*sqlStore[T, D], error) {
	store := &sqlStore[T, D]{
		db:      backend.db,
		schema:  schema,
		queries: buildQueries(backend.dialect, schema.Table, schema.Columns),
		searches: len(lo.Filter(schema.Columns, func(c Column, _ int) bool {
			return c.Searchable
		})),

		logger: logger,
	}

	if _, err := backend.db.ExecContext(ctx, createTable(backend.dialect, schema.Table, schema.Columns)); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", schema.Table, err)
	}

	return store, nil
}

func createTable(d dialect, table string, columns []Column) string {
	definitions := lo.Map(columns, func(c Column, _ int) string {
		return c.Name + " " + d.types[c.Type]
	})

	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (id %s, %s)",
		table, d.primaryKey, strings.Join(definitions, ", "),
	)
}

func buildQueries(d dialect, table string, columns []Column) sqlQueries {
	names := lo.Map(columns, func(c Column, _ int) string { return c.Name })
	selectColumns := "id, " + strings.Join(names, ", ")

	var conditions []string
	for _, c := range columns {
		if c.Searchable {
			conditions = append(conditions, fmt.Sprintf(`%s(%s) LIKE %s ESCAPE '\'`, d.lower, c.Name, d.placeholder(len(conditions)+1)))
		}
	}
	if len(conditions) == 0 {
		// a term never matches an entity without searchable columns
		conditions = []string{"1 = 0"}
	}

	values := make([]string, len(names))
	assignments := make([]string, len(names))
	for i, name := range names {
		values[i] = d.placeholder(i + 1)
		assignments[i] = name + " = " + d.placeholder(i+1)
	}

	return sqlQueries{
		selectAll:    fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectColumns, table),
		selectByID:   fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", selectColumns, table, d.placeholder(1)),
		selectSearch: fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY id", selectColumns, table, strings.Join(conditions, " OR ")),
		lockByID:     fmt.Sprintf("SELECT %s FROM %s WHERE id = %s%s", selectColumns, table, d.placeholder(1), d.lockRow),
		insert: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			table, strings.Join(names, ", "), strings.Join(values, ", "),
		),
		update: fmt.Sprintf(
			"UPDATE %s SET %s WHERE id = %s",
			table, strings.Join(assignments, ", "), d.placeholder(len(names)+1),
		),
		deleteByID: fmt.Sprintf("DELETE FROM %s WHERE id = %s", table, d.placeholder(1)),
	}
}

func (s *sqlStore[T, D]) FindByID(ctx context.Context, id int64) records.Outcome[T] {
	record, err := s.scanOne(s.db.QueryRowContext(ctx, s.queries.selectByID, id), id)

	return outcome(s.logger, "find_by_id", record, err)
}

func (s *sqlStore[T, D]) FindAll(ctx context.Context) records.Outcome[[]T] {
	list, err := s.query(ctx, s.queries.selectAll)

	return outcome(s.logger, "find_all", list, err)
}

func (s *sqlStore[T, D]) FindBySearch(ctx context.Context, term string) records.Outcome[[]T] {
	if term == "" {
		return s.FindAll(ctx)
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	args := lo.Times(s.searches, func(int) any { return pattern })

	list, err := s.query(ctx, s.queries.selectSearch, args...)

	return outcome(s.logger, "find_by_search", list, err)
}

func (s *sqlStore[T, D]) Create(ctx context.Context, draft D) records.Outcome[T] {
	record := s.schema.New(draft)

	var id int64
	err := s.db.QueryRowContext(ctx, s.queries.insert, s.values(&record)...).Scan(&id)
	if err != nil {
		err = fmt.Errorf("failed to insert into %s: %w", s.schema.Table, err)
	}
	s.schema.identify(&record, id)

	return outcome(s.logger, "create", record, err)
}

func (s *sqlStore[T, D]) Update(ctx context.Context, id int64, patch D) records.Outcome[T] {
	var merged T
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := s.scanOne(tx.QueryRowContext(ctx, s.queries.lockByID, id), id)
		if err != nil {
			return err
		}

		merged = s.schema.Merge(current, patch)
		s.schema.identify(&merged, id)

		args := append(s.values(&merged), id)
		if _, execErr := tx.ExecContext(ctx, s.queries.update, args...); execErr != nil {
			return fmt.Errorf("failed to update %s: %w", s.schema.Table, execErr)
		}

		return nil
	})

	return outcome(s.logger, "update", merged, err)
}

func (s *sqlStore[T, D]) DeleteByID(ctx context.Context, id int64) records.Outcome[bool] {
	var removed bool

	res, err := s.db.ExecContext(ctx, s.queries.deleteByID, id)
	if err == nil {
		var affected int64
		affected, err = res.RowsAffected()
		removed = affected > 0
	}
	if err != nil {
		err = fmt.Errorf("failed to delete from %s: %w", s.schema.Table, err)
	}

	return outcome(s.logger, "delete_by_id", removed, err)
}

func (s *sqlStore[T, D]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.schema.Table, err)
	}
	defer rows.Close()

	list := []T{}
	for rows.Next() {
		var record T
		if scanErr := rows.Scan(s.targets(&record)...); scanErr != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.schema.Table, scanErr)
		}
		list = append(list, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.schema.Table, rowsErr)
	}

	return list, nil
}

func (s *sqlStore[T, D]) scanOne(row *sql.Row, id int64) (T, error) {
	var record T

	err := row.Scan(s.targets(&record)...)
	if errors.Is(err, sql.ErrNoRows) {
		return record, fmt.Errorf("%w: %d", records.ErrNotFound, id)
	}
	if err != nil {
		return record, fmt.Errorf("failed to scan %s: %w", s.schema.Table, err)
	}

	return record, nil
}

func (s *sqlStore[T, D]) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if fnErr := fn(tx); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("failed to commit transaction: %w", commitErr)
	}

	return nil
}

// targets returns scan destinations in select column order.
func (s *sqlStore[T, D]) targets(record *T) []any {
	id, fields := s.schema.Fields(record)

	return append([]any{id}, fields...)
}

// values returns the column values of record without its id.
func (s *sqlStore[T, D]) values(record *T) []any {
	_, fields := s.schema.Fields(record)

	return lo.Map(fields, func(field any, _ int) any {
		switch v := field.(type) {
		case *string:
			return *v
		case *int64:
			return *v
		case *float64:
			return *v
		default:
			return v
		}
	})
}

var _ records.Store[int64, struct{}, struct{}] = (*sqlStore[struct{}, struct{}])(nil)
