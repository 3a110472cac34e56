package storage

import (
	"fmt"
)

type ColumnType string

const (
	ColumnText    ColumnType = "text"
	ColumnInteger ColumnType = "integer"
	ColumnReal    ColumnType = "real"
)

type Column struct {
	Name       string
	Type       ColumnType
	Searchable bool
}

// Schema describes how records of type T are persisted and how a draft D
// becomes or patches a record.
type Schema[T any, D any] struct {
	// Entity names the record type in logs and badger keys.
	Entity string
	Table  string
	// Columns lists every persisted field except the id.
	Columns []Column

	// Fields returns a pointer to the id and pointers to the fields of
	// Columns, in the same order. Text columns are *string, integer columns
	// *int64 and real columns *float64.
	Fields func(record *T) (*int64, []any)
	// New builds a record without identity from a draft.
	New func(draft D) T
	// Merge replaces every field of record that is present on patch.
	Merge func(record T, patch D) T
}

func (s Schema[T, D]) validate() error {
	if s.Entity == "" || s.Table == "" {
		return fmt.Errorf("%w: entity and table are required", ErrInvalidSchema)
	}
	if s.Fields == nil || s.New == nil || s.Merge == nil {
		return fmt.Errorf("%w: %s: fields, new and merge are required", ErrInvalidSchema, s.Entity)
	}

	var zero T
	_, fields := s.Fields(&zero)
	if len(fields) != len(s.Columns) {
		return fmt.Errorf("%w: %s: %d fields for %d columns", ErrInvalidSchema, s.Entity, len(fields), len(s.Columns))
	}

	for i, column := range s.Columns {
		var ok bool
		switch column.Type {
		case ColumnText:
			_, ok = fields[i].(*string)
		case ColumnInteger:
			_, ok = fields[i].(*int64)
		case ColumnReal:
			_, ok = fields[i].(*float64)
		}
		if !ok {
			return fmt.Errorf("%w: %s.%s: field does not match type %q", ErrInvalidSchema, s.Entity, column.Name, column.Type)
		}
		if column.Searchable && column.Type != ColumnText {
			return fmt.Errorf("%w: %s.%s: only text columns are searchable", ErrInvalidSchema, s.Entity, column.Name)
		}
	}

	return nil
}

// searchable returns the values of the searchable columns of record.
func (s Schema[T, D]) searchable(record *T) []string {
	_, fields := s.Fields(record)

	values := make([]string, 0, len(fields))
	for i, column := range s.Columns {
		if column.Searchable {
			values = append(values, *fields[i].(*string))
		}
	}

	return values
}

func (s Schema[T, D]) identify(record *T, id int64) {
	ptr, _ := s.Fields(record)
	*ptr = id
}

func (s Schema[T, D]) id(record *T) int64 {
	ptr, _ := s.Fields(record)
	return *ptr
}
