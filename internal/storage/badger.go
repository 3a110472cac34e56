package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/pkg/badgerfx"
)

// ids are leased from the sequence in blocks of this size
const sequenceBandwidth = 64

type badgerRecord[T any] struct {
	value T
}

func (r *badgerRecord[T]) MarshalStorage() ([]byte, error) {
	return json.Marshal(r.value)
}

func (r *badgerRecord[T]) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, &r.value)
}

type badgerStore[T any, D any] struct {
	db       *badger.DB
	sequence *badger.Sequence
	repo     *badgerfx.Repository[*badgerRecord[T]]
	schema   Schema[T, D]

	logger *zap.Logger
}

func newBadgerStore[T any, D any](backend *Backend, schema Schema[T, D], logger *zap.Logger) (*badgerStore[T, D], error) {
	sequence, err := backend.kv.GetSequence([]byte("seq:"+schema.Entity), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s sequence: %w", schema.Entity, err)
	}
	backend.onClose(sequence.Release)

	return &badgerStore[T, D]{
		db:       backend.kv,
		sequence: sequence,
		repo: badgerfx.NewRepository(schema.Entity, func() *badgerRecord[T] {
			return &badgerRecord[T]{}
		}),
		schema: schema,

		logger: logger,
	}, nil
}

func (s *badgerStore[T, D]) FindByID(ctx context.Context, id int64) records.Outcome[T] {
	var record T
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		record, err = s.read(txn, id)
		return err
	})

	return outcome(s.logger, "find_by_id", record, err)
}

func (s *badgerStore[T, D]) FindAll(ctx context.Context) records.Outcome[[]T] {
	list, err := s.list(ctx)

	return outcome(s.logger, "find_all", list, err)
}

func (s *badgerStore[T, D]) FindBySearch(ctx context.Context, term string) records.Outcome[[]T] {
	list, err := s.list(ctx)
	if err == nil && term != "" {
		needle := strings.ToLower(term)
		list = lo.Filter(list, func(record T, _ int) bool {
			return lo.SomeBy(s.schema.searchable(&record), func(value string) bool {
				return strings.Contains(strings.ToLower(value), needle)
			})
		})
	}

	return outcome(s.logger, "find_by_search", list, err)
}

func (s *badgerStore[T, D]) Create(ctx context.Context, draft D) records.Outcome[T] {
	record := s.schema.New(draft)

	err := s.update(ctx, func(txn *badger.Txn) error {
		next, err := s.sequence.Next()
		if err != nil {
			return fmt.Errorf("failed to allocate id: %w", err)
		}
		s.schema.identify(&record, int64(next)+1)

		return s.repo.Write(txn, uint64(next)+1, &badgerRecord[T]{value: record})
	})

	return outcome(s.logger, "create", record, err)
}

func (s *badgerStore[T, D]) Update(ctx context.Context, id int64, patch D) records.Outcome[T] {
	var merged T
	err := s.update(ctx, func(txn *badger.Txn) error {
		current, err := s.read(txn, id)
		if err != nil {
			return err
		}

		merged = s.schema.Merge(current, patch)
		s.schema.identify(&merged, id)

		return s.repo.Write(txn, uint64(id), &badgerRecord[T]{value: merged})
	})

	return outcome(s.logger, "update", merged, err)
}

func (s *badgerStore[T, D]) DeleteByID(ctx context.Context, id int64) records.Outcome[bool] {
	var removed bool
	err := s.update(ctx, func(txn *badger.Txn) error {
		if id < 1 {
			return nil
		}

		var err error
		removed, err = s.repo.Delete(txn, uint64(id))
		return err
	})

	return outcome(s.logger, "delete_by_id", removed, err)
}

func (s *badgerStore[T, D]) read(txn *badger.Txn, id int64) (T, error) {
	var zero T
	if id < 1 {
		return zero, fmt.Errorf("%w: %d", records.ErrNotFound, id)
	}

	record, err := s.repo.Read(txn, uint64(id))
	if errors.Is(err, badgerfx.ErrNotFound) {
		return zero, fmt.Errorf("%w: %d", records.ErrNotFound, id)
	}
	if err != nil {
		return zero, err
	}

	return record.value, nil
}

func (s *badgerStore[T, D]) list(ctx context.Context) ([]T, error) {
	var list []T
	err := s.view(ctx, func(txn *badger.Txn) error {
		stored, err := s.repo.List(txn, badger.DefaultIteratorOptions)
		if err != nil {
			return err
		}

		list = lo.Map(stored, func(record *badgerRecord[T], _ int) T {
			return record.value
		})
		return nil
	})

	return list, err
}

func (s *badgerStore[T, D]) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(fn)
}

func (s *badgerStore[T, D]) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(fn)
	if errors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}

	return err
}

var _ records.Store[int64, struct{}, struct{}] = (*badgerStore[struct{}, struct{}])(nil)
