package badgerfx

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

type EntityFactory[T Entity] func() T

// Repository reads and writes entities stored under prefix and keyed by a
// numeric id. Keys are zero padded so that iteration order equals id order.
type Repository[T Entity] struct {
	prefix  string
	zero    T
	factory EntityFactory[T]
}

func NewRepository[T Entity](prefix string, factory EntityFactory[T]) *Repository[T] {
	var zero T
	return &Repository[T]{
		prefix:  prefix,
		zero:    zero,
		factory: factory,
	}
}

func (r *Repository[T]) Prefix() []byte {
	return []byte(r.prefix + ":")
}

func (r *Repository[T]) Key(id uint64) []byte {
	return fmt.Appendf(nil, "%s:%020d", r.prefix, id)
}

func (r *Repository[T]) List(txn *badger.Txn, options badger.IteratorOptions) ([]T, error) {
	validPrefix := r.Prefix()
	seekPrefix := r.Prefix()
	if options.Reverse {
		seekPrefix = append(seekPrefix, SeekEnd)
	}
	options.Prefix = validPrefix

	it := txn.NewIterator(options)
	defer it.Close()

	entities := []T{}
	for it.Seek(seekPrefix); it.ValidForPrefix(validPrefix); it.Next() {
		entity, err := r.decode(it.Item())
		if err != nil {
			return nil, err
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *Repository[T]) Read(txn *badger.Txn, id uint64) (T, error) {
	item, err := txn.Get(r.Key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.zero, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity: %w", err)
	}

	return r.decode(item)
}

func (r *Repository[T]) Write(txn *badger.Txn, id uint64, entity T) error {
	data, err := entity.MarshalStorage()
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	if setErr := txn.Set(r.Key(id), data); setErr != nil {
		return fmt.Errorf("failed to update entity: %w", setErr)
	}

	return nil
}

// Delete removes the entity and reports whether it existed.
func (r *Repository[T]) Delete(txn *badger.Txn, id uint64) (bool, error) {
	key := r.Key(id)
	if _, err := txn.Get(key); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get entity: %w", err)
	}

	if delErr := txn.Delete(key); delErr != nil {
		return false, fmt.Errorf("failed to delete entity: %w", delErr)
	}

	return true, nil
}

func (r *Repository[T]) decode(item *badger.Item) (T, error) {
	entity := r.factory()
	if err := item.Value(func(val []byte) error {
		return entity.UnmarshalStorage(val)
	}); err != nil {
		return r.zero, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return entity, nil
}
