package badgerfx_test

import (
	"encoding/json"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tillbook/tillbook/pkg/badgerfx"
)

type note struct {
	Text string `json:"text"`
}

func (n *note) MarshalStorage() ([]byte, error) {
	return json.Marshal(n)
}

func (n *note) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, n)
}

func newDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badgerfx.New(badgerfx.Config{InMemory: true}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRepository(t *testing.T) {
	db := newDB(t)
	notes := badgerfx.NewRepository("note", func() *note { return &note{} })
	others := badgerfx.NewRepository("notes", func() *note { return &note{} })

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		for _, id := range []uint64{10, 2, 1} {
			if err := notes.Write(txn, id, &note{Text: string(rune('a' + id))}); err != nil {
				return err
			}
		}
		return others.Write(txn, 3, &note{Text: "other"})
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		list, err := notes.List(txn, badger.DefaultIteratorOptions)
		require.NoError(t, err)
		require.Len(t, list, 3, "prefix must not leak into a longer prefix")
		assert.Equal(t, "b", list[0].Text)
		assert.Equal(t, "c", list[1].Text)
		assert.Equal(t, "k", list[2].Text)

		_, err = notes.Read(txn, 99)
		assert.ErrorIs(t, err, badgerfx.ErrNotFound)
		return nil
	}))

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		removed, err := notes.Delete(txn, 2)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = notes.Delete(txn, 2)
		require.NoError(t, err)
		assert.False(t, removed)
		return nil
	}))
}
