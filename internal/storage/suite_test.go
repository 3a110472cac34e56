package storage_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/storage"
)

type item struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Owner string  `json:"owner"`
	Stock int64   `json:"stock"`
	Price float64 `json:"price"`
}

type itemDraft struct {
	Title *string
	Owner *string
	Stock *int64
	Price *float64
}

func ptr[T any](v T) *T {
	return &v
}

var itemSchema = storage.Schema[item, itemDraft]{
	Entity: "item",
	Table:  "items",
	Columns: []storage.Column{
		{Name: "title", Type: storage.ColumnText, Searchable: true},
		{Name: "owner", Type: storage.ColumnText, Searchable: true},
		{Name: "stock", Type: storage.ColumnInteger},
		{Name: "price", Type: storage.ColumnReal},
	},
	Fields: func(r *item) (*int64, []any) {
		return &r.ID, []any{&r.Title, &r.Owner, &r.Stock, &r.Price}
	},
	New: func(d itemDraft) item {
		return mergeItem(item{}, d)
	},
	Merge: mergeItem,
}

func mergeItem(r item, d itemDraft) item {
	if d.Title != nil {
		r.Title = *d.Title
	}
	if d.Owner != nil {
		r.Owner = *d.Owner
	}
	if d.Stock != nil {
		r.Stock = *d.Stock
	}
	if d.Price != nil {
		r.Price = *d.Price
	}
	return r
}

func mustFound[T any](t *testing.T, outcome records.Outcome[T]) T {
	t.Helper()

	value, ok := outcome.Value()
	require.True(t, ok, "expected found, got %s (%v)", outcome, outcome.Err())

	return value
}

// runStoreSuite exercises a store through the records.Store contract. Every
// backend must pass it.
func runStoreSuite(t *testing.T, connect func(t *testing.T) *storage.Backend) {
	open := func(t *testing.T) records.Store[int64, item, itemDraft] {
		t.Helper()

		backend := connect(t)
		store, err := storage.Open(context.Background(), backend, itemSchema, zaptest.NewLogger(t))
		require.NoError(t, err)

		return store
	}

	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		store := open(t)

		assert.Empty(t, mustFound(t, store.FindAll(ctx)))
		assert.Empty(t, mustFound(t, store.FindBySearch(ctx, "x")))
		assert.True(t, store.FindByID(ctx, 1).IsAbsent())
		assert.True(t, store.FindByID(ctx, -1).IsAbsent())
	})

	t.Run("create assigns increasing ids", func(t *testing.T) {
		store := open(t)

		first := mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Electronics"), Price: ptr(100.0)}))
		second := mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Phones"), Stock: ptr(int64(3))}))

		assert.Positive(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.Equal(t, int64(0), first.Stock, "omitted fields take defaults")

		got := mustFound(t, store.FindByID(ctx, first.ID))
		assert.Equal(t, first, got)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		store := open(t)

		for _, title := range []string{"c", "a", "b"} {
			mustFound(t, store.Create(ctx, itemDraft{Title: ptr(title)}))
		}

		list := mustFound(t, store.FindAll(ctx))
		require.Len(t, list, 3)
		assert.Equal(t, []string{"c", "a", "b"}, []string{list[0].Title, list[1].Title, list[2].Title})
	})

	t.Run("search", func(t *testing.T) {
		store := open(t)

		mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Electronics"), Owner: ptr("Ann")}))
		mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Phones"), Owner: ptr("Bob")}))
		mustFound(t, store.Create(ctx, itemDraft{Title: ptr("100% cotton"), Owner: ptr("Cy_")}))

		found := mustFound(t, store.FindBySearch(ctx, "PHO"))
		require.Len(t, found, 1)
		assert.Equal(t, "Phones", found[0].Title)

		found = mustFound(t, store.FindBySearch(ctx, "bob"))
		require.Len(t, found, 1, "every searchable column is matched")

		found = mustFound(t, store.FindBySearch(ctx, "%"))
		require.Len(t, found, 1, "wildcards are literal")
		assert.Equal(t, "100% cotton", found[0].Title)

		found = mustFound(t, store.FindBySearch(ctx, "_"))
		require.Len(t, found, 1)

		assert.Len(t, mustFound(t, store.FindBySearch(ctx, "")), 3)
		assert.Empty(t, mustFound(t, store.FindBySearch(ctx, "zzz")))
	})

	t.Run("search folds non-ascii case", func(t *testing.T) {
		store := open(t)

		mustFound(t, store.Create(ctx, itemDraft{Title: ptr("ÉCLAIR"), Owner: ptr("Zoë")}))
		mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Brioche"), Owner: ptr("ÖZGÜR")}))

		found := mustFound(t, store.FindBySearch(ctx, "éclair"))
		require.Len(t, found, 1)
		assert.Equal(t, "ÉCLAIR", found[0].Title)

		found = mustFound(t, store.FindBySearch(ctx, "ZOË"))
		require.Len(t, found, 1)
		assert.Equal(t, "ÉCLAIR", found[0].Title)

		found = mustFound(t, store.FindBySearch(ctx, "özgü"))
		require.Len(t, found, 1)
		assert.Equal(t, "Brioche", found[0].Title)
	})

	t.Run("update merges present fields", func(t *testing.T) {
		store := open(t)

		created := mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Phones"), Owner: ptr("Bob"), Price: ptr(5.5)}))

		updated := mustFound(t, store.Update(ctx, created.ID, itemDraft{Owner: ptr("Ann"), Stock: ptr(int64(7))}))
		assert.Equal(t, item{ID: created.ID, Title: "Phones", Owner: "Ann", Stock: 7, Price: 5.5}, updated)
		assert.Equal(t, updated, mustFound(t, store.FindByID(ctx, created.ID)))

		assert.True(t, store.Update(ctx, created.ID+100, itemDraft{Owner: ptr("x")}).IsAbsent())
	})

	t.Run("concurrent updates keep every applied patch", func(t *testing.T) {
		store := open(t)

		created := mustFound(t, store.Create(ctx, itemDraft{Title: ptr("t0"), Owner: ptr("o0")}))

		patches := []itemDraft{
			{Title: ptr("t1")},
			{Owner: ptr("o1")},
			{Stock: ptr(int64(11))},
			{Price: ptr(1.5)},
		}

		outcomes := make([]records.Outcome[item], len(patches))
		start := make(chan struct{})

		var wg sync.WaitGroup
		for i, patch := range patches {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				outcomes[i] = store.Update(ctx, created.ID, patch)
			}()
		}
		close(start)
		wg.Wait()

		final := mustFound(t, store.FindByID(ctx, created.ID))
		expected := item{ID: created.ID, Title: "t0", Owner: "o0"}
		for i, outcome := range outcomes {
			require.False(t, outcome.IsAbsent(), "update %d", i)
			if outcome.IsFound() {
				expected = mergeItem(expected, patches[i])
			} else {
				assert.True(t, outcome.IsFailed(), "update %d", i)
			}
		}

		assert.Equal(t, expected, final, "a reported update must not be lost")
	})

	t.Run("delete", func(t *testing.T) {
		store := open(t)

		created := mustFound(t, store.Create(ctx, itemDraft{Title: ptr("Phones")}))

		assert.True(t, mustFound(t, store.DeleteByID(ctx, created.ID)))
		assert.False(t, mustFound(t, store.DeleteByID(ctx, created.ID)))
		assert.True(t, store.FindByID(ctx, created.ID).IsAbsent())
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		store := open(t)

		const workers = 8
		ids := make(chan int64, workers)

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if value, ok := store.Create(ctx, itemDraft{Title: ptr("x")}).Value(); ok {
					ids <- value.ID
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[int64]bool{}
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)
	})

	t.Run("canceled context fails", func(t *testing.T) {
		store := open(t)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.True(t, store.FindAll(canceled).IsFailed())
	})
}
