package entities_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tillbook/tillbook/internal/records"
	"github.com/tillbook/tillbook/internal/server/handlers/entities"
)

type note struct {
	ID int64 `json:"id"`
}

// emptyStore holds no records.
type emptyStore struct{}

func (emptyStore) FindByID(context.Context, int64) records.Outcome[note] {
	return records.Absent[note]()
}

func (emptyStore) FindAll(context.Context) records.Outcome[[]note] {
	return records.Found([]note{})
}

func (emptyStore) FindBySearch(context.Context, string) records.Outcome[[]note] {
	return records.Found([]note{})
}

func (emptyStore) Create(context.Context, struct{}) records.Outcome[note] {
	return records.Found(note{ID: 1})
}

func (emptyStore) Update(context.Context, int64, struct{}) records.Outcome[note] {
	return records.Absent[note]()
}

func (emptyStore) DeleteByID(context.Context, int64) records.Outcome[bool] {
	return records.Found(false)
}

func TestBase_LogsUnservedRequests(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	svc := records.NewService[int64, note, struct{}]("note", emptyStore{}, nil)
	base := entities.NewBase(svc, zap.New(core))

	app := fiber.New()
	app.Get("/notes", base.List)
	app.Get("/notes/:id", base.Get)

	for _, target := range []string{"/notes", "/notes/7", "/notes/x"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	unserved := logs.FilterMessage("request not served").All()
	require.Len(t, unserved, 1, "successful lists are not logged")
	assert.Equal(t, string(records.KindNotFound), unserved[0].ContextMap()["kind"])
	assert.Equal(t, "no data found", unserved[0].ContextMap()["message"])

	assert.Len(t, logs.FilterMessage("invalid id").All(), 1)
}
