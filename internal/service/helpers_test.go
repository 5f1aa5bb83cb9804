package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/stretchr/testify/require"
)

// testClock is a settable clock.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

// flakyStore fails reads or writes of chosen collections.
type flakyStore struct {
	*repository.MemoryStore
	readErr  map[string]error
	writeErr map[string]error
}

func newFlakyStore() *flakyStore {
	return &flakyStore{
		MemoryStore: repository.NewMemoryStore(),
		readErr:     map[string]error{},
		writeErr:    map[string]error{},
	}
}

func (f *flakyStore) ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := f.readErr[collection]; err != nil {
		return nil, err
	}
	return f.MemoryStore.ReadAll(ctx, collection)
}

func (f *flakyStore) WriteAll(ctx context.Context, collection string, records []json.RawMessage) error {
	if err := f.writeErr[collection]; err != nil {
		return err
	}
	return f.MemoryStore.WriteAll(ctx, collection, records)
}

func (f *flakyStore) WriteValue(ctx context.Context, key, value string) error {
	if err := f.writeErr[key]; err != nil {
		return err
	}
	return f.MemoryStore.WriteValue(ctx, key, value)
}

type fixture struct {
	svc   *Service
	repos *repository.Repository
	clock *testClock
}

func newFixture(t *testing.T, store repository.RecordStore, opts Options) *fixture {
	t.Helper()
	if store == nil {
		store = repository.NewMemoryStore()
	}
	clock := &testClock{now: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	opts.Clock = clock.Now
	if opts.Auth.SigningKey == "" {
		opts.Auth.SigningKey = "test-signing-key"
	}
	repos := repository.NewRepository(store)
	return &fixture{svc: NewService(repos, opts), repos: repos, clock: clock}
}

func (f *fixture) seedElements(t *testing.T, elements ...models.Element) {
	t.Helper()
	require.NoError(t, f.repos.Elements.ReplaceAll(context.Background(), elements))
}

func (f *fixture) element(t *testing.T, id string) models.Element {
	t.Helper()
	e, err := f.svc.Elements.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, e, "element %s", id)
	return *e
}

func circuit(id string, completed bool) models.Element {
	return models.Element{
		ID:               id,
		StationID:        "dos-hermanas",
		InstallationType: models.InstallationCircuits,
		Name:             "CV " + id,
		IsCompleted:      completed,
	}
}

func motor(id string, completed bool) models.Element {
	return models.Element{
		ID:               id,
		StationID:        "dos-hermanas",
		InstallationType: models.InstallationMotors,
		Name:             "AGUJA " + id,
		IsCompleted:      completed,
	}
}

func itemsFor(elements ...models.Element) []models.ListItem {
	items := make([]models.ListItem, 0, len(elements))
	for _, e := range elements {
		items = append(items, models.ListItem{
			ElementID:        e.ID,
			InstallationType: e.InstallationType,
			Completed:        e.IsCompleted,
		})
	}
	return items
}

func strPtr(s string) *string { return &s }
