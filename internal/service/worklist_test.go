package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorklistService_SaveThenGetHydratesFromRegistry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	e1, e2, m1 := circuit("E1", false), circuit("E2", true), motor("M1", false)
	f.seedElements(t, e1, e2, m1)

	saved, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 3, Year: 2024, Items: itemsFor(m1, e1, e2)})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.UpdatedAt.Equal(f.clock.now))

	// registry changes after the save
	e1.IsCompleted = true
	e2.IsCompleted = false
	require.NoError(t, f.svc.Elements.Update(ctx, e1))
	require.NoError(t, f.svc.Elements.Update(ctx, e2))

	got, err := f.svc.Worklist.Get(ctx, 3, 2024)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, []models.ListItem{
		{ElementID: "M1", InstallationType: models.InstallationMotors, Completed: false},
		{ElementID: "E1", InstallationType: models.InstallationCircuits, Completed: true},
		{ElementID: "E2", InstallationType: models.InstallationCircuits, Completed: false},
	}, got.Items)

	// the stored snapshot is left as saved
	stored, err := f.repos.Lists.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].Items[1].Completed)
	assert.True(t, stored[0].Items[2].Completed)
}

func TestWorklistService_GetFallsBackToSnapshotForDeletedElement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	gone := circuit("GONE", true)
	f.seedElements(t, gone, circuit("E1", false))

	_, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 1, Year: 2024, Items: itemsFor(gone, circuit("E1", true))})
	require.NoError(t, err)
	require.NoError(t, f.svc.Elements.Delete(ctx, "GONE"))

	got, err := f.svc.Worklist.Get(ctx, 1, 2024)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Items[0].Completed, "deleted element keeps stored snapshot")
	assert.False(t, got.Items[1].Completed, "live element wins over snapshot")
}

func TestWorklistService_GetAbsentPeriodIsNil(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	_, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 2, Year: 2024})
	require.NoError(t, err)

	for _, p := range [][2]int{{3, 2024}, {2, 2023}} {
		got, err := f.svc.Worklist.Get(ctx, p[0], p[1])
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestWorklistService_SaveReplacesSamePeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.seedElements(t, circuit("E1", false), circuit("E2", false), motor("M1", false))

	_, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 4, Year: 2024, Items: itemsFor(circuit("E1", false), circuit("E2", false))})
	require.NoError(t, err)
	_, err = f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 5, Year: 2024, Items: itemsFor(circuit("E1", false))})
	require.NoError(t, err)
	second, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 4, Year: 2024, Items: itemsFor(motor("M1", false))})
	require.NoError(t, err)

	stored, err := f.repos.Lists.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	got, err := f.svc.Worklist.Get(ctx, 4, 2024)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, itemsFor(motor("M1", false)), got.Items)
}

func TestWorklistService_SaveValidatesPeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})

	for _, l := range []models.MonthlyList{{Month: 0, Year: 2024}, {Month: 13, Year: 2024}, {Month: 1, Year: 0}} {
		_, err := f.svc.Worklist.Save(ctx, l)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	}
	_, err := f.svc.Worklist.Get(ctx, 0, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestWorklistService_SaveDoesNotAliasCallerItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.seedElements(t, circuit("E1", false))

	items := itemsFor(circuit("E1", false))
	_, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 6, Year: 2024, Items: items})
	require.NoError(t, err)
	items[0].ElementID = "changed"

	got, err := f.svc.Worklist.Get(ctx, 6, 2024)
	require.NoError(t, err)
	assert.Equal(t, "E1", got.Items[0].ElementID)
}

func TestWorklistService_StoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("io error")
	store := newFlakyStore()
	f := newFixture(t, store, Options{})
	_, err := f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 1, Year: 2024})
	require.NoError(t, err)

	store.readErr[repository.CollectionElements] = boom
	_, err = f.svc.Worklist.Get(ctx, 1, 2024)
	assert.ErrorIs(t, err, boom)

	store.writeErr[repository.CollectionLists] = boom
	_, err = f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 2, Year: 2024})
	assert.ErrorIs(t, err, boom)
}

func TestWorklistService_Draft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	other := circuit("X1", false)
	other.StationID = "utrera"
	f.seedElements(t,
		motor("M2", false),
		circuit("E2", true),
		other,
		circuit("E1", false),
		motor("M1", true),
	)

	t.Run("station filter orders by type then name", func(t *testing.T) {
		got, err := f.svc.Worklist.Draft(ctx, DraftParams{Month: 9, Year: 2024, StationID: "dos-hermanas"})
		require.NoError(t, err)
		assert.Equal(t, 9, got.Month)
		assert.Equal(t, 2024, got.Year)
		assert.Empty(t, got.ID)
		ids := make([]string, 0, len(got.Items))
		for _, it := range got.Items {
			ids = append(ids, it.ElementID)
		}
		assert.Equal(t, []string{"E1", "E2", "M1", "M2"}, ids)
		assert.True(t, got.Items[1].Completed)
	})

	t.Run("type filter and pending only", func(t *testing.T) {
		got, err := f.svc.Worklist.Draft(ctx, DraftParams{
			Month:       9,
			Year:        2024,
			Types:       []models.InstallationType{models.InstallationCircuits},
			PendingOnly: true,
		})
		require.NoError(t, err)
		assert.Equal(t, itemsFor(circuit("E1", false), other), got.Items)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := f.svc.Worklist.Draft(ctx, DraftParams{Month: 13, Year: 2024})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

// Completed element, semester boundary, new list: the item reads as pending.
func TestScenario_ResetThenNewListReportsPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, Options{})
	f.clock.now = time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.repos.ResetMarker.Save(ctx, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	e1 := circuit("E1", true)
	f.seedElements(t, e1)

	f.clock.now = time.Date(2024, time.July, 1, 7, 0, 0, 0, time.UTC)
	reset, err := f.svc.Cycle.CheckAndReset(ctx)
	require.NoError(t, err)
	require.True(t, reset)
	assert.False(t, f.element(t, "E1").IsCompleted)

	// the caller still holds the stale completed=true snapshot
	_, err = f.svc.Worklist.Save(ctx, models.MonthlyList{Month: 7, Year: 2024, Items: itemsFor(e1)})
	require.NoError(t, err)

	got, err := f.svc.Worklist.Get(ctx, 7, 2024)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
	assert.False(t, got.Items[0].Completed)
}
