package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/alexanderramin/travelscape/internal/repository"
	"github.com/alexanderramin/travelscape/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupItineraryService(t *testing.T) (ItineraryService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewItineraryService(
		repository.NewSQLiteItineraryRepo(database),
		repository.NewSQLiteSetupRepo(database),
		repository.NewSQLiteMoodRepo(database),
		repository.NewSQLiteUndoRepo(database),
		testutil.NewTestUoW(database),
	)
	return svc, database
}

func TestItineraryService_LoadEmptyStoreGivesSampleTrip(t *testing.T) {
	svc, _ := setupItineraryService(t)

	snap := svc.Load(context.Background())
	require.Len(t, snap.Days, 4)
	assert.Equal(t, "day-1", snap.Days[0].ID)
	assert.NotEmpty(t, snap.Days[0].Activities, "starter trip ships with sample activities")
}

func TestItineraryService_LoadSeedsFromSetup(t *testing.T) {
	svc, database := setupItineraryService(t)
	ctx := context.Background()

	setups := repository.NewSQLiteSetupRepo(database)
	require.NoError(t, setups.Put(ctx, testutil.NewTestSetup("Lisbon", 6)))

	snap := svc.Load(ctx)
	require.Len(t, snap.Days, 6)
	for _, d := range snap.Days {
		assert.Empty(t, d.Activities, "seeded days start empty")
	}
}

func TestItineraryService_SaveLoadRoundTrip(t *testing.T) {
	svc, _ := setupItineraryService(t)
	ctx := context.Background()

	snap := planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1, testutil.WithActivities(
			testutil.NewTestActivity("Temple Tour", testutil.WithChecklist("Camera")),
		)),
		testutil.NewTestDay(2),
	})
	require.NoError(t, svc.Save(ctx, snap))

	loaded := svc.Load(ctx)
	require.Len(t, loaded.Days, 2)
	require.Len(t, loaded.Days[0].Activities, 1)
	assert.Equal(t, "Temple Tour", loaded.Days[0].Activities[0].Title)
	require.Len(t, loaded.Days[0].Activities[0].Checklist, 1)
}

func TestItineraryService_LoadMergesMoods(t *testing.T) {
	svc, database := setupItineraryService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1),
		testutil.NewTestDay(2),
	})))
	moods := repository.NewSQLiteMoodRepo(database)
	require.NoError(t, moods.Set(ctx, "day-2", &domain.Moods[4]))

	loaded := svc.Load(ctx)
	assert.Nil(t, loaded.Days[0].Mood)
	require.NotNil(t, loaded.Days[1].Mood)
	assert.Equal(t, "Sightseeing", loaded.Days[1].Mood.Label)
}

func TestItineraryService_SetMoodPersistsImmediately(t *testing.T) {
	svc, database := setupItineraryService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetMood(ctx, "day-1", &domain.Moods[0]))

	moods, err := repository.NewSQLiteMoodRepo(database).All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chill", moods["day-1"].Label)

	require.NoError(t, svc.SetMood(ctx, "day-1", nil))
	moods, err = repository.NewSQLiteMoodRepo(database).All(ctx)
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestItineraryService_FailedSaveLeavesStoredSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	good := NewItineraryService(
		repository.NewSQLiteItineraryRepo(database),
		repository.NewSQLiteSetupRepo(database),
		repository.NewSQLiteMoodRepo(database),
		repository.NewSQLiteUndoRepo(database),
		testutil.NewTestUoW(database),
	)
	first := planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1, testutil.WithActivities(testutil.NewTestActivity("Keeper"))),
	})
	require.NoError(t, good.Save(ctx, first))

	// The third exec (day delete, day insert, then activity insert) blows up
	// mid-save; the transaction must roll back to the previous snapshot.
	failing := NewItineraryService(
		repository.NewSQLiteItineraryRepo(database),
		repository.NewSQLiteSetupRepo(database),
		repository.NewSQLiteMoodRepo(database),
		repository.NewSQLiteUndoRepo(database),
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: fmt.Errorf("disk full")},
	)
	second := planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1, testutil.WithActivities(testutil.NewTestActivity("Usurper"))),
	})
	err := failing.Save(ctx, second)
	require.Error(t, err)

	loaded := good.Load(ctx)
	require.Len(t, loaded.Days, 1)
	require.Len(t, loaded.Days[0].Activities, 1)
	assert.Equal(t, "Keeper", loaded.Days[0].Activities[0].Title, "failed save must not corrupt the stored snapshot")
}

func TestItineraryService_StashAndRestoreRemoved(t *testing.T) {
	svc, _ := setupItineraryService(t)
	ctx := context.Background()

	snap := planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1, testutil.WithActivities(
			testutil.NewTestActivity("Keeper"),
			testutil.NewTestActivity("Doomed"),
		)),
	})
	snap, removed, ok := snap.DeleteActivity("day-1", snap.Days[0].Activities[1].ID)
	require.True(t, ok)
	require.NoError(t, svc.StashRemoved(ctx, "day-1", removed))

	restoredSnap, back, ok, err := svc.RestoreRemoved(ctx, snap)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Doomed", back.Title)
	require.Len(t, restoredSnap.Days[0].Activities, 2)
	assert.Equal(t, "Doomed", restoredSnap.Days[0].Activities[1].Title)

	// The slot is one-shot.
	_, _, ok, err = svc.RestoreRemoved(ctx, restoredSnap)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItineraryService_RestoreRemovedVanishedDayKeepsStash(t *testing.T) {
	svc, _ := setupItineraryService(t)
	ctx := context.Background()

	require.NoError(t, svc.StashRemoved(ctx, "day-9", testutil.NewTestActivity("Orphan")))

	snap := planner.NewSnapshot([]domain.Day{testutil.NewTestDay(1)})
	out, _, ok, err := svc.RestoreRemoved(ctx, snap)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, snap, out)

	// Once the origin day exists again the stash still applies.
	snap = snap.AddDay()
	for snap.DayByID("day-9") == -1 {
		snap = snap.AddDay()
	}
	_, back, ok, err := svc.RestoreRemoved(ctx, snap)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Orphan", back.Title)
}
