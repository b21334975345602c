package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davonjagah/JagahVA/models"
)

func TestMemoryStoreDefaultsUnknownUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	record, err := store.GetUser(ctx, "nobody")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Empty(t, record.Goals)
	assert.NotNil(t, record.Todos)
	assert.NotNil(t, record.DayTasks)
	assert.NotNil(t, record.DateTasks)
	assert.NotNil(t, record.Stats)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	record := models.NewUserRecord()
	record.Goals = []models.Goal{{Task: "workout", Frequency: models.FrequencyWeekly, Count: 3}}
	record.Stats["placeholder"] = "kept"
	require.NoError(t, store.SaveUser(ctx, "u1", record))

	loaded, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, loaded.Goals, 1)
	assert.Equal(t, "workout", loaded.Goals[0].Task)
	// The reserved stats bucket round-trips untouched.
	assert.Equal(t, "kept", loaded.Stats["placeholder"])
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	record := models.NewUserRecord()
	record.Goals = []models.Goal{{Task: "workout", Frequency: models.FrequencyDaily, Count: 1}}
	require.NoError(t, store.SaveUser(ctx, "u1", record))

	// Mutating a loaded record must not leak into the store without a save.
	loaded, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	loaded.Goals[0].Task = "changed"

	fresh, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "workout", fresh.Goals[0].Task)
}
